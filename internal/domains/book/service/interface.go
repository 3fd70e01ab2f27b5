package service

import (
	"context"

	"alexandria-backend/internal/domains/book/model"
)

// ServiceInterface is the book business logic, including the owned detail
// and the publisher link
type ServiceInterface interface {
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	FindAll(ctx context.Context) ([]*model.Book, error)
	Create(ctx context.Context, book *model.Book) (*model.Book, error)

	// Update overwrites title and genre only
	Update(ctx context.Context, id int64, patch *model.Book) (*model.Book, error)

	// DeleteByID returns the book as it was before deletion
	DeleteByID(ctx context.Context, id int64) (*model.Book, error)

	CreateBookDetail(ctx context.Context, bookID int64, detail *model.BookDetail) (*model.BookDetail, error)
	GetBookDetail(ctx context.Context, bookID int64) (*model.BookDetail, error)
	UpdateBookDetail(ctx context.Context, bookID int64, patch *model.BookDetail) (*model.BookDetail, error)

	// RemoveBookDetail detaches and deletes the detail, returning it as it
	// was before both sides of the relation were cleared
	RemoveBookDetail(ctx context.Context, bookID int64) (*model.BookDetail, error)

	SetBookPublisher(ctx context.Context, bookID, publisherID int64) (*model.Book, error)
	RemoveBookPublisher(ctx context.Context, bookID int64) (*model.Book, error)
}
