package repository

import (
	"context"

	"alexandria-backend/internal/domains/book/model"
)

// RepositoryInterface is the persistence gateway of the books relation
type RepositoryInterface interface {
	// FindByID loads the book with its detail and publisher.
	// Returns nil, nil when no row matches.
	FindByID(ctx context.Context, id int64) (*model.Book, error)

	// FindAll returns every book, with detail and publisher, ordered by id
	FindAll(ctx context.Context) ([]*model.Book, error)

	// Save inserts when ID is zero and updates title, genre and the
	// publisher link otherwise. The detail is not written by Save.
	Save(ctx context.Context, book *model.Book) (*model.Book, error)

	// DeleteByID removes the book and its detail in one transaction
	DeleteByID(ctx context.Context, id int64) error
}

// DetailRepositoryInterface is the persistence gateway of the book_details relation
type DetailRepositoryInterface interface {
	// Save inserts when ID is zero and updates otherwise.
	// A second detail for the same book fails with BOOK_DETAIL_ALREADY_EXISTS.
	Save(ctx context.Context, detail *model.BookDetail) (*model.BookDetail, error)

	// Detach clears the back-reference of the row and deletes it, in one transaction
	Detach(ctx context.Context, detail *model.BookDetail) error
}
