package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"alexandria-backend/internal/domains/book/model"
	"alexandria-backend/internal/domains/book/repository"
	publisherService "alexandria-backend/internal/domains/publisher/service"
)

type bookService struct {
	repo       repository.RepositoryInterface
	details    repository.DetailRepositoryInterface
	publishers publisherService.ServiceInterface
}

func NewBookService(
	repo repository.RepositoryInterface,
	details repository.DetailRepositoryInterface,
	publishers publisherService.ServiceInterface,
) ServiceInterface {
	return &bookService{
		repo:       repo,
		details:    details,
		publishers: publishers,
	}
}

func (s *bookService) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if book == nil {
		return nil, model.NewBookNotFound()
	}

	return book, nil
}

func (s *bookService) FindAll(ctx context.Context) ([]*model.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	toCreate := &model.Book{
		Title: book.Title,
		Genre: book.Genre,
	}

	return s.repo.Save(ctx, toCreate)
}

func (s *bookService) Update(ctx context.Context, id int64, patch *model.Book) (*model.Book, error) {
	book, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Title = patch.Title
	book.Genre = patch.Genre

	return s.repo.Save(ctx, book)
}

func (s *bookService) DeleteByID(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	return book, nil
}

func (s *bookService) CreateBookDetail(ctx context.Context, bookID int64, detail *model.BookDetail) (*model.BookDetail, error) {
	book, err := s.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if book.Detail != nil {
		return nil, model.NewBookDetailAlreadyExists(bookID)
	}

	toCreate := &model.BookDetail{
		Summary:   detail.Summary,
		PageCount: detail.PageCount,
		Year:      detail.Year,
		ISBN:      detail.ISBN,
		BookID:    &book.ID,
	}

	created, err := s.details.Save(ctx, toCreate)
	if err != nil {
		return nil, err
	}

	book.Detail = created
	return created, nil
}

func (s *bookService) GetBookDetail(ctx context.Context, bookID int64) (*model.BookDetail, error) {
	book, err := s.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if book.Detail == nil {
		return nil, model.NewBookDetailNotFound()
	}

	return book.Detail, nil
}

func (s *bookService) UpdateBookDetail(ctx context.Context, bookID int64, patch *model.BookDetail) (*model.BookDetail, error) {
	detail, err := s.GetBookDetail(ctx, bookID)
	if err != nil {
		return nil, err
	}

	detail.Summary = patch.Summary
	detail.PageCount = patch.PageCount
	detail.Year = patch.Year
	detail.ISBN = patch.ISBN

	return s.details.Save(ctx, detail)
}

func (s *bookService) RemoveBookDetail(ctx context.Context, bookID int64) (*model.BookDetail, error) {
	book, err := s.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	detail := book.Detail
	if detail == nil {
		return nil, model.NewBookDetailNotFound()
	}

	snapshot := detail.Snapshot()

	// owner side first, then the back-reference, then the row
	book.Detail = nil
	detail.BookID = nil

	if err := s.details.Detach(ctx, detail); err != nil {
		return nil, err
	}

	log.Debug().Int64("book_id", bookID).Int64("detail_id", snapshot.ID).Msg("book detail removed")
	return snapshot, nil
}

func (s *bookService) SetBookPublisher(ctx context.Context, bookID, publisherID int64) (*model.Book, error) {
	book, err := s.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	publisher, err := s.publishers.FindByID(ctx, publisherID)
	if err != nil {
		return nil, err
	}

	book.Publisher = publisher

	return s.repo.Save(ctx, book)
}

func (s *bookService) RemoveBookPublisher(ctx context.Context, bookID int64) (*model.Book, error) {
	book, err := s.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	book.Publisher = nil

	return s.repo.Save(ctx, book)
}
