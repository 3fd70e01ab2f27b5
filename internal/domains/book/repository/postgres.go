package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"alexandria-backend/internal/domains/book/model"
	"alexandria-backend/pkg/database"
)

const pgUniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var row bookRow
	err := r.pool.QueryRow(ctx, selectBooks+` WHERE b.id = $1`, id).Scan(row.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewGetBookError(err)
	}

	return row.toBook(), nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*model.Book, error) {
	rows, err := r.pool.Query(ctx, selectBooks+` ORDER BY b.id`)
	if err != nil {
		return nil, model.NewListBookError(err)
	}
	defer rows.Close()

	books := []*model.Book{}
	for rows.Next() {
		var row bookRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, model.NewListBookError(err)
		}
		books = append(books, row.toBook())
	}

	if err := rows.Err(); err != nil {
		return nil, model.NewListBookError(err)
	}

	return books, nil
}

func (r *postgresRepository) Save(ctx context.Context, book *model.Book) (*model.Book, error) {
	if book.ID == 0 {
		query := `
      INSERT INTO books (title, genre, publisher_id)
      VALUES ($1, $2, $3)
      RETURNING id
    `
		var id int64
		if err := r.pool.QueryRow(ctx, query, book.Title, book.Genre, book.PublisherID()).Scan(&id); err != nil {
			return nil, model.NewCreateBookError(err)
		}
		return saved(book, id), nil
	}

	query := `UPDATE books SET title = $2, genre = $3, publisher_id = $4 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, book.ID, book.Title, book.Genre, book.PublisherID())
	if err != nil {
		return nil, model.NewUpdateBookError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.NewBookNotFound()
	}

	return saved(book, book.ID), nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM book_details WHERE book_id = $1`, id); err != nil {
			return model.NewDeleteBookError(err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return model.NewDeleteBookError(err)
		}
		if tag.RowsAffected() == 0 {
			return model.NewBookNotFound()
		}
		return nil
	})
	return domainError(err, model.NewDeleteBookError)
}

type postgresDetailRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresDetailRepository(pool *pgxpool.Pool) DetailRepositoryInterface {
	return &postgresDetailRepository{pool: pool}
}

func (r *postgresDetailRepository) Save(ctx context.Context, detail *model.BookDetail) (*model.BookDetail, error) {
	if detail.ID == 0 {
		query := `
      INSERT INTO book_details (summary, page_count, year, isbn, book_id)
      VALUES ($1, $2, $3, $4, $5)
      RETURNING id
    `
		var id int64
		err := r.pool.QueryRow(ctx, query,
			detail.Summary, detail.PageCount, detail.Year, detail.ISBN, detail.BookID,
		).Scan(&id)
		if err != nil {
			return nil, r.mapWriteError(detail, err)
		}
		return savedDetail(detail, id), nil
	}

	query := `
    UPDATE book_details
    SET summary = $2, page_count = $3, year = $4, isbn = $5, book_id = $6
    WHERE id = $1
  `
	tag, err := r.pool.Exec(ctx, query,
		detail.ID, detail.Summary, detail.PageCount, detail.Year, detail.ISBN, detail.BookID,
	)
	if err != nil {
		return nil, r.mapWriteError(detail, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.NewBookDetailNotFound()
	}

	return savedDetail(detail, detail.ID), nil
}

func (r *postgresDetailRepository) Detach(ctx context.Context, detail *model.BookDetail) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE book_details SET book_id = NULL WHERE id = $1`, detail.ID); err != nil {
			return model.NewDeleteBookDetailError(err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM book_details WHERE id = $1`, detail.ID)
		if err != nil {
			return model.NewDeleteBookDetailError(err)
		}
		if tag.RowsAffected() == 0 {
			return model.NewBookDetailNotFound()
		}
		return nil
	})
	return domainError(err, model.NewDeleteBookDetailError)
}

func (r *postgresDetailRepository) mapWriteError(detail *model.BookDetail, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && detail.BookID != nil {
		return model.NewBookDetailAlreadyExists(*detail.BookID)
	}
	return model.NewSaveBookDetailError(err)
}
