package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"alexandria-backend/internal/domains/book/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

func builder(runner sq.BaseRunner) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question).RunWith(runner)
}

func selectBooksQuery(runner sq.BaseRunner) sq.SelectBuilder {
	return builder(runner).
		Select(
			"b.id", "b.title", "b.genre",
			"d.id", "d.summary", "d.page_count", "d.year", "d.isbn",
			"p.id", "p.name", "p.code",
		).
		From("books b").
		LeftJoin("book_details d ON d.book_id = b.id").
		LeftJoin("publishers p ON p.id = b.publisher_id")
}

// withTx runs fn inside a database/sql transaction
func withTx(ctx context.Context, db *sql.DB, fn func(sq.StatementBuilderType) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(builder(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *sqliteRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var row bookRow
	err := selectBooksQuery(r.db).
		Where(sq.Eq{"b.id": id}).
		QueryRowContext(ctx).
		Scan(row.targets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewGetBookError(err)
	}

	return row.toBook(), nil
}

func (r *sqliteRepository) FindAll(ctx context.Context) ([]*model.Book, error) {
	rows, err := selectBooksQuery(r.db).OrderBy("b.id").QueryContext(ctx)
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

func (r *sqliteRepository) Save(ctx context.Context, book *model.Book) (*model.Book, error) {
	sb := builder(r.db)

	if book.ID == 0 {
		res, err := sb.Insert("books").
			Columns("title", "genre", "publisher_id").
			Values(book.Title, book.Genre, book.PublisherID()).
			ExecContext(ctx)
		if err != nil {
			return nil, model.NewCreateBookError(err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, model.NewCreateBookError(err)
		}
		return saved(book, id), nil
	}

	res, err := sb.Update("books").
		Set("title", book.Title).
		Set("genre", book.Genre).
		Set("publisher_id", book.PublisherID()).
		Where(sq.Eq{"id": book.ID}).
		ExecContext(ctx)
	if err != nil {
		return nil, model.NewUpdateBookError(err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return nil, model.NewUpdateBookError(err)
	} else if n == 0 {
		return nil, model.NewBookNotFound()
	}

	return saved(book, book.ID), nil
}

func (r *sqliteRepository) DeleteByID(ctx context.Context, id int64) error {
	err := withTx(ctx, r.db, func(sb sq.StatementBuilderType) error {
		if _, err := sb.Delete("book_details").Where(sq.Eq{"book_id": id}).ExecContext(ctx); err != nil {
			return model.NewDeleteBookError(err)
		}

		res, err := sb.Delete("books").Where(sq.Eq{"id": id}).ExecContext(ctx)
		if err != nil {
			return model.NewDeleteBookError(err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return model.NewDeleteBookError(err)
		} else if n == 0 {
			return model.NewBookNotFound()
		}
		return nil
	})
	return domainError(err, model.NewDeleteBookError)
}

type sqliteDetailRepository struct {
	db *sql.DB
}

func NewSQLiteDetailRepository(db *sql.DB) DetailRepositoryInterface {
	return &sqliteDetailRepository{db: db}
}

func (r *sqliteDetailRepository) Save(ctx context.Context, detail *model.BookDetail) (*model.BookDetail, error) {
	sb := builder(r.db)

	if detail.ID == 0 {
		res, err := sb.Insert("book_details").
			Columns("summary", "page_count", "year", "isbn", "book_id").
			Values(detail.Summary, detail.PageCount, detail.Year, detail.ISBN, detail.BookID).
			ExecContext(ctx)
		if err != nil {
			return nil, mapSQLiteWriteError(detail, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, model.NewSaveBookDetailError(err)
		}
		return savedDetail(detail, id), nil
	}

	res, err := sb.Update("book_details").
		Set("summary", detail.Summary).
		Set("page_count", detail.PageCount).
		Set("year", detail.Year).
		Set("isbn", detail.ISBN).
		Set("book_id", detail.BookID).
		Where(sq.Eq{"id": detail.ID}).
		ExecContext(ctx)
	if err != nil {
		return nil, mapSQLiteWriteError(detail, err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return nil, model.NewSaveBookDetailError(err)
	} else if n == 0 {
		return nil, model.NewBookDetailNotFound()
	}

	return savedDetail(detail, detail.ID), nil
}

func (r *sqliteDetailRepository) Detach(ctx context.Context, detail *model.BookDetail) error {
	err := withTx(ctx, r.db, func(sb sq.StatementBuilderType) error {
		_, err := sb.Update("book_details").
			Set("book_id", nil).
			Where(sq.Eq{"id": detail.ID}).
			ExecContext(ctx)
		if err != nil {
			return model.NewDeleteBookDetailError(err)
		}

		res, err := sb.Delete("book_details").Where(sq.Eq{"id": detail.ID}).ExecContext(ctx)
		if err != nil {
			return model.NewDeleteBookDetailError(err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return model.NewDeleteBookDetailError(err)
		} else if n == 0 {
			return model.NewBookDetailNotFound()
		}
		return nil
	})
	return domainError(err, model.NewDeleteBookDetailError)
}

func mapSQLiteWriteError(detail *model.BookDetail, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique && detail.BookID != nil {
		return model.NewBookDetailAlreadyExists(*detail.BookID)
	}
	return model.NewSaveBookDetailError(err)
}
