package repository

import (
	"database/sql"
	"errors"

	"alexandria-backend/internal/domains/book/model"
	publisherModel "alexandria-backend/internal/domains/publisher/model"
)

const selectBooks = `
    SELECT b.id, b.title, b.genre,
           d.id, d.summary, d.page_count, d.year, d.isbn,
           p.id, p.name, p.code
    FROM books b
    LEFT JOIN book_details d ON d.book_id = b.id
    LEFT JOIN publishers p ON p.id = b.publisher_id
`

// bookRow is one row of selectBooks. The detail and publisher columns are
// NULL when the book has no detail or no publisher.
type bookRow struct {
	ID    int64
	Title string
	Genre string

	DetailID        sql.NullInt64
	DetailSummary   sql.NullString
	DetailPageCount sql.NullInt64
	DetailYear      sql.NullInt64
	DetailISBN      sql.NullString

	PublisherID   sql.NullInt64
	PublisherName sql.NullString
	PublisherCode sql.NullString
}

func (r *bookRow) targets() []interface{} {
	return []interface{}{
		&r.ID, &r.Title, &r.Genre,
		&r.DetailID, &r.DetailSummary, &r.DetailPageCount, &r.DetailYear, &r.DetailISBN,
		&r.PublisherID, &r.PublisherName, &r.PublisherCode,
	}
}

func (r *bookRow) toBook() *model.Book {
	book := &model.Book{
		ID:    r.ID,
		Title: r.Title,
		Genre: r.Genre,
	}

	if r.DetailID.Valid {
		bookID := r.ID
		book.Detail = &model.BookDetail{
			ID:        r.DetailID.Int64,
			Summary:   r.DetailSummary.String,
			PageCount: int(r.DetailPageCount.Int64),
			Year:      int(r.DetailYear.Int64),
			ISBN:      r.DetailISBN.String,
			BookID:    &bookID,
		}
	}

	if r.PublisherID.Valid {
		book.Publisher = &publisherModel.Publisher{
			ID:   r.PublisherID.Int64,
			Name: r.PublisherName.String,
			Code: r.PublisherCode.String,
		}
	}

	return book
}

// saved returns a copy of book carrying the id assigned by the store
func saved(book *model.Book, id int64) *model.Book {
	cp := *book
	cp.ID = id
	return &cp
}

func savedDetail(detail *model.BookDetail, id int64) *model.BookDetail {
	cp := detail.Snapshot()
	cp.ID = id
	return cp
}

// domainError passes coded book errors through and wraps anything else, such
// as a failed begin or commit, with wrap
func domainError(err error, wrap func(error) *model.BookError) error {
	if err == nil {
		return nil
	}

	var bookErr *model.BookError
	if errors.As(err, &bookErr) {
		return err
	}
	return wrap(err)
}
