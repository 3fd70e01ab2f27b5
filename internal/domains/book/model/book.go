package model

import (
	publisherModel "alexandria-backend/internal/domains/publisher/model"
)

// Book owns at most one BookDetail and references at most one Publisher.
// Detail and Detail.BookID always agree: both set or both absent.
type Book struct {
	ID        int64
	Title     string
	Genre     string
	Detail    *BookDetail
	Publisher *publisherModel.Publisher
}

// BookDetail is the owned side of the one-to-one relation.
// BookID is the back-reference to the owning book.
type BookDetail struct {
	ID        int64
	Summary   string
	PageCount int
	Year      int
	ISBN      string
	BookID    *int64
}

// PublisherID returns the referenced publisher id, nil when unlinked
func (b *Book) PublisherID() *int64 {
	if b.Publisher == nil {
		return nil
	}
	id := b.Publisher.ID
	return &id
}

// Snapshot copies the detail so later mutation of d does not affect it
func (d *BookDetail) Snapshot() *BookDetail {
	cp := *d
	if d.BookID != nil {
		id := *d.BookID
		cp.BookID = &id
	}
	return &cp
}
