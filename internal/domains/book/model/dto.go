package model

import (
	publisherModel "alexandria-backend/internal/domains/publisher/model"
)

// BookRequest is the body of POST and PUT /books
type BookRequest struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
}

// BookDetailRequest is the body of POST and PUT /books/:id/detail
type BookDetailRequest struct {
	Summary   string `json:"summary"`
	PageCount int    `json:"page_count"`
	Year      int    `json:"year"`
	ISBN      string `json:"isbn"`
}

type BookResponse struct {
	ID        int64                             `json:"id"`
	Title     string                            `json:"title"`
	Genre     string                            `json:"genre"`
	Detail    *BookDetailResponse               `json:"detail,omitempty"`
	Publisher *publisherModel.PublisherResponse `json:"publisher,omitempty"`
}

type BookDetailResponse struct {
	ID        int64  `json:"id"`
	Summary   string `json:"summary"`
	PageCount int    `json:"page_count"`
	Year      int    `json:"year"`
	ISBN      string `json:"isbn"`
	BookID    *int64 `json:"book_id"`
}

func (r *BookRequest) ToEntity() *Book {
	return &Book{
		Title: r.Title,
		Genre: r.Genre,
	}
}

func (r *BookDetailRequest) ToEntity() *BookDetail {
	return &BookDetail{
		Summary:   r.Summary,
		PageCount: r.PageCount,
		Year:      r.Year,
		ISBN:      r.ISBN,
	}
}

func (b *Book) ToResponse() *BookResponse {
	resp := &BookResponse{
		ID:    b.ID,
		Title: b.Title,
		Genre: b.Genre,
	}
	if b.Detail != nil {
		resp.Detail = b.Detail.ToResponse()
	}
	if b.Publisher != nil {
		resp.Publisher = b.Publisher.ToResponse()
	}
	return resp
}

func (d *BookDetail) ToResponse() *BookDetailResponse {
	return &BookDetailResponse{
		ID:        d.ID,
		Summary:   d.Summary,
		PageCount: d.PageCount,
		Year:      d.Year,
		ISBN:      d.ISBN,
		BookID:    d.BookID,
	}
}
