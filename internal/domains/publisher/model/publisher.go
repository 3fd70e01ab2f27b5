package model

// Publisher is a book publisher. ID is assigned by the store on creation.
type Publisher struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}

// PublisherRequest is the body of POST and PUT /publishers
type PublisherRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type PublisherResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func (r *PublisherRequest) ToEntity() *Publisher {
	return &Publisher{
		Name: r.Name,
		Code: r.Code,
	}
}

func (p *Publisher) ToResponse() *PublisherResponse {
	return &PublisherResponse{
		ID:   p.ID,
		Name: p.Name,
		Code: p.Code,
	}
}
