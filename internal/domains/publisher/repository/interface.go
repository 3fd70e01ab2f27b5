package repository

import (
	"context"

	"alexandria-backend/internal/domains/publisher/model"
)

// RepositoryInterface is the persistence gateway of the publishers relation
type RepositoryInterface interface {
	// FindByID returns nil, nil when no row matches
	FindByID(ctx context.Context, id int64) (*model.Publisher, error)

	// FindAll returns every publisher ordered by id
	FindAll(ctx context.Context) ([]*model.Publisher, error)

	// Save inserts when ID is zero and updates otherwise.
	// Returns the stored row with its assigned ID.
	Save(ctx context.Context, publisher *model.Publisher) (*model.Publisher, error)

	// DeleteByID removes the row. Books referencing it lose the link.
	DeleteByID(ctx context.Context, id int64) error
}
