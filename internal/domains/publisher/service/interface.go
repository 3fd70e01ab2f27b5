package service

import (
	"context"

	"alexandria-backend/internal/domains/publisher/model"
)

// ServiceInterface is the publisher business logic
type ServiceInterface interface {
	// FindByID fails with PUBLISHER_NOT_FOUND when no publisher matches
	FindByID(ctx context.Context, id int64) (*model.Publisher, error)

	FindAll(ctx context.Context) ([]*model.Publisher, error)

	// Create persists a new publisher; the store assigns the ID
	Create(ctx context.Context, publisher *model.Publisher) (*model.Publisher, error)

	// Update overwrites name and code with the patch values
	Update(ctx context.Context, id int64, patch *model.Publisher) (*model.Publisher, error)

	// DeleteByID removes the publisher and returns the row as it was before deletion
	DeleteByID(ctx context.Context, id int64) (*model.Publisher, error)
}
