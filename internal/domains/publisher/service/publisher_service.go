package service

import (
	"context"

	"alexandria-backend/internal/domains/publisher/model"
	"alexandria-backend/internal/domains/publisher/repository"
)

// publisherService implements ServiceInterface
type publisherService struct {
	repo repository.RepositoryInterface
}

func NewPublisherService(repo repository.RepositoryInterface) ServiceInterface {
	return &publisherService{
		repo: repo,
	}
}

func (s *publisherService) FindByID(ctx context.Context, id int64) (*model.Publisher, error) {
	pub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if pub == nil {
		return nil, model.NewPublisherNotFound()
	}

	return pub, nil
}

func (s *publisherService) FindAll(ctx context.Context) ([]*model.Publisher, error) {
	return s.repo.FindAll(ctx)
}

func (s *publisherService) Create(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	toCreate := &model.Publisher{
		Name: pub.Name,
		Code: pub.Code,
	}

	return s.repo.Save(ctx, toCreate)
}

func (s *publisherService) Update(ctx context.Context, id int64, patch *model.Publisher) (*model.Publisher, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// full replace: empty values in the patch overwrite stored ones
	existing.Name = patch.Name
	existing.Code = patch.Code

	return s.repo.Save(ctx, existing)
}

func (s *publisherService) DeleteByID(ctx context.Context, id int64) (*model.Publisher, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	return existing, nil
}
