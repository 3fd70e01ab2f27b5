package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"alexandria-backend/internal/domains/publisher/model"
	"alexandria-backend/pkg/cache"
)

const allPublishersKey = "publishers:all"

func publisherKey(id int64) string {
	return fmt.Sprintf("publisher:%d", id)
}

// cachedRepository is a read-through cache in front of another repository.
// Writes evict, and cache failures only degrade to the underlying repository.
type cachedRepository struct {
	next  RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func (r *cachedRepository) FindByID(ctx context.Context, id int64) (*model.Publisher, error) {
	key := publisherKey(id)

	var cached model.Publisher
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("publisher cache read failed")
	} else if found {
		return &cached, nil
	}

	pub, err := r.next.FindByID(ctx, id)
	if err != nil || pub == nil {
		return pub, err
	}

	if err := r.cache.Set(ctx, key, pub, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("publisher cache write failed")
	}

	return pub, nil
}

func (r *cachedRepository) FindAll(ctx context.Context) ([]*model.Publisher, error) {
	var cached []*model.Publisher
	found, err := r.cache.Get(ctx, allPublishersKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", allPublishersKey).Msg("publisher cache read failed")
	} else if found {
		return cached, nil
	}

	publishers, err := r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, allPublishersKey, publishers, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", allPublishersKey).Msg("publisher cache write failed")
	}

	return publishers, nil
}

func (r *cachedRepository) Save(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	saved, err := r.next.Save(ctx, pub)
	if err != nil {
		return nil, err
	}

	r.evict(ctx, saved.ID)
	return saved, nil
}

func (r *cachedRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.next.DeleteByID(ctx, id); err != nil {
		return err
	}

	r.evict(ctx, id)
	return nil
}

func (r *cachedRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, publisherKey(id), allPublishersKey); err != nil {
		log.Warn().Err(err).Int64("publisher_id", id).Msg("publisher cache eviction failed")
	}
}
