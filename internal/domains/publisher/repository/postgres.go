package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"alexandria-backend/internal/domains/publisher/model"
)

// postgresRepository implements RepositoryInterface on a pgx pool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Publisher, error) {
	query := `SELECT id, name, code FROM publishers WHERE id = $1`

	var pub model.Publisher
	err := r.pool.QueryRow(ctx, query, id).Scan(&pub.ID, &pub.Name, &pub.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewGetPublisherError(err)
	}

	return &pub, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*model.Publisher, error) {
	query := `SELECT id, name, code FROM publishers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, model.NewListPublisherError(err)
	}
	defer rows.Close()

	publishers := []*model.Publisher{}
	for rows.Next() {
		var pub model.Publisher
		if err := rows.Scan(&pub.ID, &pub.Name, &pub.Code); err != nil {
			return nil, model.NewListPublisherError(err)
		}
		publishers = append(publishers, &pub)
	}

	if err := rows.Err(); err != nil {
		return nil, model.NewListPublisherError(err)
	}

	return publishers, nil
}

func (r *postgresRepository) Save(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	if pub.ID == 0 {
		return r.insert(ctx, pub)
	}
	return r.update(ctx, pub)
}

func (r *postgresRepository) insert(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	query := `
    INSERT INTO publishers (name, code)
    VALUES ($1, $2)
    RETURNING id, name, code
  `

	var created model.Publisher
	err := r.pool.QueryRow(ctx, query, pub.Name, pub.Code).Scan(&created.ID, &created.Name, &created.Code)
	if err != nil {
		return nil, model.NewCreatePublisherError(err)
	}

	return &created, nil
}

func (r *postgresRepository) update(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	query := `
    UPDATE publishers
    SET name = $2, code = $3
    WHERE id = $1
    RETURNING id, name, code
  `

	var updated model.Publisher
	err := r.pool.QueryRow(ctx, query, pub.ID, pub.Name, pub.Code).Scan(&updated.ID, &updated.Name, &updated.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewPublisherNotFound()
		}
		return nil, model.NewUpdatePublisherError(err)
	}

	return &updated, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM publishers WHERE id = $1`, id)
	if err != nil {
		return model.NewDeletePublisherError(err)
	}

	if tag.RowsAffected() == 0 {
		return model.NewPublisherNotFound()
	}

	return nil
}
