package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"alexandria-backend/internal/domains/publisher/model"
)

var publisherColumns = []string{"id", "name", "code"}

// sqliteRepository implements RepositoryInterface on database/sql with squirrel
type sqliteRepository struct {
	sb sq.StatementBuilderType
}

func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question).RunWith(db),
	}
}

func (r *sqliteRepository) FindByID(ctx context.Context, id int64) (*model.Publisher, error) {
	var pub model.Publisher
	err := r.sb.Select(publisherColumns...).
		From("publishers").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&pub.ID, &pub.Name, &pub.Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewGetPublisherError(err)
	}

	return &pub, nil
}

func (r *sqliteRepository) FindAll(ctx context.Context) ([]*model.Publisher, error) {
	rows, err := r.sb.Select(publisherColumns...).
		From("publishers").
		OrderBy("id").
		QueryContext(ctx)
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

func (r *sqliteRepository) Save(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	if pub.ID == 0 {
		res, err := r.sb.Insert("publishers").
			Columns("name", "code").
			Values(pub.Name, pub.Code).
			ExecContext(ctx)
		if err != nil {
			return nil, model.NewCreatePublisherError(err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, model.NewCreatePublisherError(err)
		}

		return &model.Publisher{ID: id, Name: pub.Name, Code: pub.Code}, nil
	}

	res, err := r.sb.Update("publishers").
		Set("name", pub.Name).
		Set("code", pub.Code).
		Where(sq.Eq{"id": pub.ID}).
		ExecContext(ctx)
	if err != nil {
		return nil, model.NewUpdatePublisherError(err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return nil, model.NewUpdatePublisherError(err)
	} else if n == 0 {
		return nil, model.NewPublisherNotFound()
	}

	return &model.Publisher{ID: pub.ID, Name: pub.Name, Code: pub.Code}, nil
}

func (r *sqliteRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.sb.Delete("publishers").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return model.NewDeletePublisherError(err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return model.NewDeletePublisherError(err)
	} else if n == 0 {
		return model.NewPublisherNotFound()
	}

	return nil
}
