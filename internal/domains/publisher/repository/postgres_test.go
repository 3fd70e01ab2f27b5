package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alexandria-backend/internal/domains/publisher/model"
	"alexandria-backend/internal/infrastructure/database/dbtest"
)

func newPostgresRepository(t *testing.T) RepositoryInterface {
	t.Helper()
	return NewPostgresRepository(dbtest.Postgres(t))
}

func TestPostgresRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newPostgresRepository(t)

	created, err := repo.Save(ctx, &model.Publisher{Name: "Aleph", Code: "ALP"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	missing, err := repo.FindByID(ctx, created.ID+1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgresRepository_FindAllOrdered(t *testing.T) {
	ctx := context.Background()
	repo := newPostgresRepository(t)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for _, name := range []string{"Rocco", "Companhia", "Aleph"} {
		_, err := repo.Save(ctx, &model.Publisher{Name: name})
		require.NoError(t, err)
	}

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Rocco", all[0].Name)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Less(t, all[1].ID, all[2].ID)
}

func TestPostgresRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newPostgresRepository(t)

	created, err := repo.Save(ctx, &model.Publisher{Name: "Aleph", Code: "ALP"})
	require.NoError(t, err)

	updated, err := repo.Save(ctx, &model.Publisher{ID: created.ID, Name: "Editora Aleph"})
	require.NoError(t, err)
	assert.Equal(t, &model.Publisher{ID: created.ID, Name: "Editora Aleph"}, updated)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)

	_, err = repo.Save(ctx, &model.Publisher{ID: created.ID + 10, Name: "Ghost"})
	assert.True(t, model.IsPublisherNotFound(err))
}

func TestPostgresRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newPostgresRepository(t)

	created, err := repo.Save(ctx, &model.Publisher{Name: "Aleph"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, created.ID))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.True(t, model.IsPublisherNotFound(repo.DeleteByID(ctx, created.ID)))
}
