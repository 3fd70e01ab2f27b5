package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alexandria-backend/internal/domains/publisher/model"
	"alexandria-backend/internal/infrastructure/database"
)

func newTestRepository(t *testing.T) RepositoryInterface {
	t.Helper()

	db, err := database.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	created, err := repo.Save(ctx, &model.Publisher{Name: "Aleph", Code: "ALP"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestSQLiteRepository_FindByIDMissing(t *testing.T) {
	repo := newTestRepository(t)

	found, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSQLiteRepository_FindAllOrdered(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

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

func TestSQLiteRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	created, err := repo.Save(ctx, &model.Publisher{Name: "Aleph", Code: "ALP"})
	require.NoError(t, err)

	updated, err := repo.Save(ctx, &model.Publisher{ID: created.ID, Name: "Editora Aleph", Code: ""})
	require.NoError(t, err)
	assert.Equal(t, &model.Publisher{ID: created.ID, Name: "Editora Aleph", Code: ""}, updated)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestSQLiteRepository_UpdateMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Save(context.Background(), &model.Publisher{ID: 99, Name: "Ghost"})
	assert.True(t, model.IsPublisherNotFound(err))
}

func TestSQLiteRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	created, err := repo.Save(ctx, &model.Publisher{Name: "Aleph"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, created.ID))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	err = repo.DeleteByID(ctx, created.ID)
	assert.True(t, model.IsPublisherNotFound(err))
}
