package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestWithTransaction_Commit(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{}}

	err := WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		return nil
	})

	require.NoError(t, err)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{}}
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestWithTransaction_RollbackOnPanic(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{}}

	assert.Panics(t, func() {
		_ = WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
			panic("kaboom")
		})
	})
	assert.True(t, db.tx.rolledBack)
}

func TestWithTransaction_CommitFailure(t *testing.T) {
	commitErr := errors.New("connection reset")
	db := &fakeBeginner{tx: &fakeTx{commitErr: commitErr}}

	err := WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		return nil
	})

	assert.ErrorIs(t, err, commitErr)
	assert.True(t, db.tx.rolledBack)
}

func TestWithTransaction_BeginFailure(t *testing.T) {
	beginErr := errors.New("pool closed")
	db := &fakeBeginner{beginErr: beginErr}
	called := false

	err := WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
	assert.False(t, called)
}
