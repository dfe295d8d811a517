package postgres_test

import (
	"commandhotline/pkg/storage"
	"commandhotline/pkg/storage/postgres"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// underlying executor must be a *sql.Tx now
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.UpsertBirthday(ctx, testBirthday(1, 2))
	require.NoError(t, err)

	require.NoError(t, txStorage.Commit())

	// visible outside the transaction
	fetched, err := pg.Birthday(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, fetched)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.UpsertBirthday(ctx, testBirthday(1, 2))
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	// discarded
	fetched, err := pg.Birthday(ctx, 1, 2)
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// success callback commits
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.UpsertBirthday(ctx, testBirthday(1, 2))

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)

	fetched, err := pg.Birthday(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	// failing callback rolls back
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.UpsertBirthday(ctx, testBirthday(9, 9))
		require.NoError(t, e)

		return errors.New("boom")
	})
	require.Error(t, err)

	fetched, err = pg.Birthday(ctx, 9, 9)
	require.NoError(t, err)
	require.Nil(t, fetched)
}
