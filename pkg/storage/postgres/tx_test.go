package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"realtors/pkg/domain"
	"realtors/pkg/storage"
	"realtors/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func countRealtorsFor(t *testing.T, pg *postgres.PgSQL, userID domain.UserID) int {
	t.Helper()
	row := pg.DB.(*sql.DB).QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM realtors WHERE user_id = $1`, uuid.UUID(userID))
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func newIdentity(name string) domain.Identity {
	return domain.Identity{ID: domain.UserID(uuid.New()), Name: name, Email: name + "@example.com"}
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

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

	identity := newIdentity("commit")
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpsertUser(ctx, identity))
	_, err = tx.StoreRealtor(ctx, domain.Realtor{UserID: identity.ID, Phone: "555-123-4567"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.Equal(t, 1, countRealtorsFor(t, pg, identity.ID))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	identity := newIdentity("rollback")
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpsertUser(ctx, identity))
	_, err = tx.StoreRealtor(ctx, domain.Realtor{UserID: identity.ID, Phone: "555-123-4567"})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.Equal(t, 0, countRealtorsFor(t, pg, identity.ID))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	committed := newIdentity("committed")
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if err := s.UpsertUser(ctx, committed); err != nil {
			return err //nolint: wrapcheck
		}
		_, err := s.StoreRealtor(ctx, domain.Realtor{UserID: committed.ID, Phone: "555-123-4567"})

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countRealtorsFor(t, pg, committed.ID))

	rolledBack := newIdentity("rolledback")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_ = s.UpsertUser(ctx, rolledBack)
		_, _ = s.StoreRealtor(ctx, domain.Realtor{UserID: rolledBack.ID, Phone: "555-123-4567"})

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countRealtorsFor(t, pg, rolledBack.ID))

	user, err := pg.UserByID(ctx, rolledBack.ID)
	require.NoError(t, err)
	require.Nil(t, user, "identity mirror must roll back with the profile")
}

func TestPgSQL_LockRealtorByID_InTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	r := seedRealtor(t, pg, "Lock", "lock@example.com", "555-123-4567")

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		locked, err := s.LockRealtorByID(ctx, r.ID)
		require.NoError(t, err)
		require.Equal(t, r.ID, locked.ID)

		missing, err := s.LockRealtorByID(ctx, r.ID+1000)
		require.NoError(t, err)
		require.Nil(t, missing)

		return nil
	})
	require.NoError(t, err)
}
