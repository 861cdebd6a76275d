package postgres_test

import (
	"context"
	"database/sql"
	"realtors/internal/highlights"
	"realtors/pkg/domain"
	"realtors/pkg/storage"
	"realtors/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

var refreshOptions = highlights.Options{MaxAttempts: 3, RefreshCoalescePeriod: time.Minute}

type uniqueJobArgs struct {
	Slot string `json:"slot" river:"unique"`
}

func (uniqueJobArgs) Kind() string { return "unique_probe" }

func (uniqueJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}
}

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(storage.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	require.NoError(t, err)
}

func TestPgSQL_AddJob_WithinTransaction_UsesTxPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	// Start a transaction to force the *sql.Tx code path in AddJob.
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	_, err = txStorage.AddJob(ctx, highlights.NewRefreshJob(refreshOptions), nil)
	require.NoError(t, err)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&highlights.RefreshJobArgs{},
		&rivertest.RequireInsertedOpts{MaxAttempts: 3},
	)
}

func TestPgSQL_AddJob_RolledBackWithProfile(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	identity := newIdentity("rollback-job")

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		require.NoError(t, s.UpsertUser(ctx, identity))
		_, err := s.StoreRealtor(ctx, domain.Realtor{UserID: identity.ID, Phone: "555-123-4567"})
		require.NoError(t, err)
		_, err = s.AddJob(ctx, highlights.NewRefreshJob(refreshOptions), nil)
		require.NoError(t, err)

		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	rivertest.RequireNotInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&highlights.RefreshJobArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_RefreshJobsCoalesce(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	now := time.Now()
	added, err := pg.AddJob(ctx, highlights.NewRefreshJobAt(refreshOptions, now), nil)
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddJob(ctx, highlights.NewRefreshJobAt(refreshOptions, now), nil)
	require.NoError(t, err)
	require.False(t, added, "a refresh within the coalescing period is a duplicate")
}

func TestPgSQL_AddJob_RefreshNotCoalescedIntoRunningJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	now := time.Now()

	// a refresh from the previous window that a worker has already picked up
	added, err := pg.AddJob(ctx, highlights.NewRefreshJobAt(refreshOptions, now.Add(-refreshOptions.RefreshCoalescePeriod)), nil)
	require.NoError(t, err)
	require.True(t, added)
	_, err = pg.DB.ExecContext(ctx,
		`UPDATE river_job SET state = 'running', attempt = 1, attempted_at = now(), scheduled_at = now() WHERE kind = $1`,
		highlights.RefreshJobArgs{}.Kind())
	require.NoError(t, err)

	added, err = pg.AddJob(ctx, highlights.NewRefreshJobAt(refreshOptions, now), nil)
	require.NoError(t, err)
	require.True(t, added, "a write after a refresh started must schedule a new refresh")

	var scheduled int
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM river_job WHERE kind = $1 AND state = 'scheduled' AND scheduled_at > now()`,
		highlights.RefreshJobArgs{}.Kind()).Scan(&scheduled))
	require.Equal(t, 1, scheduled)
}

func TestPgSQL_AddJob_OutsideTransaction_UsesDBPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	_, err := pg.AddJob(ctx, highlights.NewRefreshJob(refreshOptions), &river.InsertOpts{Queue: river.QueueDefault})
	require.NoError(t, err)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&highlights.RefreshJobArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_UniqueSkipsDuplicate(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	added, err := pg.AddJob(ctx, uniqueJobArgs{Slot: "home_page_highlights"}, nil)
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddJob(ctx, uniqueJobArgs{Slot: "home_page_highlights"}, nil)
	require.NoError(t, err)
	require.False(t, added, "second insert with identical args should be skipped")

	added, err = pg.AddJob(ctx, uniqueJobArgs{Slot: "other"}, nil)
	require.NoError(t, err)
	require.True(t, added)
}
