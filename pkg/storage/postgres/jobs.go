package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job through the current database handle.
//
// Inside a transaction (DB is a *sql.Tx) the job is inserted with InsertTx, so
// a job scheduled by a profile write becomes visible only if that write
// commits. Outside a transaction the insert is immediately visible.
//
// The returned bool is false when River skipped the insert because a unique
// job with the same arguments is already pending.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		// an insert-only client does not need a pool; the tx carries the connection
		client, cErr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cErr := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported executor %T for job insert", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job %q: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
