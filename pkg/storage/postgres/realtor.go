package postgres

import (
	"context"
	"fmt"
	"realtors/pkg/domain"
	"realtors/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	realtorsTable = "realtors"
	usersTable    = "users"
)

// sortExpression maps a whitelisted sort field onto a column of the joined
// view. Text columns use the "C" collation so ordering is plain byte order,
// independent of the database locale.
func sortExpression(field storage.RealtorSortField) exp.Orderable {
	switch field {
	case storage.SortEmail:
		return goqu.L(`? COLLATE "C"`, goqu.I("u.email"))
	case storage.SortPhone:
		return goqu.L(`? COLLATE "C"`, goqu.I("r.phone"))
	case storage.SortID:
		return goqu.I("r.id")
	case storage.SortCreatedAt:
		return goqu.I("r.created_at")
	case storage.SortName:
		fallthrough
	default:
		return goqu.L(`? COLLATE "C"`, goqu.I("u.name"))
	}
}

// viewDataset selects the realtors ⨝ users projection.
func (p *PgSQL) viewDataset() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(realtorsTable).As("r")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id")))).
		Select(
			goqu.I("r.id"),
			goqu.I("r.phone"),
			goqu.I("r.user_id"),
			goqu.I("u.name").As("user_name"),
			goqu.I("u.email").As("user_email"),
		)
}

func (p *PgSQL) StoreRealtor(ctx context.Context, realtor domain.Realtor) (*domain.Realtor, error) {
	var row PgRealtor
	row.FromDomain(realtor)

	var stored PgRealtor
	if _, err := p.Builder.Insert(realtorsTable).
		Rows(row).
		Returning(&PgRealtor{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, translateError(err, "could not store realtor into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) realtorBy(ctx context.Context, lock bool, where ...exp.Expression) (*domain.Realtor, error) {
	ds := p.Builder.From(realtorsTable).Where(where...)
	if lock {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgRealtor
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch realtor from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RealtorByID returns a realtor by its ID, or nil when it does not exist.
func (p *PgSQL) RealtorByID(ctx context.Context, id domain.RealtorID) (*domain.Realtor, error) {
	return p.realtorBy(ctx, false, goqu.I("id").Eq(int64(id)))
}

// LockRealtorByID is RealtorByID with SELECT ... FOR UPDATE. Outside a
// transaction the lock is released as soon as the statement finishes.
func (p *PgSQL) LockRealtorByID(ctx context.Context, id domain.RealtorID) (*domain.Realtor, error) {
	return p.realtorBy(ctx, true, goqu.I("id").Eq(int64(id)))
}

// RealtorByUserID is a point lookup on the unique user_id index.
func (p *PgSQL) RealtorByUserID(ctx context.Context, userID domain.UserID) (*domain.Realtor, error) {
	return p.realtorBy(ctx, false, goqu.I("user_id").Eq(uuid.UUID(userID)))
}

// UpdateRealtor sets the provided fields and updated_at, returning the new row
// or nil when the realtor does not exist.
func (p *PgSQL) UpdateRealtor(ctx context.Context,
	id domain.RealtorID,
	updates storage.RealtorUpdates) (*domain.Realtor, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Phone != nil {
		rec["phone"] = *updates.Phone
	}

	var row PgRealtor
	found, err := p.Builder.Update(realtorsTable).
		Set(rec).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgRealtor{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(err, "could not update realtor in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteRealtor removes the row and returns it, or nil when nothing was deleted.
// Images and thumbnails are unrelated to realtor rows and are left untouched.
func (p *PgSQL) DeleteRealtor(ctx context.Context, id domain.RealtorID) (*domain.Realtor, error) {
	var row PgRealtor
	found, err := p.Builder.Delete(realtorsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgRealtor{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete realtor in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RealtorViewByID(ctx context.Context, id domain.RealtorID) (*domain.RealtorView, error) {
	var row PgRealtorView
	found, err := p.viewDataset().
		Where(goqu.I("r.id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch realtor view from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	view := row.ToDomain()

	return &view, nil
}

// ListRealtors returns a window of the joined view ordered by the requested
// field, with r.id ASC as the final tie-breaker regardless of direction.
func (p *PgSQL) ListRealtors(ctx context.Context, query storage.RealtorQuery) ([]domain.RealtorView, error) {
	order := sortExpression(query.SortBy).Asc()
	if query.Desc {
		order = sortExpression(query.SortBy).Desc()
	}

	ds := p.viewDataset().
		Order(order, goqu.I("r.id").Asc()).
		Offset(query.Offset)
	if query.Limit > 0 {
		ds = ds.Limit(query.Limit)
	}

	var rows []PgRealtorView
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list realtors from pg: %w", err)
	}

	return pgRealtorViewsToDomain(rows), nil
}

// CountRealtors counts joined rows so the total always agrees with ListRealtors.
func (p *PgSQL) CountRealtors(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(goqu.T(realtorsTable).As("r")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id")))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count realtors in pg: %w", err)
	}

	return count, nil
}
