package postgres

import (
	"context"
	"fmt"
	"realtors/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// UpsertUser mirrors an identity, refreshing name and email on conflict.
func (p *PgSQL) UpsertUser(ctx context.Context, identity domain.Identity) error {
	_, err := p.Builder.Insert(usersTable).
		Rows(PgUser{
			ID:    uuid.UUID(identity.ID),
			Name:  identity.Name,
			Email: identity.Email,
		}).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"name":       goqu.I("excluded.name"),
			"email":      goqu.I("excluded.email"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert user in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
