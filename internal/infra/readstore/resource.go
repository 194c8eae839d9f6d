package readstore

import (
	"context"

	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(db db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: db}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	query := db.Psql.Select(resourceColumns...).From("resources").Where(sq.Eq{"id": id})
	return one(ctx, r.db, query, "resource not found", "failed to find resource by ID", func(row pgx.Row) (*shared.ResourceSnapshot, error) {
		var s shared.ResourceSnapshot
		err := row.Scan(&s.ID, &s.Name, &s.LeadTimeMin, &s.IsActive)
		return &s, err
	})
}
