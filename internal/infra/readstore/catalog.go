package readstore

import (
	"context"

	"paintball-booking/internal/infra"
	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/pkg/pgconv"
	"paintball-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

var (
	packageColumns  = []string{"id", "name", "price_cents", "duration_min", "is_active"}
	addonColumns    = []string{"id", "name", "price_cents", "is_active"}
	resourceColumns = []string{"id", "name", "lead_time_min", "is_active"}
)

func (r *CatalogReadStore) ListActivePackages(ctx context.Context) ([]*queries.PackageView, error) {
	query := db.Psql.Select(packageColumns...).From("packages").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name", "id")
	return collect(ctx, r.db, query, "failed to list packages", scanPackage)
}

func (r *CatalogReadStore) ListActiveAddons(ctx context.Context) ([]*queries.AddonView, error) {
	query := db.Psql.Select(addonColumns...).From("addons").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name", "id")
	return collect(ctx, r.db, query, "failed to list addons", scanAddon)
}

func (r *CatalogReadStore) ListActiveResources(ctx context.Context) ([]*queries.ResourceView, error) {
	query := db.Psql.Select(resourceColumns...).From("resources").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name", "id")
	return collect(ctx, r.db, query, "failed to list resources", scanResource)
}

func (r *CatalogReadStore) FindPackageByID(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	query := db.Psql.Select(packageColumns...).From("packages").Where(sq.Eq{"id": id})
	return one(ctx, r.db, query, "package not found", "failed to find package by ID", scanPackage)
}

func (r *CatalogReadStore) FindResourceByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	query := db.Psql.Select(resourceColumns...).From("resources").Where(sq.Eq{"id": id})
	return one(ctx, r.db, query, "resource not found", "failed to find resource by ID", scanResource)
}

// FindAddonsByIDs returns the add-ons that exist, in no particular order.
func (r *CatalogReadStore) FindAddonsByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.AddonView, error) {
	if len(ids) == 0 {
		return []*queries.AddonView{}, nil
	}
	query := db.Psql.Select(addonColumns...).From("addons").Where(sq.Eq{"id": ids})
	return collect(ctx, r.db, query, "failed to find addons", scanAddon)
}

func scanPackage(row pgx.Row) (*queries.PackageView, error) {
	var v queries.PackageView
	err := row.Scan(&v.ID, &v.Name, &v.PriceCents, &v.DurationMin, &v.IsActive)
	return &v, err
}

func scanAddon(row pgx.Row) (*queries.AddonView, error) {
	var v queries.AddonView
	err := row.Scan(&v.ID, &v.Name, &v.PriceCents, &v.IsActive)
	return &v, err
}

func scanResource(row pgx.Row) (*queries.ResourceView, error) {
	var v queries.ResourceView
	err := row.Scan(&v.ID, &v.Name, &v.LeadTimeMin, &v.IsActive)
	return &v, err
}

// one runs a single-row query; pgx.ErrNoRows becomes KindNotFound.
func one[T any](ctx context.Context, dbtx db.DBTX, query sq.Sqlizer, notFoundMsg, failMsg string, scan func(pgx.Row) (T, error)) (T, error) {
	var zero T
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return zero, infra.WrapRepoErr("failed to build query", err, infra.KindDBFailure)
	}
	v, err := scan(dbtx.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return zero, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return zero, infra.WrapRepoErr(failMsg, err)
	}
	return v, nil
}

func collect[T any](ctx context.Context, dbtx db.DBTX, query sq.Sqlizer, failMsg string, scan func(pgx.Row) (T, error)) ([]T, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build query", err, infra.KindDBFailure)
	}
	rows, err := dbtx.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(failMsg, err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	return result, nil
}
