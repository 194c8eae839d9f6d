package queries

import (
	"context"

	"paintball-booking/internal/infra"
	"paintball-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	ListActivePackages(ctx context.Context) ([]*PackageView, error)
	ListActiveAddons(ctx context.Context) ([]*AddonView, error)
	ListActiveResources(ctx context.Context) ([]*ResourceView, error)
	FindPackageByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
	FindAddonsByIDs(ctx context.Context, ids []uuid.UUID) ([]*AddonView, error)
	FindResourceByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
}

type CatalogQueries interface {
	ListPackages(ctx context.Context) ([]*PackageView, error)
	ListAddons(ctx context.Context) ([]*AddonView, error)
	ListResources(ctx context.Context) ([]*ResourceView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListPackages(ctx context.Context) ([]*PackageView, error) {
	return q.store.ListActivePackages(ctx)
}

func (q *catalogQueriesImpl) ListAddons(ctx context.Context) ([]*AddonView, error) {
	return q.store.ListActiveAddons(ctx)
}

func (q *catalogQueriesImpl) ListResources(ctx context.Context) ([]*ResourceView, error) {
	return q.store.ListActiveResources(ctx)
}

// activePackage treats inactive packages as unknown.
func activePackage(ctx context.Context, store CatalogReadStore, id uuid.UUID) (*PackageView, error) {
	pkg, err := store.FindPackageByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPackageNotFound
		}
		return nil, err
	}
	if !pkg.IsActive {
		return nil, errs.ErrPackageNotFound
	}
	return pkg, nil
}
