package response

import (
	"paintball-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type PackageResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"priceCents"`
	DurationMin int       `json:"durationMin"`
}

type AddonResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
}

type ResourceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LeadTimeMin int       `json:"leadTimeMin"`
}

func FromPackageViews(views []*queries.PackageView) []PackageResponse {
	return lo.Map(views, func(v *queries.PackageView, _ int) PackageResponse {
		return PackageResponse{ID: v.ID, Name: v.Name, PriceCents: v.PriceCents, DurationMin: v.DurationMin}
	})
}

func FromAddonViews(views []*queries.AddonView) []AddonResponse {
	return lo.Map(views, func(v *queries.AddonView, _ int) AddonResponse {
		return AddonResponse{ID: v.ID, Name: v.Name, PriceCents: v.PriceCents}
	})
}

func FromResourceViews(views []*queries.ResourceView) []ResourceResponse {
	return lo.Map(views, func(v *queries.ResourceView, _ int) ResourceResponse {
		return ResourceResponse{ID: v.ID, Name: v.Name, LeadTimeMin: v.LeadTimeMin}
	})
}
