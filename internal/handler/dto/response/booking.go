package response

import (
	"time"

	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type BookingAddonResponse struct {
	AddonID    uuid.UUID `json:"addonId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	Qty        int       `json:"qty"`
}

type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type BookingResponse struct {
	ID           uuid.UUID              `json:"id"`
	ResourceID   uuid.UUID              `json:"resourceId"`
	ResourceName string                 `json:"resourceName"`
	PackageID    uuid.UUID              `json:"packageId"`
	PackageName  string                 `json:"packageName"`
	Status       string                 `json:"status"`
	StartAt      time.Time              `json:"startAt"`
	EndAt        time.Time              `json:"endAt"`
	GroupSize    int                    `json:"groupSize"`
	Contact      ContactResponse        `json:"contact"`
	Note         string                 `json:"note,omitempty"`
	Addons       []BookingAddonResponse `json:"addons"`
	Breakdown    pricing.Breakdown      `json:"breakdown"`
	TotalCents   int64                  `json:"totalCents"`
	DepositCents int64                  `json:"depositCents"`
	Nocturne     bool                   `json:"nocturne"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceName string    `json:"resourceName"`
	PackageName  string    `json:"packageName"`
	Status       string    `json:"status"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	GroupSize    int       `json:"groupSize"`
	ClientName   string    `json:"clientName"`
	TotalCents   int64     `json:"totalCents"`
}

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	NextCursor string                    `json:"nextCursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		ResourceID:   v.ResourceID,
		ResourceName: v.ResourceName,
		PackageID:    v.PackageID,
		PackageName:  v.PackageName,
		Status:       v.Status,
		StartAt:      v.StartAt,
		EndAt:        v.EndAt,
		GroupSize:    v.GroupSize,
		Contact:      ContactResponse{Name: v.ClientName, Email: v.ClientEmail, Phone: v.ClientPhone},
		Note:         v.Note,
		Addons: lo.Map(v.Addons, func(a queries.BookingAddonView, _ int) BookingAddonResponse {
			return BookingAddonResponse{AddonID: a.AddonID, Name: a.Name, PriceCents: a.PriceCents, Qty: a.Qty}
		}),
		Breakdown:    v.Breakdown,
		TotalCents:   v.TotalCents,
		DepositCents: v.DepositCents,
		Nocturne:     v.Nocturne,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) BookingListResponse {
	resp := BookingListResponse{
		Items: lo.Map(items, func(it *queries.BookingListItem, _ int) BookingListItemResponse {
			return BookingListItemResponse{
				ID:           it.ID,
				ResourceName: it.ResourceName,
				PackageName:  it.PackageName,
				Status:       it.Status,
				StartAt:      it.StartAt,
				EndAt:        it.EndAt,
				GroupSize:    it.GroupSize,
				ClientName:   it.ClientName,
				TotalCents:   it.TotalCents,
			}
		}),
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
