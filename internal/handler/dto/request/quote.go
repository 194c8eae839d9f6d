package request

import (
	"time"

	"paintball-booking/internal/domain/catalog"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type AddonSelection struct {
	AddonID uuid.UUID `json:"addonId" binding:"required"`
	Qty     int       `json:"qty" binding:"required,min=1,max=100"`
}

type QuoteRequest struct {
	PackageID uuid.UUID        `json:"packageId" binding:"required"`
	GroupSize int              `json:"groupSize" binding:"required,min=1,max=500"`
	StartISO  string           `json:"startISO" binding:"required,isodatetime"`
	Addons    []AddonSelection `json:"addons" binding:"omitempty,max=50,dive"`
}

func (r QuoteRequest) ToQuery() (queries.QuoteRequest, error) {
	start, err := time.Parse(time.RFC3339, r.StartISO)
	if err != nil {
		return queries.QuoteRequest{}, errs.Validation("startISO", "must be an ISO-8601 date-time with offset")
	}
	return queries.QuoteRequest{
		PackageID: r.PackageID,
		GroupSize: r.GroupSize,
		Start:     start,
		Addons: lo.Map(r.Addons, func(a AddonSelection, _ int) catalog.AddonSelection {
			return catalog.AddonSelection{AddonID: a.AddonID, Qty: a.Qty}
		}),
	}, nil
}

type SlotQuery struct {
	Date       string    `form:"date" binding:"required,isodate"`
	PackageID  uuid.UUID `form:"packageId" binding:"required"`
	ResourceID uuid.UUID `form:"resourceId" binding:"required"`
}

func (q SlotQuery) ToQuery() queries.SlotRequest {
	return queries.SlotRequest{
		Date:       q.Date,
		PackageID:  q.PackageID,
		ResourceID: q.ResourceID,
	}
}
