package booking

import (
	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/domain/resource"
	"paintball-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

type Spec struct {
	Resource  *resource.Resource
	PackageID uuid.UUID
	GroupSize int
	Quote     pricing.Quote
	Addons    []AddonLine
	Contact   Contact
	Note      Note
}

// CreateBooking turns a priced request into a PENDING booking.
func (f *Factory) CreateBooking(spec Spec) (*Booking, error) {
	if spec.GroupSize < 1 {
		return nil, ErrInvalidGroupSize
	}
	if !spec.Resource.IsActive() {
		return nil, ErrResourceNotBookable
	}
	now := f.Clock.Now()
	if !spec.Resource.IsBookableAt(now, spec.Quote.SessionStart) {
		return nil, ErrLeadTimeNotMet
	}
	if spec.Quote.Breakdown.Sum() != spec.Quote.TotalCents {
		return nil, ErrBreakdownMismatch
	}

	interval, err := NewInterval(spec.Quote.SessionStart, spec.Quote.SessionEnd.Sub(spec.Quote.SessionStart))
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:           uuid.New(),
		resourceID:   spec.Resource.ID(),
		packageID:    spec.PackageID,
		status:       StatusPending,
		interval:     interval,
		groupSize:    spec.GroupSize,
		contact:      spec.Contact,
		note:         spec.Note,
		addons:       spec.Addons,
		breakdown:    spec.Quote.Breakdown,
		totalCents:   spec.Quote.TotalCents,
		depositCents: spec.Quote.DepositCents,
		nocturne:     spec.Quote.Nocturne,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}
