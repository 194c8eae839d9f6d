package booking

import (
	"errors"
	"time"

	"paintball-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrLeadTimeNotMet      = errors.New("lead time requirement not met")
	ErrInvalidGroupSize    = errors.New("group size must be positive")
	ErrBreakdownMismatch   = errors.New("quote breakdown does not add up to its total")
	ErrResourceNotBookable = errors.New("resource is not bookable")
)

// AddonLine is an add-on as priced at booking time.
type AddonLine struct {
	AddonID    uuid.UUID
	PriceCents int64
	Qty        int
}

type Booking struct {
	id           uuid.UUID
	resourceID   uuid.UUID
	packageID    uuid.UUID
	status       Status
	interval     Interval
	groupSize    int
	contact      Contact
	note         Note
	addons       []AddonLine
	breakdown    pricing.Breakdown
	totalCents   int64
	depositCents int64
	nocturne     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func ReconstructBooking(
	id, resourceID, packageID uuid.UUID,
	status Status,
	interval Interval,
	groupSize int,
	contact Contact,
	note Note,
	addons []AddonLine,
	breakdown pricing.Breakdown,
	totalCents, depositCents int64,
	nocturne bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		resourceID:   resourceID,
		packageID:    packageID,
		status:       status,
		interval:     interval,
		groupSize:    groupSize,
		contact:      contact,
		note:         note,
		addons:       addons,
		breakdown:    breakdown,
		totalCents:   totalCents,
		depositCents: depositCents,
		nocturne:     nocturne,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ChangeStatus moves the booking along PENDING -> CONFIRMED -> CANCELLED.
func (b *Booking) ChangeStatus(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) Occupancy() Occupancy {
	return Occupancy{ResourceID: b.resourceID, Status: b.status, Interval: b.interval}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ResourceID() uuid.UUID        { return b.resourceID }
func (b *Booking) PackageID() uuid.UUID         { return b.packageID }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Interval() Interval           { return b.interval }
func (b *Booking) GroupSize() int               { return b.groupSize }
func (b *Booking) Contact() Contact             { return b.contact }
func (b *Booking) Note() Note                   { return b.note }
func (b *Booking) Addons() []AddonLine          { return b.addons }
func (b *Booking) Breakdown() pricing.Breakdown { return b.breakdown }
func (b *Booking) TotalCents() int64            { return b.totalCents }
func (b *Booking) DepositCents() int64          { return b.depositCents }
func (b *Booking) Nocturne() bool               { return b.nocturne }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
