package converter

import (
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRow mirrors the bookings table.
type BookingRow struct {
	ID                   uuid.UUID
	ResourceID           uuid.UUID
	PackageID            uuid.UUID
	Status               string
	StartAt              time.Time
	EndAt                time.Time
	GroupSize            int
	ClientName           string
	ClientEmail          string
	ClientPhone          pgtype.Text
	Note                 pgtype.Text
	BaseCents            int64
	AddonsCents          int64
	NocturneExtraCents   int64
	UnderMinPenaltyCents int64
	TotalCents           int64
	DepositCents         int64
	Nocturne             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type BookingAddonRow struct {
	AddonID    uuid.UUID
	PriceCents int64
	Qty        int
}

func BookingToInfra(b *booking.Booking) BookingRow {
	iv := b.Interval()
	bd := b.Breakdown()
	return BookingRow{
		ID:                   b.ID(),
		ResourceID:           b.ResourceID(),
		PackageID:            b.PackageID(),
		Status:               b.Status().String(),
		StartAt:              iv.Start,
		EndAt:                iv.End,
		GroupSize:            b.GroupSize(),
		ClientName:           b.Contact().Name(),
		ClientEmail:          b.Contact().Email(),
		ClientPhone:          pgconv.TextOrNull(b.Contact().Phone()),
		Note:                 pgconv.TextOrNull(b.Note().String()),
		BaseCents:            bd.Base,
		AddonsCents:          bd.Addons,
		NocturneExtraCents:   bd.NocturneExtra,
		UnderMinPenaltyCents: bd.UnderMinPenalty,
		TotalCents:           b.TotalCents(),
		DepositCents:         b.DepositCents(),
		Nocturne:             b.Nocturne(),
		CreatedAt:            b.CreatedAt(),
		UpdatedAt:            b.UpdatedAt(),
	}
}

func BookingAddonsToInfra(b *booking.Booking) []BookingAddonRow {
	rows := make([]BookingAddonRow, len(b.Addons()))
	for i, a := range b.Addons() {
		rows[i] = BookingAddonRow{AddonID: a.AddonID, PriceCents: a.PriceCents, Qty: a.Qty}
	}
	return rows
}

// BookingToDomain rebuilds the aggregate. Contact fields are trusted as stored.
func BookingToDomain(row BookingRow, addons []BookingAddonRow) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewContact(row.ClientName, row.ClientEmail, pgconv.StringFromPgtype(row.ClientPhone))
	if err != nil {
		return nil, err
	}
	note, err := booking.NewNote(pgconv.StringFromPgtype(row.Note))
	if err != nil {
		return nil, err
	}

	lines := make([]booking.AddonLine, len(addons))
	for i, a := range addons {
		lines[i] = booking.AddonLine{AddonID: a.AddonID, PriceCents: a.PriceCents, Qty: a.Qty}
	}

	return booking.ReconstructBooking(
		row.ID, row.ResourceID, row.PackageID,
		status,
		booking.Interval{Start: row.StartAt, End: row.EndAt},
		row.GroupSize,
		contact,
		note,
		lines,
		pricing.Breakdown{
			Base:            row.BaseCents,
			Addons:          row.AddonsCents,
			NocturneExtra:   row.NocturneExtraCents,
			UnderMinPenalty: row.UnderMinPenaltyCents,
		},
		row.TotalCents, row.DepositCents,
		row.Nocturne,
		row.CreatedAt, row.UpdatedAt,
	), nil
}
