//go:build unit || e2e

package builder

import (
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/domain/resource"
	reqdto "paintball-booking/internal/handler/dto/request"
	"paintball-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ResourceID   uuid.UUID
	ResourceName string
	LeadTimeMin  int
	PackageID    uuid.UUID
	AddonID      uuid.UUID
	GroupSize    int
	Start        time.Time
	DurationMin  int
	Name         string
	Email        string
	Phone        string
	Note         string
	Quote        pricing.Quote
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, time.June, 12, 14, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ResourceID:   uuid.New(),
		ResourceName: "Jungle Field",
		LeadTimeMin:  60,
		PackageID:    uuid.New(),
		AddonID:      uuid.New(),
		GroupSize:    10,
		Start:        start,
		DurationMin:  120,
		Name:         "Camille Martin",
		Email:        "camille@example.com",
		Phone:        "+33 6 12 34 56 78",
		Note:         "Birthday party",
		Quote: pricing.Quote{
			TotalCents:   22200,
			SessionStart: start,
			SessionEnd:   start.Add(120 * time.Minute),
			Breakdown:    pricing.Breakdown{Base: 20000, Addons: 2200},
		},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStart(start time.Time) *BookingBuilder {
	b.Start = start
	b.Quote.SessionStart = start
	b.Quote.SessionEnd = start.Add(time.Duration(b.DurationMin) * time.Minute)
	return b
}

func (b *BookingBuilder) BuildResource() (*resource.Resource, error) {
	return resource.NewResource(b.ResourceID, b.ResourceName, b.LeadTimeMin, true)
}

func (b *BookingBuilder) BuildSpec() (booking.Spec, error) {
	res, err := b.BuildResource()
	if err != nil {
		return booking.Spec{}, err
	}
	contact, err := booking.NewContact(b.Name, b.Email, b.Phone)
	if err != nil {
		return booking.Spec{}, err
	}
	note, err := booking.NewNote(b.Note)
	if err != nil {
		return booking.Spec{}, err
	}
	return booking.Spec{
		Resource:  res,
		PackageID: b.PackageID,
		GroupSize: b.GroupSize,
		Quote:     b.Quote,
		Addons:    []booking.AddonLine{{AddonID: b.AddonID, PriceCents: 500, Qty: 2}},
		Contact:   contact,
		Note:      note,
	}, nil
}

func (b *BookingBuilder) BuildDomain(factory *booking.Factory) (*booking.Booking, error) {
	spec, err := b.BuildSpec()
	if err != nil {
		return nil, err
	}
	return factory.CreateBooking(spec)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		QuoteRequest: reqdto.QuoteRequest{
			PackageID: b.PackageID,
			GroupSize: b.GroupSize,
			StartISO:  b.Start.Format(time.RFC3339),
			Addons:    []reqdto.AddonSelection{{AddonID: b.AddonID, Qty: 2}},
		},
		ResourceID: b.ResourceID,
		Contact: reqdto.Contact{
			Name:  b.Name,
			Email: b.Email,
			Phone: b.Phone,
		},
		Note: b.Note,
	}
}

func (b *BookingBuilder) BuildView(status booking.Status) *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		PackageID:    b.PackageID,
		PackageName:  "Classic 2h",
		Status:       status.String(),
		StartAt:      b.Quote.SessionStart,
		EndAt:        b.Quote.SessionEnd,
		GroupSize:    b.GroupSize,
		ClientName:   b.Name,
		ClientEmail:  b.Email,
		ClientPhone:  b.Phone,
		Note:         b.Note,
		Addons:       []queries.BookingAddonView{{AddonID: b.AddonID, Name: "Smoke grenade", PriceCents: 500, Qty: 2}},
		Breakdown:    b.Quote.Breakdown,
		TotalCents:   b.Quote.TotalCents,
		DepositCents: b.Quote.DepositCents,
		Nocturne:     b.Quote.Nocturne,
	}
}
