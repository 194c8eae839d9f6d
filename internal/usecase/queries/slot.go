package queries

import (
	"context"
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/domain/resource"
	"paintball-booking/internal/domain/slot"
	"paintball-booking/internal/infra"
	"paintball-booking/internal/pkg/clock"
	"paintball-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type SlotRequest struct {
	// Date is a YYYY-MM-DD calendar day in the venue timezone.
	Date       string
	PackageID  uuid.UUID
	ResourceID uuid.UUID
}

type SlotView struct {
	Start    time.Time
	End      time.Time
	Nocturne bool
}

type SlotQueries interface {
	Available(ctx context.Context, req SlotRequest) ([]SlotView, error)
}

// BusyIntervalReader lists blocking bookings of a resource within [from, to).
type BusyIntervalReader interface {
	BusyIntervals(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]booking.Interval, error)
}

type slotQueriesImpl struct {
	catalog  CatalogReadStore
	bookings BusyIntervalReader
	settings SettingsProvider
	clock    clock.Clock
}

func NewSlotQueries(catalog CatalogReadStore, bookings BusyIntervalReader, settings SettingsProvider, clock clock.Clock) SlotQueries {
	return &slotQueriesImpl{
		catalog:  catalog,
		bookings: bookings,
		settings: settings,
		clock:    clock,
	}
}

func (q *slotQueriesImpl) Available(ctx context.Context, req SlotRequest) ([]SlotView, error) {
	venue, err := q.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	day, err := slot.ParseDay("date", req.Date, venue.Location())
	if err != nil {
		return nil, err
	}

	pkg, err := activePackage(ctx, q.catalog, req.PackageID)
	if err != nil {
		return nil, err
	}
	res, err := q.activeResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}

	starts, err := slot.GenerateForWindow(day, venue.Window(day.Weekday()), float64(venue.SlotStepMin()), float64(pkg.DurationMin))
	if err != nil {
		return nil, err
	}
	if len(starts) == 0 {
		return []SlotView{}, nil
	}

	y, m, d := day.Date()
	nextDay := time.Date(y, m, d+1, 0, 0, 0, 0, day.Location())
	busy, err := q.bookings.BusyIntervals(ctx, res.ID(), day, nextDay)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(pkg.DurationMin) * time.Minute
	earliest := res.EarliestStart(q.clock.Now())
	free := lo.Filter(slot.FilterAvailable(starts, duration, busy), func(start time.Time, _ int) bool {
		return !start.Before(earliest)
	})

	threshold := venue.NocturneThreshold()
	views := make([]SlotView, 0, len(free))
	for _, start := range free {
		nocturne, err := slot.IsNocturne(start, threshold)
		if err != nil {
			return nil, err
		}
		views = append(views, SlotView{Start: start, End: start.Add(duration), Nocturne: nocturne})
	}
	return views, nil
}

func (q *slotQueriesImpl) activeResource(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	view, err := q.catalog.FindResourceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, errs.ErrResourceNotFound
	}
	return resource.NewResource(view.ID, view.Name, view.LeadTimeMin, view.IsActive)
}
