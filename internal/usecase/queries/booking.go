package queries

import (
	"context"
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/infra"
	"paintball-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingFilter struct {
	// From and To bound start_at as [From, To); zero means unbounded.
	From   time.Time
	To     time.Time
	Status *booking.Status
}

type BookingReadStore interface {
	BusyIntervalReader
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListFirstPage(ctx context.Context, filter BookingFilter, limit int32) ([]*BookingListItem, error)
	ListKeyset(ctx context.Context, filter BookingFilter, lastStartAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// List pages through bookings ordered by start time, then id.
func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, filter, int32(limit+1))
	} else {
		lastStartAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.ListKeyset(ctx, filter, lastStartAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
