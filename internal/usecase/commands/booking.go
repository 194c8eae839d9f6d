package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/domain/resource"
	"paintball-booking/internal/domain/slot"
	reqdto "paintball-booking/internal/handler/dto/request"
	"paintball-booking/internal/infra"
	"paintball-booking/internal/pkg/clock"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/usecase/queries"
	"paintball-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	createBookingEndpoint = "POST /api/bookings"
	idempotencyTTL        = 24 * time.Hour

	NotificationKindEmail     = "email"
	TopicBookingCreated       = "booking.created"
	TopicBookingStatusChanged = "booking.status_changed"
)

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	// Create books a slot. A zero idempotencyKey disables replay protection.
	Create(ctx context.Context, req reqdto.CreateBookingRequest, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, next booking.Status) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	quotes         queries.QuoteQueries
	settings       queries.SettingsProvider
	bookingQueries queries.BookingQueries
	factory        *booking.Factory
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	quotes queries.QuoteQueries,
	settings queries.SettingsProvider,
	bookingQueries queries.BookingQueries,
	factory *booking.Factory,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		quotes:         quotes,
		settings:       settings,
		bookingQueries: bookingQueries,
		factory:        factory,
		clock:          clock,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, idempotencyKey uuid.UUID) (*CreateBookingResult, error) {
	requestHash := calculateRequestHash(req)

	b, err := c.buildBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		bookingID  uuid.UUID
		isReplayed bool
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingID, isReplayed = b.ID(), false

		if idempotencyKey != uuid.Nil {
			replayID, err := c.claimIdempotencyKey(ctx, tx, idempotencyKey, requestHash)
			if err != nil {
				return err
			}
			if replayID != nil {
				bookingID, isReplayed = *replayID, true
				return nil
			}
		}

		if err := c.ensureNoConflict(ctx, tx, b.ResourceID(), b.Interval(), uuid.Nil); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := c.enqueueNotification(ctx, tx, TopicBookingCreated, b); err != nil {
			return err
		}

		if idempotencyKey != uuid.Nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, idempotencyKey, b.ID()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: Get the complete booking view from read store
	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, IsReplayed: isReplayed}, nil
}

// buildBooking prices the request and checks it against opening hours and lead time.
func (c *bookingCommandsImpl) buildBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*booking.Booking, error) {
	quoteReq, err := req.ToQuery()
	if err != nil {
		return nil, err
	}
	contact, note, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	venue, err := c.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	quote, err := c.quotes.QuoteWithSettings(ctx, quoteReq, venue)
	if err != nil {
		return nil, err
	}

	start := quote.SessionStart
	fits, err := slot.FitsWindow(venue.WindowOn(start), start, float64(quote.Package.DurationMin))
	if err != nil {
		return nil, err
	}
	if !fits {
		return nil, errs.ErrOutsideOpeningHours
	}

	res, err := c.loadResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}

	return c.factory.CreateBooking(booking.Spec{
		Resource:  res,
		PackageID: quote.Package.ID,
		GroupSize: req.GroupSize,
		Quote:     quote.Quote,
		Addons: lo.Map(quote.Addons, func(a queries.QuotedAddon, _ int) booking.AddonLine {
			return booking.AddonLine{AddonID: a.AddonID, PriceCents: a.PriceCents, Qty: a.Qty}
		}),
		Contact: contact,
		Note:    note,
	})
}

func (c *bookingCommandsImpl) loadResource(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	snap, err := c.uow.CommandReads().ResourceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snap.IsActive {
		return nil, errs.ErrResourceNotFound
	}
	return resource.NewResource(snap.ID, snap.Name, snap.LeadTimeMin, snap.IsActive)
}

// claimIdempotencyKey returns the booking to replay, or nil when this request owns the key.
func (c *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key uuid.UUID, requestHash string) (*uuid.UUID, error) {
	now := c.clock.Now()
	expiresAt := now.Add(idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, key, createBookingEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.ExpiresAt.Before(now) {
		claimed, err := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, key, requestHash, expiresAt)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if claimed == 1 {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking ID"), errs.ErrIdempotencyCheckFailed)
		}
		return existing.ResultBookingID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.New("invalid idempotency key status"), errs.ErrIdempotencyCheckFailed)
	}
}

// ensureNoConflict locks the resource row, then checks the blocking bookings
// around iv. Holding the lock until commit serialises bookings per resource.
func (c *bookingCommandsImpl) ensureNoConflict(ctx context.Context, tx shared.Tx, resourceID uuid.UUID, iv booking.Interval, excludeID uuid.UUID) error {
	if err := tx.Bookings().LockResource(ctx, resourceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrResourceNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	existing, err := tx.Bookings().FindBlockingOverlaps(ctx, resourceID, iv, excludeID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if booking.Conflicts(resourceID, iv, existing) {
		return errs.ErrBookingConflict
	}
	return nil
}

func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, next booking.Status) (*queries.BookingView, error) {
	if !next.IsValid() {
		return nil, errs.Validation("status", "unknown booking status")
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := b.ChangeStatus(next, c.clock.Now()); err != nil {
			if errors.Is(err, booking.ErrInvalidTransition) {
				return errs.ErrInvalidStatusTransition
			}
			return err
		}

		if next == booking.StatusConfirmed {
			if err := c.ensureNoConflict(ctx, tx, b.ResourceID(), b.Interval(), b.ID()); err != nil {
				return err
			}
		}

		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return c.enqueueNotification(ctx, tx, TopicBookingStatusChanged, b)
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByID(ctx, id)
}

type bookingNotification struct {
	BookingID   uuid.UUID `json:"booking_id"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	StartAt     time.Time `json:"start_at"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	TotalCents  int64     `json:"total_cents"`
}

func (c *bookingCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, b *booking.Booking) error {
	payload, err := json.Marshal(bookingNotification{
		BookingID:   b.ID(),
		Type:        topic,
		Status:      b.Status().String(),
		StartAt:     b.Interval().Start,
		ClientName:  b.Contact().Name(),
		ClientEmail: b.Contact().Email(),
		TotalCents:  b.TotalCents(),
	})
	if err != nil {
		return err
	}
	if err := tx.Notifications().CreateJob(ctx, NotificationKindEmail, topic, payload, c.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
