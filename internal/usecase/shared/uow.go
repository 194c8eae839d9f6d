package shared

import (
	"context"
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/domain/settings"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Settings() SettingsRepository
	Reads() CommandReads
}

type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	// LockResource serialises bookings on one resource until the transaction ends.
	LockResource(ctx context.Context, resourceID uuid.UUID) error
	// FindBlockingOverlaps returns PENDING/CONFIRMED bookings on resourceID
	// intersecting iv, except excludeID.
	FindBlockingOverlaps(ctx context.Context, resourceID uuid.UUID, iv booking.Interval, excludeID uuid.UUID) ([]booking.Occupancy, error)
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether the key was new.
	TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, key, bookingID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type SettingsRepository interface {
	Save(ctx context.Context, p settings.Params) error
}
