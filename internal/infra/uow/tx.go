package uow

import (
	"context"

	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/infra/readstore"
	"paintball-booking/internal/infra/repository"
	"paintball-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// pgTx binds every repository to the same pgx transaction, building each on first use.
type pgTx struct {
	dbtx db.DBTX

	bookings      shared.BookingRepository
	idempotency   shared.IdempotencyRepository
	notifications shared.NotificationRepository
	users         shared.UserRepository
	settings      shared.SettingsRepository
	reads         shared.CommandReads
}

func newTx(dbtx db.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookings
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotency == nil {
		t.idempotency = repository.NewIdempotencyRepository(t.dbtx)
	}
	return t.idempotency
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notifications
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository(t.dbtx)
	}
	return t.users
}

func (t *pgTx) Settings() shared.SettingsRepository {
	if t.settings == nil {
		t.settings = repository.NewSettingsRepository(t.dbtx)
	}
	return t.settings
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &commandReads{dbtx: t.dbtx}
	}
	return t.reads
}

// commandReads serves the lookups a command needs before or inside its transaction.
type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) ResourceByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	return readstore.NewResourceReadStore(r.dbtx).FindByID(ctx, id)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	return readstore.NewIdempotencyReadStore(r.dbtx).Get(ctx, key)
}
