package readstore

import (
	"context"

	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(db db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: db}
}

// Get returns the record for key, expired or not; callers decide on expiry.
func (r *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	query := db.Psql.Select("key", "endpoint", "status", "request_hash", "result_booking_id", "expires_at").
		From("idempotency_keys").
		Where(sq.Eq{"key": key})

	return one(ctx, r.db, query, "idempotency key not found", "failed to get idempotency key", func(row pgx.Row) (*shared.IdempotencyRecord, error) {
		var rec shared.IdempotencyRecord
		err := row.Scan(&rec.Key, &rec.Endpoint, &rec.Status, &rec.RequestHash, &rec.ResultBookingID, &rec.ExpiresAt)
		return &rec, err
	})
}
