package repository

import (
	"context"
	"time"

	"paintball-booking/internal/infra"
	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	sqlStr, args, err := db.Psql.Insert("idempotency_keys").
		Columns("key", "endpoint", "request_hash", "status", "expires_at").
		Values(key, endpoint, requestHash, shared.IdempotencyStatusProcessing, expiresAt).
		Suffix("ON CONFLICT (key) DO NOTHING").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build idempotency insert", err, infra.KindDBFailure)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, key, bookingID uuid.UUID) error {
	sqlStr, args, err := db.Psql.Update("idempotency_keys").
		Set("status", shared.IdempotencyStatusCompleted).
		Set("result_booking_id", bookingID).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build idempotency update", err, infra.KindDBFailure)
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

// ClaimExpiredIdempotencyKey restarts an expired key for a new request.
// It returns the number of rows claimed (0 or 1).
func (r *IdempotencyRepository) ClaimExpiredIdempotencyKey(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	sqlStr, args, err := db.Psql.Update("idempotency_keys").
		Set("request_hash", requestHash).
		Set("status", shared.IdempotencyStatusProcessing).
		Set("result_booking_id", nil).
		Set("expires_at", expiresAt).
		Where(sq.Eq{"key": key}).
		Where(sq.Expr("expires_at < now()")).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build idempotency claim", err, infra.KindDBFailure)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return tag.RowsAffected(), nil
}
