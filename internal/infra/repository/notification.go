package repository

import (
	"context"
	"time"

	"paintball-booking/internal/infra"
	"paintball-booking/internal/infra/db"
)

// NotificationRepository writes the outbox consumed by the mail sender.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	sqlStr, args, err := db.Psql.Insert("notification_jobs").
		Columns("kind", "topic", "payload", "run_at", "status").
		Values(kind, topic, payload, runAt, "queued").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build notification insert", err, infra.KindDBFailure)
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
