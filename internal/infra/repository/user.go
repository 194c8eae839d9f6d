package repository

import (
	"context"
	"time"

	"paintball-booking/internal/infra"
	"paintball-booking/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	sqlStr, args, err := db.Psql.Update("users").
		Set("last_login_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build last login update", err, infra.KindDBFailure)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
