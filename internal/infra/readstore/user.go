package readstore

import (
	"context"

	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/pkg/pgconv"
	"paintball-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

type userRow struct {
	view         *queries.AuthorizedUserView
	passwordHash string
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := one(ctx, r.db, r.selectUser().Where(sq.Eq{"id": id}), "user not found", "failed to find user by ID", scanUser)
	if err != nil {
		return nil, err
	}
	return row.view, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := one(ctx, r.db, r.selectUser().Where(sq.Eq{"email": email}), "user not found", "failed to find user by email", scanUser)
	if err != nil {
		return nil, "", err
	}
	return row.view, row.passwordHash, nil
}

func (r *UserReadStore) selectUser() sq.SelectBuilder {
	return db.Psql.Select("id", "email", "role", "is_active", "last_login_at", "password_hash").From("users")
}

func scanUser(row pgx.Row) (userRow, error) {
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
		hash      string
	)
	if err := row.Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &lastLogin, &hash); err != nil {
		return userRow{}, err
	}
	v.LastLoginAt = pgconv.TimePtrFromPgtype(lastLogin)
	return userRow{view: &v, passwordHash: hash}, nil
}
