package queries

import (
	"context"

	"paintball-booking/internal/infra"
	"paintball-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

// UserQueries reads back-office accounts for /api/auth/me.
type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

// UserReadStore loads staff accounts. FindByEmail also returns the bcrypt hash.
type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueries struct {
	accounts UserReadStore
}

func NewUserQueries(accounts UserReadStore) UserQueries {
	return &userQueries{accounts: accounts}
}

// GetCurrentUser fails with ErrUserInactive for a deactivated account even
// while its token is still valid.
func (q *userQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	account, err := q.accounts.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrUserNotFound)
	case err != nil:
		return nil, errs.Wrap(err, "load current user")
	case !account.IsActive:
		return nil, ErrUserInactive
	}
	return account, nil
}
