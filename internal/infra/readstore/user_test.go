//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"paintball-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	a := m.Called(ctx, sql, args)
	return a.Get(0).(pgconn.CommandTag), a.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	a := m.Called(ctx, sql, args)
	rows, _ := a.Get(0).(pgx.Rows)
	return rows, a.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	a := m.Called(ctx, sql, args)
	return a.Get(0).(pgx.Row)
}

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func userRowOf(id uuid.UUID, email, role string, active bool, lastLogin *time.Time, hash string) pgx.Row {
	return rowFunc(func(dest ...any) error {
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*string) = email
		*dest[2].(*string) = role
		*dest[3].(*bool) = active
		if lastLogin != nil {
			*dest[4].(*pgtype.Timestamptz) = pgtype.Timestamptz{Time: *lastLogin, Valid: true}
		}
		*dest[5].(*string) = hash
		return nil
	})
}

func errRow(err error) pgx.Row {
	return rowFunc(func(...any) error { return err })
}

func TestUserReadStoreFindByEmail(t *testing.T) {
	id := uuid.New()
	login := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		row       pgx.Row
		wantHash  string
		wantLogin bool
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:      "active account with last login",
			row:       userRowOf(id, "staff@example.com", "staff", true, &login, "$2a$04$hash"),
			wantHash:  "$2a$04$hash",
			wantLogin: true,
		},
		{
			name:     "inactive account is still returned",
			row:      userRowOf(id, "staff@example.com", "staff", false, nil, "$2a$04$hash"),
			wantHash: "$2a$04$hash",
		},
		{
			name:     "unknown email",
			row:      errRow(pgx.ErrNoRows),
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			row:      errRow(assert.AnError),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", mock.Anything,
				"SELECT id, email, role, is_active, last_login_at, password_hash FROM users WHERE email = $1",
				[]any{"staff@example.com"},
			).Return(tt.row)

			view, hash, err := NewUserReadStore(dbtx).FindByEmail(context.Background(), "staff@example.com")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "kind: %v", err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, view.ID)
				assert.Equal(t, tt.wantHash, hash)
				assert.Equal(t, tt.wantLogin, view.LastLoginAt != nil)
			}
			dbtx.AssertExpectations(t)
		})
	}
}

func TestUserReadStoreFindByID(t *testing.T) {
	id := uuid.New()
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), []any{id}).
		Return(userRowOf(id, "admin@example.com", "admin", true, nil, "secret"))

	view, err := NewUserReadStore(dbtx).FindByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "admin", view.Role)
	assert.Nil(t, view.LastLoginAt)
	dbtx.AssertExpectations(t)
}
