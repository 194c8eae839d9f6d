//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"paintball-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErrClassifies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "overlapping booking", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindConflict},
		{name: "anything else", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: pgx.ErrNoRows, kind: []infra.RepositoryErrorKind{infra.KindConflict}, want: infra.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRepositoryErrorMessage(t *testing.T) {
	err := infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	assert.Equal(t, "NOT_FOUND: booking not found", err.Error())
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
}
