//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx so fixtures run inside or outside a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CountRows returns count(*) of table filtered by the optional where clause.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	q := "SELECT count(*) FROM " + pgx.Identifier{table}.Sanitize()
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(t.Context(), q, args...).Scan(&n), "count %s", table)
	return n
}

// BookingStatus reads the stored status of a booking.
func BookingStatus(t *testing.T, db DBLike, id string) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(t.Context(), "SELECT status FROM bookings WHERE id = $1", id).Scan(&status))
	return status
}
