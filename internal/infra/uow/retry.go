package uow

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrLockNotAvailable     = "55P03"
)

// RetryPolicy bounds how often a transaction aborted by lock contention is replayed.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}

// BackOff doubles BaseDelay per retry with 20% jitter and stops after MaxRetries.
func (p RetryPolicy) BackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0.2
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithMaxRetries(b, uint64(p.MaxRetries))
}

// RetryReason names the PostgreSQL condition that makes err worth replaying,
// or returns "" when it is not.
func RetryReason(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	switch pgErr.Code {
	case pgErrSerializationFailure:
		return "serialization_failure"
	case pgErrDeadlockDetected:
		return "deadlock"
	case pgErrLockNotAvailable:
		return "lock_timeout"
	default:
		return ""
	}
}
