package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/pkg/metrics"
	"paintball-booking/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool    *pgxpool.Pool
	policy  RetryPolicy
	metrics *metrics.Metrics
}

func NewPostgresUoW(pool *pgxpool.Pool, m *metrics.Metrics) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, policy: DefaultRetryPolicy, metrics: m}
}

// Within runs fn at READ COMMITTED. Booking writes take a row lock on the
// resource first, which serialises them per field.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

func (u *PostgresUoW) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempts := 0
	op := func() error {
		attempts++
		err := u.attempt(ctx, opts, fn)
		if err != nil && RetryReason(err) == "" {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		reason := RetryReason(err)
		u.metrics.ObserveTxRetry(reason)
		slog.Warn("retrying transaction", "attempt", attempts, "reason", reason, "wait_ms", wait.Milliseconds())
	}

	err := backoff.RetryNotify(op, backoff.WithContext(u.policy.BackOff(), ctx), notify)
	if reason := RetryReason(err); reason != "" {
		slog.Error("transaction abandoned", "attempts", attempts, "reason", reason, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// attempt owns one BEGIN..COMMIT so the rollback is never deferred across retries.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, newTx(pgxTx))
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}
