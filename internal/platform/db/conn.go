package db

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type contextKey string

const ConnKey contextKey = "db_conn"

// RequestConn returns middleware that acquires a connection from the pool for
// the lifetime of the request and injects it into the request context.
// Repositories read it back with ConnFromContext so every query and write runs
// on one explicit handle instead of implicit pool checkouts.
func RequestConn(pool *pgxpool.Pool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			conn, err := pool.Acquire(ctx)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
			}
			defer conn.Release()

			ctx = context.WithValue(ctx, ConnKey, conn)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("db", conn)

			return next(c)
		}
	}
}

// ConnFromContext retrieves the request-scoped database connection, or nil
// when the caller runs outside a request (CLI commands, tests against the pool).
func ConnFromContext(ctx context.Context) *pgxpool.Conn {
	conn, _ := ctx.Value(ConnKey).(*pgxpool.Conn)
	return conn
}

type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx runs fn inside a transaction on the request-scoped connection when
// one is present, otherwise directly on the pool. The transaction is rolled
// back if fn returns an error or panics.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var b beginner = pool
	if conn := ConnFromContext(ctx); conn != nil {
		b = conn
	}

	tx, err := b.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
