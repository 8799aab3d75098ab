package repositories

import (
	"context"
	_ "embed"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
)

// Postgres SQLSTATE codes the stores translate into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables and constraints the stores rely on.
// It is idempotent and runs once at startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	logger.Log.Infow("schema migration", "error", err)
	return err
}

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the request transaction when there is one, else the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a statement on a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// mapPgError turns constraint violations into domain errors. conflict is
// returned, wrapping err, when a uniqueness constraint rejects the write.
func mapPgError(err error, conflict *domainerrors.Error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return conflict.WithCause(err)
	case pgForeignKeyViolation:
		return domainerrors.NotFound("referenced saved book does not exist").WithCause(err)
	case pgCheckViolation:
		return domainerrors.Validation("value rejected by storage constraint " + pgErr.ConstraintName).WithCause(err)
	default:
		return err
	}
}
