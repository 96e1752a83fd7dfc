package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"petitions-backend/internal/middlewares"
)

// ErrDuplicate is returned when an insert hits a unique constraint. The
// schema enforces uniqueness (email, one signature per user and petition)
// so concurrent check-then-insert races surface here instead of corrupting
// the store.
var ErrDuplicate = errors.New("duplicate key")

// exec returns the transaction carried by the request context when present,
// otherwise the shared pool.
func exec(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
