package db

import (
	"context"
	"database/sql"
	"errors"
	c "gatekeeper/internal/core/domain/common"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// IsUniqueViolation reports whether err is a unique violation of the given
// constraint or index.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == constraint
}

func EncodeOptionalString[T ~string](value c.Optional[T]) sql.NullString {
	return sql.NullString{String: string(value.Value), Valid: value.IsPresent}
}

func EncodeOptionalTime(at c.Optional[time.Time]) sql.NullTime {
	return sql.NullTime{Time: at.Value, Valid: at.IsPresent}
}

func DecodeOptionalString[T ~string](value sql.NullString) c.Optional[T] {
	return c.NewOptional(T(value.String), value.Valid)
}

func DecodeOptionalTime(at sql.NullTime) c.Optional[time.Time] {
	return c.NewOptional(at.Time, at.Valid)
}
