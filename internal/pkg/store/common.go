package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	tableVendorCache = "vendor_cache"
	tableVendors     = "vendors"
	tableFavorites   = "favorites"
)

// Postgres error code for foreign_key_violation.
const pgCodeForeignKeyViolation = "23503"

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}

	// A broken reference means the referenced row does not exist.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgCodeForeignKeyViolation {
		return constants.ErrDBNotFound
	}

	return err
}

// builder returns a squirrel SQL builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
