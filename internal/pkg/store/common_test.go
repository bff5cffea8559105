package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapErr(t *testing.T) {
	assert.ErrorIs(t, wrapErr(pgx.ErrNoRows), constants.ErrDBNotFound)
	assert.ErrorIs(t, wrapErr(fmt.Errorf("query: %w", pgx.ErrNoRows)), constants.ErrDBNotFound)

	fkViolation := &pgconn.PgError{Code: pgCodeForeignKeyViolation, ConstraintName: "favorites_vendor_id_fkey"}
	assert.ErrorIs(t, wrapErr(fkViolation), constants.ErrDBNotFound,
		"favoriting a missing vendor must surface as not-found, not a 500")
	assert.ErrorIs(t, wrapErr(fmt.Errorf("exec: %w", fkViolation)), constants.ErrDBNotFound)

	uniqueViolation := &pgconn.PgError{Code: "23505"}
	assert.NotErrorIs(t, wrapErr(uniqueViolation), constants.ErrDBNotFound)

	plain := errors.New("connection refused")
	assert.Equal(t, plain, wrapErr(plain))
}
