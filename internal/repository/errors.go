package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// codeUniqueViolation is the SQLSTATE of unique_violation.
const codeUniqueViolation = "23505"

// Constraint names from migrations that callers translate into domain errors.
const (
	constraintApplicationsPkey      = "delivery_applications_pkey"
	constraintDeliveryPerAnnouncing = "deliveries_announcement_id_key"
)

// uniqueViolation reports whether err is a unique_violation and, if so, which
// constraint fired.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// IsNotFound reports whether err means no row matched.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
