package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error classes the schema can raise on bad input
const (
	notNullViolation    = "23502"
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports a duplicate (major, course_code) insert
func IsUniqueViolation(err error) bool {
	return pgErrCode(err) == uniqueViolation
}

// IsForeignKeyViolation reports an offering pointing at a missing course
func IsForeignKeyViolation(err error) bool {
	return pgErrCode(err) == foreignKeyViolation
}

func IsNotNullViolation(err error) bool {
	return pgErrCode(err) == notNullViolation
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
