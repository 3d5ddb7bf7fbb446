package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// DB wraps the shared *sql.DB handle so stores depend on one local type.
type DB struct {
	*sql.DB
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, e.g. a losing racer on the accounts username index.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
