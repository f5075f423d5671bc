package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	apperrors "github.com/avdleeuw/animevault/internal/errors"
	"gorm.io/gorm"
)

// Repository bundles all database access behind one type so the stats
// engine and the API never touch gorm directly.
type Repository struct {
	db *gorm.DB
}

// New creates a Repository on top of an open gorm connection.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DB exposes the underlying connection for health checks.
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// queryError classifies a store failure so callers can tell transient
// faults from real query bugs. Connection-class failures and timeouts
// come back retryable; everything else is a query error.
func queryError(err error, message string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.CodeServiceTimeout, message)
	case isConnectionError(err):
		return apperrors.Wrap(err, apperrors.CodeDatabaseConnection, message)
	default:
		return apperrors.Wrap(err, apperrors.CodeDatabaseQuery, message)
	}
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, gorm.ErrInvalidDB) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
