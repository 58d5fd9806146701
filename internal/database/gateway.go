package database

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// DefaultRetries is the maximum number of attempts for a retried
	// statement.
	DefaultRetries = 3

	// DefaultBackoff is multiplied by the attempt index between retries.
	DefaultBackoff = time.Second
)

// Gateway owns the pooled connection and executes statements through it.
// Non-transactional statements go through Run, which retries transient
// connection failures. Transactional work goes through Transaction,
// which never retries: a failed statement inside a transaction rolls
// back immediately.
type Gateway struct {
	db      *gorm.DB
	retries int
	backoff time.Duration
}

// NewGateway wraps an open connection. retries <= 0 falls back to
// DefaultRetries.
func NewGateway(db *gorm.DB, retries int) *Gateway {
	if retries <= 0 {
		retries = DefaultRetries
	}
	return &Gateway{db: db, retries: retries, backoff: DefaultBackoff}
}

// DB exposes the underlying handle for read paths that compose their
// own queries.
func (g *Gateway) DB() *gorm.DB {
	return g.db
}

// Run executes fn, retrying up to the configured maximum when the error
// is a transient connection failure. Backoff between attempts grows
// linearly with the attempt index. Permanent errors are returned
// immediately; if every attempt fails, the last error is returned.
func (g *Gateway) Run(fn func(db *gorm.DB) error) error {
	var lastErr error
	for attempt := 1; attempt <= g.retries; attempt++ {
		lastErr = fn(g.db)
		if lastErr == nil {
			return nil
		}
		if !IsTransient(lastErr) {
			return lastErr
		}
		if attempt < g.retries {
			time.Sleep(time.Duration(attempt) * g.backoff)
		}
	}
	return lastErr
}

// Transaction runs fn inside a single database transaction. An error
// from fn rolls the transaction back and is returned to the caller;
// success commits. The dedicated connection is released on every exit
// path.
func (g *Gateway) Transaction(fn func(tx *gorm.DB) error) error {
	return g.db.Transaction(fn)
}

// Postgres error codes treated as transient: the server terminated the
// connection (class 57) or the connection itself failed (class 08).
var transientPgCodes = map[string]bool{
	"57P01": true, // admin_shutdown
	"57P02": true, // crash_shutdown
	"57P03": true, // cannot_connect_now
}

// IsTransient reports whether err indicates a temporary loss of the
// underlying connection, expected to self-resolve on retry. The
// decision uses the driver's structured error codes, not message text.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return transientPgCodes[pgErr.Code] || strings.HasPrefix(pgErr.Code, "08")
	}
	return false
}
