package database

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// Dialect abstracts the differences between the supported SQL engines.
// Repository queries are written once with ? placeholders and rewritten
// per dialect at execution time.
type Dialect interface {
	// DriverName is the name registered with database/sql
	DriverName() string

	// DSN builds the data source name from the dialect's config
	DSN(config DialectConfig) string

	// RewriteQuery adapts placeholder syntax to the engine
	RewriteQuery(query string) string

	// SupportsLastInsertId reports whether the driver implements
	// LastInsertId; engines without it use a RETURNING clause
	SupportsLastInsertId() bool

	// ConfigureConnection applies engine-specific connection settings
	ConfigureConnection(db *sql.DB) error
}

// DialectConfig carries the connection parameters. Path is used by
// SQLite, URL by PostgreSQL and MySQL.
type DialectConfig struct {
	Path string
	URL  string
}

// numberPlaceholders rewrites ? placeholders to $1, $2, ... for engines
// with numbered parameters. Repository queries never embed a literal
// question mark.
func numberPlaceholders(query string) string {
	if !strings.ContainsRune(query, '?') {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tunePool applies the shared connection-pool limits
func tunePool(db *sql.DB) {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(time.Minute)
}
