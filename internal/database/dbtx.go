package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// DBTX is satisfied by both *DB and *Tx, letting repository methods run
// either standalone or inside a transaction.
type DBTX interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	ExecReturningID(query string, args ...interface{}) (int64, error)
	GetDialect() Dialect
}

// GetDialect returns the dialect for this connection
func (db *DB) GetDialect() Dialect {
	return db.Dialect
}

// Tx wraps sql.Tx with dialect-aware query rewriting
type Tx struct {
	*sql.Tx
	Dialect Dialect
}

// Begin starts a transaction
func (db *DB) Begin() (*Tx, error) {
	tx, err := db.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, Dialect: db.Dialect}, nil
}

// GetDialect returns the dialect for this transaction
func (tx *Tx) GetDialect() Dialect {
	return tx.Dialect
}

// Query runs a query within the transaction with placeholder rewriting
func (tx *Tx) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return tx.Tx.Query(tx.Dialect.RewriteQuery(query), args...)
}

// QueryRow runs a single-row query within the transaction with placeholder rewriting
func (tx *Tx) QueryRow(query string, args ...interface{}) *sql.Row {
	return tx.Tx.QueryRow(tx.Dialect.RewriteQuery(query), args...)
}

// Exec runs a statement within the transaction with placeholder rewriting
func (tx *Tx) Exec(query string, args ...interface{}) (sql.Result, error) {
	return tx.Tx.Exec(tx.Dialect.RewriteQuery(query), args...)
}

// ExecReturningID runs an INSERT within the transaction and returns the new row's id
func (tx *Tx) ExecReturningID(query string, args ...interface{}) (int64, error) {
	return execReturningID(tx.Dialect, tx, query, args...)
}

// rowQuerier is the slice of DBTX that execReturningID needs. Both *DB
// and *Tx rewrite placeholders inside these methods already.
type rowQuerier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// execReturningID bridges the LastInsertId gap between engines: MySQL
// and SQLite report it on the result, PostgreSQL needs a RETURNING
// clause appended to the insert.
func execReturningID(d Dialect, q rowQuerier, query string, args ...interface{}) (int64, error) {
	if d.SupportsLastInsertId() {
		result, err := q.Exec(query, args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}

	query = strings.TrimSuffix(strings.TrimSpace(query), ";") + " RETURNING id"

	var id int64
	if err := q.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert returning id: %w", err)
	}
	return id, nil
}
