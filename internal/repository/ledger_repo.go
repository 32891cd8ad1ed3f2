package repository

import (
	"fmt"

	"wordquest/internal/database"
)

// LedgerRepository handles the append-only reward statement ledger.
// Balances are read as sums, entries are never updated or deleted.
type LedgerRepository struct{}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

// Append records a reward statement for a user
func (r *LedgerRepository) Append(q database.DBTX, userID int64, amount int, kind string) error {
	query := `
		INSERT INTO user_statements (user_id, amount, kind)
		VALUES (?, ?, ?)
	`
	if _, err := q.Exec(query, userID, amount, kind); err != nil {
		return fmt.Errorf("failed to append statement: %w", err)
	}
	return nil
}

// SumByKind returns a user's balance for one statement kind
func (r *LedgerRepository) SumByKind(q database.DBTX, userID int64, kind string) (int, error) {
	var total int
	query := "SELECT COALESCE(SUM(amount), 0) FROM user_statements WHERE user_id = ? AND kind = ?"
	if err := q.QueryRow(query, userID, kind).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum statements: %w", err)
	}
	return total, nil
}

// HasAny reports whether the user has ever had a statement of the
// given kind, regardless of the current balance
func (r *LedgerRepository) HasAny(q database.DBTX, userID int64, kind string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM user_statements WHERE user_id = ? AND kind = ?"
	if err := q.QueryRow(query, userID, kind).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count statements: %w", err)
	}
	return count > 0, nil
}
