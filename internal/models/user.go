package models

import "time"

// User represents a player account in the system
type User struct {
	ID            int64
	Username      string
	Email         string
	PasswordHash  string
	OAuthProvider string
	OAuthSubject  string
	CreatedAt     time.Time
}

// Session represents an authenticated browser session
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// UserStats summarizes a user's reward balances, derived from the
// statement ledger rather than stored counters.
type UserStats struct {
	XP    int
	Lives int
	Gems  int
}
