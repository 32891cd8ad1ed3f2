package game

import "time"

// Game kind names, used for routing and state encoding
const (
	KindFallingWord  = "fallingword"
	KindHangman      = "hangman"
	KindMemory       = "memory"
	KindMemowordrize = "memowordrize"
	KindQuiz         = "quiz"
	KindSnake        = "snake"
	KindTypeFast     = "typefast"
)

// Session is the behavior every game engine shares. A session is created
// at lesson entry, mutated by action calls, and force-ended when its
// deadline passes or its identity check fails.
type Session interface {
	// ID is the random identifier the client must echo on every action
	ID() string
	// Kind names the game this session runs
	Kind() string
	// Deadline is the instant after which the session is expired
	Deadline() time.Time
	// ForceEnd settles the session immediately, as on expiry. It scores
	// whatever progress exists and never waits for further input.
	ForceEnd(now time.Time) Terminal
}

// Expired reports whether the session's deadline has passed
func Expired(s Session, now time.Time) bool {
	return now.After(s.Deadline())
}
