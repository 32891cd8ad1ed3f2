package models

import "time"

// Game type identifiers, matched by the lesson's GameID
const (
	GameSnake        = 1
	GameHangman      = 2
	GameMemory       = 4
	GameFallingWord  = 5
	GameMemowordrize = 6
	GameTypeFast     = 7
	GameQuiz         = 8
)

// Lesson represents one playable step in a list's lesson sequence
type Lesson struct {
	ID        int64
	ListID    int64
	GameID    int
	Order     int
	Completed bool
}

// LessonLog records one finished game session for the history view
type LessonLog struct {
	ID        int64
	UserID    int64
	ListID    int64
	LessonID  int64
	XPWon     int
	LivesLost int
	Duration  int
	CreatedAt time.Time
}

// Statement is one entry in the append-only reward ledger. Balances are
// computed by summing amounts per kind, never updated in place.
type Statement struct {
	ID        int64
	UserID    int64
	Amount    int
	Kind      string
	CreatedAt time.Time
}

// Statement kinds
const (
	StatementXP    = "xp"
	StatementLives = "lives"
	StatementGems  = "gems"
)
