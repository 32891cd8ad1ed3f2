package service

import (
	"fmt"
	"log"

	"wordquest/internal/database"
	"wordquest/internal/game"
	"wordquest/internal/models"
	"wordquest/internal/repository"
)

// SettlementResult is what settlement finally booked: the XP after any
// replay discount, the lives actually deducted, and the play time.
type SettlementResult struct {
	XP        int
	LivesLost int
	Elapsed   int
	GemsWon   int
}

// SettlementService books a finished game into the database. All
// writes of one settlement run in a single transaction, so a crash
// mid-way never leaves a half-booked game.
type SettlementService struct {
	db      *database.DB
	lessons *repository.LessonRepository
	ledger  *repository.LedgerRepository
}

// NewSettlementService creates a new settlement service
func NewSettlementService(db *database.DB, lessons *repository.LessonRepository, ledger *repository.LedgerRepository) *SettlementService {
	return &SettlementService{db: db, lessons: lessons, ledger: ledger}
}

// Settle books a game outcome for a user. Replays earn discounted XP
// and never re-award the gem bonus; the completed flag and the bonus
// require finishing without losing a life. A life is only deducted
// while the balance is positive.
func (s *SettlementService) Settle(userID int64, out game.Outcome) (*SettlementResult, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin settlement: %w", err)
	}
	defer tx.Rollback()

	replay, err := s.lessons.HasLog(tx, userID, out.LessonID)
	if err != nil {
		return nil, err
	}

	xp := out.XP
	if replay {
		xp = out.Discount.Apply(xp)
	}

	if out.LivesLost > 0 {
		balance, err := s.ledger.SumByKind(tx, userID, models.StatementLives)
		if err != nil {
			return nil, err
		}
		if balance > 0 {
			if err := s.ledger.Append(tx, userID, -1, models.StatementLives); err != nil {
				return nil, err
			}
		}
	}

	gems := 0
	if !replay && out.LivesLost == 0 && out.GemsBonus > 0 {
		gems = out.GemsBonus
		if err := s.ledger.Append(tx, userID, gems, models.StatementGems); err != nil {
			return nil, err
		}
	}

	if out.LivesLost == 0 {
		if err := s.lessons.MarkCompleted(tx, out.LessonID); err != nil {
			return nil, err
		}
	}

	entry := &models.LessonLog{
		UserID:    userID,
		ListID:    out.ListID,
		LessonID:  out.LessonID,
		XPWon:     xp,
		LivesLost: out.LivesLost,
		Duration:  out.Elapsed,
	}
	if err := s.lessons.InsertLog(tx, entry); err != nil {
		return nil, err
	}
	if err := s.ledger.Append(tx, userID, xp, models.StatementXP); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}

	log.Printf("Settled lesson %d for user %d: xp=%d lives_lost=%d elapsed=%ds replay=%t",
		out.LessonID, userID, xp, out.LivesLost, out.Elapsed, replay)

	return &SettlementResult{
		XP:        xp,
		LivesLost: out.LivesLost,
		Elapsed:   out.Elapsed,
		GemsWon:   gems,
	}, nil
}
