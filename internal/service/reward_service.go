package service

import (
	"fmt"

	"wordquest/internal/database"
	"wordquest/internal/models"
	"wordquest/internal/repository"
)

// RewardService reads reward balances from the statement ledger
type RewardService struct {
	db     *database.DB
	ledger *repository.LedgerRepository
}

// NewRewardService creates a new reward service
func NewRewardService(db *database.DB, ledger *repository.LedgerRepository) *RewardService {
	return &RewardService{db: db, ledger: ledger}
}

// Stats returns the user's XP, lives and gems balances
func (s *RewardService) Stats(userID int64) (*models.UserStats, error) {
	xp, err := s.ledger.SumByKind(s.db, userID, models.StatementXP)
	if err != nil {
		return nil, fmt.Errorf("failed to read xp balance: %w", err)
	}
	lives, err := s.ledger.SumByKind(s.db, userID, models.StatementLives)
	if err != nil {
		return nil, fmt.Errorf("failed to read lives balance: %w", err)
	}
	gems, err := s.ledger.SumByKind(s.db, userID, models.StatementGems)
	if err != nil {
		return nil, fmt.Errorf("failed to read gems balance: %w", err)
	}
	return &models.UserStats{XP: xp, Lives: lives, Gems: gems}, nil
}

// Lives returns the user's current life balance
func (s *RewardService) Lives(userID int64) (int, error) {
	return s.ledger.SumByKind(s.db, userID, models.StatementLives)
}

// GrantStartingLives seeds a new account's life balance
func (s *RewardService) GrantStartingLives(userID int64, lives int) error {
	return s.ledger.Append(s.db, userID, lives, models.StatementLives)
}

// EnsureStartingLives grants starting lives only to accounts that have
// never had a lives statement. A player who spent their lives keeps a
// zero balance.
func (s *RewardService) EnsureStartingLives(userID int64, lives int) error {
	seeded, err := s.ledger.HasAny(s.db, userID, models.StatementLives)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}
	return s.GrantStartingLives(userID, lives)
}
