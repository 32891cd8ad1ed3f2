package service

import (
	"path/filepath"
	"testing"

	"wordquest/internal/config"
	"wordquest/internal/database"
	"wordquest/internal/game"
	"wordquest/internal/models"
	"wordquest/internal/repository"
)

func setupSettlementDB(t *testing.T) (*database.DB, *SettlementService) {
	t.Helper()

	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.Initialize(cfg)
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}

	svc := NewSettlementService(db, repository.NewLessonRepository(), repository.NewLedgerRepository())
	return db, svc
}

func seedUser(t *testing.T, db *database.DB, username string) int64 {
	t.Helper()
	id, err := db.ExecReturningID(
		"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
		username, username+"@example.com", "x",
	)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

func seedLesson(t *testing.T, db *database.DB, userID int64, gameID int) (listID, lessonID int64) {
	t.Helper()
	listID, err := db.ExecReturningID(
		"INSERT INTO vocab_lists (user_id, name) VALUES (?, ?)",
		userID, "animals",
	)
	if err != nil {
		t.Fatalf("seed list: %v", err)
	}
	lessonID, err = db.ExecReturningID(
		"INSERT INTO lessons (list_id, game_id, odr) VALUES (?, ?, ?)",
		listID, gameID, 1,
	)
	if err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	return listID, lessonID
}

func ledgerSum(t *testing.T, db *database.DB, userID int64, kind string) int {
	t.Helper()
	sum, err := repository.NewLedgerRepository().SumByKind(db, userID, kind)
	if err != nil {
		t.Fatalf("SumByKind(%s): %v", kind, err)
	}
	return sum
}

func logCount(t *testing.T, db *database.DB, userID int64) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM lessons_log WHERE user_id = ?", userID).Scan(&n); err != nil {
		t.Fatalf("count logs: %v", err)
	}
	return n
}

func lessonCompleted(t *testing.T, db *database.DB, lessonID int64) bool {
	t.Helper()
	lesson, err := repository.NewLessonRepository().GetLessonByID(db, lessonID)
	if err != nil {
		t.Fatalf("GetLessonByID: %v", err)
	}
	return lesson.Completed
}

func TestSettleFirstCompletion(t *testing.T) {
	db, svc := setupSettlementDB(t)
	userID := seedUser(t, db, "alice")
	listID, lessonID := seedLesson(t, db, userID, models.GameQuiz)

	res, err := svc.Settle(userID, game.Outcome{
		ListID:    listID,
		LessonID:  lessonID,
		XP:        20,
		LivesLost: 0,
		Elapsed:   42,
		Discount:  game.DiscountRound66,
		GemsBonus: 200,
	})
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}

	if res.XP != 20 {
		t.Errorf("XP = %d, want 20", res.XP)
	}
	if res.GemsWon != 200 {
		t.Errorf("GemsWon = %d, want 200", res.GemsWon)
	}
	if res.Elapsed != 42 {
		t.Errorf("Elapsed = %d, want 42", res.Elapsed)
	}
	if got := ledgerSum(t, db, userID, models.StatementXP); got != 20 {
		t.Errorf("xp balance = %d, want 20", got)
	}
	if got := ledgerSum(t, db, userID, models.StatementGems); got != 200 {
		t.Errorf("gems balance = %d, want 200", got)
	}
	if !lessonCompleted(t, db, lessonID) {
		t.Error("lesson not marked completed")
	}
	if got := logCount(t, db, userID); got != 1 {
		t.Errorf("log rows = %d, want 1", got)
	}
}

func TestSettleReplayDiscount(t *testing.T) {
	tests := []struct {
		name   string
		rule   game.DiscountRule
		xp     int
		wantXP int
	}{
		{"round 66 percent", game.DiscountRound66, 20, 13},
		{"two thirds floor", game.DiscountTwoThirdsFloor, 17, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, svc := setupSettlementDB(t)
			userID := seedUser(t, db, "bob")
			listID, lessonID := seedLesson(t, db, userID, models.GameSnake)

			out := game.Outcome{
				ListID:    listID,
				LessonID:  lessonID,
				XP:        tt.xp,
				Elapsed:   30,
				Discount:  tt.rule,
				GemsBonus: 200,
			}
			if _, err := svc.Settle(userID, out); err != nil {
				t.Fatalf("first Settle() error = %v", err)
			}

			res, err := svc.Settle(userID, out)
			if err != nil {
				t.Fatalf("replay Settle() error = %v", err)
			}
			if res.XP != tt.wantXP {
				t.Errorf("replay XP = %d, want %d", res.XP, tt.wantXP)
			}
			if res.GemsWon != 0 {
				t.Errorf("replay GemsWon = %d, want 0", res.GemsWon)
			}
			if got := ledgerSum(t, db, userID, models.StatementGems); got != 200 {
				t.Errorf("gems balance after replay = %d, want 200", got)
			}
			if got := ledgerSum(t, db, userID, models.StatementXP); got != tt.xp+tt.wantXP {
				t.Errorf("xp balance = %d, want %d", got, tt.xp+tt.wantXP)
			}
			if got := logCount(t, db, userID); got != 2 {
				t.Errorf("log rows = %d, want 2", got)
			}
		})
	}
}

func TestSettleLifeDeduction(t *testing.T) {
	db, svc := setupSettlementDB(t)
	userID := seedUser(t, db, "carol")
	listID, lessonID := seedLesson(t, db, userID, models.GameHangman)

	ledger := repository.NewLedgerRepository()
	if err := ledger.Append(db, userID, 3, models.StatementLives); err != nil {
		t.Fatalf("seed lives: %v", err)
	}

	res, err := svc.Settle(userID, game.Outcome{
		ListID:    listID,
		LessonID:  lessonID,
		XP:        2,
		LivesLost: 1,
		Elapsed:   15,
		Discount:  game.DiscountRound66,
		GemsBonus: 200,
	})
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}

	if res.LivesLost != 1 {
		t.Errorf("LivesLost = %d, want 1", res.LivesLost)
	}
	if res.GemsWon != 0 {
		t.Errorf("GemsWon = %d, want 0", res.GemsWon)
	}
	if got := ledgerSum(t, db, userID, models.StatementLives); got != 2 {
		t.Errorf("lives balance = %d, want 2", got)
	}
	if got := ledgerSum(t, db, userID, models.StatementGems); got != 0 {
		t.Errorf("gems balance = %d, want 0", got)
	}
	if lessonCompleted(t, db, lessonID) {
		t.Error("lesson marked completed despite lost life")
	}

	// Still logged and XP still awarded on a lost game.
	if got := ledgerSum(t, db, userID, models.StatementXP); got != 2 {
		t.Errorf("xp balance = %d, want 2", got)
	}
	if got := logCount(t, db, userID); got != 1 {
		t.Errorf("log rows = %d, want 1", got)
	}
}

func TestSettleNoNegativeLives(t *testing.T) {
	db, svc := setupSettlementDB(t)
	userID := seedUser(t, db, "dave")
	listID, lessonID := seedLesson(t, db, userID, models.GameMemory)

	if _, err := svc.Settle(userID, game.Outcome{
		ListID:    listID,
		LessonID:  lessonID,
		XP:        0,
		LivesLost: 1,
		Elapsed:   10,
		Discount:  game.DiscountRound66,
	}); err != nil {
		t.Fatalf("Settle() error = %v", err)
	}

	if got := ledgerSum(t, db, userID, models.StatementLives); got != 0 {
		t.Errorf("lives balance = %d, want 0", got)
	}
}
