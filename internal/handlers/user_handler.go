package handlers

import (
	"net/http"

	"wordquest/internal/database"
	"wordquest/internal/repository"
	"wordquest/internal/service"
)

// UserHandler serves the player's own data: reward balances and game
// history
type UserHandler struct {
	db      *database.DB
	rewards *service.RewardService
	lessons *repository.LessonRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *database.DB, rewards *service.RewardService, lessons *repository.LessonRepository) *UserHandler {
	return &UserHandler{db: db, rewards: rewards, lessons: lessons}
}

// Stats returns the player's xp, lives and gems balances
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	stats, err := h.rewards.Stats(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error reading stats", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{
		"xp":    stats.XP,
		"lives": stats.Lives,
		"gems":  stats.Gems,
	})
}

// History returns the player's finished games, newest first
func (h *UserHandler) History(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	logs, err := h.lessons.GetLogsByUser(h.db, user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error reading history", err)
		return
	}

	type logEntry struct {
		LessonID int64  `json:"lesson_id"`
		ListID   int64  `json:"list_id"`
		XPWon    int    `json:"xp_won"`
		Lives    int    `json:"lives_lost"`
		Duration int    `json:"duration_seconds"`
		PlayedAt string `json:"played_at"`
	}
	entries := make([]logEntry, len(logs))
	for i, entry := range logs {
		entries[i] = logEntry{
			LessonID: entry.LessonID,
			ListID:   entry.ListID,
			XPWon:    entry.XPWon,
			Lives:    entry.LivesLost,
			Duration: entry.Duration,
			PlayedAt: entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	respondJSON(w, http.StatusOK, entries)
}
