package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"wordquest/internal/game"
	"wordquest/internal/models"
)

// EnterSnake starts a snake game on a list and places the first word
func (h *GameHandler) EnterSnake(w http.ResponseWriter, r *http.Request) {
	h.enter(w, r, models.GameSnake, func(listID, lessonID int64, words []game.Word, now time.Time) (game.Session, game.Envelope) {
		sess := game.NewSnake(listID, lessonID, words, now)
		env, _ := sess.NewWord(now)
		return sess, env
	})
}

// SnakeGetWord places the next word on the grid
func (h *GameHandler) SnakeGetWord(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, game.KindSnake, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.Snake).NewWord(now)
	})
}

// SnakeCheckCoordinates scores the path the snake ate against the
// placed letters
func (h *GameHandler) SnakeCheckCoordinates(w http.ResponseWriter, r *http.Request) {
	var coords []game.Coordinate
	if err := json.NewDecoder(r.Body).Decode(&coords); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", nil)
		return
	}

	h.withSession(w, r, game.KindSnake, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.Snake).CheckCoordinates(coords, now)
	})
}
