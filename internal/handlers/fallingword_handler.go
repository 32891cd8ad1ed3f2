package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"wordquest/internal/game"
	"wordquest/internal/models"
)

// EnterFallingWord starts a falling-word game on a list
func (h *GameHandler) EnterFallingWord(w http.ResponseWriter, r *http.Request) {
	h.enter(w, r, models.GameFallingWord, func(listID, lessonID int64, words []game.Word, now time.Time) (game.Session, game.Envelope) {
		sess := game.NewFallingWord(listID, lessonID, words, now)
		env := sess.NewDuos(h.similarWords)
		env.Result = map[string]interface{}{"duos": env.Result}
		return sess, env
	})
}

// FallingWordGetDuo deals a fresh batch of duos
func (h *GameHandler) FallingWordGetDuo(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, game.KindFallingWord, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.FallingWord).NewDuos(h.similarWords), nil
	})
}

// FallingWordCheckAnswers scores the round's answers and ends the game
func (h *GameHandler) FallingWordCheckAnswers(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Answers []string `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", nil)
		return
	}

	h.withSession(w, r, game.KindFallingWord, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.FallingWord).CheckAnswers(payload.Answers, now)
	})
}
