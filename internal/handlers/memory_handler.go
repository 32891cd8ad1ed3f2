package handlers

import (
	"net/http"
	"strconv"
	"time"

	"wordquest/internal/game"
	"wordquest/internal/models"
)

// EnterMemory starts a memory game on a list and deals the board
func (h *GameHandler) EnterMemory(w http.ResponseWriter, r *http.Request) {
	h.enter(w, r, models.GameMemory, func(listID, lessonID int64, words []game.Word, now time.Time) (game.Session, game.Envelope) {
		sess := game.NewMemory(listID, lessonID, words, now)
		return sess, sess.DealBoard()
	})
}

// MemoryCheckCard reveals one card by its board position
func (h *GameHandler) MemoryCheckCard(w http.ResponseWriter, r *http.Request) {
	card, err := strconv.Atoi(r.PathValue("card"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid card ID", "", nil)
		return
	}

	h.withSession(w, r, game.KindMemory, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.Memory).Reveal(card, now)
	})
}
