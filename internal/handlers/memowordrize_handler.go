package handlers

import (
	"net/http"
	"strconv"
	"time"

	"wordquest/internal/game"
	"wordquest/internal/models"
)

// EnterMemowordrize starts a memowordrize game on a list. The first
// path is generated on the first see_path call.
func (h *GameHandler) EnterMemowordrize(w http.ResponseWriter, r *http.Request) {
	h.enter(w, r, models.GameMemowordrize, func(listID, lessonID int64, words []game.Word, now time.Time) (game.Session, game.Envelope) {
		sess := game.NewMemowordrize(listID, lessonID, words, now)
		return sess, game.OK(MsgGameRunning, nil)
	})
}

// MemowordrizeSeePath shows the current path, up to three views per
// round
func (h *GameHandler) MemowordrizeSeePath(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, game.KindMemowordrize, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.Memowordrize).SeePath(now)
	})
}

// MemowordrizeTryCase plays one word onto one cell of the path
func (h *GameHandler) MemowordrizeTryCase(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid position", "", nil)
		return
	}
	word := r.PathValue("word")

	h.withSession(w, r, game.KindMemowordrize, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.Memowordrize).CheckCase(position, word, now)
	})
}
