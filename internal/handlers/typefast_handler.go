package handlers

import (
	"net/http"
	"time"

	"wordquest/internal/game"
	"wordquest/internal/models"
)

// EnterTypeFast starts a typefast game on a list. The client gets the
// translations to prompt with; the clock runs for the whole list.
func (h *GameHandler) EnterTypeFast(w http.ResponseWriter, r *http.Request) {
	h.enter(w, r, models.GameTypeFast, func(listID, lessonID int64, words []game.Word, now time.Time) (game.Session, game.Envelope) {
		sess := game.NewTypeFast(listID, lessonID, words, now)
		translations := make([]string, len(words))
		for i, word := range words {
			translations[i] = word.Translation
		}
		return sess, game.OK(MsgGameRunning, map[string]interface{}{
			"translations": translations,
			"total":        len(words),
		})
	})
}

// TypeFastCheckWord crosses off one typed word
func (h *GameHandler) TypeFastCheckWord(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	h.withSession(w, r, game.KindTypeFast, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.TypeFast).CheckWord(word, now)
	})
}
