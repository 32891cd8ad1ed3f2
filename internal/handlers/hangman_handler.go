package handlers

import (
	"net/http"
	"time"

	"wordquest/internal/game"
	"wordquest/internal/models"
)

// EnterHangman starts a hangman game on a list. The first word is
// dealt immediately.
func (h *GameHandler) EnterHangman(w http.ResponseWriter, r *http.Request) {
	h.enter(w, r, models.GameHangman, func(listID, lessonID int64, words []game.Word, now time.Time) (game.Session, game.Envelope) {
		sess := game.NewHangman(listID, lessonID, words, now)
		env, _ := sess.NewWord(0, now)
		return sess, env
	})
}

// HangmanCheckLetter plays one letter against the current word
func (h *GameHandler) HangmanCheckLetter(w http.ResponseWriter, r *http.Request) {
	letter := r.PathValue("letter")
	h.withSession(w, r, game.KindHangman, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.Hangman).CheckLetter(letter, now)
	})
}

// HangmanAskHint reveals a hint for the current word, lowering its
// maximum XP
func (h *GameHandler) HangmanAskHint(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, game.KindHangman, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.Hangman).AskHint(), nil
	})
}
