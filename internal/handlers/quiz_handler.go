package handlers

import (
	"net/http"
	"strconv"
	"time"

	"wordquest/internal/game"
	"wordquest/internal/models"
)

// EnterQuiz starts a quiz on a list and asks the first question
func (h *GameHandler) EnterQuiz(w http.ResponseWriter, r *http.Request) {
	h.enter(w, r, models.GameQuiz, func(listID, lessonID int64, words []game.Word, now time.Time) (game.Session, game.Envelope) {
		sess := game.NewQuiz(listID, lessonID, words, now)
		env, _ := sess.AskNextQuestion(true, h.similarWords, h.similarTranslations, now)
		return sess, env
	})
}

// QuizCheckAnswer scores the chosen answer position and moves to the
// next question. An unparsable position counts as a wrong answer.
func (h *GameHandler) QuizCheckAnswer(w http.ResponseWriter, r *http.Request) {
	answer, err := strconv.Atoi(r.PathValue("answer"))
	if err != nil {
		answer = 0
	}

	h.withSession(w, r, game.KindQuiz, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return s.(*game.Quiz).CheckAnswer(answer, h.similarWords, h.similarTranslations, now)
	})
}

// QuizAudio returns the text behind the current audio question. Speech
// synthesis happens client-side.
func (h *GameHandler) QuizAudio(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, game.KindQuiz, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		text := s.(*game.Quiz).AudioText()
		if text == "" {
			return game.NotFound("No audio question is running."), nil
		}
		return game.OK("audio", map[string]interface{}{"text": text}), nil
	})
}
