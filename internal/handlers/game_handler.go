package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"wordquest/internal/database"
	"wordquest/internal/game"
	"wordquest/internal/models"
	"wordquest/internal/repository"
	"wordquest/internal/service"
	"wordquest/internal/session"
)

// gameKinds maps the path segment of a game route to its engine kind
// and lesson game-type id.
var gameKinds = map[string]int{
	game.KindSnake:        models.GameSnake,
	game.KindHangman:      models.GameHangman,
	game.KindMemory:       models.GameMemory,
	game.KindFallingWord:  models.GameFallingWord,
	game.KindMemowordrize: models.GameMemowordrize,
	game.KindTypeFast:     models.GameTypeFast,
	game.KindQuiz:         models.GameQuiz,
}

// GameHandler serves the seven mini-games. All games share the same
// entry gate, the same in-memory session slot, and the same settlement
// path; only the engine behind each route differs.
type GameHandler struct {
	db                  *database.DB
	store               *session.Store
	lists               *repository.ListRepository
	lessons             *repository.LessonRepository
	rewards             *service.RewardService
	settlement          *service.SettlementService
	similarWords        game.SimilarFunc
	similarTranslations game.SimilarFunc
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	db *database.DB,
	store *session.Store,
	lists *repository.ListRepository,
	lessons *repository.LessonRepository,
	rewards *service.RewardService,
	settlement *service.SettlementService,
	similarWords game.SimilarFunc,
	similarTranslations game.SimilarFunc,
) *GameHandler {
	return &GameHandler{
		db:                  db,
		store:               store,
		lists:               lists,
		lessons:             lessons,
		rewards:             rewards,
		settlement:          settlement,
		similarWords:        similarWords,
		similarTranslations: similarTranslations,
	}
}

// builder creates a game session over the lesson's words and returns
// the payload the client needs to render the first screen.
type builder func(listID, lessonID int64, words []game.Word, now time.Time) (game.Session, game.Envelope)

// enter runs the shared entry gate and starts a new game session. The
// player needs at least one life, the list must be theirs, and the
// lesson must be the first of the list or follow a completed one. A
// game already in flight is replaced.
func (h *GameHandler) enter(w http.ResponseWriter, r *http.Request, gameID int, build builder) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	listID, err := strconv.ParseInt(r.PathValue("listId"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", "", nil)
		return
	}

	lives, err := h.rewards.Lives(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error reading lives balance", err)
		return
	}
	if lives < 1 {
		respondEnvelope(w, game.Refused(MsgNoLives, nil))
		return
	}

	list, err := h.lists.GetListByID(listID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading list", err)
		return
	}
	if list == nil || list.UserID != user.ID {
		respondEnvelope(w, game.NotFound(MsgListNotFound))
		return
	}

	lesson, err := h.playableLesson(listID, gameID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading lessons", err)
		return
	}
	if lesson == nil {
		respondEnvelope(w, game.Refused(MsgLessonLocked, nil))
		return
	}

	words, err := h.lists.GetWordsByList(listID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading words", err)
		return
	}
	if len(words) == 0 {
		respondEnvelope(w, game.Refused(MsgListEmpty, nil))
		return
	}

	now := time.Now()
	sess, env := build(listID, lesson.ID, toGameWords(words), now)

	data, err := game.Encode(sess)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error encoding game state", err)
		return
	}
	h.store.Put(user.ID, data)

	result := map[string]interface{}{
		"session_id": sess.ID(),
		"game":       sess.Kind(),
		"time":       game.RemainingSeconds(sess, now),
	}
	if m, ok := env.Result.(map[string]interface{}); ok {
		for k, v := range m {
			result[k] = v
		}
	} else if env.Result != nil {
		result["payload"] = env.Result
	}
	env.Result = result
	respondEnvelope(w, env)
}

// withSession is the guard every action route passes through. It loads
// the user's game under the session lock, force-settles on a stale id
// or a passed deadline, runs the action, and either persists the new
// state or settles and clears the slot when the action ended the game.
func (h *GameHandler) withSession(w http.ResponseWriter, r *http.Request, kind string, fn func(s game.Session, now time.Time) (game.Envelope, *game.Terminal)) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	sessionID := r.PathValue("sessionId")
	now := time.Now()

	var env game.Envelope
	err := h.store.Update(user.ID, func(current []byte) ([]byte, error) {
		if current == nil {
			env = game.NotFound(MsgGameNotFound)
			return nil, nil
		}

		sess, err := game.Decode(current)
		if err != nil {
			// Stale schema or unknown kind: drop the state, the
			// client has to start over
			log.Printf("Dropping undecodable game state for user %d: %v", user.ID, err)
			env = game.NotFound(MsgGameNotFound)
			return nil, nil
		}

		if sess.Kind() != kind || sess.ID() != sessionID || game.Expired(sess, now) {
			term := sess.ForceEnd(now)
			env = h.settleTerminal(user.ID, term, game.Finished(MsgGameOver, nil))
			return nil, nil
		}

		actionEnv, term := fn(sess, now)
		if term != nil {
			env = h.settleTerminal(user.ID, *term, actionEnv)
			return nil, nil
		}

		next, err := game.Encode(sess)
		if err != nil {
			return current, err
		}
		env = actionEnv
		return next, nil
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error updating game state", err)
		return
	}

	respondEnvelope(w, env)
}

// settleTerminal books the outcome and builds the final envelope from
// the settled numbers plus whatever extras the engine attached.
func (h *GameHandler) settleTerminal(userID int64, term game.Terminal, env game.Envelope) game.Envelope {
	settled, err := h.settlement.Settle(userID, term.Outcome)
	if err != nil {
		log.Printf("Error settling game for user %d: %v", userID, err)
		return game.Envelope{Code: game.CodeError, Message: MsgSettleError}
	}

	result := map[string]interface{}{
		"time":       settled.Elapsed,
		"xp":         settled.XP,
		"lost_lives": settled.LivesLost,
	}
	if settled.GemsWon > 0 {
		result["gems"] = settled.GemsWon
	}
	for k, v := range term.Extra {
		result[k] = v
	}
	env.Result = result
	return env
}

// playableLesson finds the list's lesson for the given game type that
// the player may enter: the first lesson, or one whose predecessor in
// the list order is completed.
func (h *GameHandler) playableLesson(listID int64, gameID int) (*models.Lesson, error) {
	lessons, err := h.lessons.GetLessonsByList(h.db, listID)
	if err != nil {
		return nil, err
	}
	for i, lesson := range lessons {
		if lesson.GameID != gameID {
			continue
		}
		if i == 0 || lessons[i-1].Completed {
			return &lessons[i], nil
		}
	}
	return nil, nil
}

// Status reports whether the game identified by the path is still
// running and how much time remains. An expired or unknown game goes
// through the same guard as any other action.
func (h *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("game")
	if _, ok := gameKinds[kind]; !ok {
		respondEnvelope(w, game.NotFound(MsgGameNotFound))
		return
	}
	h.withSession(w, r, kind, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return game.OK(MsgGameRunning, map[string]interface{}{
			"time": game.RemainingSeconds(s, now),
		}), nil
	})
}

// Snapshot returns the public view of the running game, enough for a
// client to resume its screen after a reload.
func (h *GameHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("game")
	if _, ok := gameKinds[kind]; !ok {
		respondEnvelope(w, game.NotFound(MsgGameNotFound))
		return
	}
	h.withSession(w, r, kind, func(s game.Session, now time.Time) (game.Envelope, *game.Terminal) {
		return game.OK(MsgGameRunning, map[string]interface{}{
			"session_id": s.ID(),
			"game":       s.Kind(),
			"time":       game.RemainingSeconds(s, now),
		}), nil
	})
}

func toGameWords(words []models.VocabWord) []game.Word {
	out := make([]game.Word, len(words))
	for i, w := range words {
		out[i] = game.Word{
			Text:               w.Word,
			Translation:        w.Translation,
			Type:               w.Type,
			Examples:           w.Examples,
			TranslatedExamples: w.TranslatedExamples,
			ImageURL:           w.ImageURL,
		}
	}
	return out
}
