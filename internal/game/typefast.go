package game

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	typeFastDuration  = 2 * time.Minute
	typeFastGemsBonus = 200
)

// TypeFast is the speed-typing game: the player types every word of
// the list within two minutes. Finishing the whole list first time
// pays a gem bonus on top of the XP.
type TypeFast struct {
	SessionID    string    `json:"id"`
	ListID       int64     `json:"list_id"`
	LessonID     int64     `json:"lesson_id"`
	Words        []Word    `json:"words"`
	WordsToCheck []Word    `json:"words_to_check"`
	StartedAt    time.Time `json:"started_at"`
	DeadlineAt   time.Time `json:"deadline_at"`
}

// NewTypeFast creates a typefast session over the full list
func NewTypeFast(listID, lessonID int64, words []Word, now time.Time) *TypeFast {
	toCheck := make([]Word, len(words))
	copy(toCheck, words)
	return &TypeFast{
		SessionID:    uuid.NewString(),
		ListID:       listID,
		LessonID:     lessonID,
		Words:        words,
		WordsToCheck: toCheck,
		StartedAt:    now,
		DeadlineAt:   now.Add(typeFastDuration),
	}
}

func (g *TypeFast) ID() string          { return g.SessionID }
func (g *TypeFast) Kind() string        { return KindTypeFast }
func (g *TypeFast) Deadline() time.Time { return g.DeadlineAt }

// CheckWord crosses off a typed word. Typing the last word ends the
// game; an unknown word is rejected without penalty.
func (g *TypeFast) CheckWord(word string, now time.Time) (Envelope, *Terminal) {
	if now.After(g.DeadlineAt) || len(g.WordsToCheck) == 0 {
		return g.endGame(now)
	}

	typed := strings.TrimSpace(word)
	for i, w := range g.WordsToCheck {
		if strings.TrimSpace(w.Text) != typed {
			continue
		}
		g.WordsToCheck = append(g.WordsToCheck[:i], g.WordsToCheck[i+1:]...)
		if len(g.WordsToCheck) == 0 {
			return g.endGame(now)
		}
		elapsed := now.Sub(g.StartedAt).Seconds()
		xp := int(math.Round(float64(len(g.Words)*2) / elapsed * 10))
		return OK("The word was found!", map[string]interface{}{
			"remaining":  len(g.WordsToCheck),
			"time":       g.StartedAt,
			"xp":         xp,
			"lost_lives": 0,
		}), nil
	}

	return NotFound("The word was not found!"), nil
}

// ForceEnd settles the session scoring the words typed so far
func (g *TypeFast) ForceEnd(now time.Time) Terminal {
	_, term := g.endGame(now)
	return *term
}

func (g *TypeFast) endGame(now time.Time) (Envelope, *Terminal) {
	elapsed := now.Sub(g.StartedAt).Seconds()
	done := len(g.Words) - len(g.WordsToCheck)
	xp := 0
	if elapsed > 0 {
		xp = int(math.Round(float64(done*5) / elapsed * 10))
	}

	lives := 0
	if len(g.WordsToCheck) > 0 {
		lives = 1
	}

	gems := 0
	if lives == 0 {
		gems = typeFastGemsBonus
	}

	term := &Terminal{
		Outcome: Outcome{
			ListID:    g.ListID,
			LessonID:  g.LessonID,
			XP:        xp,
			LivesLost: lives,
			Elapsed:   elapsedSeconds(g.StartedAt, now),
			Discount:  DiscountRound66,
			GemsBonus: gems,
		},
		Extra: map[string]interface{}{
			"remaining": len(g.WordsToCheck),
		},
	}
	return Finished("The game is over!", nil), term
}
