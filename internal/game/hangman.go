package game

import (
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	hangmanMaxWords      = 6
	hangmanPerWord       = 20 * time.Second
	hangmanWordMaxXP     = 5
	hangmanLifeThreshold = 0.80
)

// hangmanWord tracks the player's progress on the word being guessed
type hangmanWord struct {
	Word             Word     `json:"word"`
	Hints            int      `json:"nb_hints"`
	MaxHints         int      `json:"max_hint"`
	RemainingLetters int      `json:"remaining_letters"`
	SpacesPositions  []int    `json:"spaces_positions"`
	GoodLetters      []string `json:"good_letter"`
	BadLetters       []string `json:"bad_letter"`
	MaxXP            int      `json:"max_xp"`
}

// Hangman is the letter-guessing game. The player uncovers up to six
// words letter by letter, with hints that cost potential XP.
type Hangman struct {
	SessionID    string       `json:"id"`
	ListID       int64        `json:"list_id"`
	LessonID     int64        `json:"lesson_id"`
	Words        []Word       `json:"words"`
	WordsToCheck []Word       `json:"words_to_check"`
	TotalSeconds int          `json:"total_time"`
	StartedAt    time.Time    `json:"started_at"`
	DeadlineAt   time.Time    `json:"deadline_at"`
	XPTotal      int          `json:"xp_total"`
	Current      *hangmanWord `json:"current_word"`
}

// NewHangman creates a hangman session. Lists longer than six words are
// trimmed to a random six so playtime stays bounded.
func NewHangman(listID, lessonID int64, words []Word, now time.Time) *Hangman {
	pool := make([]Word, len(words))
	copy(pool, words)
	for len(pool) > hangmanMaxWords {
		i := rand.Intn(len(pool))
		pool = append(pool[:i], pool[i+1:]...)
	}
	toCheck := make([]Word, len(pool))
	copy(toCheck, pool)
	totalSeconds := len(pool) * int(hangmanPerWord/time.Second)
	return &Hangman{
		SessionID:    uuid.NewString(),
		ListID:       listID,
		LessonID:     lessonID,
		Words:        pool,
		WordsToCheck: toCheck,
		TotalSeconds: totalSeconds,
		StartedAt:    now,
		DeadlineAt:   now.Add(time.Duration(totalSeconds) * time.Second),
	}
}

func (g *Hangman) ID() string          { return g.SessionID }
func (g *Hangman) Kind() string        { return KindHangman }
func (g *Hangman) Deadline() time.Time { return g.DeadlineAt }

// NewWord banks the XP of the finished word and deals the next one.
// When no words remain it ends the game instead.
func (g *Hangman) NewWord(xp int, now time.Time) (Envelope, *Terminal) {
	if len(g.WordsToCheck) == 0 {
		return g.endGame(xp, now)
	}
	g.XPTotal += xp

	chosen := g.WordsToCheck[rand.Intn(len(g.WordsToCheck))]

	lastCorrect := false
	var lastBad []string
	lastWord := ""
	if g.Current != nil {
		lastCorrect = g.Current.RemainingLetters <= 1
		lastBad = g.Current.BadLetters
		lastWord = g.Current.Word.Text
	}

	var spaces []int
	for i, r := range []rune(chosen.Text) {
		if r == ' ' {
			spaces = append(spaces, i)
		}
	}
	chosen.Text = strings.ReplaceAll(chosen.Text, " ", "")

	maxHints := 2
	if len(chosen.Examples) > 0 {
		maxHints = 3
	}
	g.Current = &hangmanWord{
		Word:             chosen,
		MaxHints:         maxHints,
		RemainingLetters: utf8.RuneCountInString(chosen.Text),
		SpacesPositions:  spaces,
		GoodLetters:      []string{},
		BadLetters:       []string{},
		MaxXP:            hangmanWordMaxXP,
	}

	return OK("word_finished", map[string]interface{}{
		"bad":              lastBad,
		"last_word":        lastWord,
		"total_xp":         g.XPTotal,
		"xp_won":           xp,
		"len_word":         utf8.RuneCountInString(chosen.Text),
		"spaces_positions": spaces,
		"correct":          lastCorrect,
		"finished":         len(g.WordsToCheck) != len(g.Words),
	}), nil
}

// CheckLetter scores one guessed letter against the current word. A
// sixth wrong guess abandons the word and moves on with whatever XP is
// left on it.
func (g *Hangman) CheckLetter(letter string, now time.Time) (Envelope, *Terminal) {
	letter = strings.ToLower(letter)
	cur := g.Current
	wordLower := strings.ToLower(cur.Word.Text)

	for _, l := range append(append([]string{}, cur.GoodLetters...), cur.BadLetters...) {
		if strings.ToLower(l) == letter {
			return OK("already touch", nil), nil
		}
	}

	stop := len(cur.BadLetters) == 5 && !strings.Contains(wordLower, letter)
	if !strings.Contains(wordLower, letter) {
		switch b := len(cur.BadLetters); {
		case b < 2:
			cur.MaxXP = 5
		case b < 4:
			cur.MaxXP = 3
		case b == 4:
			cur.MaxXP = 2
		case b == 5:
			cur.MaxXP = 1
		default:
			cur.MaxXP = 0
		}
		cur.BadLetters = append(cur.BadLetters, letter)
		if !stop {
			return OK("wrong letter", map[string]interface{}{
				"good":     cur.GoodLetters,
				"bad":      cur.BadLetters,
				"correct":  false,
				"finished": false,
			}), nil
		}
	}

	if stop {
		return g.nextStep(now)
	}

	cur.GoodLetters = append(cur.GoodLetters, letter)
	var positions []int
	for i, r := range []rune(wordLower) {
		if string(r) == letter {
			positions = append(positions, i)
			cur.RemainingLetters--
		}
	}
	if cur.RemainingLetters == 0 {
		return g.nextStep(now)
	}
	return OK("correct letter", map[string]interface{}{
		"good":            cur.GoodLetters,
		"bad":             cur.BadLetters,
		"letter_position": positions,
		"correct":         true,
		"finished":        false,
	}), nil
}

// AskHint reveals progressively stronger hints, each capping the XP the
// word can still award. The third hint exists only for words that carry
// example sentences.
func (g *Hangman) AskHint() Envelope {
	cur := g.Current
	if cur.Hints >= cur.MaxHints {
		return NotFound("no hint")
	}
	used := cur.Hints
	cur.Hints++
	switch used {
	case 0:
		if cur.MaxXP > 4 {
			cur.MaxXP = 4
		}
		return OK("hint", map[string]interface{}{
			"title": "Word type",
			"hint":  cur.Word.Type,
		})
	case 1:
		if cur.MaxXP > 3 {
			cur.MaxXP = 3
		}
		if len(cur.Word.TranslatedExamples) > 0 {
			return OK("hint", map[string]interface{}{
				"title": "An example in the target language",
				"hint":  cur.Word.TranslatedExamples[0],
			})
		}
		return OK("hint", map[string]interface{}{
			"title": "The translated word",
			"hint":  cur.Word.Translation,
		})
	default:
		if cur.MaxXP > 2 {
			cur.MaxXP = 2
		}
		return OK("hint", map[string]interface{}{
			"title": "The translated word",
			"hint":  cur.Word.Translation,
		})
	}
}

// ForceEnd settles the session without banking the current word
func (g *Hangman) ForceEnd(now time.Time) Terminal {
	_, term := g.endGame(0, now)
	return *term
}

func (g *Hangman) nextStep(now time.Time) (Envelope, *Terminal) {
	curText := strings.ToLower(g.Current.Word.Text)
	for i, w := range g.WordsToCheck {
		if strings.ToLower(strings.ReplaceAll(w.Text, " ", "")) == curText {
			g.WordsToCheck = append(g.WordsToCheck[:i], g.WordsToCheck[i+1:]...)
			break
		}
	}
	if len(g.WordsToCheck) == 0 {
		return g.endGame(g.Current.MaxXP, now)
	}
	return g.NewWord(g.Current.MaxXP, now)
}

func (g *Hangman) endGame(xp int, now time.Time) (Envelope, *Terminal) {
	total := g.XPTotal + xp

	lives := 0
	if float64(total)/float64(len(g.Words)*hangmanWordMaxXP) < hangmanLifeThreshold {
		lives = 1
	}

	term := &Terminal{
		Outcome: Outcome{
			ListID:    g.ListID,
			LessonID:  g.LessonID,
			XP:        total,
			LivesLost: lives,
			Elapsed:   elapsedSeconds(g.StartedAt, now),
			Discount:  DiscountRound66,
		},
	}
	return Finished("The game is over!", nil), term
}
