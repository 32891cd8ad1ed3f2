package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	fallingWordDuration = 30 * time.Second
	fallingWordDuos     = 30
	fallingWordMaxBad   = 5
)

// Duo is one word pairing shown to the player, who decides whether the
// pairing is correct.
type Duo struct {
	Indice   int       `json:"indice"`
	Pair     [2]string `json:"duo"`
	Checking bool      `json:"checking"`
}

// FallingWord is the pairing game: duos of word and translation fall
// down the screen and the player flags the mismatched ones before the
// timer runs out.
type FallingWord struct {
	SessionID  string    `json:"id"`
	ListID     int64     `json:"list_id"`
	LessonID   int64     `json:"lesson_id"`
	Words      []Word    `json:"words"`
	Shuffle    []Word    `json:"shuffle"`
	StartedAt  time.Time `json:"started_at"`
	DeadlineAt time.Time `json:"deadline_at"`
	Answers    []bool    `json:"answers"`
	Duos       []Duo     `json:"duos"`
}

// NewFallingWord creates a falling-word session over the list's words
func NewFallingWord(listID, lessonID int64, words []Word, now time.Time) *FallingWord {
	shuffle := make([]Word, len(words))
	copy(shuffle, words)
	rand.Shuffle(len(shuffle), func(i, j int) {
		shuffle[i], shuffle[j] = shuffle[j], shuffle[i]
	})
	return &FallingWord{
		SessionID:  uuid.NewString(),
		ListID:     listID,
		LessonID:   lessonID,
		Words:      words,
		Shuffle:    shuffle,
		StartedAt:  now,
		DeadlineAt: now.Add(fallingWordDuration),
	}
}

func (g *FallingWord) ID() string          { return g.SessionID }
func (g *FallingWord) Kind() string        { return KindFallingWord }
func (g *FallingWord) Deadline() time.Time { return g.DeadlineAt }

// NewDuos builds the batch of duos for the round. Roughly a third of
// them pair a word with its real translation; the rest swap in a close
// neighbor from the similarity index, or a one-letter corruption when
// the index has nothing.
func (g *FallingWord) NewDuos(similar SimilarFunc) Envelope {
	for i := 0; i < fallingWordDuos; i++ {
		if len(g.Shuffle) == 0 {
			break
		}
		truthy := rand.Intn(6) < 2
		indice := len(g.Answers)

		word := g.Shuffle[len(g.Shuffle)-1]
		g.Shuffle = g.Shuffle[:len(g.Shuffle)-1]

		// Reinsert so the pool never drains mid-round
		newIndex := 0
		if len(g.Words) > 1 {
			newIndex = rand.Intn(len(g.Words) - 1)
		}
		g.Shuffle = append(g.Shuffle, Word{})
		copy(g.Shuffle[newIndex+1:], g.Shuffle[newIndex:])
		g.Shuffle[newIndex] = word

		if truthy {
			g.Answers = append(g.Answers, true)
			g.Duos = append(g.Duos, Duo{
				Indice:   indice,
				Pair:     [2]string{word.Text, word.Translation},
				Checking: true,
			})
			continue
		}

		g.Answers = append(g.Answers, false)
		neighbors := similar(word.Text)
		var impostor string
		if len(neighbors) > 0 {
			impostor = neighbors[rand.Intn(len(neighbors))]
		} else {
			impostor = corruptLetter(word.Text)
		}
		g.Duos = append(g.Duos, Duo{
			Indice:   indice,
			Pair:     [2]string{impostor, word.Translation},
			Checking: false,
		})
	}
	return OK("good duo", g.Duos)
}

// CheckAnswers scores the player's submitted answer list and ends the
// game. Each entry is either "false" for a flagged duo or the index of
// an accepted one; "vide" as the first entry means nothing was answered.
func (g *FallingWord) CheckAnswers(answers []string, now time.Time) (Envelope, *Terminal) {
	good, bad := 0, 0
	if len(answers) == 0 || answers[0] == "vide" {
		return g.endGame(0, 0, now)
	}
	for _, a := range answers {
		if a == "false" {
			bad++
			if bad == fallingWordMaxBad {
				return g.endGame(good, bad, now)
			}
			continue
		}
		idx := parseIndex(a)
		if idx >= 0 && idx < len(g.Answers) && g.Answers[idx] {
			good++
		} else {
			bad++
			if bad == fallingWordMaxBad {
				return g.endGame(good, bad, now)
			}
		}
	}
	return g.endGame(good, bad, now)
}

// ForceEnd settles the session with no answers scored
func (g *FallingWord) ForceEnd(now time.Time) Terminal {
	_, term := g.endGame(0, 0, now)
	return *term
}

func (g *FallingWord) endGame(good, bad int, now time.Time) (Envelope, *Terminal) {
	xp := good * 2

	var lives int
	switch {
	case bad == 0 && good == 0:
		lives = 1
	case bad == 0:
		lives = 0
	case bad == fallingWordMaxBad || float64(good)/float64(bad) < 3:
		lives = 1
	default:
		lives = 0
	}

	term := &Terminal{
		Outcome: Outcome{
			ListID:    g.ListID,
			LessonID:  g.LessonID,
			XP:        xp,
			LivesLost: lives,
			Elapsed:   elapsedSeconds(g.StartedAt, now),
			Discount:  DiscountRound66,
		},
	}
	return Finished("The game is over!", nil), term
}

func corruptLetter(word string) string {
	if word == "" {
		return word
	}
	const letters = "abcdefghijklmnopqrstuvwxyz"
	runes := []rune(word)
	pos := rand.Intn(len(runes))
	runes[pos] = rune(letters[rand.Intn(len(letters))])
	return string(runes)
}
