package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	memoryMaxPairs      = 7
	memoryDuration      = 1 * time.Minute
	memoryBaseXP        = 20
	memoryLifeThreshold = 15
)

// Card is one face-down tile on the board. Pair links the two cards
// that match each other.
type Card struct {
	Text string `json:"text"`
	Pair int    `json:"pair"`
	Lang string `json:"lang"`
}

// Memory is the card-matching game: each word and its translation hide
// behind two cards and the player pairs them up before the minute runs
// out.
type Memory struct {
	SessionID  string    `json:"id"`
	ListID     int64     `json:"list_id"`
	LessonID   int64     `json:"lesson_id"`
	Pairs      int       `json:"pairs"`
	Cards      []Card    `json:"cards"`
	Board      []Card    `json:"board"`
	OpenCards  []Card    `json:"open_cards"`
	Tries      int       `json:"nbr_try"`
	StartedAt  time.Time `json:"started_at"`
	DeadlineAt time.Time `json:"deadline_at"`
}

// NewMemory creates a memory session. Lists longer than seven words are
// trimmed to a random seven so the board stays at fourteen cards.
func NewMemory(listID, lessonID int64, words []Word, now time.Time) *Memory {
	pool := make([]Word, len(words))
	copy(pool, words)
	for len(pool) > memoryMaxPairs {
		i := rand.Intn(len(pool))
		pool = append(pool[:i], pool[i+1:]...)
	}

	cards := make([]Card, 0, 2*len(pool))
	for i, w := range pool {
		cards = append(cards, Card{Text: w.Translation, Pair: i, Lang: "target"})
	}
	for i, w := range pool {
		cards = append(cards, Card{Text: w.Text, Pair: i, Lang: "source"})
	}

	return &Memory{
		SessionID:  uuid.NewString(),
		ListID:     listID,
		LessonID:   lessonID,
		Pairs:      len(pool),
		Cards:      cards,
		StartedAt:  now,
		DeadlineAt: now.Add(memoryDuration),
	}
}

func (g *Memory) ID() string          { return g.SessionID }
func (g *Memory) Kind() string        { return KindMemory }
func (g *Memory) Deadline() time.Time { return g.DeadlineAt }

// DealBoard shuffles the cards into their board positions and tells the
// client how many tiles to draw
func (g *Memory) DealBoard() Envelope {
	for len(g.Cards) > 0 {
		i := rand.Intn(len(g.Cards))
		g.Board = append(g.Board, g.Cards[i])
		g.Cards = append(g.Cards[:i], g.Cards[i+1:]...)
	}
	return OK("ok", map[string]interface{}{"nbr_cards": 2 * g.Pairs})
}

// Reveal turns over the card at a board position. On every second card
// it checks the pair, and when the last pair falls it ends the game.
func (g *Memory) Reveal(id int, now time.Time) (Envelope, *Terminal) {
	if id < 0 || id >= len(g.Board) {
		return Refused("unknown card", nil), nil
	}
	card := g.Board[id]
	matched := g.checkPair(card)

	if len(g.Cards) == len(g.Board) {
		env, term := g.endGame(now)
		term.Extra = map[string]interface{}{
			"innerHTML": card.Text,
			"checking":  matched,
		}
		return env, term
	}

	return OK("ok", map[string]interface{}{
		"innerHTML": card.Text,
		"checking":  matched,
	}), nil
}

// ForceEnd settles the session at zero, as on a timeout
func (g *Memory) ForceEnd(now time.Time) Terminal {
	term := &Terminal{
		Outcome: Outcome{
			ListID:    g.ListID,
			LessonID:  g.LessonID,
			XP:        0,
			LivesLost: 1,
			Elapsed:   elapsedSeconds(g.StartedAt, now),
			Discount:  DiscountRound66,
		},
	}
	return *term
}

// checkPair records the reveal and, on the second open card, resolves
// the pair. Matched cards go back to Cards, which doubles as the count
// of found pairs. It reports nil while a single card is open.
func (g *Memory) checkPair(card Card) interface{} {
	g.OpenCards = append(g.OpenCards, card)
	if len(g.OpenCards) != 2 {
		return nil
	}
	g.Tries++
	first, second := g.OpenCards[0], g.OpenCards[1]
	g.OpenCards = nil
	if first.Pair == second.Pair {
		g.Cards = append(g.Cards, first, second)
		return true
	}
	return false
}

func (g *Memory) endGame(now time.Time) (Envelope, *Terminal) {
	threshold := float64(g.Pairs) * 1.5
	xp := memoryBaseXP
	if float64(g.Tries) > threshold {
		xp = memoryBaseXP - int(math.Round(float64(g.Tries)-threshold))
		if xp < 0 {
			xp = 0
		}
	}

	lives := 0
	if xp < memoryLifeThreshold {
		lives = 1
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
