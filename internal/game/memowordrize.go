package game

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	memowordrizeDuration      = 5 * time.Minute
	memowordrizeRounds        = 4
	memowordrizeRows          = 6
	memowordrizeCols          = 5
	memowordrizeMaxViews      = 3
	memowordrizeRoundXP       = 5.0
	memowordrizeFaultCost     = 0.3
	memowordrizeLifeThreshold = 15
)

// PathCell is one tile of the memorized path. Position encodes the
// column within a flattened grid of five columns per row.
type PathCell struct {
	CellID   string `json:"id"`
	Line     int    `json:"line"`
	Position int    `json:"position"`
	Word     Word   `json:"word"`
	Checked  bool   `json:"checked"`
}

type memoPath struct {
	Tries int        `json:"tries"`
	Cells []PathCell `json:"path"`
}

// Memowordrize is the path-memorization game: a word-labelled path
// lights up through a grid and the player retraces it from memory,
// placing the right word on each tile.
type Memowordrize struct {
	SessionID  string    `json:"id"`
	ListID     int64     `json:"list_id"`
	LessonID   int64     `json:"lesson_id"`
	Words      []Word    `json:"words"`
	StartedAt  time.Time `json:"started_at"`
	DeadlineAt time.Time `json:"deadline_at"`
	Path       *memoPath `json:"current_path"`
	XP         float64   `json:"xp"`
	Faults     int       `json:"faults"`
	Rounds     int       `json:"game_count"`
}

// NewMemowordrize creates a memowordrize session
func NewMemowordrize(listID, lessonID int64, words []Word, now time.Time) *Memowordrize {
	return &Memowordrize{
		SessionID:  uuid.NewString(),
		ListID:     listID,
		LessonID:   lessonID,
		Words:      words,
		StartedAt:  now,
		DeadlineAt: now.Add(memowordrizeDuration),
	}
}

func (g *Memowordrize) ID() string          { return g.SessionID }
func (g *Memowordrize) Kind() string        { return KindMemowordrize }
func (g *Memowordrize) Deadline() time.Time { return g.DeadlineAt }

// SeePath shows the current path again, up to three views per round.
// At the very start of the game it deals the first path instead.
func (g *Memowordrize) SeePath(now time.Time) (Envelope, *Terminal) {
	if g.Path == nil {
		return g.NextPath(now)
	}
	if g.Path.Tries >= memowordrizeMaxViews {
		return Refused("Path seen too many times!", nil), nil
	}
	g.Path.Tries++
	return OK("Here is the path!", map[string]interface{}{
		"tries": g.Path.Tries,
		"path":  g.cellViews(),
		"words": g.shuffledWords(),
	}), nil
}

// NextPath awards the finished round and deals a fresh path. After the
// last round it ends the game.
func (g *Memowordrize) NextPath(now time.Time) (Envelope, *Terminal) {
	if g.Rounds >= memowordrizeRounds {
		return g.endGame(now)
	}
	g.Rounds++

	col := rand.Intn(memowordrizeCols) + 1
	cells := make([]PathCell, 0, memowordrizeRows)
	for row := 0; row < memowordrizeRows; row++ {
		if row > 0 {
			// Step left, right, or stay, clamped at the edges
			choices := []int{col}
			if col < memowordrizeCols {
				choices = append(choices, col+1)
			} else {
				choices = append(choices, memowordrizeCols)
			}
			if col > 1 {
				choices = append(choices, col-1)
			} else {
				choices = append(choices, 1)
			}
			col = choices[rand.Intn(len(choices))]
		}
		// Words stay in the pool so short lists never stall the game
		word := g.Words[rand.Intn(len(g.Words))]
		cells = append(cells, PathCell{
			CellID:   uuid.NewString(),
			Line:     row + 1,
			Position: col + row*memowordrizeCols,
			Word:     word,
		})
	}
	g.Path = &memoPath{Cells: cells}

	xpWon := memowordrizeRoundXP - float64(g.Faults)*memowordrizeFaultCost
	if xpWon < 0 {
		xpWon = 0
	}
	g.XP += math.Round(xpWon*100) / 100

	return OK("The game is ready!", map[string]interface{}{
		"finished": true,
		"xp":       int(math.Round(xpWon)),
		"tries":    0,
		"path":     g.cellViews(),
		"words":    g.shuffledWords(),
	}), nil
}

// CheckCase tries to place a word on a tile. A wrong word on a path
// tile counts a fault and resets the round's progress; a position off
// the path is rejected without touching the state.
func (g *Memowordrize) CheckCase(position int, word string, now time.Time) (Envelope, *Terminal) {
	if g.Path == nil {
		return NotFound("The path was not found!"), nil
	}
	var target *PathCell
	for i := range g.Path.Cells {
		if g.Path.Cells[i].Position == position {
			target = &g.Path.Cells[i]
			break
		}
	}
	if target == nil {
		return NotFound("The path was not found!"), nil
	}

	if strings.EqualFold(target.Word.Text, word) {
		target.Checked = true
		for _, cell := range g.Path.Cells {
			if !cell.Checked {
				return OK("The word is correct!", map[string]interface{}{
					"finished": false,
					"tries":    g.Path.Tries,
				}), nil
			}
		}
		return g.NextPath(now)
	}

	g.Faults++
	for i := range g.Path.Cells {
		g.Path.Cells[i].Checked = false
	}
	return Refused("The word is incorrect!", map[string]interface{}{
		"tries": g.Path.Tries,
		"words": g.shuffledWords(),
	}), nil
}

// ForceEnd settles the session with the XP banked so far
func (g *Memowordrize) ForceEnd(now time.Time) Terminal {
	_, term := g.endGame(now)
	return *term
}

func (g *Memowordrize) endGame(now time.Time) (Envelope, *Terminal) {
	lives := 0
	if g.XP < memowordrizeLifeThreshold {
		lives = 1
	}
	term := &Terminal{
		Outcome: Outcome{
			ListID:    g.ListID,
			LessonID:  g.LessonID,
			XP:        int(math.Round(g.XP)),
			LivesLost: lives,
			Elapsed:   elapsedSeconds(g.StartedAt, now),
			Discount:  DiscountRound66,
		},
	}
	return Finished("The game is over!", nil), term
}

// cellViews hides the words so the client only learns tile layout
func (g *Memowordrize) cellViews() []map[string]interface{} {
	views := make([]map[string]interface{}, 0, len(g.Path.Cells))
	for _, cell := range g.Path.Cells {
		views = append(views, map[string]interface{}{
			"id":       cell.CellID,
			"line":     cell.Line,
			"position": cell.Position,
			"checked":  cell.Checked,
		})
	}
	return views
}

func (g *Memowordrize) shuffledWords() []string {
	words := make([]string, 0, len(g.Path.Cells))
	for _, cell := range g.Path.Cells {
		words = append(words, cell.Word.Text)
	}
	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	return words
}
