package game

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	snakeMaxWords   = 6
	snakePerWord    = 23 * time.Second
	snakeGridCells  = 16
	snakeWordMaxXP  = 5
	snakeFindTarget = 4
	snakeRockLabel  = "rock"
	snakeForbiddenX = 233
	snakeForbiddenY = 252
)

// Cell is one letter tile placed on the snake grid
type Cell struct {
	Letter string `json:"letter"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// Coordinate is a grid position reported by the client
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Snake is the grid game: the snake must eat the letters of a word in
// order while dodging rocks. Each fully collected word counts toward
// keeping the life.
type Snake struct {
	SessionID    string    `json:"id"`
	ListID       int64     `json:"list_id"`
	LessonID     int64     `json:"lesson_id"`
	Words        []Word    `json:"words"`
	Shuffle      []Word    `json:"shuffle"`
	Current      Word      `json:"current_word"`
	TotalSeconds int       `json:"total_time"`
	StartedAt    time.Time `json:"started_at"`
	DeadlineAt   time.Time `json:"deadline_at"`
	Checking     []Cell    `json:"final_checking"`
	XP           int       `json:"xp"`
	AllLetters   string    `json:"all_letters"`
	WordsFound   int       `json:"word_find"`
}

// NewSnake creates a snake session. Lists longer than six words are
// trimmed to a random six.
func NewSnake(listID, lessonID int64, words []Word, now time.Time) *Snake {
	pool := make([]Word, len(words))
	copy(pool, words)
	for len(pool) > snakeMaxWords {
		i := rand.Intn(len(pool))
		pool = append(pool[:i], pool[i+1:]...)
	}
	shuffle := make([]Word, len(pool))
	copy(shuffle, pool)
	rand.Shuffle(len(shuffle), func(i, j int) {
		shuffle[i], shuffle[j] = shuffle[j], shuffle[i]
	})
	var letters strings.Builder
	for _, w := range shuffle {
		letters.WriteString(w.Text)
	}
	totalSeconds := len(pool) * int(snakePerWord/time.Second)
	return &Snake{
		SessionID:    uuid.NewString(),
		ListID:       listID,
		LessonID:     lessonID,
		Words:        pool,
		Shuffle:      shuffle,
		TotalSeconds: totalSeconds,
		StartedAt:    now,
		DeadlineAt:   now.Add(time.Duration(totalSeconds) * time.Second),
		AllLetters:   letters.String(),
	}
}

func (g *Snake) ID() string          { return g.SessionID }
func (g *Snake) Kind() string        { return KindSnake }
func (g *Snake) Deadline() time.Time { return g.DeadlineAt }

// NewWord deals the next word and scatters its letters over the grid,
// padding with rocks up to sixteen tiles. When no words remain it ends
// the game.
func (g *Snake) NewWord(now time.Time) (Envelope, *Terminal) {
	if len(g.Shuffle) == 0 {
		return g.endGame(0, now)
	}
	g.Current = g.Shuffle[len(g.Shuffle)-1]
	g.Shuffle = g.Shuffle[:len(g.Shuffle)-1]

	var spaces []int
	for i, r := range []rune(g.Current.Text) {
		if r == ' ' {
			spaces = append(spaces, i)
		}
	}
	text := strings.ReplaceAll(g.Current.Text, " ", "")

	var cells []Cell
	for _, r := range text {
		cells = append(cells, g.placeCell(cells, strings.ToUpper(string(r))))
	}
	g.Checking = cells

	for len(cells) < snakeGridCells {
		cells = append(cells, g.placeCell(cells, snakeRockLabel))
	}

	return OK("ok", map[string]interface{}{
		"coo":             cells,
		"space_positions": spaces,
		"translation":     g.Current.Translation,
	}), nil
}

// CheckCoordinates replays the client's eaten-letter positions against
// the dealt grid. A mismatch is excused when another tile holds the
// same letter at that position; a real fault scores the word partially.
func (g *Snake) CheckCoordinates(coords []Coordinate, now time.Time) (Envelope, *Terminal) {
	credit := 0
	for i, c := range coords {
		if i >= len(g.Checking) {
			break
		}
		if g.Checking[i].X == c.X && g.Checking[i].Y == c.Y {
			credit++
			continue
		}
		excused := false
		for _, cell := range g.Checking {
			if cell.X == c.X && cell.Y == c.Y && cell.Letter == g.Checking[i].Letter {
				excused = true
				break
			}
		}
		if !excused {
			xpWord := g.bankWordXP(credit)
			return OK("ok", map[string]interface{}{
				"xp":    xpWord,
				"xpTot": g.XP,
			}), nil
		}
		credit++
	}

	text := strings.ReplaceAll(g.Current.Text, " ", "")
	if credit == len([]rune(text)) {
		g.WordsFound++
	}
	xpWord := g.bankWordXP(credit)

	if len(g.Shuffle) == 0 {
		return g.endGame(xpWord, now)
	}
	return OK("ok", map[string]interface{}{
		"xp":    xpWord,
		"xpTot": g.XP,
	}), nil
}

// ForceEnd settles the session with no credit for the word in play
func (g *Snake) ForceEnd(now time.Time) Terminal {
	_, term := g.endGame(0, now)
	return *term
}

// bankWordXP converts eaten-letter credit into the word's XP, capped at
// five, and adds it to the running total
func (g *Snake) bankWordXP(credit int) int {
	if credit == 0 {
		return 0
	}
	xp := int(math.Ceil(float64(credit) / 2))
	if xp > snakeWordMaxXP {
		xp = snakeWordMaxXP
	}
	g.XP += xp
	return xp
}

func (g *Snake) placeCell(taken []Cell, letter string) Cell {
	for {
		x := rand.Intn(15)*32 + 9
		y := (rand.Intn(15)+1)*32 - 4
		if x == snakeForbiddenX && y == snakeForbiddenY {
			continue
		}
		collision := false
		for _, cell := range taken {
			if cell.X == x && cell.Y == y {
				collision = true
				break
			}
		}
		if !collision {
			return Cell{Letter: letter, X: x, Y: y}
		}
	}
}

func (g *Snake) endGame(lastWordXP int, now time.Time) (Envelope, *Terminal) {
	lives := 0
	if g.WordsFound < snakeFindTarget {
		lives = 1
	}
	term := &Terminal{
		Outcome: Outcome{
			ListID:    g.ListID,
			LessonID:  g.LessonID,
			XP:        g.XP,
			LivesLost: lives,
			Elapsed:   elapsedSeconds(g.StartedAt, now),
			Discount:  DiscountTwoThirdsFloor,
		},
		Extra: map[string]interface{}{
			"xpAnim": lastWordXP,
			"xpTot":  g.XP,
		},
	}
	return Finished("The game is over!", nil), term
}
