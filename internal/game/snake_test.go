package game

import (
	"strings"
	"testing"
	"time"
)

func TestSnakeNewWordPlacement(t *testing.T) {
	now := time.Now()
	g := NewSnake(1, 2, []Word{{Text: "ab cd", Translation: "efgh"}}, now)

	if g.TotalSeconds != 23 {
		t.Errorf("total seconds = %d, want 23", g.TotalSeconds)
	}

	env, term := g.NewWord(now)
	if term != nil {
		t.Fatal("dealing the first word ended the game")
	}
	result := env.Result.(map[string]interface{})

	spaces := result["space_positions"].([]int)
	if len(spaces) != 1 || spaces[0] != 2 {
		t.Errorf("space positions = %v, want [2]", spaces)
	}
	if result["translation"] != "efgh" {
		t.Errorf("translation = %v, want efgh", result["translation"])
	}

	cells := result["coo"].([]Cell)
	if len(cells) != 16 {
		t.Fatalf("grid cells = %d, want 16", len(cells))
	}
	if len(g.Checking) != 4 {
		t.Fatalf("letter cells = %d, want 4", len(g.Checking))
	}
	for i, letter := range []string{"A", "B", "C", "D"} {
		if g.Checking[i].Letter != letter {
			t.Errorf("cell %d letter = %q, want %q", i, g.Checking[i].Letter, letter)
		}
	}
	for i := 4; i < 16; i++ {
		if cells[i].Letter != "rock" {
			t.Errorf("cell %d = %q, want a rock", i, cells[i].Letter)
		}
	}

	// No two tiles share a position and none sits on the excluded spot
	seen := map[[2]int]bool{}
	for _, cell := range cells {
		key := [2]int{cell.X, cell.Y}
		if seen[key] {
			t.Errorf("two tiles at %v", key)
		}
		seen[key] = true
		if cell.X == 233 && cell.Y == 252 {
			t.Error("tile placed on the excluded spot")
		}
	}
}

func TestSnakeTrimsLongLists(t *testing.T) {
	now := time.Now()
	g := NewSnake(1, 2, makeWords(10), now)
	if len(g.Words) != 6 {
		t.Errorf("words = %d, want the cap of 6", len(g.Words))
	}
	var letters strings.Builder
	for _, w := range g.Shuffle {
		letters.WriteString(w.Text)
	}
	if g.AllLetters != letters.String() {
		t.Error("AllLetters does not match the shuffled pool")
	}
}

func TestSnakeCheckCoordinatesFullWord(t *testing.T) {
	now := time.Now()
	g := NewSnake(1, 2, []Word{{Text: "abcd", Translation: "efgh"}}, now)
	g.NewWord(now)

	coords := make([]Coordinate, len(g.Checking))
	for i, cell := range g.Checking {
		coords[i] = Coordinate{X: cell.X, Y: cell.Y}
	}

	env, term := g.CheckCoordinates(coords, now.Add(20*time.Second))
	if term == nil {
		t.Fatal("collecting the last word did not end the game")
	}
	if env.Code != CodeFinished {
		t.Errorf("code = %d, want %d", env.Code, CodeFinished)
	}
	if g.WordsFound != 1 {
		t.Errorf("words found = %d, want 1", g.WordsFound)
	}
	// ceil(4 eaten letters / 2) = 2
	if term.Outcome.XP != 2 {
		t.Errorf("XP = %d, want 2", term.Outcome.XP)
	}
	if term.Outcome.LivesLost != 1 {
		t.Errorf("LivesLost = %d, want 1 below four found words", term.Outcome.LivesLost)
	}
	if term.Outcome.Discount != DiscountTwoThirdsFloor {
		t.Errorf("Discount = %v, want DiscountTwoThirdsFloor", term.Outcome.Discount)
	}
	if term.Extra["xpAnim"] != 2 {
		t.Errorf("xpAnim = %v, want 2", term.Extra["xpAnim"])
	}
}

func TestSnakeExcusedMismatch(t *testing.T) {
	now := time.Now()
	g := NewSnake(1, 2, makeWords(2), now)
	g.Current = Word{Text: "aba", Translation: "x"}
	g.Checking = []Cell{
		{Letter: "A", X: 9, Y: 28},
		{Letter: "B", X: 41, Y: 60},
		{Letter: "A", X: 73, Y: 92},
	}

	// First coordinate hits the other A tile, which is excused
	coords := []Coordinate{
		{X: 73, Y: 92},
		{X: 41, Y: 60},
		{X: 73, Y: 92},
	}
	env, term := g.CheckCoordinates(coords, now)
	if term != nil {
		t.Fatal("check ended the game with words remaining")
	}
	result := env.Result.(map[string]interface{})
	// ceil(3 / 2) = 2
	if result["xp"] != 2 {
		t.Errorf("xp = %v, want 2", result["xp"])
	}
	if g.WordsFound != 1 {
		t.Errorf("words found = %d, want 1", g.WordsFound)
	}
}

func TestSnakeRealFaultScoresPartially(t *testing.T) {
	now := time.Now()
	g := NewSnake(1, 2, makeWords(2), now)
	g.Current = Word{Text: "ab", Translation: "x"}
	g.Checking = []Cell{
		{Letter: "A", X: 9, Y: 28},
		{Letter: "B", X: 41, Y: 60},
	}

	coords := []Coordinate{
		{X: 9, Y: 28},
		{X: 200, Y: 200},
	}
	env, term := g.CheckCoordinates(coords, now)
	if term != nil {
		t.Fatal("fault ended the game")
	}
	result := env.Result.(map[string]interface{})
	// One eaten letter: ceil(1 / 2) = 1
	if result["xp"] != 1 {
		t.Errorf("xp = %v, want 1", result["xp"])
	}
	if g.WordsFound != 0 {
		t.Errorf("words found = %d, want 0", g.WordsFound)
	}
}

func TestSnakeBankWordXP(t *testing.T) {
	tests := []struct {
		name   string
		credit int
		want   int
	}{
		{name: "no credit", credit: 0, want: 0},
		{name: "one letter", credit: 1, want: 1},
		{name: "four letters", credit: 4, want: 2},
		{name: "long word capped at five", credit: 12, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSnake(1, 2, makeWords(2), time.Now())
			if got := g.bankWordXP(tt.credit); got != tt.want {
				t.Errorf("bankWordXP(%d) = %d, want %d", tt.credit, got, tt.want)
			}
		})
	}
}

func TestSnakeEmptyPoolEndsGame(t *testing.T) {
	now := time.Now()
	g := NewSnake(1, 2, makeWords(2), now)
	g.Shuffle = nil
	g.WordsFound = 4
	g.XP = 17

	env, term := g.NewWord(now.Add(30 * time.Second))
	if term == nil {
		t.Fatal("empty pool did not end the game")
	}
	if env.Code != CodeFinished {
		t.Errorf("code = %d, want %d", env.Code, CodeFinished)
	}
	if term.Outcome.XP != 17 {
		t.Errorf("XP = %d, want 17", term.Outcome.XP)
	}
	if term.Outcome.LivesLost != 0 {
		t.Errorf("LivesLost = %d, want 0 with four words found", term.Outcome.LivesLost)
	}
}
