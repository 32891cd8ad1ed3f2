package game

import (
	"testing"
	"time"
)

// boardPositions finds the two board indexes of one pair
func boardPositions(g *Memory, pair int) (int, int) {
	first, second := -1, -1
	for i, card := range g.Board {
		if card.Pair != pair {
			continue
		}
		if first == -1 {
			first = i
		} else {
			second = i
		}
	}
	return first, second
}

func TestMemoryDealBoard(t *testing.T) {
	now := time.Now()
	g := NewMemory(1, 2, makeWords(3), now)

	if g.Pairs != 3 {
		t.Fatalf("pairs = %d, want 3", g.Pairs)
	}
	env := g.DealBoard()
	result := env.Result.(map[string]interface{})
	if result["nbr_cards"] != 6 {
		t.Errorf("nbr_cards = %v, want 6", result["nbr_cards"])
	}
	if len(g.Board) != 6 {
		t.Errorf("board = %d cards, want 6", len(g.Board))
	}
	if len(g.Cards) != 0 {
		t.Errorf("cards left after dealing = %d, want 0", len(g.Cards))
	}
}

func TestMemoryTrimsLongLists(t *testing.T) {
	now := time.Now()
	g := NewMemory(1, 2, makeWords(12), now)
	if g.Pairs != 7 {
		t.Errorf("pairs = %d, want the cap of 7", g.Pairs)
	}
}

func TestMemoryRevealOutOfBounds(t *testing.T) {
	now := time.Now()
	g := NewMemory(1, 2, makeWords(3), now)
	g.DealBoard()

	env, term := g.Reveal(99, now)
	if term != nil {
		t.Fatal("out-of-bounds reveal ended the game")
	}
	if env.Code != CodeRefused {
		t.Errorf("code = %d, want %d", env.Code, CodeRefused)
	}
}

func TestMemoryMatchAndMismatch(t *testing.T) {
	now := time.Now()
	g := NewMemory(1, 2, makeWords(3), now)
	g.DealBoard()

	a, b := boardPositions(g, 0)
	env, term := g.Reveal(a, now)
	if term != nil {
		t.Fatal("first card ended the game")
	}
	result := env.Result.(map[string]interface{})
	if result["checking"] != nil {
		t.Errorf("checking after one card = %v, want nil", result["checking"])
	}

	env, term = g.Reveal(b, now)
	if term != nil {
		t.Fatal("second card ended the game early")
	}
	result = env.Result.(map[string]interface{})
	if result["checking"] != true {
		t.Errorf("checking on a match = %v, want true", result["checking"])
	}
	if g.Tries != 1 {
		t.Errorf("tries = %d, want 1", g.Tries)
	}
	if len(g.Cards) != 2 {
		t.Errorf("found cards = %d, want 2", len(g.Cards))
	}

	// Now a mismatch
	c, _ := boardPositions(g, 1)
	d, _ := boardPositions(g, 2)
	g.Reveal(c, now)
	env, _ = g.Reveal(d, now)
	result = env.Result.(map[string]interface{})
	if result["checking"] != false {
		t.Errorf("checking on a mismatch = %v, want false", result["checking"])
	}
	if g.Tries != 2 {
		t.Errorf("tries = %d, want 2", g.Tries)
	}
}

func TestMemoryPerfectGame(t *testing.T) {
	now := time.Now()
	g := NewMemory(1, 2, makeWords(2), now)
	g.DealBoard()

	a, b := boardPositions(g, 0)
	g.Reveal(a, now)
	if _, term := g.Reveal(b, now); term != nil {
		t.Fatal("game ended with a pair missing")
	}

	c, d := boardPositions(g, 1)
	g.Reveal(c, now)
	env, term := g.Reveal(d, now.Add(30*time.Second))
	if term == nil {
		t.Fatal("last pair did not end the game")
	}
	if env.Code != CodeFinished {
		t.Errorf("code = %d, want %d", env.Code, CodeFinished)
	}
	if term.Outcome.XP != 20 {
		t.Errorf("XP = %d, want 20", term.Outcome.XP)
	}
	if term.Outcome.LivesLost != 0 {
		t.Errorf("LivesLost = %d, want 0", term.Outcome.LivesLost)
	}
	if term.Extra["checking"] != true {
		t.Errorf("Extra checking = %v, want true", term.Extra["checking"])
	}
}

func TestMemoryForceEnd(t *testing.T) {
	now := time.Now()
	g := NewMemory(1, 2, makeWords(3), now)
	g.DealBoard()

	term := g.ForceEnd(now.Add(time.Minute))
	if term.Outcome.XP != 0 {
		t.Errorf("XP = %d, want 0", term.Outcome.XP)
	}
	if term.Outcome.LivesLost != 1 {
		t.Errorf("LivesLost = %d, want 1", term.Outcome.LivesLost)
	}
}
