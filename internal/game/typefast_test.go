package game

import (
	"testing"
	"time"
)

func TestTypeFastCheckWord(t *testing.T) {
	start := time.Now()
	g := NewTypeFast(1, 2, makeWords(3), start)

	env, term := g.CheckWord("word1", start.Add(10*time.Second))
	if term != nil {
		t.Fatal("first word ended the game")
	}
	if env.Code != CodeOK {
		t.Errorf("code = %d, want %d", env.Code, CodeOK)
	}
	result := env.Result.(map[string]interface{})
	if result["remaining"] != 2 {
		t.Errorf("remaining = %v, want 2", result["remaining"])
	}

	env, term = g.CheckWord("no such word", start.Add(11*time.Second))
	if term != nil {
		t.Fatal("unknown word ended the game")
	}
	if env.Code != CodeNotFound {
		t.Errorf("unknown word code = %d, want %d", env.Code, CodeNotFound)
	}
	if len(g.WordsToCheck) != 2 {
		t.Errorf("unknown word consumed a word, %d left", len(g.WordsToCheck))
	}
}

func TestTypeFastFinishWholeList(t *testing.T) {
	start := time.Now()
	g := NewTypeFast(1, 2, makeWords(2), start)

	if _, term := g.CheckWord("word0", start.Add(20*time.Second)); term != nil {
		t.Fatal("game ended before the last word")
	}
	env, term := g.CheckWord("word1", start.Add(40*time.Second))
	if term == nil {
		t.Fatal("last word did not end the game")
	}
	if env.Code != CodeFinished {
		t.Errorf("code = %d, want %d", env.Code, CodeFinished)
	}

	// 2 words * 5 / 40s * 10 rounds to 3
	if term.Outcome.XP != 3 {
		t.Errorf("XP = %d, want 3", term.Outcome.XP)
	}
	if term.Outcome.LivesLost != 0 {
		t.Errorf("LivesLost = %d, want 0", term.Outcome.LivesLost)
	}
	if term.Outcome.GemsBonus != 200 {
		t.Errorf("GemsBonus = %d, want 200", term.Outcome.GemsBonus)
	}
	if term.Outcome.Elapsed != 40 {
		t.Errorf("Elapsed = %d, want 40", term.Outcome.Elapsed)
	}
}

func TestTypeFastTimeoutLosesLife(t *testing.T) {
	start := time.Now()
	g := NewTypeFast(1, 2, makeWords(3), start)

	if _, term := g.CheckWord("word0", start.Add(30*time.Second)); term != nil {
		t.Fatal("game ended early")
	}

	term := g.ForceEnd(start.Add(2 * time.Minute))
	if term.Outcome.LivesLost != 1 {
		t.Errorf("LivesLost = %d, want 1", term.Outcome.LivesLost)
	}
	if term.Outcome.GemsBonus != 0 {
		t.Errorf("GemsBonus = %d, want 0 on an unfinished list", term.Outcome.GemsBonus)
	}
	if term.Extra["remaining"] != 2 {
		t.Errorf("remaining = %v, want 2", term.Extra["remaining"])
	}
}

func TestTypeFastPastDeadlineEndsGame(t *testing.T) {
	start := time.Now()
	g := NewTypeFast(1, 2, makeWords(2), start)

	_, term := g.CheckWord("word0", start.Add(3*time.Minute))
	if term == nil {
		t.Fatal("expected the game to end past the deadline")
	}
	if term.Outcome.LivesLost != 1 {
		t.Errorf("LivesLost = %d, want 1", term.Outcome.LivesLost)
	}
}
