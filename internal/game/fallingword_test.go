package game

import (
	"testing"
	"time"
)

func TestFallingWordNewDuos(t *testing.T) {
	now := time.Now()
	g := NewFallingWord(1, 2, makeWords(5), now)

	env := g.NewDuos(func(string) []string { return nil })
	if env.Code != CodeOK {
		t.Fatalf("code = %d, want %d", env.Code, CodeOK)
	}
	if len(g.Duos) != 30 {
		t.Fatalf("duos = %d, want 30", len(g.Duos))
	}
	if len(g.Answers) != 30 {
		t.Fatalf("answers = %d, want 30", len(g.Answers))
	}
	// The shuffle pool refills itself, so a second batch works too
	if len(g.Shuffle) != 5 {
		t.Errorf("shuffle drained to %d words", len(g.Shuffle))
	}
	for _, duo := range g.Duos {
		if g.Answers[duo.Indice] != duo.Checking {
			t.Errorf("duo %d: answer key %v does not match duo %v", duo.Indice, g.Answers[duo.Indice], duo.Checking)
		}
		if duo.Checking && duo.Pair[0] == "" {
			t.Errorf("duo %d: true duo with empty word", duo.Indice)
		}
		if !duo.Checking && duo.Pair[0] == "" {
			t.Errorf("duo %d: impostor is empty", duo.Indice)
		}
	}
}

func TestFallingWordNeighborImpostor(t *testing.T) {
	now := time.Now()
	g := NewFallingWord(1, 2, makeWords(5), now)
	g.NewDuos(func(string) []string { return []string{"impostor"} })

	for _, duo := range g.Duos {
		if !duo.Checking && duo.Pair[0] != "impostor" {
			t.Fatalf("false duo used %q instead of the index neighbor", duo.Pair[0])
		}
	}
}

func TestFallingWordCheckAnswers(t *testing.T) {
	tests := []struct {
		name      string
		key       []bool
		answers   []string
		wantXP    int
		wantLives int
	}{
		{
			name:      "empty submission loses a life",
			key:       []bool{true, true},
			answers:   []string{"vide"},
			wantXP:    0,
			wantLives: 1,
		},
		{
			name:      "no answers at all loses a life",
			key:       []bool{true},
			answers:   nil,
			wantXP:    0,
			wantLives: 1,
		},
		{
			name:      "all good keeps the life",
			key:       []bool{true, true, true},
			answers:   []string{"0", "1", "2"},
			wantXP:    6,
			wantLives: 0,
		},
		{
			name:      "five flags end the round at a loss",
			key:       []bool{true, true},
			answers:   []string{"false", "false", "false", "false", "false"},
			wantXP:    0,
			wantLives: 1,
		},
		{
			name:      "good ratio survives one miss",
			key:       []bool{true, true, true, false},
			answers:   []string{"0", "1", "2", "3"},
			wantXP:    6,
			wantLives: 0,
		},
		{
			name:      "poor ratio loses a life",
			key:       []bool{true, true, false},
			answers:   []string{"0", "1", "2"},
			wantXP:    4,
			wantLives: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			g := NewFallingWord(1, 2, makeWords(3), now)
			g.Answers = tt.key

			env, term := g.CheckAnswers(tt.answers, now.Add(30*time.Second))
			if term == nil {
				t.Fatal("CheckAnswers did not end the game")
			}
			if env.Code != CodeFinished {
				t.Errorf("code = %d, want %d", env.Code, CodeFinished)
			}
			if term.Outcome.XP != tt.wantXP {
				t.Errorf("XP = %d, want %d", term.Outcome.XP, tt.wantXP)
			}
			if term.Outcome.LivesLost != tt.wantLives {
				t.Errorf("LivesLost = %d, want %d", term.Outcome.LivesLost, tt.wantLives)
			}
		})
	}
}

func TestFallingWordForceEnd(t *testing.T) {
	now := time.Now()
	g := NewFallingWord(1, 2, makeWords(3), now)

	term := g.ForceEnd(now.Add(30 * time.Second))
	if term.Outcome.XP != 0 {
		t.Errorf("XP = %d, want 0", term.Outcome.XP)
	}
	if term.Outcome.LivesLost != 1 {
		t.Errorf("LivesLost = %d, want 1", term.Outcome.LivesLost)
	}
	if term.Outcome.Elapsed != 30 {
		t.Errorf("Elapsed = %d, want 30", term.Outcome.Elapsed)
	}
}
