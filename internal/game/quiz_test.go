package game

import (
	"testing"
	"time"
)

func nilSimilar(string) []string { return nil }

func TestNewQuizClock(t *testing.T) {
	now := time.Now()
	g := NewQuiz(1, 2, makeWords(4), now)
	if g.TotalSeconds != 28 {
		t.Errorf("total seconds = %d, want 28", g.TotalSeconds)
	}
	if !g.Deadline().Equal(now.Add(28 * time.Second)) {
		t.Errorf("deadline = %v, want start + 28s", g.Deadline())
	}
}

func TestQuizCheckAnswerWithoutQuestion(t *testing.T) {
	now := time.Now()
	g := NewQuiz(1, 2, makeWords(2), now)

	env, term := g.CheckAnswer(1, nilSimilar, nilSimilar, now)
	if term != nil {
		t.Fatal("missing question ended the game")
	}
	if env.Code != CodeNotFound {
		t.Errorf("code = %d, want %d", env.Code, CodeNotFound)
	}
}

func TestQuizFallsBackToTypeQuestion(t *testing.T) {
	now := time.Now()
	word := Word{Text: "run", Translation: "courir", Type: "verb"}
	g := NewQuiz(1, 2, []Word{word}, now)

	// No examples, not a noun, and an empty similarity index: the only
	// possible question asks for the part of speech
	env, term := g.AskNextQuestion(true, nilSimilar, nilSimilar, now)
	if term != nil {
		t.Fatal("first question ended the game")
	}

	if g.Current == nil {
		t.Fatal("no current question")
	}
	if g.Current.Type != QuestionSimple {
		t.Errorf("question type = %d, want %d", g.Current.Type, QuestionSimple)
	}
	if len(g.Current.Answers) != 4 {
		t.Fatalf("answers = %d, want 4", len(g.Current.Answers))
	}
	if g.Current.Answer < 1 || g.Current.Answer > 4 {
		t.Fatalf("answer position = %d, want within [1, 4]", g.Current.Answer)
	}
	if g.Current.Answers[g.Current.Answer-1] != "verb" {
		t.Errorf("answer = %q, want %q", g.Current.Answers[g.Current.Answer-1], "verb")
	}

	result := env.Result.(map[string]interface{})
	if result["total"] != 1 {
		t.Errorf("total = %v, want 1", result["total"])
	}
	if result["remaining"] != 1 {
		t.Errorf("remaining = %v, want 1", result["remaining"])
	}
}

func TestQuizNeighborDistractors(t *testing.T) {
	now := time.Now()
	word := Word{Text: "run", Translation: "courir", Type: "verb"}
	g := NewQuiz(1, 2, []Word{word}, now)

	neighbors := func(string) []string { return []string{"a", "b", "c", "d"} }
	if _, term := g.AskNextQuestion(true, neighbors, neighbors, now); term != nil {
		t.Fatal("first question ended the game")
	}
	if len(g.Current.Answers) != 4 {
		t.Fatalf("answers = %d, want 4", len(g.Current.Answers))
	}
	want := map[int]bool{1: true, 2: true, 3: true, 4: true}
	if !want[g.Current.Answer] {
		t.Errorf("answer position = %d, want within [1, 4]", g.Current.Answer)
	}
}

func TestQuizPerfectRun(t *testing.T) {
	now := time.Now()
	g := NewQuiz(1, 2, []Word{{Text: "run", Translation: "courir", Type: "verb"}}, now)
	g.AskNextQuestion(true, nilSimilar, nilSimilar, now)

	env, term := g.CheckAnswer(g.Current.Answer, nilSimilar, nilSimilar, now.Add(5*time.Second))
	if term == nil {
		t.Fatal("last answer did not end the game")
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
	if term.Extra["total"] != 1 {
		t.Errorf("Extra total = %v, want 1", term.Extra["total"])
	}
}

func TestQuizWrongAnswerCostsLife(t *testing.T) {
	now := time.Now()
	g := NewQuiz(1, 2, []Word{{Text: "run", Translation: "courir", Type: "verb"}}, now)
	g.AskNextQuestion(true, nilSimilar, nilSimilar, now)

	wrong := g.Current.Answer%4 + 1
	_, term := g.CheckAnswer(wrong, nilSimilar, nilSimilar, now.Add(5*time.Second))
	if term == nil {
		t.Fatal("last answer did not end the game")
	}
	if term.Outcome.XP != 0 {
		t.Errorf("XP = %d, want 0", term.Outcome.XP)
	}
	if term.Outcome.LivesLost != 1 {
		t.Errorf("LivesLost = %d, want 1", term.Outcome.LivesLost)
	}
}

func TestTypeDistractors(t *testing.T) {
	got := typeDistractors("verb")
	if len(got) != 3 {
		t.Fatalf("distractors = %d, want 3", len(got))
	}
	seen := map[string]bool{}
	for _, d := range got {
		if d == "verb" {
			t.Error("distractors include the real type")
		}
		if seen[d] {
			t.Errorf("duplicate distractor %q", d)
		}
		seen[d] = true
	}
}

func TestQuizAudioText(t *testing.T) {
	now := time.Now()
	g := NewQuiz(1, 2, makeWords(2), now)
	if g.AudioText() != "" {
		t.Errorf("AudioText = %q before any question, want empty", g.AudioText())
	}
}

func TestQuizSkipsClozeWithoutTranslatedExample(t *testing.T) {
	now := time.Now()
	word := Word{
		Text:        "cat",
		Translation: "chat",
		Type:        "noun",
		Examples:    []string{"the cat sleeps"},
	}

	for i := 0; i < 25; i++ {
		g := NewQuiz(1, 2, []Word{word}, now)
		if _, term := g.AskNextQuestion(true, nilSimilar, nilSimilar, now); term != nil {
			t.Fatal("the first question ended the game")
		}
		if g.Current.Type == QuestionExample {
			t.Fatal("cloze question built without a translated example")
		}
	}
}
