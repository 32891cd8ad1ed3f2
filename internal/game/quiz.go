package game

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	quizPerWord       = 7 * time.Second
	quizBaseXP        = 20
	quizLifeThreshold = 15
	quizAnswerCount   = 4
)

// Question archetypes
const (
	QuestionSimple  = 1
	QuestionExample = 2
	QuestionImage   = 3
	QuestionAudio   = 4
)

var wordTypes = []string{
	"adjective", "adverb", "conjunction", "interjection",
	"noun", "preposition", "pronoun", "verb",
}

// quizQuestion is the question currently on screen
type quizQuestion struct {
	Type    int      `json:"type"`
	Word    Word     `json:"word"`
	Answer  int      `json:"answer"`
	Answers []string `json:"answers"`
	Content string   `json:"content"`
	Audio   string   `json:"audio"`
	Image   string   `json:"image"`
}

// Quiz is the multiple-choice game. Each word gets one question whose
// archetype depends on what the word carries: example sentences enable
// cloze and audio questions, nouns enable image questions.
type Quiz struct {
	SessionID    string        `json:"id"`
	ListID       int64         `json:"list_id"`
	LessonID     int64         `json:"lesson_id"`
	Words        []Word        `json:"words"`
	WordsToCheck []Word        `json:"words_to_check"`
	TotalSeconds int           `json:"total_time"`
	StartedAt    time.Time     `json:"started_at"`
	DeadlineAt   time.Time     `json:"deadline_at"`
	Current      *quizQuestion `json:"current_quiz"`
	Faults       int           `json:"faults"`
}

// NewQuiz creates a quiz session over the full list, seven seconds per
// word on the clock
func NewQuiz(listID, lessonID int64, words []Word, now time.Time) *Quiz {
	toCheck := make([]Word, len(words))
	copy(toCheck, words)
	totalSeconds := len(words) * int(quizPerWord/time.Second)
	return &Quiz{
		SessionID:    uuid.NewString(),
		ListID:       listID,
		LessonID:     lessonID,
		Words:        words,
		WordsToCheck: toCheck,
		TotalSeconds: totalSeconds,
		StartedAt:    now,
		DeadlineAt:   now.Add(time.Duration(totalSeconds) * time.Second),
	}
}

func (g *Quiz) ID() string          { return g.SessionID }
func (g *Quiz) Kind() string        { return KindQuiz }
func (g *Quiz) Deadline() time.Time { return g.DeadlineAt }

// CheckAnswer scores the chosen position against the current question,
// retires the word, and moves on. The word is spent whether or not the
// answer was right.
func (g *Quiz) CheckAnswer(answer int, similarWords, similarTranslations SimilarFunc, now time.Time) (Envelope, *Terminal) {
	if g.Current == nil {
		return NotFound("The game was not found!"), nil
	}
	correct := answer == g.Current.Answer
	if !correct {
		g.Faults++
	}
	for i, w := range g.WordsToCheck {
		if w.Text == g.Current.Word.Text {
			g.WordsToCheck = append(g.WordsToCheck[:i], g.WordsToCheck[i+1:]...)
			break
		}
	}
	if len(g.WordsToCheck) == 0 {
		return g.endGame(now)
	}
	return g.AskNextQuestion(correct, similarWords, similarTranslations, now)
}

// AskNextQuestion builds the next question. Distractors come from the
// similarity indexes; when the index has nothing close, the question
// falls back to asking for the word's part of speech.
func (g *Quiz) AskNextQuestion(correct bool, similarWords, similarTranslations SimilarFunc, now time.Time) (Envelope, *Terminal) {
	if len(g.WordsToCheck) == 0 {
		return g.endGame(now)
	}

	chosen := g.WordsToCheck[rand.Intn(len(g.WordsToCheck))]
	hasAudio := len(chosen.Examples) > 0
	hasExample := hasAudio && len(chosen.TranslatedExamples) > 0
	isNoun := chosen.Type == "noun"

	var pool []int
	switch {
	case hasExample && isNoun:
		pool = []int{QuestionExample, QuestionImage, QuestionAudio}
	case hasExample:
		pool = []int{QuestionSimple, QuestionExample, QuestionAudio}
	case hasAudio && isNoun:
		pool = []int{QuestionSimple, QuestionImage, QuestionAudio}
	case hasAudio:
		pool = []int{QuestionSimple, QuestionAudio}
	case isNoun:
		pool = []int{QuestionSimple, QuestionImage}
	default:
		pool = []int{QuestionSimple}
	}
	questionType := pool[rand.Intn(len(pool))]

	var content, answer, audio, image string
	var badAnswers []string
	lookup := similarWords

	switch questionType {
	case QuestionSimple:
		if rand.Intn(2) == 0 {
			content = fmt.Sprintf("What is the type of the word « %s »?", chosen.Text)
			answer = chosen.Type
			badAnswers = typeDistractors(chosen.Type)
		} else {
			content = fmt.Sprintf("What does the word « %s » mean?", chosen.Text)
			answer = chosen.Translation
			lookup = similarTranslations
		}
	case QuestionExample:
		content = fmt.Sprintf("Which word completes this example « %s »?", chosen.TranslatedExamples[0])
		answer = chosen.Text
	case QuestionImage:
		content = chosen.ImageURL
		image = chosen.ImageURL
		answer = chosen.Text
	case QuestionAudio:
		content = fmt.Sprintf("/api/games/quiz/%s/audio", g.SessionID)
		audio = chosen.Examples[0]
		answer = chosen.Text
	}

	if len(badAnswers) == 0 {
		neighbors := lookup(answer)
		if len(neighbors) > 3 {
			neighbors = neighbors[:3]
		}
		if len(neighbors) == 3 {
			badAnswers = neighbors
		} else {
			// Nothing close enough in the index, fall back to a
			// part-of-speech question
			content = fmt.Sprintf("What is the type of the word « %s »?", chosen.Text)
			questionType = QuestionSimple
			answer = chosen.Type
			audio, image = "", ""
			badAnswers = typeDistractors(chosen.Type)
		}
	}

	lastPosition := 0
	if g.Current != nil {
		lastPosition = g.Current.Answer
	}

	position := rand.Intn(quizAnswerCount) + 1
	answers := make([]string, 0, quizAnswerCount)
	for len(answers) < quizAnswerCount {
		if len(answers) == position-1 {
			answers = append(answers, answer)
		} else {
			answers = append(answers, badAnswers[0])
			badAnswers = badAnswers[1:]
		}
	}

	g.Current = &quizQuestion{
		Type:    questionType,
		Word:    chosen,
		Answer:  position,
		Answers: answers,
		Content: content,
		Audio:   audio,
		Image:   image,
	}

	message := "incorrect"
	if correct {
		message = "correct"
	}
	return Envelope{Code: CodeOK, Message: message, Result: map[string]interface{}{
		"type":          questionType,
		"content":       content,
		"answers":       answers,
		"last_position": lastPosition,
		"score":         len(g.Words) - len(g.WordsToCheck) - g.Faults,
		"remaining":     len(g.WordsToCheck),
		"total":         len(g.Words),
		"time":          RemainingSeconds(g, now),
	}}, nil
}

// AudioText returns the sentence behind the audio question, empty when
// the current question has no audio
func (g *Quiz) AudioText() string {
	if g.Current == nil {
		return ""
	}
	return g.Current.Audio
}

// ForceEnd settles the session scoring only the words answered so far
func (g *Quiz) ForceEnd(now time.Time) Terminal {
	_, term := g.endGame(now)
	return *term
}

func (g *Quiz) endGame(now time.Time) (Envelope, *Terminal) {
	total := len(g.Words)
	xp := int(math.Round(float64(total-g.Faults-len(g.WordsToCheck)) / float64(total) * quizBaseXP))

	lives := 0
	if xp < quizLifeThreshold {
		lives = 1
	}

	lastPosition := 0
	if g.Current != nil {
		lastPosition = g.Current.Answer
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
		Extra: map[string]interface{}{
			"last_position": lastPosition,
			"score":         len(g.Words) - len(g.WordsToCheck) - g.Faults,
			"remaining":     len(g.WordsToCheck),
			"total":         len(g.Words),
		},
	}
	return Finished("The game is over!", nil), term
}

func typeDistractors(wordType string) []string {
	distractors := make([]string, 0, 3)
	for _, t := range wordTypes {
		if !strings.EqualFold(t, wordType) {
			distractors = append(distractors, t)
			if len(distractors) == 3 {
				break
			}
		}
	}
	return distractors
}
