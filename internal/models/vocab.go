package models

import "time"

// VocabList represents a user's vocabulary list
type VocabList struct {
	ID         int64
	UserID     int64
	Name       string
	SourceLang string
	TargetLang string
	CreatedAt  time.Time
}

// VocabWord represents a word in a vocabulary list
type VocabWord struct {
	ID                 int64
	ListID             int64
	Word               string
	Translation        string
	Type               string
	Examples           []string
	TranslatedExamples []string
	ImageURL           string
}

// HasExamples reports whether the word carries at least one example sentence
func (w *VocabWord) HasExamples() bool {
	return len(w.Examples) > 0
}

// IsNoun reports whether the word is tagged as a noun
func (w *VocabWord) IsNoun() bool {
	return w.Type == "noun"
}
