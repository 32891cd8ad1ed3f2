package game

// Word is the slice of vocabulary a game engine works with. Handlers
// build these from the stored list so engines stay free of persistence
// concerns.
type Word struct {
	Text               string   `json:"text"`
	Translation        string   `json:"translation"`
	Type               string   `json:"type"`
	Examples           []string `json:"examples,omitempty"`
	TranslatedExamples []string `json:"trans_examples,omitempty"`
	ImageURL           string   `json:"image_url,omitempty"`
}

// SimilarFunc looks up close neighbors of a word, typically backed by a
// precomputed Levenshtein index. A nil result means no neighbors known.
type SimilarFunc func(word string) []string
