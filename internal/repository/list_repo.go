package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"wordquest/internal/database"
	"wordquest/internal/models"
)

// ListRepository handles database operations for vocabulary lists and their words
type ListRepository struct {
	db *database.DB
}

// NewListRepository creates a new list repository
func NewListRepository(db *database.DB) *ListRepository {
	return &ListRepository{db: db}
}

// GetListByID retrieves a vocabulary list by ID
func (r *ListRepository) GetListByID(id int64) (*models.VocabList, error) {
	query := `
		SELECT id, user_id, name, source_lang, target_lang, created_at
		FROM vocab_lists
		WHERE id = ?
	`
	list := &models.VocabList{}
	err := r.db.QueryRow(query, id).Scan(
		&list.ID,
		&list.UserID,
		&list.Name,
		&list.SourceLang,
		&list.TargetLang,
		&list.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return list, nil
}

// GetListsByUser retrieves all lists owned by a user
func (r *ListRepository) GetListsByUser(userID int64) ([]models.VocabList, error) {
	query := `
		SELECT id, user_id, name, source_lang, target_lang, created_at
		FROM vocab_lists
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	var lists []models.VocabList
	for rows.Next() {
		var list models.VocabList
		if err := rows.Scan(
			&list.ID,
			&list.UserID,
			&list.Name,
			&list.SourceLang,
			&list.TargetLang,
			&list.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

// CreateList inserts a new vocabulary list
func (r *ListRepository) CreateList(userID int64, name, sourceLang, targetLang string) (int64, error) {
	query := `
		INSERT INTO vocab_lists (user_id, name, source_lang, target_lang)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, name, sourceLang, targetLang)
	if err != nil {
		return 0, fmt.Errorf("failed to create list: %w", err)
	}
	return id, nil
}

// GetWordsByList retrieves all words in a list. Example sentences are
// stored as JSON arrays and decoded here.
func (r *ListRepository) GetWordsByList(listID int64) ([]models.VocabWord, error) {
	query := `
		SELECT id, list_id, word, translation, word_type, examples, trans_examples, image_url
		FROM vocab_words
		WHERE list_id = ?
		ORDER BY id
	`
	rows, err := r.db.Query(query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []models.VocabWord
	for rows.Next() {
		var w models.VocabWord
		var examples, transExamples string
		if err := rows.Scan(
			&w.ID,
			&w.ListID,
			&w.Word,
			&w.Translation,
			&w.Type,
			&examples,
			&transExamples,
			&w.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		if err := json.Unmarshal([]byte(examples), &w.Examples); err != nil {
			return nil, fmt.Errorf("failed to decode examples for word %d: %w", w.ID, err)
		}
		if err := json.Unmarshal([]byte(transExamples), &w.TranslatedExamples); err != nil {
			return nil, fmt.Errorf("failed to decode translated examples for word %d: %w", w.ID, err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// AddWord inserts a word into a list
func (r *ListRepository) AddWord(w *models.VocabWord) (int64, error) {
	examples, err := json.Marshal(w.Examples)
	if err != nil {
		return 0, fmt.Errorf("failed to encode examples: %w", err)
	}
	transExamples, err := json.Marshal(w.TranslatedExamples)
	if err != nil {
		return 0, fmt.Errorf("failed to encode translated examples: %w", err)
	}

	query := `
		INSERT INTO vocab_words (list_id, word, translation, word_type, examples, trans_examples, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, w.ListID, w.Word, w.Translation, w.Type, string(examples), string(transExamples), w.ImageURL)
	if err != nil {
		return 0, fmt.Errorf("failed to add word: %w", err)
	}
	return id, nil
}
