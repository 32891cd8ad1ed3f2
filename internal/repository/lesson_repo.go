package repository

import (
	"database/sql"
	"fmt"

	"wordquest/internal/database"
	"wordquest/internal/models"
)

// LessonRepository handles database operations for lessons and their logs.
// Methods take a database.DBTX so they can run inside a settlement
// transaction or standalone.
type LessonRepository struct{}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository() *LessonRepository {
	return &LessonRepository{}
}

// GetLessonByID retrieves a lesson by ID
func (r *LessonRepository) GetLessonByID(q database.DBTX, id int64) (*models.Lesson, error) {
	query := `
		SELECT id, list_id, game_id, odr, completed
		FROM lessons
		WHERE id = ?
	`
	lesson := &models.Lesson{}
	err := q.QueryRow(query, id).Scan(
		&lesson.ID,
		&lesson.ListID,
		&lesson.GameID,
		&lesson.Order,
		&lesson.Completed,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return lesson, nil
}

// GetLessonsByList retrieves a list's lessons in sequence order
func (r *LessonRepository) GetLessonsByList(q database.DBTX, listID int64) ([]models.Lesson, error) {
	query := `
		SELECT id, list_id, game_id, odr, completed
		FROM lessons
		WHERE list_id = ?
		ORDER BY odr
	`
	rows, err := q.Query(query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(
			&lesson.ID,
			&lesson.ListID,
			&lesson.GameID,
			&lesson.Order,
			&lesson.Completed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}

// MarkCompleted sets the completed flag on a lesson
func (r *LessonRepository) MarkCompleted(q database.DBTX, lessonID int64) error {
	query := "UPDATE lessons SET completed = 1 WHERE id = ?"
	if _, err := q.Exec(query, lessonID); err != nil {
		return fmt.Errorf("failed to mark lesson completed: %w", err)
	}
	return nil
}

// HasLog reports whether the user already has a log entry for this lesson,
// which marks any further play as a replay.
func (r *LessonRepository) HasLog(q database.DBTX, userID, lessonID int64) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM lessons_log WHERE user_id = ? AND lesson_id = ?"
	if err := q.QueryRow(query, userID, lessonID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check lesson log: %w", err)
	}
	return count > 0, nil
}

// InsertLog appends a finished session to the lesson history
func (r *LessonRepository) InsertLog(q database.DBTX, entry *models.LessonLog) error {
	query := `
		INSERT INTO lessons_log (user_id, list_id, lesson_id, xp_won, lives_lost, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := q.ExecReturningID(query, entry.UserID, entry.ListID, entry.LessonID, entry.XPWon, entry.LivesLost, entry.Duration)
	if err != nil {
		return fmt.Errorf("failed to insert lesson log: %w", err)
	}
	entry.ID = id
	return nil
}

// GetLogsByUser retrieves a user's lesson history, newest first
func (r *LessonRepository) GetLogsByUser(q database.DBTX, userID int64) ([]models.LessonLog, error) {
	query := `
		SELECT id, user_id, list_id, lesson_id, xp_won, lives_lost, duration_seconds, created_at
		FROM lessons_log
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := q.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson logs: %w", err)
	}
	defer rows.Close()

	var logs []models.LessonLog
	for rows.Next() {
		var entry models.LessonLog
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.ListID,
			&entry.LessonID,
			&entry.XPWon,
			&entry.LivesLost,
			&entry.Duration,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lesson log: %w", err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
