package handlers

import (
	"net/http"
	"strconv"

	"wordquest/internal/database"
	"wordquest/internal/repository"
)

// ListHandler serves the player's vocabulary lists and their lesson
// sequences, enough for a dashboard to know what is playable.
type ListHandler struct {
	db      *database.DB
	lists   *repository.ListRepository
	lessons *repository.LessonRepository
}

// NewListHandler creates a new list handler
func NewListHandler(db *database.DB, lists *repository.ListRepository, lessons *repository.LessonRepository) *ListHandler {
	return &ListHandler{db: db, lists: lists, lessons: lessons}
}

// Lists returns the player's vocabulary lists
func (h *ListHandler) Lists(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	lists, err := h.lists.GetListsByUser(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading lists", err)
		return
	}

	type listEntry struct {
		ID         int64  `json:"id"`
		Name       string `json:"name"`
		SourceLang string `json:"source_lang"`
		TargetLang string `json:"target_lang"`
	}
	entries := make([]listEntry, len(lists))
	for i, list := range lists {
		entries[i] = listEntry{ID: list.ID, Name: list.Name, SourceLang: list.SourceLang, TargetLang: list.TargetLang}
	}

	respondJSON(w, http.StatusOK, entries)
}

// Lessons returns a list's lesson sequence in play order, with each
// lesson's game type and completion flag. A lesson is playable when it
// is first or its predecessor is completed.
func (h *ListHandler) Lessons(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	listID, err := strconv.ParseInt(r.PathValue("listId"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", "", nil)
		return
	}

	list, err := h.lists.GetListByID(listID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading list", err)
		return
	}
	if list == nil || list.UserID != user.ID {
		respondWithError(w, http.StatusNotFound, MsgListNotFound, "", nil)
		return
	}

	lessons, err := h.lessons.GetLessonsByList(h.db, listID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading lessons", err)
		return
	}

	type lessonEntry struct {
		ID        int64 `json:"id"`
		GameID    int   `json:"game_id"`
		Order     int   `json:"order"`
		Completed bool  `json:"completed"`
		Playable  bool  `json:"playable"`
	}
	entries := make([]lessonEntry, len(lessons))
	for i, lesson := range lessons {
		entries[i] = lessonEntry{
			ID:        lesson.ID,
			GameID:    lesson.GameID,
			Order:     lesson.Order,
			Completed: lesson.Completed,
			Playable:  i == 0 || lessons[i-1].Completed,
		}
	}

	respondJSON(w, http.StatusOK, entries)
}
