package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordquest/internal/security"
	"wordquest/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService          *service.AuthService
	emailService         *service.EmailService
	rewards              *service.RewardService
	oauthProviders       map[string]OAuthProvider
	oauthRedirectBaseURL string
	startingLives        int
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService *service.AuthService,
	emailService *service.EmailService,
	rewards *service.RewardService,
	oauthProviders map[string]OAuthProvider,
	oauthRedirectBaseURL string,
	startingLives int,
) *AuthHandler {
	return &AuthHandler{
		authService:          authService,
		emailService:         emailService,
		rewards:              rewards,
		oauthProviders:       oauthProviders,
		oauthRedirectBaseURL: oauthRedirectBaseURL,
		startingLives:        startingLives,
	}
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register handles registration submissions. A new account gets its
// starting lives and is logged in right away.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", nil)
		return
	}

	user, err := h.authService.Register(r.Context(), h.emailService, payload.Username, payload.Email, payload.Password)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrUsernameTaken) {
			status = http.StatusConflict
		}
		respondWithError(w, status, err.Error(), "", nil)
		return
	}

	if err := h.rewards.EnsureStartingLives(user.ID, h.startingLives); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error granting starting lives", err)
		return
	}

	session, _, err := h.authService.Login(payload.Email, payload.Password)
	if err != nil {
		// Registration succeeded but login failed, let the client retry
		respondJSON(w, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username, Email: user.Email})
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}

// Login handles login submissions
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", nil)
		return
	}

	session, user, err := h.authService.Login(payload.Email, payload.Password)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password", "", nil)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}

// Logout ends the current session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.authService.Logout(cookie.Value); err != nil {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error deleting session", err)
			return
		}
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, SessionCookieName))
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
