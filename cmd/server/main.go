package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordquest/internal/config"
	"wordquest/internal/database"
	"wordquest/internal/game"
	"wordquest/internal/handlers"
	"wordquest/internal/repository"
	"wordquest/internal/security"
	"wordquest/internal/service"
	"wordquest/internal/session"
	"wordquest/internal/similarity"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load the similarity indexes used for quiz and falling-word
	// distractors. An absent file just disables close-neighbor lookups.
	similarWords := loadSimilarity(cfg.SimilarWordsPath)
	similarTranslations := loadSimilarity(cfg.SimilarTranslationsPath)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewListRepository(db)
	lessonRepo := repository.NewLessonRepository()
	ledgerRepo := repository.NewLedgerRepository()

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.SessionDuration)
	rewardService := service.NewRewardService(db, ledgerRepo)
	settlementService := service.NewSettlementService(db, lessonRepo, ledgerRepo)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	if emailService.IsEnabled() {
		log.Println("Email service enabled")
	}

	oauthProviders := map[string]handlers.OAuthProvider{
		"google": {
			Name: "google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
	}

	// Initialize handlers
	limiter := security.NewRateLimiter(30, time.Minute)
	middleware := handlers.NewMiddleware(authService, limiter)
	authHandler := handlers.NewAuthHandler(authService, emailService, rewardService, oauthProviders, cfg.OAuthRedirectBase, cfg.LivesMax)
	userHandler := handlers.NewUserHandler(db, rewardService, lessonRepo)
	listHandler := handlers.NewListHandler(db, listRepo, lessonRepo)
	gameHandler := handlers.NewGameHandler(db, session.NewStore(), listRepo, lessonRepo, rewardService, settlementService, similarWords, similarTranslations)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Account routes
	mux.HandleFunc("GET /api/me/stats", middleware.RequireAuth(userHandler.Stats))
	mux.HandleFunc("GET /api/me/history", middleware.RequireAuth(userHandler.History))
	mux.HandleFunc("GET /api/me/lists", middleware.RequireAuth(listHandler.Lists))
	mux.HandleFunc("GET /api/lists/{listId}/lessons", middleware.RequireAuth(listHandler.Lessons))

	// Game entry routes, one per game
	mux.HandleFunc("GET /games/fallingword/{listId}", middleware.RequireAuth(gameHandler.EnterFallingWord))
	mux.HandleFunc("GET /games/hangman/{listId}", middleware.RequireAuth(gameHandler.EnterHangman))
	mux.HandleFunc("GET /games/memory/{listId}", middleware.RequireAuth(gameHandler.EnterMemory))
	mux.HandleFunc("GET /games/memowordrize/{listId}", middleware.RequireAuth(gameHandler.EnterMemowordrize))
	mux.HandleFunc("GET /games/quiz/{listId}", middleware.RequireAuth(gameHandler.EnterQuiz))
	mux.HandleFunc("GET /games/snake/{listId}", middleware.RequireAuth(gameHandler.EnterSnake))
	mux.HandleFunc("GET /games/typefast/{listId}", middleware.RequireAuth(gameHandler.EnterTypeFast))

	// Shared session routes
	mux.HandleFunc("GET /games/{game}/s/{sessionId}", middleware.RequireAuth(gameHandler.Snapshot))
	mux.HandleFunc("GET /games/{game}/s/{sessionId}/check_status", middleware.RequireAuth(gameHandler.Status))

	// Per-game action routes
	mux.HandleFunc("GET /games/fallingword/s/{sessionId}/getDuo", middleware.RequireAuth(gameHandler.FallingWordGetDuo))
	mux.HandleFunc("POST /games/fallingword/s/{sessionId}/checkAnswers", middleware.RequireAuth(gameHandler.FallingWordCheckAnswers))
	mux.HandleFunc("POST /games/hangman/s/{sessionId}/check_letter/{letter}", middleware.RequireAuth(gameHandler.HangmanCheckLetter))
	mux.HandleFunc("POST /games/hangman/s/{sessionId}/askhint", middleware.RequireAuth(gameHandler.HangmanAskHint))
	mux.HandleFunc("POST /games/memory/s/{sessionId}/check_card/{card}", middleware.RequireAuth(gameHandler.MemoryCheckCard))
	mux.HandleFunc("GET /games/memowordrize/s/{sessionId}/see_path", middleware.RequireAuth(gameHandler.MemowordrizeSeePath))
	mux.HandleFunc("POST /games/memowordrize/s/{sessionId}/try_case/{position}/{word}", middleware.RequireAuth(gameHandler.MemowordrizeTryCase))
	mux.HandleFunc("GET /games/quiz/s/{sessionId}/check/{answer}", middleware.RequireAuth(gameHandler.QuizCheckAnswer))
	mux.HandleFunc("GET /games/quiz/s/{sessionId}/audio", middleware.RequireAuth(gameHandler.QuizAudio))
	mux.HandleFunc("GET /games/snake/s/{sessionId}/getWord", middleware.RequireAuth(gameHandler.SnakeGetWord))
	mux.HandleFunc("POST /games/snake/s/{sessionId}/check_coo", middleware.RequireAuth(gameHandler.SnakeCheckCoordinates))
	mux.HandleFunc("POST /games/typefast/s/{sessionId}/check_word/{word}", middleware.RequireAuth(gameHandler.TypeFastCheckWord))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpiredSessions(authService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// loadSimilarity loads one index file, falling back to an empty lookup
// when the file is missing
func loadSimilarity(path string) game.SimilarFunc {
	idx, err := similarity.Load(path)
	if err != nil {
		log.Printf("Warning: similarity index %s not loaded: %v", path, err)
		return func(string) []string { return nil }
	}
	log.Printf("Loaded similarity index %s (%d entries)", path, idx.Len())
	return idx.Lookup
}

// cleanupExpiredSessions periodically removes expired auth sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		}
	}
}
