package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // sqlite, postgres or mysql
	DatabasePath   string // for sqlite
	DatabaseURL    string // for postgres/mysql
	MigrationsPath string

	SessionSecret   string
	SessionDuration time.Duration

	// Similarity index files used for quiz and falling-word distractors
	SimilarWordsPath        string
	SimilarTranslationsPath string

	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectBase  string

	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string

	LivesMax int
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./wordquest.db"),
		DatabaseURL:    getEnv("DB_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		SessionSecret:   getEnv("SESSION_SECRET", "dev-only-secret"),
		SessionDuration: 24 * time.Hour,

		SimilarWordsPath:        getEnv("SIMILAR_WORDS_PATH", "./data/similar_words.txt"),
		SimilarTranslationsPath: getEnv("SIMILAR_TRANSLATIONS_PATH", "./data/similar_translations.txt"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		OAuthRedirectBase:  getEnv("OAUTH_REDIRECT_BASE", "http://localhost:8080"),

		AWSRegion:    getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "WordQuest"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),

		LivesMax: getEnvInt("LIVES_MAX", 5),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
