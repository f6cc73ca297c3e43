package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	DBPath    string
	MediaRoot string // Root directory for uploaded media (uploads/ and audios/ live under it)
	LogLevel  slog.Level
	LogFormat string // "text" or "json"

	// Speech synthesis gateway
	TTSBaseURL      string
	TTSAPIKey       string
	TTSDefaultVoice string
	TTSHindiVoice   string

	// Chat completion gateway
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// Note recall (optional; disabled when QdrantURL is empty)
	EmbeddingBaseURL string
	EmbeddingModel   string
	QdrantURL        string
	QdrantCollection string
	QdrantVectorSize int
}

// RecallEnabled reports whether note recall (embedding + vector search) is configured.
func (c *Config) RecallEnabled() bool {
	return c.QdrantURL != ""
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or a parent, it is loaded
// automatically; environment variables already set take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up to find a project-level .env
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:          getEnv("API_PORT", "9000"),
		DBPath:           getEnv("DB_PATH", "./data/dayone.db"),
		MediaRoot:        getEnv("MEDIA_ROOT", "./public"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		TTSBaseURL:       getEnv("TTS_BASE_URL", "https://api.elevenlabs.io"),
		TTSAPIKey:        getEnv("TTS_API_KEY", ""),
		TTSDefaultVoice:  getEnv("TTS_DEFAULT_VOICE", "21m00Tcm4TlvDq8ikWAM"),
		TTSHindiVoice:    getEnv("TTS_HINDI_VOICE", "50YSQEDPA2vlOxhCseP4"),
		LLMBaseURL:       getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMAPIKey:        getEnv("LLM_API_KEY", "dummy-key"),
		LLMModel:         getEnv("LLM_MODEL", "Llama-3.1-8B-Instruct"),
		EmbeddingBaseURL: getEnv("EMBEDDING_BASE_URL", "http://localhost:8081"),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL_NAME", "granite-embedding-278m-multilingual"),
		QdrantURL:        getEnv("QDRANT_URL", ""),
		QdrantCollection: getEnv("QDRANT_COLLECTION", "dayone-notes"),
	}

	cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	if cfg.TTSAPIKey == "" {
		return nil, fmt.Errorf("TTS_API_KEY is required")
	}

	// Vector size only matters when recall is enabled; it must match the
	// embedding model's output dimension.
	if cfg.RecallEnabled() {
		vectorSizeStr := getEnv("QDRANT_VECTOR_SIZE", "")
		if vectorSizeStr == "" {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE is required when QDRANT_URL is set")
		}
		vectorSize, err := strconv.Atoi(vectorSizeStr)
		if err != nil {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be a valid integer: %w", err)
		}
		if vectorSize <= 0 {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
		}
		cfg.QdrantVectorSize = vectorSize
	}

	// Create the data directory for the DB file and the public media directories
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	for _, sub := range []string{"uploads", "audios"} {
		if err := os.MkdirAll(filepath.Join(cfg.MediaRoot, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create media directory: %w", err)
		}
	}

	return cfg, nil
}

// parseLogLevel converts a level name into a slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL: %s", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
