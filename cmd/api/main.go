package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"dayone/internal/config"
	"dayone/internal/http"
	"dayone/internal/llm"
	"dayone/internal/media"
	"dayone/internal/recall"
	"dayone/internal/service"
	"dayone/internal/storage"
	"dayone/internal/tts"
	"dayone/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	habitRepo := storage.NewHabitRepo(db)
	eventRepo := storage.NewEventRepo(db)
	noteRepo := storage.NewNoteRepo(db)
	mediaRepo := storage.NewMediaRepo(db)

	// Initialize media storage on disk
	mediaStore, err := media.NewStore(cfg.MediaRoot)
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}
	slog.Info("Media storage ready", "root", cfg.MediaRoot)

	// Create external service clients
	ttsClient := tts.NewClient(cfg.TTSBaseURL, cfg.TTSAPIKey)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	// Note recall is optional: without a Qdrant URL the assistant answers
	// ungrounded and notes are not indexed.
	var recallEngine recall.Engine
	if cfg.RecallEnabled() {
		ctx := context.Background()
		vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
			log.Fatalf("Failed to ensure Qdrant collection: %v", err)
		}
		slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

		embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModel)
		recallEngine = recall.NewEngine(embedder, vectorStore, cfg.QdrantCollection)
		slog.Info("Note recall enabled")
	} else {
		slog.Info("Note recall disabled (QDRANT_URL not set)")
	}

	// Create service layer
	habitService := service.NewHabitService(habitRepo, eventRepo)
	noteService := service.NewNoteService(noteRepo, recallEngine)
	mediaService := service.NewMediaService(mediaStore, mediaRepo)
	speechService := service.NewSpeechService(ttsClient, cfg.TTSDefaultVoice, cfg.TTSHindiVoice)
	assistantService := service.NewAssistantService(llmClient, recallEngine)

	// Create router with dependencies
	deps := &http.Deps{
		DB:               db,
		HabitService:     habitService,
		NoteService:      noteService,
		MediaService:     mediaService,
		SpeechService:    speechService,
		AssistantService: assistantService,
		NoteStore:        noteRepo,
		Synthesizer:      ttsClient,
		DefaultVoiceID:   cfg.TTSDefaultVoice,
		HindiVoiceID:     cfg.TTSHindiVoice,
		MediaRoot:        cfg.MediaRoot,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
