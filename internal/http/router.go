package http

import (
	"database/sql"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dayone/internal/handlers"
	"dayone/internal/media"
	"dayone/internal/playback"
	"dayone/internal/service"
	"dayone/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB               *sql.DB
	HabitService     service.HabitService
	NoteService      service.NoteService
	MediaService     service.MediaService
	SpeechService    service.SpeechService
	AssistantService service.AssistantService

	// Playback wiring. The scheduler reads tag values live from NoteStore
	// and synthesizes text tags through Synthesizer.
	NoteStore      storage.NoteStore
	Synthesizer    playback.Synthesizer
	DefaultVoiceID string
	HindiVoiceID   string

	// MediaRoot is served statically under /uploads and /audios.
	MediaRoot string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Add CORS and request-scoped logger middleware
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	habitHandler := handlers.NewHabitHandler(deps.HabitService)
	noteHandler := handlers.NewNoteHandler(deps.NoteService)
	mediaHandler := handlers.NewMediaHandler(deps.MediaService)
	speechHandler := handlers.NewSpeechHandler(deps.SpeechService)
	assistantHandler := handlers.NewAssistantHandler(deps.AssistantService)
	playbackHandler := handlers.NewPlaybackHandler(deps.NoteStore, deps.Synthesizer, deps.DefaultVoiceID, deps.HindiVoiceID)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/habits", func(r chi.Router) {
			r.Get("/", habitHandler.List)
			r.Post("/", habitHandler.Create)
			r.Patch("/{id}", habitHandler.Update)
			r.Delete("/{id}", habitHandler.Delete)
			r.Post("/{id}/events", habitHandler.RecordEvent)
			r.Delete("/{id}/events", habitHandler.DeleteEvents)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", noteHandler.List)
			r.Post("/", noteHandler.Create)
			r.Put("/", noteHandler.Update)
			r.Delete("/{id}", noteHandler.Delete)
		})

		r.Post("/images", mediaHandler.UploadImage)
		r.Post("/audios", mediaHandler.UploadAudio)

		r.Method(http.MethodPost, "/tts", speechHandler)
		r.Method(http.MethodPost, "/assistant", assistantHandler)

		r.Route("/playback/sessions", func(r chi.Router) {
			r.Post("/", playbackHandler.Create)
			r.Get("/{id}", playbackHandler.Get)
			r.Put("/{id}/queue", playbackHandler.SetQueue)
			r.Get("/{id}/speech", playbackHandler.Speech)
			r.Delete("/{id}", playbackHandler.Delete)
			r.Post("/{id}/{action}", playbackHandler.Action)
		})
	})

	r.Method(http.MethodGet, "/healthz", healthHandler)

	// Serve uploaded media from disk
	if deps.MediaRoot != "" {
		uploadsDir := http.Dir(filepath.Join(deps.MediaRoot, "uploads"))
		audiosDir := http.Dir(filepath.Join(deps.MediaRoot, "audios"))
		r.Handle(media.UploadsPrefix+"*", http.StripPrefix(media.UploadsPrefix, http.FileServer(uploadsDir)))
		r.Handle(media.AudiosPrefix+"*", http.StripPrefix(media.AudiosPrefix, http.FileServer(audiosDir)))
	}

	return r
}
