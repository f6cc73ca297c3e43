package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"dayone/internal/contextutil"
	"dayone/internal/service"
	"dayone/internal/storage"
)

// maxUploadBytes caps multipart uploads held in memory.
const maxUploadBytes = 32 << 20

// MediaHandler handles HTTP requests for image and audio uploads.
type MediaHandler struct {
	media  service.MediaService
	logger *slog.Logger
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(media service.MediaService) *MediaHandler {
	return &MediaHandler{
		media:  media,
		logger: slog.Default(),
	}
}

// MediaResponse represents an uploaded media record in HTTP responses.
type MediaResponse struct {
	ID        int       `json:"id"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadImage handles POST /api/images.
func (h *MediaHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.media.SaveImage)
}

// UploadAudio handles POST /api/audios.
func (h *MediaHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.media.SaveAudio)
}

func (h *MediaHandler) upload(w http.ResponseWriter, r *http.Request, save func(ctx context.Context, req service.UploadRequest) (*storage.MediaRecord, error)) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "missing file field", "error", err)
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read uploaded file", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	record, err := save(ctx, service.UploadRequest{Name: header.Filename, Data: data})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to store upload")
		return
	}

	writeJSON(w, http.StatusOK, MediaResponse{
		ID:        record.ID,
		Filename:  record.Filename,
		URL:       record.URL,
		CreatedAt: record.CreatedAt,
	})
}
