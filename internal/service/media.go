package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_media_service.go -package=mocks -mock_names=MediaService=MockMediaService dayone/internal/service MediaService

import (
	"context"
	"log/slog"

	"dayone/internal/contextutil"
	"dayone/internal/media"
	"dayone/internal/storage"
)

// UploadRequest holds an uploaded blob and its client-side filename.
type UploadRequest struct {
	Name string
	Data []byte
}

// MediaService stores uploaded media on disk and persists its metadata.
type MediaService interface {
	// SaveImage stores an image under /uploads and records it.
	SaveImage(ctx context.Context, req UploadRequest) (*storage.MediaRecord, error)
	// SaveAudio stores an audio file under /audios and records it.
	SaveAudio(ctx context.Context, req UploadRequest) (*storage.MediaRecord, error)
}

// mediaService implements MediaService.
type mediaService struct {
	store  *media.Store
	repo   storage.MediaStore
	logger *slog.Logger
}

// NewMediaService creates a new MediaService.
func NewMediaService(store *media.Store, repo storage.MediaStore) MediaService {
	return &mediaService{
		store:  store,
		repo:   repo,
		logger: slog.Default(),
	}
}

// SaveImage stores an image under /uploads and records it.
func (s *mediaService) SaveImage(ctx context.Context, req UploadRequest) (*storage.MediaRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(req.Data) == 0 {
		return nil, &ValidationError{Field: "file", Message: "cannot be empty"}
	}

	filename, url, err := s.store.SaveUpload(req.Name, req.Data)
	if err != nil {
		logger.ErrorContext(ctx, "failed to store image", "name", req.Name, "error", err)
		return nil, WrapError(err, "failed to store image")
	}

	record, err := s.repo.SaveImage(ctx, filename, url)
	if err != nil {
		logger.ErrorContext(ctx, "failed to persist image record", "filename", filename, "error", err)
		return nil, WrapError(err, "failed to persist image record")
	}

	logger.InfoContext(ctx, "image uploaded", "filename", filename, "bytes", len(req.Data))
	return record, nil
}

// SaveAudio stores an audio file under /audios and records it.
func (s *mediaService) SaveAudio(ctx context.Context, req UploadRequest) (*storage.MediaRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(req.Data) == 0 {
		return nil, &ValidationError{Field: "file", Message: "cannot be empty"}
	}

	filename, url, err := s.store.SaveAudio(req.Name, req.Data)
	if err != nil {
		logger.ErrorContext(ctx, "failed to store audio", "name", req.Name, "error", err)
		return nil, WrapError(err, "failed to store audio")
	}

	record, err := s.repo.SaveAudio(ctx, filename, url)
	if err != nil {
		logger.ErrorContext(ctx, "failed to persist audio record", "filename", filename, "error", err)
		return nil, WrapError(err, "failed to persist audio record")
	}

	logger.InfoContext(ctx, "audio uploaded", "filename", filename, "bytes", len(req.Data))
	return record, nil
}
