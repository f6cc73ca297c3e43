package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_media_store.go -package=mocks dayone/internal/storage MediaStore

import (
	"context"
	"database/sql"
	"fmt"
)

// MediaStore defines the interface for uploaded media metadata operations.
type MediaStore interface {
	// SaveImage persists an uploaded image's metadata.
	SaveImage(ctx context.Context, filename, url string) (*MediaRecord, error)
	// SaveAudio persists an uploaded audio file's metadata.
	SaveAudio(ctx context.Context, filename, url string) (*MediaRecord, error)
	// ListImages returns all image records, newest first.
	ListImages(ctx context.Context) ([]MediaRecord, error)
	// ListAudios returns all audio records, newest first.
	ListAudios(ctx context.Context) ([]MediaRecord, error)
}

// MediaRepo provides methods for media metadata operations.
// It implements the MediaStore interface.
type MediaRepo struct {
	db *sql.DB
}

// NewMediaRepo creates a new MediaRepo.
func NewMediaRepo(db *sql.DB) *MediaRepo {
	return &MediaRepo{db: db}
}

// SaveImage persists an uploaded image's metadata.
func (r *MediaRepo) SaveImage(ctx context.Context, filename, url string) (*MediaRecord, error) {
	return r.save(ctx, "images", filename, url)
}

// SaveAudio persists an uploaded audio file's metadata.
func (r *MediaRepo) SaveAudio(ctx context.Context, filename, url string) (*MediaRecord, error) {
	return r.save(ctx, "audios", filename, url)
}

// ListImages returns all image records, newest first.
func (r *MediaRepo) ListImages(ctx context.Context) ([]MediaRecord, error) {
	return r.list(ctx, "images")
}

// ListAudios returns all audio records, newest first.
func (r *MediaRepo) ListAudios(ctx context.Context) ([]MediaRecord, error) {
	return r.list(ctx, "audios")
}

func (r *MediaRepo) save(ctx context.Context, table, filename, url string) (*MediaRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO "+table+" (filename, url) VALUES (?, ?)",
		filename, url,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %s record: %w", table, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted %s id: %w", table, err)
	}

	var record MediaRecord
	var createdAtStr string
	err = r.db.QueryRowContext(ctx,
		"SELECT id, filename, url, created_at FROM "+table+" WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Filename, &record.URL, &createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s record: %w", table, err)
	}
	if record.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &record, nil
}

func (r *MediaRepo) list(ctx context.Context, table string) ([]MediaRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, filename, url, created_at FROM "+table+" ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s records: %w", table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := []MediaRecord{}
	for rows.Next() {
		var record MediaRecord
		var createdAtStr string
		if err := rows.Scan(&record.ID, &record.Filename, &record.URL, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan %s record: %w", table, err)
		}
		if record.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s records: %w", table, err)
	}

	return records, nil
}
