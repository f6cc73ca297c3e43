package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Public URL prefixes uploaded media is served under.
const (
	UploadsPrefix = "/uploads/"
	AudiosPrefix  = "/audios/"
)

// Store writes uploaded blobs to local disk under a media root and maps
// them to public URL paths. Filenames are timestamp-prefixed so repeated
// uploads of the same name never collide.
type Store struct {
	root string
}

// NewStore creates a media store rooted at the given directory, creating
// the uploads/ and audios/ subdirectories if needed.
func NewStore(root string) (*Store, error) {
	for _, sub := range []string{"uploads", "audios"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create media directory: %w", err)
		}
	}
	return &Store{root: root}, nil
}

// Root returns the media root directory.
func (s *Store) Root() string {
	return s.root
}

// SaveUpload writes an uploaded image blob and returns its stored filename
// and public URL.
func (s *Store) SaveUpload(name string, data []byte) (filename, url string, err error) {
	return s.save("uploads", UploadsPrefix, name, data)
}

// SaveAudio writes an audio blob and returns its stored filename and
// public URL.
func (s *Store) SaveAudio(name string, data []byte) (filename, url string, err error) {
	return s.save("audios", AudiosPrefix, name, data)
}

func (s *Store) save(sub, prefix, name string, data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("empty file")
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitize(name))
	absPath := filepath.Join(s.root, sub, filename)

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write media file: %w", err)
	}

	return filename, prefix + filename, nil
}

// sanitize reduces an uploaded filename to its base name with path
// separators and whitespace squeezed out, so it is safe to join under the
// media root.
func sanitize(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.TrimSpace(base)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." || base == ".." {
		base = "file"
	}
	return base
}
