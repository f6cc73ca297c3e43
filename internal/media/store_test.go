package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreSaveUpload(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	filename, url, err := store.SaveUpload("cat photo.png", []byte{0x89, 0x50})
	if err != nil {
		t.Fatalf("SaveUpload() error = %v", err)
	}
	if !strings.HasSuffix(filename, "_cat_photo.png") {
		t.Errorf("filename = %q, want timestamp prefix and sanitized name", filename)
	}
	if url != UploadsPrefix+filename {
		t.Errorf("url = %q, want %q", url, UploadsPrefix+filename)
	}

	data, err := os.ReadFile(filepath.Join(store.Root(), "uploads", filename))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if len(data) != 2 {
		t.Errorf("stored %d bytes, want 2", len(data))
	}
}

func TestStoreSaveAudio(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	filename, url, err := store.SaveAudio("memo.mp3", []byte("mpeg"))
	if err != nil {
		t.Fatalf("SaveAudio() error = %v", err)
	}
	if !strings.HasPrefix(url, AudiosPrefix) {
		t.Errorf("url = %q, want %q prefix", url, AudiosPrefix)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), "audios", filename)); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestStoreRejectsEmptyData(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	if _, _, err := store.SaveUpload("empty.png", nil); err == nil {
		t.Error("SaveUpload() with no data should fail")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain name", input: "cat.png", want: "cat.png"},
		{name: "spaces become underscores", input: "my cat.png", want: "my_cat.png"},
		{name: "unix path is stripped", input: "/etc/passwd", want: "passwd"},
		{name: "windows path is stripped", input: "C:\\Users\\x\\cat.png", want: "cat.png"},
		{name: "traversal collapses to fallback", input: "..", want: "file"},
		{name: "empty collapses to fallback", input: "", want: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize(tt.input); got != tt.want {
				t.Errorf("sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
