package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	t.Run("creates file with content and extension", func(t *testing.T) {
		path, cleanup, err := WriteTempFile("<html></html>", "html")
		if err != nil {
			t.Fatalf("WriteTempFile() error = %v", err)
		}
		defer cleanup()

		if !strings.HasSuffix(path, ".html") {
			t.Errorf("path = %q, want .html suffix", path)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading temp file: %v", err)
		}
		if string(content) != "<html></html>" {
			t.Errorf("content = %q, want %q", content, "<html></html>")
		}
	})

	t.Run("cleanup removes the file", func(t *testing.T) {
		path, cleanup, err := WriteTempFile("data", "txt")
		if err != nil {
			t.Fatalf("WriteTempFile() error = %v", err)
		}

		cleanup()

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file %s still exists after cleanup", path)
		}
	})

	t.Run("empty extension rejected", func(t *testing.T) {
		_, _, err := WriteTempFile("data", "")
		if !errors.Is(err, ErrExtensionEmpty) {
			t.Errorf("error = %v, want ErrExtensionEmpty", err)
		}
	})

	t.Run("extension with path separator rejected", func(t *testing.T) {
		_, _, err := WriteTempFile("data", "html/../../etc")
		if !errors.Is(err, ErrExtensionPathTraversal) {
			t.Errorf("error = %v, want ErrExtensionPathTraversal", err)
		}
	})
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	existing := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(existing, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", existing, true},
		{"missing file", filepath.Join(dir, "missing.txt"), false},
		{"directory is not a file", dir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"worksheet", false},
		{"./config.yaml", true},
		{"../shared/config.yaml", true},
		{"/absolute/path.yaml", true},
		{`C:\windows\path.yaml`, true},
		{"my-config", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
