package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mastermalone/css-unity/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.css")
		content := []byte(".a{color:red}")

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("categorizes missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), "/nonexistent/file.css")
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("categorizes directory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Fatalf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.ReadFile(ctx, "anypath"); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.css")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fsutil.Exists(path) {
		t.Error("Exists() = false for present file")
	}
	if fsutil.Exists(filepath.Join(dir, "absent.css")) {
		t.Error("Exists() = true for absent file")
	}
	if fsutil.Exists(dir) {
		t.Error("Exists() = true for directory")
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.css")
		content := []byte(".a{}")

		if err := fsutil.WriteAtomic(context.Background(), path, content, 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", stat.Mode(), fsutil.DefaultFileMode)
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.css")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.css")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("dir entries = %d, want 1", len(entries))
		}
	})
}
