package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func newTestStore(t *testing.T, maxBytes int64) *ImageStore {
	t.Helper()

	s := NewImageStore(t.TempDir(), maxBytes)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return s
}

func TestImageStore_SaveWritesFile(t *testing.T) {
	s := newTestStore(t, 0)
	data := pngBytes(t)

	got, err := s.Save(context.Background(), "author", "Jane Doe (portrait).png", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	want := "/img/author/1700000000000-Jane-Doe--portrait-.png"
	if got != want {
		t.Fatalf("expected path %q, got %q", want, got)
	}

	stored, err := os.ReadFile(filepath.Join(s.Root, "author", "1700000000000-Jane-Doe--portrait-.png"))
	if err != nil {
		t.Fatalf("expected stored file: %v", err)
	}
	if !bytes.Equal(stored, data) {
		t.Fatalf("stored bytes differ from upload")
	}
}

func TestImageStore_SaveAddsDetectedExtension(t *testing.T) {
	s := newTestStore(t, 0)

	got, err := s.Save(context.Background(), "author", "portrait", bytes.NewReader(pngBytes(t)))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !strings.HasSuffix(got, "-portrait.png") {
		t.Fatalf("expected detected .png extension, got %q", got)
	}
}

func TestImageStore_RejectsNonImage(t *testing.T) {
	s := newTestStore(t, 0)

	_, err := s.Save(context.Background(), "author", "notes.png", strings.NewReader("just some text"))
	if !errors.Is(err, ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
}

func TestImageStore_RejectsLargeFile(t *testing.T) {
	data := pngBytes(t)
	s := newTestStore(t, int64(len(data)-1))

	_, err := s.Save(context.Background(), "author", "big.png", bytes.NewReader(data))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestImageStore_RejectsEmptyName(t *testing.T) {
	s := newTestStore(t, 0)

	_, err := s.Save(context.Background(), "author", "  ", bytes.NewReader(pngBytes(t)))
	if !errors.Is(err, ErrInvalidFileName) {
		t.Fatalf("expected ErrInvalidFileName, got %v", err)
	}
}

func TestImageStore_HonoursCancelledContext(t *testing.T) {
	s := newTestStore(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Save(ctx, "author", "a.png", bytes.NewReader(pngBytes(t))); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestImageStore_RemoveDeletesSavedFile(t *testing.T) {
	s := newTestStore(t, 0)
	ctx := context.Background()

	got, err := s.Save(ctx, "author", "gone.png", bytes.NewReader(pngBytes(t)))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := s.Remove(ctx, got); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	onDisk := filepath.Join(s.Root, "author", strings.TrimPrefix(got, "/img/author/"))
	if _, err := os.Stat(onDisk); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file to be removed, stat err=%v", err)
	}

	if err := s.Remove(ctx, got); err != nil {
		t.Errorf("expected removing a missing file to succeed, got %v", err)
	}
}

func TestImageStore_RemoveStaysInsideRoot(t *testing.T) {
	parent := t.TempDir()
	outside := filepath.Join(parent, "keep.png")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	s := NewImageStore(filepath.Join(parent, "root"), 0)
	ctx := context.Background()

	if err := s.Remove(ctx, "/img/../keep.png"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("expected file outside root to survive: %v", err)
	}

	for _, p := range []string{"/elsewhere/keep.png", "/img/", "/img/.."} {
		if err := s.Remove(ctx, p); !errors.Is(err, ErrInvalidFileName) {
			t.Errorf("Remove(%q): expected ErrInvalidFileName, got %v", p, err)
		}
	}
}
