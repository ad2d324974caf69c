package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultMaxImageBytes = 5 * 1024 * 1024

var (
	ErrInvalidFileType = errors.New("file is not an image")
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidFileName = errors.New("invalid file name")
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ImageStore writes uploaded images below Root and hands back the public path
// they are served under (PublicPrefix + "/" + folder + "/" + file).
type ImageStore struct {
	Root         string
	PublicPrefix string
	MaxBytes     int64

	now func() time.Time
}

func NewImageStore(root string, maxBytes int64) *ImageStore {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &ImageStore{
		Root:         root,
		PublicPrefix: "/img",
		MaxBytes:     maxBytes,
		now:          time.Now,
	}
}

// Save validates and stores one image. The stored name is
// <unix-millis>-<sanitized base><ext>.
func (s *ImageStore) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return "", ErrInvalidFileName
	}

	data, err := io.ReadAll(io.LimitReader(r, s.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.MaxBytes {
		return "", ErrFileTooLarge
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidFileType, mt.String())
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	if ext == "" {
		ext = mt.Extension()
	}
	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), unsafeNameChars.ReplaceAllString(base, "-"), ext)

	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return path.Join(s.PublicPrefix, folder, name), nil
}

// Remove deletes a file previously returned by Save. A file that is already
// gone is not an error.
func (s *ImageStore) Remove(ctx context.Context, publicPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, ok := strings.CutPrefix(publicPath, s.PublicPrefix+"/")
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidFileName, publicPath)
	}
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == "" {
		return fmt.Errorf("%w: %s", ErrInvalidFileName, publicPath)
	}

	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
