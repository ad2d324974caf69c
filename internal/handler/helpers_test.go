package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookverse/internal/model"
	"github.com/snnyvrz/bookverse/internal/repository"
	"github.com/snnyvrz/bookverse/internal/service"
	"github.com/snnyvrz/bookverse/internal/storage"
	"github.com/snnyvrz/bookverse/internal/validation"
	"gorm.io/gorm"
)

type fakeAuthorRepo struct {
	CreateFn       func(ctx context.Context, a *model.Author) error
	UpsertFn       func(ctx context.Context, a *model.Author) error
	FindByIDFn     func(ctx context.Context, id uint) (*model.Author, error)
	ExistsByNameFn func(ctx context.Context, name string) (bool, error)
	ListFn         func(ctx context.Context, filter repository.AuthorFilter) ([]model.Author, error)
	UpdateFn       func(ctx context.Context, a *model.Author) error
	SetActiveFn    func(ctx context.Context, id uint, active bool) (*model.Author, error)
	DeleteFn       func(ctx context.Context, id uint) error
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *model.Author) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, a)
	}
	return nil
}

func (f *fakeAuthorRepo) Upsert(ctx context.Context, a *model.Author) error {
	if f.UpsertFn != nil {
		return f.UpsertFn(ctx, a)
	}
	return nil
}

func (f *fakeAuthorRepo) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthorRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	if f.ExistsByNameFn != nil {
		return f.ExistsByNameFn(ctx, name)
	}
	return false, nil
}

func (f *fakeAuthorRepo) List(ctx context.Context, filter repository.AuthorFilter) ([]model.Author, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, a *model.Author) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, a)
	}
	return nil
}

func (f *fakeAuthorRepo) SetActive(ctx context.Context, id uint, active bool) (*model.Author, error) {
	if f.SetActiveFn != nil {
		return f.SetActiveFn(ctx, id, active)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uint) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeBookRepo struct {
	CreateFn   func(ctx context.Context, b *model.Book) error
	FindByIDFn func(ctx context.Context, id uint) (*model.Book, error)
	ListFn     func(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error)
	DeleteFn   func(ctx context.Context, id uint) error
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookRepo) List(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, params)
	}
	return repository.BookListResult{}, nil
}

func (f *fakeBookRepo) ListByAuthor(ctx context.Context, authorID uint) ([]model.Book, error) {
	return []model.Book{}, nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	uploadDir string
}

func setupTestRouter(t *testing.T, db *gorm.DB) testEnv {
	t.Helper()

	uploadDir := t.TempDir()
	books := repository.NewGormBookRepository(db)
	authorRepo, err := repository.NewCachedAuthorRepository(repository.NewAuthorRepository(db), 16)
	if err != nil {
		t.Fatalf("failed to create author cache: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterDeps{
		DB:        db,
		Authors:   service.NewAuthorService(authorRepo, books, storage.NewImageStore(uploadDir, 0)),
		Books:     books,
		SiteTitle: "Bookverse",
		UploadDir: uploadDir,
		Version:   "test",
		StartTime: time.Now(),

		AuthorCache: authorRepo,
	})

	return testEnv{router: r, db: db, uploadDir: uploadDir}
}

func setupAuthorRouterWithRepo(authorRepo repository.AuthorRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := service.NewAuthorService(authorRepo, &fakeBookRepo{}, nil)
	NewAuthorHandler(svc).RegisterRoutes(r.Group(""))

	return r
}

func setupBookRouterWithRepo(bookRepo repository.BookRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	NewBookHandler(bookRepo).RegisterRoutes(r.Group(""))

	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, router http.Handler, method, path string, fields map[string]string, filename string, file []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := fw.Write(file); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != code {
		t.Errorf("expected error code %s, got %q", code, resp.Code)
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}
