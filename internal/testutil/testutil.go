package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookverse/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory sqlite database with the catalog schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := openMemoryDB(t, "testdb_")

	if err := db.AutoMigrate(&model.Author{}, &model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// NewErrorDB opens an in-memory database without any tables, so every query
// against it fails.
func NewErrorDB(t *testing.T) *gorm.DB {
	t.Helper()

	return openMemoryDB(t, "errdb_")
}

func openMemoryDB(t *testing.T, prefix string) *gorm.DB {
	t.Helper()

	dsn := "file:" + prefix + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func SeedAuthor(t *testing.T, db *gorm.DB, name string) model.Author {
	t.Helper()

	author := model.Author{
		Name:   name,
		Active: true,
	}

	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}

	return author
}

func SeedInactiveAuthor(t *testing.T, db *gorm.DB, name string) model.Author {
	t.Helper()

	author := SeedAuthor(t, db, name)
	if err := db.Model(&author).Update("active", false).Error; err != nil {
		t.Fatalf("failed to deactivate author %q: %v", name, err)
	}
	author.Active = false

	return author
}

func SeedBook(t *testing.T, db *gorm.DB, author model.Author, title, description string, publishedAt *time.Time) model.Book {
	t.Helper()

	now := time.Now()

	book := model.Book{
		Title:       title,
		AuthorID:    author.ID,
		Description: description,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := db.Omit("Author").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func Ptr[T any](v T) *T {
	return &v
}
