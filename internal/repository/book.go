package repository

import (
	"context"
	"strings"
	"time"

	"github.com/snnyvrz/bookverse/internal/model"
	"gorm.io/gorm"
)

type BookListParams struct {
	Page      int
	PageSize  int
	Sort      string
	Query     string
	AuthorID  *uint
	PubAfter  *time.Time
	PubBefore *time.Time
}

type BookListResult struct {
	Books []model.Book
	Total int64
}

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context, params BookListParams) (BookListResult, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]model.Book, error)
	Delete(ctx context.Context, id uint) error
}

var bookSorts = map[string]string{
	"created_at_desc":   "created_at DESC",
	"created_at_asc":    "created_at ASC",
	"title_asc":         "title ASC",
	"title_desc":        "title DESC",
	"published_at_desc": "published_at DESC",
	"published_at_asc":  "published_at ASC",
}

func ValidBookSort(sort string) bool {
	_, ok := bookSorts[sort]
	return ok
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Omit("Author").Create(book).Error
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		First(&book, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context, params BookListParams) (BookListResult, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})

	if s := strings.TrimSpace(params.Query); s != "" {
		like := containsPattern(s)
		q = q.Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!'", like, like)
	}
	if params.AuthorID != nil {
		q = q.Where("author_id = ?", *params.AuthorID)
	}
	if params.PubAfter != nil {
		q = q.Where("published_at >= ?", *params.PubAfter)
	}
	if params.PubBefore != nil {
		q = q.Where("published_at <= ?", *params.PubBefore)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return BookListResult{}, err
	}

	order, ok := bookSorts[params.Sort]
	if !ok {
		order = bookSorts["created_at_desc"]
	}

	page := max(params.Page, 1)
	pageSize := max(params.PageSize, 1)

	books := []model.Book{}
	if err := q.
		Preload("Author").
		Order(order).
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&books).Error; err != nil {

		return BookListResult{}, err
	}

	return BookListResult{Books: books, Total: total}, nil
}

func (r *GormBookRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Book, error) {
	books := []model.Book{}
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("title ASC").
		Find(&books).Error; err != nil {

		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
