package repository

import (
	"context"
	"strings"

	"github.com/snnyvrz/bookverse/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuthorFilter struct {
	Active *bool
	// Query matches a case-insensitive substring of the name.
	Query string
}

type AuthorRepository interface {
	Create(ctx context.Context, a *model.Author) error
	Upsert(ctx context.Context, a *model.Author) error
	FindByID(ctx context.Context, id uint) (*model.Author, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, filter AuthorFilter) ([]model.Author, error)
	Update(ctx context.Context, a *model.Author) error
	SetActive(ctx context.Context, id uint, active bool) (*model.Author, error)
	Delete(ctx context.Context, id uint) error
}

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) Create(ctx context.Context, a *model.Author) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// Upsert inserts the author with its given id or overwrites the existing row.
func (r *GormAuthorRepository) Upsert(ctx context.Context, a *model.Author) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "biography", "image", "active", "updated_at"}),
		}).
		Create(a).Error
}

func (r *GormAuthorRepository) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).First(&author, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *GormAuthorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {

		return false, err
	}
	return count > 0, nil
}

func (r *GormAuthorRepository) List(ctx context.Context, filter AuthorFilter) ([]model.Author, error) {
	q := r.db.WithContext(ctx).Model(&model.Author{})

	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '!'", containsPattern(s))
	}

	authors := []model.Author{}
	if err := q.Order("created_at DESC").Order("id DESC").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *GormAuthorRepository) Update(ctx context.Context, a *model.Author) error {
	result := r.db.WithContext(ctx).
		Model(a).
		Select("name", "biography", "image", "active", "updated_at").
		Updates(a)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormAuthorRepository) SetActive(ctx context.Context, id uint, active bool) (*model.Author, error) {
	author, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(author).
		Update("active", active).Error; err != nil {

		return nil, err
	}
	author.Active = active
	return author, nil
}

func (r *GormAuthorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Author{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
