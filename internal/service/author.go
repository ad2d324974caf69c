package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/snnyvrz/bookverse/internal/model"
	"github.com/snnyvrz/bookverse/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorExists   = errors.New("author already exists")
	ErrNameRequired   = errors.New("author name is required")
)

const authorImageFolder = "author"

// ImageSaver stores an uploaded image and returns the path it is served under.
// Remove takes such a path and deletes the file again.
type ImageSaver interface {
	Save(ctx context.Context, folder, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

// Upload is an image file attached to a create or update request.
type Upload struct {
	Filename string
	Reader   io.Reader
}

type CreateAuthorInput struct {
	Name      string
	Biography *string
	ImageURL  string
	Image     *Upload
	// Active defaults to true when nil.
	Active *bool
}

type UpdateAuthorInput struct {
	Name      *string
	Biography *string
	ImageURL  *string
	Image     *Upload
	Active    *bool
}

type AuthorStatus struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type AuthorService struct {
	authors repository.AuthorRepository
	books   repository.BookRepository
	images  ImageSaver
}

func NewAuthorService(authors repository.AuthorRepository, books repository.BookRepository, images ImageSaver) *AuthorService {
	return &AuthorService{authors: authors, books: books, images: images}
}

func (s *AuthorService) Create(ctx context.Context, in CreateAuthorInput) (*model.Author, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	exists, err := s.authors.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check author name: %w", err)
	}
	if exists {
		return nil, ErrAuthorExists
	}

	image, uploaded, err := s.resolveImage(ctx, in.Image, in.ImageURL)
	if err != nil {
		return nil, err
	}

	author := model.Author{
		Name:      name,
		Biography: in.Biography,
		Image:     image,
		Active:    in.Active == nil || *in.Active,
	}

	if err := s.authors.Create(ctx, &author); err != nil {
		if uploaded {
			s.discardUpload(ctx, *image)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAuthorExists
		}
		return nil, fmt.Errorf("create author: %w", err)
	}
	return &author, nil
}

func (s *AuthorService) Get(ctx context.Context, id uint) (*model.Author, error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return author, nil
}

func (s *AuthorService) List(ctx context.Context, filter repository.AuthorFilter) ([]model.Author, error) {
	return s.authors.List(ctx, filter)
}

func (s *AuthorService) ListActive(ctx context.Context) ([]model.Author, error) {
	active := true
	return s.authors.List(ctx, repository.AuthorFilter{Active: &active})
}

func (s *AuthorService) ListInactive(ctx context.Context) ([]model.Author, error) {
	active := false
	return s.authors.List(ctx, repository.AuthorFilter{Active: &active})
}

func (s *AuthorService) Search(ctx context.Context, keyword string) ([]model.Author, error) {
	return s.authors.List(ctx, repository.AuthorFilter{Query: keyword})
}

// Update applies the provided fields. A blank name is ignored; biography may
// be cleared with an empty string.
func (s *AuthorService) Update(ctx context.Context, id uint, in UpdateAuthorInput) (*model.Author, error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	updated := *author

	if in.Name != nil {
		if name := strings.TrimSpace(*in.Name); name != "" && name != updated.Name {
			exists, err := s.authors.ExistsByName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("check author name: %w", err)
			}
			if exists {
				return nil, ErrAuthorExists
			}
			updated.Name = name
		}
	}

	if in.Biography != nil {
		bio := *in.Biography
		updated.Biography = &bio
	}

	var url string
	if in.ImageURL != nil {
		url = *in.ImageURL
	}
	image, uploaded, err := s.resolveImage(ctx, in.Image, url)
	if err != nil {
		return nil, err
	}
	if image != nil {
		updated.Image = image
	}

	if in.Active != nil {
		updated.Active = *in.Active
	}

	if err := s.authors.Update(ctx, &updated); err != nil {
		if uploaded {
			s.discardUpload(ctx, *image)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAuthorExists
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("update author: %w", err)
	}
	return &updated, nil
}

func (s *AuthorService) SetActive(ctx context.Context, id uint, active bool) (AuthorStatus, error) {
	author, err := s.authors.SetActive(ctx, id, active)
	if err != nil {
		return AuthorStatus{}, notFound(err)
	}
	return AuthorStatus{ID: author.ID, Name: author.Name, Active: author.Active}, nil
}

// Books returns the books of an existing author, possibly none.
func (s *AuthorService) Books(ctx context.Context, id uint) ([]model.Book, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.books.ListByAuthor(ctx, id)
}

func (s *AuthorService) Delete(ctx context.Context, id uint) error {
	return notFound(s.authors.Delete(ctx, id))
}

// resolveImage reports whether the returned path points at a freshly stored
// upload.
func (s *AuthorService) resolveImage(ctx context.Context, upload *Upload, url string) (*string, bool, error) {
	if upload != nil {
		if s.images == nil {
			return nil, false, errors.New("image uploads are not configured")
		}
		path, err := s.images.Save(ctx, authorImageFolder, upload.Filename, upload.Reader)
		if err != nil {
			return nil, false, err
		}
		return &path, true, nil
	}

	if u := strings.TrimSpace(url); u != "" {
		return &u, false, nil
	}
	return nil, false, nil
}

func (s *AuthorService) discardUpload(ctx context.Context, path string) {
	if err := s.images.Remove(context.WithoutCancel(ctx), path); err != nil {
		log.Printf("remove orphaned image %s: %v", path, err)
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAuthorNotFound
	}
	return err
}
