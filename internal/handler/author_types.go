package handler

import (
	"github.com/snnyvrz/bookverse/internal/model"
	"github.com/snnyvrz/bookverse/internal/service"
)

// CreateAuthorRequest is accepted as JSON or as a multipart form; with
// multipart an "image" file part may accompany it.
type CreateAuthorRequest struct {
	Name      string  `json:"name" form:"name" binding:"required,min=1,max=255"`
	Biography *string `json:"biography" form:"biography" binding:"omitempty,max=2000"`
	ImageURL  string  `json:"image_url" form:"image_url" binding:"omitempty,max=2048"`
	Active    *bool   `json:"active" form:"active"`
}

type UpdateAuthorRequest struct {
	Name      *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
	Biography *string `json:"biography" form:"biography" binding:"omitempty,max=2000"`
	ImageURL  *string `json:"image_url" form:"image_url" binding:"omitempty,max=2048"`
	Active    *bool   `json:"active" form:"active"`
}

type Author struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Biography *string `json:"biography,omitempty"`
	Image     *string `json:"image,omitempty"`
	Active    bool    `json:"active"`
}

type AuthorSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AuthorResponse struct {
	Data Author `json:"data"`
}

type ListAuthorsResponse struct {
	Data []Author `json:"data"`
}

type AuthorStatusResponse struct {
	Data service.AuthorStatus `json:"data"`
}

type AuthorBooksResponse struct {
	Data []BookSummary `json:"data"`
}

func toAuthor(a model.Author) Author {
	return Author{
		ID:        a.ID,
		Name:      a.Name,
		Biography: a.Biography,
		Image:     a.Image,
		Active:    a.Active,
	}
}

func toAuthorResponse(a model.Author) AuthorResponse {
	return AuthorResponse{Data: toAuthor(a)}
}

func toListAuthorsResponse(authors []model.Author) ListAuthorsResponse {
	data := make([]Author, 0, len(authors))
	for _, a := range authors {
		data = append(data, toAuthor(a))
	}
	return ListAuthorsResponse{Data: data}
}
