package handler

import (
	"github.com/snnyvrz/bookverse/internal/model"
)

type CreateBookRequest struct {
	Title       string      `json:"title" binding:"required,max=255"`
	AuthorID    uint        `json:"author_id" binding:"required,min=1"`
	Description string      `json:"description" binding:"omitempty,max=2000"`
	PublishedAt *model.Date `json:"published_at" swaggertype:"string" example:"2025-11-24"`
}

type Book struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Author      AuthorSummary `json:"author"`
	Description string        `json:"description"`
	PublishedAt *model.Date   `json:"published_at,omitempty" swaggertype:"string" example:"2025-11-24"`
	CreatedAt   model.Date    `json:"created_at" swaggertype:"string" example:"2025-11-24"`
	UpdatedAt   model.Date    `json:"updated_at" swaggertype:"string" example:"2025-11-24"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

type BookSummary struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	PublishedAt *model.Date `json:"published_at,omitempty" swaggertype:"string" example:"2025-11-24"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ListBooksResponse struct {
	Data       []Book     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func toBook(b model.Book) Book {
	return Book{
		ID:    b.ID,
		Title: b.Title,
		Author: AuthorSummary{
			ID:   b.Author.ID,
			Name: b.Author.Name,
		},
		Description: b.Description,
		PublishedAt: model.DateFrom(b.PublishedAt),
		CreatedAt:   model.Date{Time: b.CreatedAt},
		UpdatedAt:   model.Date{Time: b.UpdatedAt},
	}
}

func toBookSummary(b model.Book) BookSummary {
	return BookSummary{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		PublishedAt: model.DateFrom(b.PublishedAt),
	}
}

func toBookSummaries(books []model.Book) []BookSummary {
	out := make([]BookSummary, 0, len(books))
	for _, b := range books {
		out = append(out, toBookSummary(b))
	}
	return out
}
