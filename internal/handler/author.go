package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookverse/internal/repository"
	"github.com/snnyvrz/bookverse/internal/service"
	"github.com/snnyvrz/bookverse/internal/validation"
)

type AuthorHandler struct {
	svc *service.AuthorService
}

func NewAuthorHandler(svc *service.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/authors")
	{
		authors.POST("", h.CreateAuthor)
		authors.GET("", h.ListAuthors)
		authors.GET("/active", h.ListActiveAuthors)
		authors.GET("/inactive", h.ListInactiveAuthors)
		authors.GET("/search/:keyword", h.SearchAuthors)
		authors.GET("/:id", h.GetAuthorByID)
		authors.GET("/:id/books", h.ListAuthorBooks)
		authors.PATCH("/:id", h.UpdateAuthor)
		authors.PUT("/:id/active", h.ActivateAuthor)
		authors.PUT("/:id/inactive", h.DeactivateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

// formImage returns the optional "image" part of a multipart request. The
// returned close func is never nil.
func formImage(c *gin.Context) (*service.Upload, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return nil, noop, nil
	}

	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	return &service.Upload{Filename: fh.Filename, Reader: f}, func() { _ = f.Close() }, nil
}

func (h *AuthorHandler) authorID(c *gin.Context) (uint, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest,
			"AUTHOR_INVALID_ID",
			"invalid author id",
		)
	}
	return id, ok
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Create a new author. Accepts JSON, or multipart/form-data with an optional "image" file.
// @Tags         authors
// @Accept       json,mpfd
// @Produce      json
// @Param        payload  body      CreateAuthorRequest        true  "Author to create"
// @Success      201      {object}  AuthorResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      409      {object}  validation.ErrorResponse   "Author already exists"
// @Failure      413      {object}  validation.ErrorResponse   "Image too large"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	upload, closeUpload, err := formImage(c)
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_FILE",
			"could not read uploaded image",
		)
		return
	}
	defer closeUpload()

	author, err := h.svc.Create(c.Request.Context(), service.CreateAuthorInput{
		Name:      req.Name,
		Biography: req.Biography,
		ImageURL:  req.ImageURL,
		Image:     upload,
		Active:    req.Active,
	})
	if err != nil {
		writeAuthorError(c, err,
			"AUTHOR_CREATE_FAILED",
			"failed to create author",
		)
		return
	}

	c.JSON(http.StatusCreated, toAuthorResponse(*author))
}

// ListAuthors godoc
// @Summary      List authors
// @Description  List authors, newest first, optionally filtered by active flag and name
// @Tags         authors
// @Produce      json
// @Param        active  query     bool    false  "Filter by active flag"
// @Param        q       query     string  false  "Case-insensitive name search"
// @Success      200     {object}  ListAuthorsResponse
// @Failure      400     {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500     {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	active, err := parseBoolQuery(c, "active")
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_ACTIVE_FILTER",
			"active must be true or false",
		)
		return
	}

	authors, err := h.svc.List(c.Request.Context(), repository.AuthorFilter{
		Active: active,
		Query:  c.Query("q"),
	})
	if err != nil {
		writeInternalError(c, err,
			"AUTHOR_LIST_FAILED",
			"failed to list authors",
		)
		return
	}

	c.JSON(http.StatusOK, toListAuthorsResponse(authors))
}

// ListActiveAuthors godoc
// @Summary      List active authors
// @Tags         authors
// @Produce      json
// @Success      200  {object}  ListAuthorsResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors/active [get]
func (h *AuthorHandler) ListActiveAuthors(c *gin.Context) {
	authors, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		writeInternalError(c, err,
			"AUTHOR_LIST_FAILED",
			"failed to list authors",
		)
		return
	}

	c.JSON(http.StatusOK, toListAuthorsResponse(authors))
}

// ListInactiveAuthors godoc
// @Summary      List inactive authors
// @Tags         authors
// @Produce      json
// @Success      200  {object}  ListAuthorsResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors/inactive [get]
func (h *AuthorHandler) ListInactiveAuthors(c *gin.Context) {
	authors, err := h.svc.ListInactive(c.Request.Context())
	if err != nil {
		writeInternalError(c, err,
			"AUTHOR_LIST_FAILED",
			"failed to list authors",
		)
		return
	}

	c.JSON(http.StatusOK, toListAuthorsResponse(authors))
}

// SearchAuthors godoc
// @Summary      Search authors by name
// @Tags         authors
// @Produce      json
// @Param        keyword  path      string  true  "Case-insensitive substring of the name"
// @Success      200      {object}  ListAuthorsResponse
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors/search/{keyword} [get]
func (h *AuthorHandler) SearchAuthors(c *gin.Context) {
	authors, err := h.svc.Search(c.Request.Context(), c.Param("keyword"))
	if err != nil {
		writeInternalError(c, err,
			"AUTHOR_SEARCH_FAILED",
			"failed to search authors",
		)
		return
	}

	c.JSON(http.StatusOK, toListAuthorsResponse(authors))
}

// GetAuthorByID godoc
// @Summary      Get author by ID
// @Tags         authors
// @Produce      json
// @Param        id   path      int                       true  "Author ID"
// @Success      200  {object}  AuthorResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	author, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeAuthorError(c, err,
			"AUTHOR_FETCH_FAILED",
			"failed to fetch author",
		)
		return
	}

	c.JSON(http.StatusOK, toAuthorResponse(*author))
}

// ListAuthorBooks godoc
// @Summary      List books of an author
// @Tags         authors
// @Produce      json
// @Param        id   path      int                       true  "Author ID"
// @Success      200  {object}  AuthorBooksResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id}/books [get]
func (h *AuthorHandler) ListAuthorBooks(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	books, err := h.svc.Books(c.Request.Context(), id)
	if err != nil {
		writeAuthorError(c, err,
			"AUTHOR_BOOKS_FAILED",
			"failed to fetch author books",
		)
		return
	}

	c.JSON(http.StatusOK, AuthorBooksResponse{Data: toBookSummaries(books)})
}

// UpdateAuthor godoc
// @Summary      Update an author
// @Description  Partially update an author. Accepts JSON, or multipart/form-data with an optional "image" file.
// @Tags         authors
// @Accept       json,mpfd
// @Produce      json
// @Param        id       path      int                  true  "Author ID"
// @Param        payload  body      UpdateAuthorRequest  true  "Author fields to update"
// @Success      200      {object}  AuthorResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Author not found"
// @Failure      409      {object}  validation.ErrorResponse  "Name taken by another author"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [patch]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	var req UpdateAuthorRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	upload, closeUpload, err := formImage(c)
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_FILE",
			"could not read uploaded image",
		)
		return
	}
	defer closeUpload()

	author, err := h.svc.Update(c.Request.Context(), id, service.UpdateAuthorInput{
		Name:      req.Name,
		Biography: req.Biography,
		ImageURL:  req.ImageURL,
		Image:     upload,
		Active:    req.Active,
	})
	if err != nil {
		writeAuthorError(c, err,
			"AUTHOR_UPDATE_FAILED",
			"failed to update author",
		)
		return
	}

	c.JSON(http.StatusOK, toAuthorResponse(*author))
}

// ActivateAuthor godoc
// @Summary      Mark an author active
// @Tags         authors
// @Produce      json
// @Param        id   path      int                       true  "Author ID"
// @Success      200  {object}  AuthorStatusResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id}/active [put]
func (h *AuthorHandler) ActivateAuthor(c *gin.Context) {
	h.setActive(c, true)
}

// DeactivateAuthor godoc
// @Summary      Mark an author inactive
// @Tags         authors
// @Produce      json
// @Param        id   path      int                       true  "Author ID"
// @Success      200  {object}  AuthorStatusResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id}/inactive [put]
func (h *AuthorHandler) DeactivateAuthor(c *gin.Context) {
	h.setActive(c, false)
}

func (h *AuthorHandler) setActive(c *gin.Context, active bool) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	status, err := h.svc.SetActive(c.Request.Context(), id, active)
	if err != nil {
		writeAuthorError(c, err,
			"AUTHOR_UPDATE_FAILED",
			"failed to update author",
		)
		return
	}

	c.JSON(http.StatusOK, AuthorStatusResponse{Data: status})
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Delete an author and its books
// @Tags         authors
// @Produce      json
// @Param        id   path      int                       true  "Author ID"
// @Success      204  "No Content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeAuthorError(c, err,
			"AUTHOR_DELETE_FAILED",
			"failed to delete author",
		)
		return
	}

	c.Status(http.StatusNoContent)
}
