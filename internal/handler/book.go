package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookverse/internal/model"
	"github.com/snnyvrz/bookverse/internal/repository"
	"github.com/snnyvrz/bookverse/internal/validation"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.DELETE("/:id", h.DeleteBook)
		books.POST("", h.CreateBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book for an existing author
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error or unknown author"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book := model.Book{
		Title:       req.Title,
		AuthorID:    req.AuthorID,
		Description: req.Description,
		PublishedAt: req.PublishedAt.Ptr(),
	}

	ctx := c.Request.Context()

	if err := h.repo.Create(ctx, &book); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			writeError(c, http.StatusBadRequest,
				"AUTHOR_NOT_FOUND",
				"author does not exist",
			)
			return
		}

		writeInternalError(c, err,
			"BOOK_CREATE_FAILED",
			"failed to create book",
		)
		return
	}

	created, err := h.repo.FindByID(ctx, book.ID)
	if err != nil {
		writeInternalError(c, err,
			"BOOK_FETCH_FAILED",
			"failed to fetch created book",
		)
		return
	}

	c.JSON(http.StatusCreated, BookResponse{Data: toBook(*created)})
}

// ListBooks godoc
// @Summary      List books
// @Description  List books with paging, sorting and filters
// @Tags         books
// @Produce      json
// @Param        page             query     int     false  "Page number"      default(1) minimum(1)
// @Param        page_size        query     int     false  "Items per page"   default(20) minimum(1) maximum(100)
// @Param        sort             query     string  false  "Sort field and direction" Enums(created_at_desc,created_at_asc,title_asc,title_desc,published_at_desc,published_at_asc)
// @Param        q                query     string  false  "Search on title and description"
// @Param        author_id        query     int     false  "Filter by author ID"
// @Param        published_after  query     string  false  "Filter: published_at >= YYYY-MM-DD" example(2015-01-01)
// @Param        published_before query     string  false  "Filter: published_at <= YYYY-MM-DD" example(2020-12-31)
// @Success      200  {object}  ListBooksResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	page := max(parseIntQuery(c, "page", 1), 1)
	pageSize := parseIntQuery(c, "page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	sort := c.DefaultQuery("sort", "created_at_desc")
	if !repository.ValidBookSort(sort) {
		writeError(c, http.StatusBadRequest,
			"INVALID_SORT",
			"unsupported sort value",
		)
		return
	}

	var authorID *uint
	if s := c.Query("author_id"); s != "" {
		v, err := strconv.ParseUint(s, 10, 0)
		if err != nil || v == 0 {
			writeError(c, http.StatusBadRequest,
				"INVALID_AUTHOR_ID",
				"author_id must be a positive integer",
			)
			return
		}
		id := uint(v)
		authorID = &id
	}

	pubAfter, err := parseDateQuery(c, "published_after")
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_PUBLISHED_AFTER",
			"published_after must be in format YYYY-MM-DD",
		)
		return
	}

	pubBefore, err := parseDateQuery(c, "published_before")
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_PUBLISHED_BEFORE",
			"published_before must be in format YYYY-MM-DD",
		)
		return
	}

	params := repository.BookListParams{
		Page:      page,
		PageSize:  pageSize,
		Sort:      sort,
		Query:     c.Query("q"),
		AuthorID:  authorID,
		PubAfter:  pubAfter,
		PubBefore: pubBefore,
	}

	result, err := h.repo.List(c.Request.Context(), params)
	if err != nil {
		writeInternalError(c, err,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	data := make([]Book, 0, len(result.Books))
	for _, b := range result.Books {
		data = append(data, toBook(b))
	}

	totalPages := int((result.Total + int64(pageSize) - 1) / int64(pageSize))

	c.JSON(http.StatusOK, ListBooksResponse{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      result.Total,
			TotalPages: totalPages,
		},
	})
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int     true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return
	}

	book, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeInternalError(c, err,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: toBook(*book)})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id   path      int     true  "Book ID"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeInternalError(c, err,
			"BOOK_DELETE_FAILED",
			"failed to delete book",
		)
		return
	}

	c.Status(http.StatusNoContent)
}
