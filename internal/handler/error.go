package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookverse/internal/service"
	"github.com/snnyvrz/bookverse/internal/storage"
	"github.com/snnyvrz/bookverse/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// writeInternalError logs err with the request id and answers 500.
func writeInternalError(c *gin.Context, err error, code, message string) {
	log.Printf("request %s: %s: %v", requestID(c), code, err)
	writeError(c, http.StatusInternalServerError, code, message)
}

// writeAuthorError maps author service and upload errors onto the envelope,
// falling back to a 500 with the given code.
func writeAuthorError(c *gin.Context, err error, code, message string) {
	switch {
	case errors.Is(err, service.ErrAuthorNotFound):
		writeError(c, http.StatusNotFound, "AUTHOR_NOT_FOUND", "author not found")
	case errors.Is(err, service.ErrAuthorExists):
		writeError(c, http.StatusConflict, "AUTHOR_EXISTS", "author already exists")
	case errors.Is(err, service.ErrNameRequired):
		writeError(c, http.StatusBadRequest, "AUTHOR_NAME_REQUIRED", "author name is required")
	case errors.Is(err, storage.ErrInvalidFileType):
		writeError(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "uploaded file must be an image")
	case errors.Is(err, storage.ErrInvalidFileName):
		writeError(c, http.StatusBadRequest, "INVALID_FILE_NAME", "uploaded file must have a name")
	case errors.Is(err, storage.ErrFileTooLarge):
		writeError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "uploaded file is too large")
	default:
		writeInternalError(c, err, code, message)
	}
}
