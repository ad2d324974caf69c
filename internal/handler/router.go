package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookverse/internal/repository"
	"github.com/snnyvrz/bookverse/internal/service"
	"gorm.io/gorm"
)

type RouterDeps struct {
	DB        *gorm.DB
	Authors   *service.AuthorService
	Books     repository.BookRepository
	SiteTitle string
	// UploadDir is served under /img when set.
	UploadDir string
	Version   string
	StartTime time.Time

	// AuthorCache is reported by /ready when set.
	AuthorCache CacheSizer
}

func NewRouter(d RouterDeps) *gin.Engine {
	e := gin.Default()
	e.Use(RequestID())

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	NewHealthHandler(d).RegisterRoutes(e)
	NewPageHandler(d.SiteTitle).RegisterRoutes(e)

	if d.UploadDir != "" {
		e.Static("/img", d.UploadDir)
	}

	api := e.Group("/api")
	{
		NewAuthorHandler(d.Authors).RegisterRoutes(api)
		NewBookHandler(d.Books).RegisterRoutes(api)
	}

	return e
}
