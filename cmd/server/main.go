package main

// @title           Bookverse API
// @version         1.0
// @description     API for managing authors and books in Bookverse.

// @contact.name   Bookverse maintainers

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookverse/internal/config"
	"github.com/snnyvrz/bookverse/internal/db"
	docs "github.com/snnyvrz/bookverse/internal/docs"
	"github.com/snnyvrz/bookverse/internal/handler"
	"github.com/snnyvrz/bookverse/internal/repository"
	"github.com/snnyvrz/bookverse/internal/service"
	"github.com/snnyvrz/bookverse/internal/storage"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	database, err := db.ConnectWithRetry(ctx, cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	authorRepo, err := repository.NewCachedAuthorRepository(
		repository.NewAuthorRepository(database),
		cfg.AuthorCacheSize,
	)
	if err != nil {
		log.Fatalf("author cache: %v", err)
	}
	bookRepo := repository.NewGormBookRepository(database)
	images := storage.NewImageStore(cfg.UploadDir, cfg.MaxImageBytes)

	e := handler.NewRouter(handler.RouterDeps{
		DB:        database,
		Authors:   service.NewAuthorService(authorRepo, bookRepo, images),
		Books:     bookRepo,
		SiteTitle: cfg.SiteTitle,
		UploadDir: cfg.UploadDir,
		Version:   appVersion,
		StartTime: startTime,

		AuthorCache: authorRepo,
	})

	docs.SwaggerInfo.BasePath = "/api"
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on %s (%s)", srv.Addr, database.Dialector.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
