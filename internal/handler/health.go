package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CacheSizer reports how many entries a cache currently holds.
type CacheSizer interface {
	Len() int
}

// HealthHandler serves liveness and readiness. Readiness covers the database,
// the portrait upload directory and, when present, the author cache.
type HealthHandler struct {
	db          *gorm.DB
	uploadDir   string
	authorCache CacheSizer
	startTime   time.Time
	version     string
}

func NewHealthHandler(d RouterDeps) *HealthHandler {
	return &HealthHandler{
		db:          d.DB,
		uploadDir:   d.UploadDir,
		authorCache: d.AuthorCache,
		startTime:   d.StartTime,
		version:     d.Version,
	}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

func (h *HealthHandler) uptime() int64 {
	return int64(time.Since(h.startTime).Seconds())
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  h.uptime(),
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true

	database := h.checkDB(c.Request.Context())
	if database["status"] != "up" {
		ready = false
	}

	body := gin.H{
		"version": h.version,
		"uptime":  h.uptime(),
		"db":      database,
	}

	if h.uploadDir != "" {
		images := checkWritable(h.uploadDir)
		if images["status"] != "up" {
			ready = false
		}
		body["images"] = images
	}

	if h.authorCache != nil {
		body["author_cache"] = gin.H{"entries": h.authorCache.Len()}
	}

	status := http.StatusOK
	body["status"] = "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		body["status"] = "unhealthy"
	}

	c.JSON(status, body)
}

func (h *HealthHandler) checkDB(ctx context.Context) gin.H {
	sqlDB, err := h.db.DB()
	if err != nil {
		return gin.H{"status": "down", "error": err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return gin.H{"status": "down", "error": err.Error()}
	}
	return gin.H{"status": "up", "driver": h.db.Dialector.Name()}
}

// checkWritable creates and removes a scratch file in dir.
func checkWritable(dir string) gin.H {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return gin.H{"status": "down", "dir": dir, "error": err.Error()}
	}

	f, err := os.CreateTemp(dir, ".ready-*")
	if err != nil {
		return gin.H{"status": "down", "dir": dir, "error": err.Error()}
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)

	return gin.H{"status": "up", "dir": dir}
}
