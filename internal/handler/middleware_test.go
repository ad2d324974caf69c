package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/bookverse/internal/testutil"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, requestID(c))
	})

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated", "", false},
		{"propagated", "abc-123", true},
		{"too long", strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got != w.Body.String() {
				t.Errorf("header %q and context value %q differ", got, w.Body.String())
			}

			if tt.keep {
				if got != tt.incoming {
					t.Errorf("expected %q to be propagated, got %q", tt.incoming, got)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("expected a generated uuid, got %q", got)
			}
		})
	}
}

func TestRequestID_OnErrorResponses(t *testing.T) {
	env := setupTestRouter(t, testutil.NewTestDB(t))

	req := httptest.NewRequest(http.MethodGet, "/api/authors/abc", nil)
	req.Header.Set(RequestIDHeader, "trace-me")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if got := w.Header().Get(RequestIDHeader); got != "trace-me" {
		t.Errorf("expected request id on error response, got %q", got)
	}
}
