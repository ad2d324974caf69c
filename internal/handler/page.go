package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookverse/internal/view"
)

type PageHandler struct {
	navbar view.NavbarProps
}

// NewPageHandler renders the static navbar, titled with siteTitle when set.
func NewPageHandler(siteTitle string) *PageHandler {
	props := view.DefaultNavbarProps()
	if siteTitle != "" {
		props.Title = siteTitle
	}
	return &PageHandler{navbar: props}
}

func (h *PageHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/", h.Home)
	e.GET("/partials/navbar", h.Navbar)
}

func (h *PageHandler) Home(c *gin.Context) {
	renderHTML(c, http.StatusOK, view.Page(
		h.navbar.Title,
		view.NavbarWith(h.navbar),
		view.Text("Welcome to "+h.navbar.Title+"."),
	))
}

func (h *PageHandler) Navbar(c *gin.Context) {
	renderHTML(c, http.StatusOK, view.NavbarWith(h.navbar))
}
