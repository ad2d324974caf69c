package handler

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// templRender adapts a templ component to gin's render.Render.
type templRender struct {
	ctx       context.Context
	component templ.Component
}

var _ render.Render = templRender{}

func (r templRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.component.Render(r.ctx, w)
}

func (r templRender) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func renderHTML(c *gin.Context, status int, component templ.Component) {
	c.Render(status, templRender{ctx: c.Request.Context(), component: component})
}
