package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Page wraps body in a minimal HTML document headed by the navbar.
func Page(title string, navbar, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`+templ.EscapeString(title)+`</title></head><body>`); err != nil {
			return err
		}
		if err := navbar.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Text renders s escaped inside a paragraph.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p>`+templ.EscapeString(s)+`</p>`)
		return err
	})
}
