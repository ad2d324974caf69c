package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type NavLink struct {
	Label string
	Href  string
}

type NavbarProps struct {
	Title     string
	TitleHref string
	Links     []NavLink
}

const DefaultTitle = "Bookverse"

// DefaultNavbarProps is the static header: a title linking to "#" and the
// Home, About and Contact placeholders.
func DefaultNavbarProps() NavbarProps {
	return NavbarProps{
		Title:     DefaultTitle,
		TitleHref: "#",
		Links: []NavLink{
			{Label: "Home", Href: "#"},
			{Label: "About", Href: "#"},
			{Label: "Contact", Href: "#"},
		},
	}
}

// Navbar renders the default header. It takes no input and has no state.
func Navbar() templ.Component {
	return NavbarWith(DefaultNavbarProps())
}

func NavbarWith(p NavbarProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="navbar"><nav><a class="navbar-title" href="`); err != nil {
			return err
		}
		if err := writeHref(w, p.TitleHref); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `">`+templ.EscapeString(p.Title)+`</a><ul class="navbar-links">`); err != nil {
			return err
		}

		for _, l := range p.Links {
			if _, err := io.WriteString(w, `<li><a href="`); err != nil {
				return err
			}
			if err := writeHref(w, l.Href); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `">`+templ.EscapeString(l.Label)+`</a></li>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</ul></nav></header>`)
		return err
	})
}

func writeHref(w io.Writer, href string) error {
	if href == "" {
		href = "#"
	}
	_, err := io.WriteString(w, templ.EscapeString(string(templ.URL(href))))
	return err
}
