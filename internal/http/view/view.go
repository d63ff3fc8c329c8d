package view

import (
	"bytes"
	"embed"
	"fmt"
	"grocery/internal/core"
	"html/template"
	"io"
	"io/fs"
	"strings"
)

const (
	Login          = "login"
	Register       = "register"
	UserDashboard  = "user_dashboard"
	UserCart       = "user_cart"
	Orders         = "orders"
	AdminDashboard = "admin_dashboard"
	CategoryAdd    = "category_add"
	CategoryShow   = "category_show"
	CategoryEdit   = "category_edit"
	ProductAdd     = "product_add"
	ProductDelete  = "product_delete"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every template receives. Data holds the page specific values.
type Page struct {
	Title   string
	Flashes []string
	User    *core.UserRecord
	Data    any
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		if name == "layout" {
			continue
		}

		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		pages: pages,
	}, nil
}

// Render executes the named page into w. The page is rendered into a buffer
// first so a failing template never produces a half written response.
func (v *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
