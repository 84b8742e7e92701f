package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// shared are parsed into every page.
var shared = []string{"templates/layout.html", "templates/more.html"} //nolint: gochecknoglobals

var funcs = template.FuncMap{ //nolint: gochecknoglobals
	"money":    money,
	"feeRange": feeRange,
	"date":     func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"join":     strings.Join,
}

func money(v any) string {
	switch d := v.(type) {
	case decimal.Decimal:
		return "$" + d.StringFixedBank(0)
	case *decimal.Decimal:
		if d == nil {
			return ""
		}

		return "$" + d.StringFixedBank(0)
	default:
		return fmt.Sprint(v)
	}
}

func feeRange(low, high *decimal.Decimal) string {
	switch {
	case low != nil && high != nil && !low.Equal(*high):
		return money(low) + " - " + money(high)
	case low != nil:
		return money(low)
	default:
		return money(high)
	}
}

// parseTemplates builds one template set per page file.
func parseTemplates() (map[string]*template.Template, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("could not list templates: %w", err)
	}

	out := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		if name == "layout" || name == "more" {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, append([]string{file}, shared...)...)
		if err != nil {
			return nil, fmt.Errorf("could not parse template %s: %w", name, err)
		}
		out[name] = t
	}

	return out, nil
}

// view is what every page template receives.
type view struct {
	Title   string
	Path    string
	SiteURL string
	AppURL  string
	Year    int
	Query   url.Values
	Data    any
}

// render executes the page into a buffer first so a template error never
// leaves a half written response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	t, ok := h.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)

		return
	}

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", view{
		Title:   title,
		Path:    r.URL.Path,
		SiteURL: h.options.SiteURL,
		AppURL:  h.options.AppURL,
		Year:    h.now().Year(),
		Query:   r.URL.Query(),
		Data:    data,
	})
	if err != nil {
		if name == errorPage {
			http.Error(w, http.StatusText(status), status)

			return
		}
		h.fail(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
