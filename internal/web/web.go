// Package web renders the two HTML pages from embedded templates.
package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/version"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData feeds the shared layout plus whichever page section is active.
// The version strings are filled in by the Renderer so handlers only set
// the per-request fields.
type PageData struct {
	Title     string
	Watermark string
	Footer    string
	Copyright string

	Attribution string
	Disclaimer  string

	Query     string
	SessionID string
	Question  string
	Answer    string
	Warning   string
	Debug     *dto.LookupDebugInfo
}

type Renderer struct {
	lookup *template.Template
	qa     *template.Template
}

// NewRenderer parses the embedded templates. Both pages share the layout,
// so each gets its own template set.
func NewRenderer() (*Renderer, error) {
	lookup, err := template.ParseFS(templateFS, "templates/layout.html", "templates/lookup.html")
	if err != nil {
		return nil, err
	}
	qa, err := template.ParseFS(templateFS, "templates/layout.html", "templates/qa.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{lookup: lookup, qa: qa}, nil
}

func (r *Renderer) LookupPage(w io.Writer, data PageData) error {
	return r.lookup.ExecuteTemplate(w, "layout", withChrome(data))
}

func (r *Renderer) QAPage(w io.Writer, data PageData) error {
	return r.qa.ExecuteTemplate(w, "layout", withChrome(data))
}

func withChrome(data PageData) PageData {
	data.Title = version.Title
	data.Watermark = version.Watermark
	data.Footer = version.Footer()
	data.Copyright = version.Copyright
	data.Attribution = version.Attribution
	data.Disclaimer = version.Disclaimer
	return data
}
