// Package templates renders the embedded prompt assets.
//
// The deep-research methodology prompt is a content asset, not logic:
// it is stored verbatim under templates/ and rendered with a single
// substitution (the research question). The renderer performs no
// validation of the question — empty and arbitrary-length strings are
// substituted as-is.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Kind identifies an embedded template.
type Kind string

// DeepResearch is the multi-phase research methodology prompt.
const DeepResearch Kind = "deep_research"

// DeepResearchData is the substitution data for the DeepResearch template.
type DeepResearchData struct {
	ResearchQuestion string
}

// Renderer holds the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses all embedded templates. It fails only if an asset
// is malformed, which would be a packaging bug.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing embedded templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template with the given data and strips
// leading and trailing whitespace from the result.
func (r *Renderer) Render(kind Kind, data any) (string, error) {
	var buf strings.Builder
	if err := r.tmpl.ExecuteTemplate(&buf, string(kind)+".tmpl", data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", kind, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
