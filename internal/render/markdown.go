// Package render converts stored markdown into sanitized HTML.
package render

import (
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// Renderer turns note markdown into HTML safe to embed in a page.
// The output is always run through an HTML sanitizer, so note content
// cannot inject scripts or event handlers.
type Renderer struct {
	policy *bluemonday.Policy
}

// New creates a markdown Renderer with a UGC sanitization policy.
func New() *Renderer {
	return &Renderer{
		policy: bluemonday.UGCPolicy(),
	}
}

// ToHTML renders markdown to sanitized HTML.
func (r *Renderer) ToHTML(source string) []byte {
	// parser instances are stateful and cannot be reused across calls
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(source))

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank,
	})

	return r.policy.SanitizeBytes(markdown.Render(doc, renderer))
}
