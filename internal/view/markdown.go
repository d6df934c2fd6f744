package view

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DescriptionRenderer converts ticket descriptions to sanitized HTML.
type DescriptionRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewDescriptionRenderer builds a GFM renderer with the UGC sanitizing policy.
func NewDescriptionRenderer() *DescriptionRenderer {
	return &DescriptionRenderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render returns safe HTML for src. On a conversion failure the escaped source is returned.
func (r *DescriptionRenderer) Render(src string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return html.EscapeString(src)
	}
	return r.policy.Sanitize(buf.String())
}
