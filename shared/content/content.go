// Package content turns markdown bodies of blogs, courses and job posts into
// sanitized HTML or short plain-text previews.
package content

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var whitespace = regexp.MustCompile(`\s+`)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// raw HTML is let through here and removed by the sanitizer below
		goldmark.WithRendererOptions(html.WithUnsafe()),
		goldmark.WithExtensions(extension.GFM),
	)

	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^[a-z0-9-]+$`)).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{md: md, policy: p, strict: bluemonday.StrictPolicy()}
}

// Render converts markdown to HTML that is safe to embed in a page.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String())), nil
}

// Excerpt renders markdown, strips every tag and cuts the text to at most
// maxRunes runes, adding an ellipsis when something was cut.
func (r *Renderer) Excerpt(markdown string, maxRunes int) string {
	var buf bytes.Buffer
	text := markdown
	if err := r.md.Convert([]byte(markdown), &buf); err == nil {
		text = buf.String()
	}
	text = r.strict.Sanitize(text)
	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))

	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}
