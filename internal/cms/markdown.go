package cms

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	htmlPolicy = newContentHTMLPolicy()
)

func newContentHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span")
	policy.AllowAttrs("loading").OnElements("img")
	return policy
}

// renderBody converts a page body to sanitised HTML. Bodies in "html"
// format skip markdown conversion but are still sanitised.
func renderBody(body, format string) (string, error) {
	src := []byte(body)
	if format != "html" {
		var buf bytes.Buffer
		if err := markdown.Convert(src, &buf); err != nil {
			return "", fmt.Errorf("cms: render markdown: %w", err)
		}
		src = buf.Bytes()
	}
	return string(htmlPolicy.SanitizeBytes(src)), nil
}
