package blog

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdOnce    sync.Once
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
)

func initMarkdown() {
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	sanitizer = bluemonday.UGCPolicy()
}

// RenderMarkdown converts blog markdown into sanitized HTML. On a parse
// failure the raw text is returned escaped through the sanitizer so the
// response still carries something renderable.
func RenderMarkdown(source string) string {
	mdOnce.Do(initMarkdown)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return sanitizer.Sanitize(source)
	}
	return sanitizer.Sanitize(buf.String())
}
