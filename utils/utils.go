package utils

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

const (
	previewHorizontalSpace = 4
	defaultWrapWidth       = 100
)

var keywordRegexp = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// ValidateKeyword checks that a combo trigger keyword can actually be
// typed as a single token.
func ValidateKeyword(keyword string) error {
	if keyword == "" {
		return fmt.Errorf("keyword must not be empty")
	}
	if !keywordRegexp.MatchString(keyword) {
		return fmt.Errorf(
			"invalid keyword '%s': keywords must only contain alphanumeric characters, hyphens, and underscores",
			keyword,
		)
	}
	return nil
}

// RenderMarkdownPreview renders snippet content for the preview pane,
// wrapped to the pane width. Rendering problems degrade to the raw
// content rather than an empty pane.
func RenderMarkdownPreview(content string, width int) string {
	wrap := width - previewHorizontalSpace
	if wrap <= 0 {
		wrap = defaultWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// MarkdownToHTML converts a markdown snippet to HTML for targets that
// accept rich text.
func MarkdownToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// StripMarkdown reduces a markdown snippet to its plain text, for
// targets that take no formatting.
func StripMarkdown(content string) string {
	src := []byte(content)
	doc := goldmark.DefaultParser().Parse(gmtext.NewReader(src))

	var out strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				out.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					out.WriteByte('\n')
				}
			}
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			out.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(out.String())
}
