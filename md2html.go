package restdown

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// HeadingIDPolicy decides the anchor id for a heading. Returning ok=false
// leaves the heading without an anchor and excludes it from the TOC.
type HeadingIDPolicy interface {
	HeadingID(level int, text string) (id string, ok bool)
}

// TOCFormatter produces the display HTML for a TOC entry from the plain
// heading text. It affects the entry name only, never the anchor id.
type TOCFormatter func(level int, text string) string

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string, ids HeadingIDPolicy, format TOCFormatter) (string, []TOCEntry, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
// Raw HTML blocks are passed through, fenced code blocks with a language
// get chroma highlighting, and headings are annotated by the injected
// HeadingIDPolicy.
type GoldmarkConverter struct {
	highlightStyle string
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// the given chroma highlight style.
func NewGoldmarkConverter(highlightStyle string) *GoldmarkConverter {
	return &GoldmarkConverter{highlightStyle: highlightStyle}
}

// ToHTML converts Markdown content to an HTML fragment and the ordered
// table of contents collected while assigning heading anchors.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string, ids HeadingIDPolicy, format TOCFormatter) (string, []TOCEntry, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	type result struct {
		html    string
		entries []TOCEntry
		err     error
	}

	done := make(chan result, 1)

	go func() {
		collector := &headingTransformer{ids: ids, format: format}
		md := goldmark.New(
			goldmark.WithExtensions(
				extension.GFM, // Tables, strikethrough, autolinks, task lists
				highlighting.NewHighlighting(
					highlighting.WithStyle(c.highlightStyle),
				),
			),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(util.Prioritized(collector, 100)),
			),
			goldmark.WithRendererOptions(
				ghtml.WithUnsafe(), // Raw HTML blocks may embed markup
				ghtml.WithXHTML(),  // Self-closing tags
			),
		)

		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String(), entries: collector.entries}
	}()

	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	case r := <-done:
		return r.html, r.entries, r.err
	}
}

// headingTransformer assigns anchor ids to headings per the injected
// policy and collects TOC entries in encounter order. One instance is
// created per conversion; it is not safe for reuse.
type headingTransformer struct {
	ids     HeadingIDPolicy
	format  TOCFormatter
	entries []TOCEntry
}

// Transform implements parser.ASTTransformer.
func (t *headingTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		headingText := nodeText(h, source)
		id, ok := t.ids.HeadingID(h.Level, headingText)
		if !ok {
			return ast.WalkSkipChildren, nil
		}
		h.SetAttributeString("id", []byte(id))

		name := html.EscapeString(headingText)
		if t.format != nil {
			name = t.format(h.Level, headingText)
		}
		t.entries = append(t.entries, TOCEntry{Level: h.Level, ID: id, Name: name})
		return ast.WalkSkipChildren, nil
	})
}

// nodeText extracts the plain text content of a node's subtree.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch tn := c.(type) {
		case *ast.Text:
			sb.Write(tn.Segment.Value(source))
		case *ast.String:
			sb.Write(tn.Value)
		default:
			sb.WriteString(nodeText(c, source))
		}
	}
	return sb.String()
}

// RestdownHeadingIDs implements the restdown anchor-id convention:
//   - the first level-1 heading gets no anchor and stays out of the TOC
//   - later level-1 headings get the default slug
//   - level-2 headings keep their text with spaces replaced by hyphens,
//     so "GET /widgets" anchors as "GET-/widgets"
//   - everything else gets the default slug
//
// Stateful: tracks whether the first h1 was seen. Use a fresh value per
// document.
type RestdownHeadingIDs struct {
	seenFirstH1 bool
}

// HeadingID implements HeadingIDPolicy.
func (p *RestdownHeadingIDs) HeadingID(level int, text string) (string, bool) {
	switch {
	case level == 1 && !p.seenFirstH1:
		p.seenFirstH1 = true
		return "", false
	case level == 2:
		return strings.ReplaceAll(text, " ", "-"), true
	default:
		return defaultSlug(text), true
	}
}

// firstWhitespaceRun locates the first run of whitespace in a string.
var firstWhitespaceRun = regexp.MustCompile(`\s+`)

// RestdownTOCName formats TOC display names. Level-2 entries read as
// "METHOD path": the method token is wrapped in a verb span and the
// remainder in an endpoint span. Other levels are escaped verbatim.
func RestdownTOCName(level int, text string) string {
	if level != 2 {
		return html.EscapeString(text)
	}
	loc := firstWhitespaceRun.FindStringIndex(text)
	if loc == nil || loc[0] == 0 {
		return html.EscapeString(text)
	}
	method := html.EscapeString(text[:loc[0]])
	rest := html.EscapeString(text[loc[1]:])
	return `<span class="verb">` + method + `</span> <span class="endpoint">` + rest + `</span>`
}

// slugStrip removes characters that don't belong in a default anchor id.
var slugStrip = regexp.MustCompile(`[^a-z0-9 _-]`)

// defaultSlug lower-cases the text, drops punctuation, and joins words
// with hyphens, mirroring common auto-heading-id behavior.
func defaultSlug(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStrip.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, " ", "-")
}

// RenderTOC renders collected TOC entries as sidebar markup. Entry names
// are emitted as-is; they were escaped or formatted at collection time.
func RenderTOC(entries []TOCEntry) string {
	if len(entries) == 0 {
		return `<ul class="toc"></ul>`
	}
	var b strings.Builder
	b.WriteString("<ul class=\"toc\">\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "<li class=\"toc-l%d\"><a href=\"#%s\">%s</a></li>\n", e.Level, e.ID, e.Name)
	}
	b.WriteString("</ul>")
	return b.String()
}
