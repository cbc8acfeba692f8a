package restdown

import (
	"regexp"
	"strings"
)

// Precompiled patterns for HTML post-processing.
var (
	// <h2 ...>TEXT</h2> lines where TEXT opens with an HTTP method token:
	// an uppercase-only run followed by whitespace.
	endpointHeading = regexp.MustCompile(`(?m)^(<h2[^>]*>)([A-Z]+\s.*)(</h2>)$`)

	// Preformatted blocks whose content opens with a "$ " shell prompt.
	shellBlockOpen = regexp.MustCompile(`<pre><code([^>]*)>\$ `)

	// A complete level-1 heading element, trailing newline included.
	levelOneHeading = regexp.MustCompile(`<h1[^>]*>.*?</h1>\n?`)
)

// PostProcess applies the restdown styling passes to Goldmark's raw HTML
// output. Order is fixed: endpoint headings, then shell blocks, then the
// single intro wrap. Each pass is fail-soft; no match means no change.
func PostProcess(htmlContent string) string {
	htmlContent = MarkEndpointHeadings(htmlContent)
	htmlContent = MarkShellBlocks(htmlContent)
	htmlContent = WrapIntro(htmlContent)
	return htmlContent
}

// MarkEndpointHeadings wraps the text of every "METHOD path" h2 element in
// a verb span, preserving the original tags and attributes.
func MarkEndpointHeadings(htmlContent string) string {
	return endpointHeading.ReplaceAllString(htmlContent, `$1<span class="verb">$2</span>$3`)
}

// MarkShellBlocks strips the "$ " prompt prefix from preformatted blocks
// and marks them with the shell class. Applies to every occurrence.
func MarkShellBlocks(htmlContent string) string {
	return shellBlockOpen.ReplaceAllString(htmlContent, `<pre class="shell"><code$1>`)
}

// WrapIntro wraps the content between the first level-1 heading and the
// next level-1 heading (or end of document) in an intro container. The
// heading itself stays outside the container. Applied at most once,
// however many level-1 headings the document has.
func WrapIntro(htmlContent string) string {
	loc := levelOneHeading.FindStringIndex(htmlContent)
	if loc == nil {
		return htmlContent
	}
	rest := htmlContent[loc[1]:]
	end := strings.Index(rest, "<h1")
	if end == -1 {
		end = len(rest)
	}
	return htmlContent[:loc[1]] + "<div class=\"intro\">\n" + rest[:end] + "</div>\n" + rest[end:]
}
