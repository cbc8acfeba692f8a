package restdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mcavage/restdown/internal/fileutil"
)

// Precompiled patterns for front-matter handling.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Front-matter delimiter: a line of exactly three hyphens,
	// trailing whitespace tolerated.
	frontMatterDelim = regexp.MustCompile(`(?m)^---[ \t]*$`)
)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ParseFrontMatter extracts the optional key-value metadata block from the
// head of a document. The block is present only when the document begins
// with a delimiter line of three hyphens; it ends at the second delimiter.
// Each non-blank line inside the block must contain a colon; key and value
// are trimmed. A line without a colon fails with ErrFrontMatter.
//
// When the block has no "title" key, a title is derived from path: base
// name with extension stripped, hyphen segments capitalized and joined
// with spaces.
//
// Returns the metadata mapping and the remaining Markdown body.
func ParseFrontMatter(content, path string) (Metadata, string, error) {
	meta := Metadata{}
	body := content

	locs := frontMatterDelim.FindAllStringIndex(content, 2)
	if len(locs) == 2 && locs[0][0] == 0 {
		block := content[locs[0][1]:locs[1][0]]
		body = strings.TrimPrefix(content[locs[1][1]:], "\n")

		for _, line := range strings.Split(block, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			idx := strings.Index(line, ":")
			if idx < 0 {
				return nil, "", fmt.Errorf("%w: line %q has no colon", ErrFrontMatter, line)
			}
			key := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])
			meta[key] = value
		}
	}

	if meta["title"] == "" {
		meta["title"] = fileutil.TitleFromPath(path)
	}

	return meta, body, nil
}
