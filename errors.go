package restdown

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument  = errors.New("document content cannot be empty")
	ErrFrontMatter    = errors.New("malformed front matter")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrMediaDest      = errors.New("media destination is not a directory")

	// Converter configuration errors.
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)
