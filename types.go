package restdown

import "github.com/mcavage/restdown/internal/brand"

// Metadata maps front-matter keys to values. The converter injects the
// derived toc_html key before brand templates are rendered; otherwise the
// mapping is exactly what the front-matter block declared.
type Metadata map[string]string

// TOCEntry is one table-of-contents entry, recorded in document order.
type TOCEntry struct {
	Level int    // heading level (2 for endpoints)
	ID    string // anchor id ("GET-/sshkeys" for endpoint headings)
	Name  string // display HTML, already formatted and escaped
}

// Summary is the JSON-serializable digest written next to the HTML output.
// Field order matches sorted key order.
type Summary struct {
	Endpoints []string `json:"endpoints"`
	Version   string   `json:"version,omitempty"`
}

// Input contains conversion parameters.
type Input struct {
	Path     string // input file path, used for title derivation (optional)
	Markdown string // document content including front matter (required)
}

// Result is the outcome of a single document conversion.
type Result struct {
	HTML     string       // assembled standalone HTML document
	Summary  Summary      // endpoint digest for the JSON output
	Metadata Metadata     // parsed front matter plus derived keys
	Brand    *brand.Brand // resolved brand, for media copying
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	brandDir       string // explicit brand directory (-b), bypasses lookup
	brandsRoot     string // directory containing <name>/ brand dirs
	defaultBrand   string // brand used when metadata has no "brand" key
	highlightStyle string // chroma style for fenced code blocks
}

// defaultHighlightStyle is the chroma style used when none is configured.
const defaultHighlightStyle = "github"

// WithBrandDir points the converter at one brand directory explicitly,
// bypassing brand-name resolution entirely.
func WithBrandDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.brandDir = dir
	}
}

// WithBrandsRoot sets the directory under which named brands are looked
// up. Without it, only the embedded default brand is available.
func WithBrandsRoot(root string) Option {
	return func(c *Converter) {
		c.cfg.brandsRoot = root
	}
}

// WithDefaultBrand sets the brand used when a document's front matter has
// no "brand" key.
func WithDefaultBrand(name string) Option {
	return func(c *Converter) {
		c.cfg.defaultBrand = name
	}
}

// WithHighlightStyle sets the chroma style for fenced code blocks.
// NewConverter fails with ErrUnknownHighlightStyle for unknown names.
func WithHighlightStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = style
	}
}
