package restdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/mcavage/restdown/internal/brand"
)

// Compile-time interface implementation checks.
var (
	_ HTMLConverter   = (*GoldmarkConverter)(nil)
	_ HeadingIDPolicy = (*RestdownHeadingIDs)(nil)
	_ brand.Loader    = (*brand.EmbeddedLoader)(nil)
	_ brand.Loader    = (*brand.FilesystemLoader)(nil)
)

// Converter orchestrates the markdown-to-HTML conversion pipeline.
type Converter struct {
	cfg           converterConfig
	brandLoader   brand.Loader
	htmlConverter HTMLConverter
}

// WithBrandLoader overrides brand resolution with a custom loader.
// Mainly a seam for tests.
func WithBrandLoader(l brand.Loader) Option {
	return func(c *Converter) {
		c.brandLoader = l
	}
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithBrandsRoot, WithBrandDir).
// Returns error if the brands root or highlight style is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			defaultBrand:   brand.DefaultBrand,
			highlightStyle: defaultHighlightStyle,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if _, ok := styles.Registry[c.cfg.highlightStyle]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, c.cfg.highlightStyle)
	}
	c.htmlConverter = NewGoldmarkConverter(c.cfg.highlightStyle)

	// Brand loader if not injected (e.g., by tests)
	if c.brandLoader == nil {
		if c.cfg.brandsRoot != "" {
			loader, err := brand.NewFilesystemLoader(c.cfg.brandsRoot)
			if err != nil {
				return nil, err
			}
			c.brandLoader = loader
		} else {
			c.brandLoader = brand.NewEmbeddedLoader()
		}
	}

	return c, nil
}

// Convert runs the full pipeline on one document and returns the
// assembled HTML plus the endpoint summary. The context is used for
// cancellation.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyDocument
	}

	content := NormalizeLineEndings(input.Markdown)

	meta, body, err := ParseFrontMatter(content, input.Path)
	if err != nil {
		return nil, err
	}

	// Convert to HTML, collecting the TOC along the way
	ids := &RestdownHeadingIDs{}
	htmlBody, toc, err := c.htmlConverter.ToHTML(ctx, body, ids, RestdownTOCName)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlBody = PostProcess(htmlBody)

	tocHTML := RenderTOC(toc)
	meta["toc_html"] = tocHTML

	b, err := c.resolveBrand(meta)
	if err != nil {
		return nil, err
	}

	header, err := brand.Render(b.Header, meta)
	if err != nil {
		return nil, fmt.Errorf("rendering header: %w", err)
	}
	footer, err := brand.Render(b.Footer, meta)
	if err != nil {
		return nil, fmt.Errorf("rendering footer: %w", err)
	}

	summary := Summary{Endpoints: ExtractEndpoints(toc)}
	if v, ok := meta["version"]; ok {
		summary.Version = v
	}

	return &Result{
		HTML:     assemble(header, tocHTML, htmlBody, footer),
		Summary:  summary,
		Metadata: meta,
		Brand:    b,
	}, nil
}

// resolveBrand picks the brand directory: explicit override, else the
// metadata "brand" value, else the configured default.
func (c *Converter) resolveBrand(meta Metadata) (*brand.Brand, error) {
	if c.cfg.brandDir != "" {
		return brand.LoadDir(c.cfg.brandDir)
	}
	name := meta["brand"]
	if name == "" {
		name = c.cfg.defaultBrand
	}
	return c.brandLoader.Load(name)
}

// assemble concatenates the document sections in fixed order: header,
// sidebar wrapping the TOC, content wrapping the body, footer.
func assemble(header, tocHTML, body, footer string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n<div id=\"sidebar\">\n")
	b.WriteString(tocHTML)
	b.WriteString("\n</div>\n")
	b.WriteString("<div id=\"content\">\n")
	b.WriteString(body)
	b.WriteString("</div>\n")
	b.WriteString(footer)
	return b.String()
}
