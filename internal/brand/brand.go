// Package brand loads header/footer template pairs and static media for a
// named visual brand. Brands can come from embedded defaults or a
// filesystem directory of <name>/ brand dirs.
package brand

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// DefaultBrand is the brand used when none is named.
const DefaultBrand = "api"

// Required files within a brand directory.
const (
	HeaderTemplate = "header.html.in"
	FooterTemplate = "footer.html.in"
	MediaDir       = "media"
)

// Brand is a loaded set of templates and assets.
type Brand struct {
	Name   string
	Header string // header.html.in content
	Footer string // footer.html.in content
	Media  fs.FS  // rooted at the brand's media/ dir; nil when absent
}

// Loader defines the contract for loading brands by name.
// Implementations may load from embedded assets or the filesystem.
type Loader interface {
	// Load loads a brand by name.
	// Returns ErrBrandNotFound if the brand doesn't exist.
	// Returns ErrTemplateNotFound if a required template file is missing.
	Load(name string) (*Brand, error)
}

// ValidateName rejects brand names containing path separators or
// traversal sequences.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidBrandName)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidBrandName, name)
	}
	return nil
}

// loadFS reads a brand from a filesystem rooted at the brand directory.
func loadFS(fsys fs.FS, name string) (*Brand, error) {
	header, err := fs.ReadFile(fsys, HeaderTemplate)
	if err != nil {
		return nil, templateErr(name, HeaderTemplate, err)
	}
	footer, err := fs.ReadFile(fsys, FooterTemplate)
	if err != nil {
		return nil, templateErr(name, FooterTemplate, err)
	}

	b := &Brand{
		Name:   name,
		Header: string(header),
		Footer: string(footer),
	}

	if info, err := fs.Stat(fsys, MediaDir); err == nil && info.IsDir() {
		media, err := fs.Sub(fsys, MediaDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s media: %v", ErrTemplateRead, name, err)
		}
		b.Media = media
	}

	return b, nil
}

func templateErr(brandName, file string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s missing %s", ErrTemplateNotFound, brandName, file)
	}
	return fmt.Errorf("%w: %s %s: %v", ErrTemplateRead, brandName, file, err)
}
