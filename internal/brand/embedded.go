package brand

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

// Built-in brands shipped with the binary.
//
//go:embed brands
var embeddedBrands embed.FS

// EmbeddedLoader serves the brands compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates a loader over the embedded brands.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load loads an embedded brand by name.
func (l *EmbeddedLoader) Load(name string) (*Brand, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	dir := path.Join("brands", name)
	if info, err := fs.Stat(embeddedBrands, dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q (embedded)", ErrBrandNotFound, name)
	}

	sub, err := fs.Sub(embeddedBrands, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateRead, name, err)
	}
	return loadFS(sub, name)
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
