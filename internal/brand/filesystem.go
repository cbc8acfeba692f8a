package brand

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads brands from <root>/<name>/ directories on disk.
// Implements Loader interface.
type FilesystemLoader struct {
	root string
}

// NewFilesystemLoader creates a FilesystemLoader for the given brands root.
// Returns ErrInvalidBrandsRoot if the path is not a readable directory.
func NewFilesystemLoader(root string) (*FilesystemLoader, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBrandsRoot)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBrandsRoot, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBrandsRoot, absRoot)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBrandsRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBrandsRoot, absRoot)
	}

	return &FilesystemLoader{root: absRoot}, nil
}

// Load loads a brand from {root}/{name}/.
func (l *FilesystemLoader) Load(name string) (*Brand, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	dir := filepath.Join(l.root, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q under %s", ErrBrandNotFound, name, l.root)
	}
	return loadFS(os.DirFS(dir), name)
}

// LoadDir loads a brand directly from an explicit directory, bypassing
// name resolution. The brand name is the directory's base name.
func LoadDir(dir string) (*Brand, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrBrandNotFound, dir)
	}
	return loadFS(os.DirFS(dir), filepath.Base(dir))
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
