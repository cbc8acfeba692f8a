package restdown

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/mcavage/restdown/internal/brand"
)

// CopyBrandMedia recursively copies a brand's media/ subtree into a
// media/ subdirectory of dest. dest must be an existing directory; a
// missing or non-directory destination fails with ErrMediaDest.
//
// Files whose destination copy already has identical content (compared by
// content hash) are skipped, so repeat runs with an unchanged source
// perform zero writes. Created and updated files are logged.
func CopyBrandMedia(logger *logrus.Logger, b *brand.Brand, dest string) error {
	info, err := os.Stat(dest)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrMediaDest, dest)
	}

	if b.Media == nil {
		logger.WithField("brand", b.Name).Debug("brand has no media directory")
		return nil
	}

	mediaRoot := filepath.Join(dest, "media")
	return fs.WalkDir(b.Media, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking brand media: %w", err)
		}
		target := filepath.Join(mediaRoot, filepath.FromSlash(path))

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			return nil
		}

		src, err := fs.ReadFile(b.Media, path)
		if err != nil {
			return fmt.Errorf("reading brand media %s: %w", path, err)
		}

		action := "created"
		if existing, err := os.ReadFile(target); err == nil {
			if xxhash.Sum64(existing) == xxhash.Sum64(src) {
				logger.WithField("file", target).Debug("media file unchanged")
				return nil
			}
			action = "updated"
		}

		if err := os.WriteFile(target, src, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		logger.WithFields(logrus.Fields{
			"brand": b.Name,
			"file":  target,
		}).Infof("media file %s", action)
		return nil
	})
}
