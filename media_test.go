package restdown

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcavage/restdown/internal/brand"
)

func testBrand(media fstest.MapFS) *brand.Brand {
	return &brand.Brand{
		Name:   "api",
		Header: "<html>",
		Footer: "</html>",
		Media:  media,
	}
}

// infoEntries filters the hook's records down to info-level copy logs.
func infoEntries(hook *test.Hook) []logrus.Entry {
	var out []logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.InfoLevel {
			out = append(out, *e)
		}
	}
	return out
}

func TestCopyBrandMediaCreatesFiles(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dest := t.TempDir()

	b := testBrand(fstest.MapFS{
		"css/restdown.css": &fstest.MapFile{Data: []byte("body{}")},
		"img/logo.png":     &fstest.MapFile{Data: []byte{0x89, 0x50}},
	})

	require.NoError(t, CopyBrandMedia(logger, b, dest))

	css, err := os.ReadFile(filepath.Join(dest, "media", "css", "restdown.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(css))

	img, err := os.ReadFile(filepath.Join(dest, "media", "img", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, img)

	assert.Len(t, infoEntries(hook), 2, "both files should be logged as created")
}

func TestCopyBrandMediaSecondRunIsNoop(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dest := t.TempDir()

	b := testBrand(fstest.MapFS{
		"css/restdown.css": &fstest.MapFile{Data: []byte("body{}")},
	})

	require.NoError(t, CopyBrandMedia(logger, b, dest))
	hook.Reset()

	require.NoError(t, CopyBrandMedia(logger, b, dest))
	assert.Empty(t, infoEntries(hook), "unchanged files must not be rewritten")
}

func TestCopyBrandMediaUpdatesChangedFile(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dest := t.TempDir()

	require.NoError(t, CopyBrandMedia(logger, testBrand(fstest.MapFS{
		"a.css": &fstest.MapFile{Data: []byte("old")},
		"b.css": &fstest.MapFile{Data: []byte("same")},
	}), dest))
	hook.Reset()

	require.NoError(t, CopyBrandMedia(logger, testBrand(fstest.MapFS{
		"a.css": &fstest.MapFile{Data: []byte("new")},
		"b.css": &fstest.MapFile{Data: []byte("same")},
	}), dest))

	entries := infoEntries(hook)
	require.Len(t, entries, 1, "only the changed file should be written")
	assert.Contains(t, entries[0].Message, "updated")

	updated, err := os.ReadFile(filepath.Join(dest, "media", "a.css"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(updated))
}

func TestCopyBrandMediaInvalidDestination(t *testing.T) {
	logger, _ := test.NewNullLogger()
	b := testBrand(fstest.MapFS{})

	t.Run("missing directory", func(t *testing.T) {
		err := CopyBrandMedia(logger, b, filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, ErrMediaDest)
	})

	t.Run("destination is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		err := CopyBrandMedia(logger, b, file)
		assert.ErrorIs(t, err, ErrMediaDest)
	})
}

func TestCopyBrandMediaNoMediaDir(t *testing.T) {
	logger, hook := test.NewNullLogger()
	b := &brand.Brand{Name: "bare", Header: "<html>", Footer: "</html>"}

	require.NoError(t, CopyBrandMedia(logger, b, t.TempDir()))
	assert.Empty(t, infoEntries(hook))
}
