package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTemplate(t *testing.T, root, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()

	full := filepath.Join(root, dir)
	assert.NoError(t, os.MkdirAll(full, 0o755))

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(full, name)
	f, err := os.Create(path)
	assert.NoError(t, err)
	assert.NoError(t, png.Encode(f, img))
	assert.NoError(t, f.Close())
	return path
}

func TestLibrary_Load(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "250", "enter.png", 25, 30, color.NRGBA{B: 255, A: 255})
	writeTemplate(t, root, "1000", "enter.png", 100, 120, color.NRGBA{B: 255, A: 255})

	lib := NewLibrary(root)

	small, err := lib.Load("enter.png", Small)
	assert.NoError(t, err)
	assert.Equal(t, 25, small.Width())
	assert.Equal(t, 30, small.Height())

	large, err := lib.Load("enter.png", Large)
	assert.NoError(t, err)
	assert.Equal(t, 100, large.Width())
	assert.Equal(t, 120, large.Height())
}

func TestLibrary_LoadMissing(t *testing.T) {
	lib := NewLibrary(t.TempDir())

	_, err := lib.Load("nope.png", Small)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "open image")
}

func TestLibrary_CacheHandsOutClones(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "250", "exit.png", 10, 10, color.NRGBA{B: 255, A: 255})

	lib := NewLibrary(root)

	first, err := lib.Load("exit.png", Small)
	assert.NoError(t, err)

	// Deface the returned buffer; the cached master must be unaffected.
	first.Fill(color.NRGBA{R: 255, A: 255})

	second, err := lib.Load("exit.png", Small)
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, second.At(5, 5))
}

func TestLibrary_CacheSurvivesFileRemoval(t *testing.T) {
	root := t.TempDir()
	path := writeTemplate(t, root, "250", "spin.png", 10, 10, color.NRGBA{G: 255, A: 255})

	lib := NewLibrary(root)

	_, err := lib.Load("spin.png", Small)
	assert.NoError(t, err)

	// Once cached, disk no longer matters...
	assert.NoError(t, os.Remove(path))
	_, err = lib.Load("spin.png", Small)
	assert.NoError(t, err)

	// ...until the cache is cleared.
	lib.Clear()
	_, err = lib.Load("spin.png", Small)
	assert.Error(t, err)
}

func TestDecodeFile_BadContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	assert.NoError(t, os.WriteFile(path, []byte("this is not a png"), 0o644))

	_, err := DecodeFile(path)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "decode image")
}
