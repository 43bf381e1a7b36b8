// Package assets resolves template images on disk by logical name and size
// variant, decoding them once into raster buffers and caching the result.
package assets

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/memekit/image-engine/internal/raster"
)

// Variant selects one of the two fixed template scales.
type Variant int

const (
	// Small is the 250px template scale.
	Small Variant = iota

	// Large is the 1000px template scale.
	Large
)

func (v Variant) dir() string {
	if v == Large {
		return "1000"
	}
	return "250"
}

// Library loads template images from <root>/<1000|250>/<name> and caches
// the decoded buffers. It is safe for concurrent use.
//
// Load hands out clones of the cached master copy, so callers can mutate
// what they get without poisoning the cache.
type Library struct {
	root string

	mu     sync.RWMutex
	images map[string]*raster.Buffer
}

// NewLibrary returns a library rooted at the given asset directory.
func NewLibrary(root string) *Library {
	return &Library{
		root:   root,
		images: make(map[string]*raster.Buffer),
	}
}

// Load returns the named template at the given variant. PNG, JPEG, GIF and
// WebP files are accepted; the first load decodes from disk, later loads
// are served from the cache.
func (l *Library) Load(name string, v Variant) (*raster.Buffer, error) {
	path := filepath.Join(l.root, v.dir(), name)

	l.mu.RLock()
	cached, ok := l.images[path]
	l.mu.RUnlock()
	if ok {
		return cached.Clone(), nil
	}

	buf, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.images[path] = buf
	l.mu.Unlock()

	return buf.Clone(), nil
}

// Clear drops every cached template, forcing the next Load of each back to
// disk.
func (l *Library) Clear() {
	l.mu.Lock()
	l.images = make(map[string]*raster.Buffer)
	l.mu.Unlock()
}

// DecodeFile reads and decodes a single image file into a raster buffer,
// in any of the registered formats.
func DecodeFile(path string) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return raster.FromImage(img), nil
}
