// Package assets loads the terrain artwork layered under a hexcard.
package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/arcanaland/hexcard/internal/card"
)

// Size is the edge length of every artwork layer and of the card itself.
const Size = 500

const (
	KindArtwork = "artwork"
	KindFont    = "font"
)

// AssetLoadError reports a missing or unreadable artwork or font file.
type AssetLoadError struct {
	Kind string // KindArtwork or KindFont
	Name string // tag name or font role
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot load %s %s: %v", e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("cannot load %s %s from %s: %v", e.Kind, e.Name, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// IsNotExist reports whether err is an AssetLoadError for a file that is not there.
func IsNotExist(err error) bool {
	var ae *AssetLoadError
	return errors.As(err, &ae) && errors.Is(ae.Err, os.ErrNotExist)
}

// Source hands out the artwork for a tag.
type Source interface {
	Artwork(tag card.TypeTag) (image.Image, error)
}

// Dir reads <Path>/<Tag>.png on every call.
type Dir struct {
	Path string
}

// PathFor returns where the artwork for tag is expected.
func (d Dir) PathFor(tag card.TypeTag) string {
	return filepath.Join(d.Path, tag.String()+".png")
}

// Artwork decodes the tag's image, scaling it to Size x Size when needed.
func (d Dir) Artwork(tag card.TypeTag) (image.Image, error) {
	path := d.PathFor(tag)
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Kind: KindArtwork, Name: tag.String(), Path: path, Err: err}
	}

	b := img.Bounds()
	if b.Dx() != Size || b.Dy() != Size {
		img = resize.Resize(Size, Size, img, resize.Lanczos3)
	}
	return img, nil
}

// Missing lists the tags in tags whose artwork file does not exist.
func (d Dir) Missing(tags []card.TypeTag) []card.TypeTag {
	var missing []card.TypeTag
	for _, t := range tags {
		if _, err := os.Stat(d.PathFor(t)); os.IsNotExist(err) {
			missing = append(missing, t)
		}
	}
	return missing
}

// Cache memoizes another Source. Failed loads are retried on the next call.
// Callers must not draw into the returned images.
type Cache struct {
	src Source

	mu     sync.Mutex
	images map[card.TypeTag]image.Image
}

// NewCache wraps src.
func NewCache(src Source) *Cache {
	return &Cache{src: src, images: make(map[card.TypeTag]image.Image)}
}

func (c *Cache) Artwork(tag card.TypeTag) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[tag]; ok {
		return img, nil
	}
	img, err := c.src.Artwork(tag)
	if err != nil {
		return nil, err
	}
	c.images[tag] = img
	return img, nil
}
