package assets

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/arcanaland/hexcard/internal/card"
)

func writeArt(t *testing.T, dir string, tag card.TypeTag, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	if err := imaging.Save(img, filepath.Join(dir, tag.String()+".png")); err != nil {
		t.Fatalf("save %s: %v", tag, err)
	}
}

func TestDirArtwork(t *testing.T) {
	dir := t.TempDir()
	writeArt(t, dir, card.Forest, Size, Size)

	img, err := Dir{Path: dir}.Artwork(card.Forest)
	if err != nil {
		t.Fatalf("Artwork: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, Size, Size) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestDirArtworkScalesOddSizes(t *testing.T) {
	dir := t.TempDir()
	writeArt(t, dir, card.River, 100, 80)

	img, err := Dir{Path: dir}.Artwork(card.River)
	if err != nil {
		t.Fatalf("Artwork: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Size || b.Dy() != Size {
		t.Fatalf("bounds = %v, want %dx%d", b, Size, Size)
	}
}

func TestDirArtworkMissing(t *testing.T) {
	_, err := Dir{Path: t.TempDir()}.Artwork(card.Sea)
	var ae *AssetLoadError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AssetLoadError, got %v", err)
	}
	if ae.Kind != KindArtwork || ae.Name != "Sea" {
		t.Fatalf("unexpected error fields %+v", ae)
	}
	if !IsNotExist(err) {
		t.Fatalf("IsNotExist(%v) = false", err)
	}
}

func TestDirMissing(t *testing.T) {
	dir := t.TempDir()
	writeArt(t, dir, card.Hill, Size, Size)

	missing := Dir{Path: dir}.Missing([]card.TypeTag{card.Hill, card.Road, card.Farm})
	if len(missing) != 2 || missing[0] != card.Road || missing[1] != card.Farm {
		t.Fatalf("Missing = %v", missing)
	}
}

type countingSource struct {
	calls int
	err   error
}

func (s *countingSource) Artwork(tag card.TypeTag) (image.Image, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return image.NewNRGBA(image.Rect(0, 0, Size, Size)), nil
}

func TestCacheMemoizes(t *testing.T) {
	src := &countingSource{}
	c := NewCache(src)
	for i := 0; i < 3; i++ {
		if _, err := c.Artwork(card.Farm); err != nil {
			t.Fatalf("Artwork: %v", err)
		}
	}
	if src.calls != 1 {
		t.Fatalf("source called %d times, want 1", src.calls)
	}
}

func TestCacheDoesNotKeepErrors(t *testing.T) {
	src := &countingSource{err: errors.New("boom")}
	c := NewCache(src)
	if _, err := c.Artwork(card.Farm); err == nil {
		t.Fatalf("expected error")
	}
	src.err = nil
	if _, err := c.Artwork(card.Farm); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("source called %d times, want 2", src.calls)
	}
}
