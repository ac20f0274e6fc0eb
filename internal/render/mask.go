package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/vector"

	"github.com/arcanaland/hexcard/internal/assets"
)

const (
	hexCenter = assets.Size / 2
	hexRadius = 225
)

var hexMask = sync.OnceValue(func() *image.Alpha {
	return newHexMask(assets.Size, hexCenter, hexCenter, hexRadius)
})

// HexMask returns the card silhouette: a flat-topped regular hexagon of
// circumradius 225 centered on the card, anti-aliased along its edges and
// transparent outside. The mask is shared; do not draw into it.
func HexMask() *image.Alpha {
	return hexMask()
}

func newHexMask(size int, cx, cy, radius float64) *image.Alpha {
	z := vector.NewRasterizer(size, size)
	z.DrawOp = draw.Src

	// Vertices every 60 degrees starting on the horizontal axis.
	for i := 0; i < 6; i++ {
		angle := float64(i) * math.Pi / 3
		x := float32(cx + radius*math.Cos(angle))
		y := float32(cy + radius*math.Sin(angle))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()

	m := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	return m
}

// punchOut scales the alpha of img by the mask coverage, so everything
// outside the hexagon ends up fully transparent.
func punchOut(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := mask.AlphaAt(x, y).A
			if m == 0xff {
				continue
			}
			i := img.PixOffset(x, y)
			if m == 0 {
				copy(img.Pix[i:i+4], []uint8{0, 0, 0, 0})
				continue
			}
			img.Pix[i+3] = uint8(uint32(img.Pix[i+3]) * uint32(m) / 0xff)
		}
	}
}

// MaskImage is the placeholder shown before a card is rendered: grey
// around a transparent hexagon.
func MaskImage() *image.NRGBA {
	mask := HexMask()
	img := image.NewNRGBA(mask.Bounds())
	for y := 0; y < assets.Size; y++ {
		for x := 0; x < assets.Size; x++ {
			if a := mask.AlphaAt(x, y).A; a != 0xff {
				img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 0xff - a})
			}
		}
	}
	return img
}
