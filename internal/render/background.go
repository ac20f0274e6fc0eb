package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/arcanaland/hexcard/internal/assets"
	"github.com/arcanaland/hexcard/internal/card"
)

// LayerOrder is the bottom-to-top order artwork is stacked in. Snow has
// no artwork of its own; it only tints the base.
var LayerOrder = []card.TypeTag{
	card.Hill,
	card.Field,
	card.Farm,
	card.River,
	card.Road,
	card.Desert,
	card.Swamp,
	card.Forest,
	card.Settlement,
	card.Sea,
}

// Palette holds the base fills behind the artwork.
type Palette struct {
	Snow   color.NRGBA
	Desert color.NRGBA
	Swamp  color.NRGBA
	Field  color.NRGBA
}

// DefaultPalette returns the stock base colors.
func DefaultPalette() Palette {
	return Palette{
		Snow:   color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		Desert: color.NRGBA{R: 235, G: 200, B: 135, A: 255},
		Swamp:  color.NRGBA{R: 30, G: 70, B: 40, A: 255},
		Field:  color.NRGBA{R: 90, G: 160, B: 30, A: 255},
	}
}

// Base picks the fill for types: Snow, then Desert, then Swamp, else Field.
func (p Palette) Base(types card.TypeSet) color.NRGBA {
	switch {
	case types.Has(card.Snow):
		return p.Snow
	case types.Has(card.Desert):
		return p.Desert
	case types.Has(card.Swamp):
		return p.Swamp
	default:
		return p.Field
	}
}

func (r *Renderer) background(types card.TypeSet) (*image.NRGBA, error) {
	canvas := imaging.New(assets.Size, assets.Size, r.palette.Base(types))

	for _, tag := range LayerOrder {
		if !types.Has(tag) {
			continue
		}
		art, err := r.art.Artwork(tag)
		if err != nil {
			var ae *assets.AssetLoadError
			if !errors.As(err, &ae) {
				err = &assets.AssetLoadError{Kind: assets.KindArtwork, Name: tag.String(), Err: err}
			}
			return nil, err
		}
		r.logf("  layer %s", tag)
		canvas = imaging.Overlay(canvas, art, image.Pt(0, 0), 1.0)
	}

	return canvas, nil
}
