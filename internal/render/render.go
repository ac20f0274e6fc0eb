// Package render composites a hexcard from its record.
//
// A render stacks, bottom to top: the terrain background, the type banner,
// the title banner, and the rules panel (plus the flavor panel unless the
// rules box is extended), then cuts the result to a hexagon. Layer offsets
// are fixed by the card format.
package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/arcanaland/hexcard/internal/assets"
	"github.com/arcanaland/hexcard/internal/card"
	"github.com/arcanaland/hexcard/internal/fonts"
)

// Layer offsets on the 500x500 card.
var (
	TypeOffset   = image.Pt(0, 104)
	TitleOffset  = image.Pt(0, 54)
	RulesOffset  = image.Pt(0, 330)
	FlavorOffset = image.Pt(0, 390)
)

// Options are per-render switches chosen by the form.
type Options struct {
	// ExtendRulesBox doubles the rules panel and drops the flavor text.
	ExtendRulesBox bool
}

// Renderer draws cards. It keeps no state between renders and may be used
// from several goroutines if its artwork Source allows it.
type Renderer struct {
	fonts   *fonts.FontSet
	art     assets.Source
	palette Palette
	logf    func(format string, args ...any)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPalette replaces the base fill colors.
func WithPalette(p Palette) Option {
	return func(r *Renderer) { r.palette = p }
}

// WithLogf traces render steps through logf.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(r *Renderer) { r.logf = logf }
}

// New builds a Renderer from resolved fonts and an artwork source.
func New(fs *fonts.FontSet, art assets.Source, opts ...Option) (*Renderer, error) {
	if fs == nil || fs.Title == nil || fs.TitleReduced == nil || fs.Rules == nil || fs.Flavor == nil {
		return nil, errors.New("render: incomplete font set")
	}
	if art == nil {
		return nil, errors.New("render: no artwork source")
	}

	r := &Renderer{
		fonts:   fs,
		art:     art,
		palette: DefaultPalette(),
		logf:    func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render produces the finished 500x500 card. The card is validated first;
// a missing artwork file fails the whole render with an AssetLoadError.
func (r *Renderer) Render(c card.Card, opts Options) (*image.NRGBA, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	r.logf("Generating image")
	img, err := r.background(c.Types)
	if err != nil {
		return nil, err
	}

	faces, err := r.fonts.Faces()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	defer faces.Close()

	r.logf("Compositing...")
	img = imaging.Overlay(img, typeLayer(faces, c.Types), TypeOffset, 1.0)
	img = imaging.Overlay(img, r.titleLayer(faces, c.Title), TitleOffset, 1.0)

	if opts.ExtendRulesBox {
		r.logf("  rules (extended)")
		img = imaging.Overlay(img, r.panel(ExtendedRulesHeight, rulesFill, faces.Rules, c.RulesText), RulesOffset, 1.0)
	} else {
		r.logf("  rules")
		img = imaging.Overlay(img, r.panel(RulesHeight, rulesFill, faces.Rules, c.RulesText), RulesOffset, 1.0)
		r.logf("  flavor")
		img = imaging.Overlay(img, r.panel(FlavorHeight, flavorFill, faces.Flavor, c.FlavorText), FlavorOffset, 1.0)
	}

	punchOut(img, HexMask())
	return img, nil
}

// Measure reports how wide text is in the given role's face. Used by
// callers that want to check layout without rendering.
func (r *Renderer) Measure(role fonts.Role, text string) (float64, error) {
	faces, err := r.fonts.Faces()
	if err != nil {
		return 0, err
	}
	defer faces.Close()

	switch role {
	case fonts.Title:
		return fonts.Measure(faces.Title, text), nil
	case fonts.TitleReduced:
		return fonts.Measure(faces.TitleReduced, text), nil
	case fonts.Rules:
		return fonts.Measure(faces.Rules, text), nil
	case fonts.Flavor:
		return fonts.Measure(faces.Flavor, text), nil
	}
	return 0, fmt.Errorf("unknown font role %q", role)
}

// Lines returns the wrapped lines for text in the given panel face.
func (r *Renderer) Lines(role fonts.Role, text string) ([]string, error) {
	faces, err := r.fonts.Faces()
	if err != nil {
		return nil, err
	}
	defer faces.Close()

	if role == fonts.Flavor {
		return PanelLines(faces.Flavor, text), nil
	}
	return PanelLines(faces.Rules, text), nil
}
