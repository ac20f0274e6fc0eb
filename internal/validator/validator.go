package validator

import (
	"fmt"

	"github.com/arcanaland/hexcard/internal/assets"
	"github.com/arcanaland/hexcard/internal/card"
	"github.com/arcanaland/hexcard/internal/fonts"
	"github.com/arcanaland/hexcard/internal/layout"
	"github.com/arcanaland/hexcard/internal/render"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a card against the artwork on disk and the panel sizes.
// Overflow never makes a card invalid; it only produces warnings.
type Validator struct {
	Card     card.Card
	Options  render.Options
	Assets   assets.Dir
	Renderer *render.Renderer
	Results  ValidationResults
}

func NewValidator(c card.Card, opts render.Options, dir assets.Dir, r *render.Renderer) *Validator {
	return &Validator{
		Card:     c,
		Options:  opts,
		Assets:   dir,
		Renderer: r,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.Card.Validate(); err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return v.Results, nil
	}

	v.validateTitle()
	v.validateArtwork()
	if err := v.validateTypeLabel(); err != nil {
		return v.Results, err
	}
	if err := v.validatePanels(); err != nil {
		return v.Results, err
	}

	return v.Results, nil
}

func (v *Validator) validateTitle() {
	if v.Card.Title == "" {
		v.Results.Warnings = append(v.Results.Warnings, "title is empty")
	}
}

// validateArtwork checks that every tag with a layer has a readable image
func (v *Validator) validateArtwork() {
	var layered []card.TypeTag
	for _, tag := range render.LayerOrder {
		if v.Card.Types.Has(tag) {
			layered = append(layered, tag)
		}
	}

	missing := map[card.TypeTag]bool{}
	for _, tag := range v.Assets.Missing(layered) {
		missing[tag] = true
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("artwork for %s not found: %s", tag, v.Assets.PathFor(tag)))
	}

	// Present files must also decode, or render fails on them.
	for _, tag := range layered {
		if missing[tag] {
			continue
		}
		if _, err := v.Assets.Artwork(tag); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("artwork for %s cannot be read: %v", tag, err))
		}
	}
}

func (v *Validator) validateTypeLabel() error {
	width, err := v.Renderer.Measure(fonts.Rules, v.Card.Types.String())
	if err != nil {
		return err
	}
	if width > assets.Size {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("type label is %.0fpx wide and will be cut off at %dpx", width, assets.Size))
	}
	return nil
}

// validatePanels warns when wrapped text runs past the bottom of its panel
func (v *Validator) validatePanels() error {
	rulesHeight := render.RulesHeight
	if v.Options.ExtendRulesBox {
		rulesHeight = render.ExtendedRulesHeight
	}
	if err := v.checkOverflow("rules", fonts.Rules, v.Card.RulesText, rulesHeight); err != nil {
		return err
	}

	if v.Options.ExtendRulesBox {
		if v.Card.FlavorText != "" {
			v.Results.Warnings = append(v.Results.Warnings, "flavor text is hidden by the extended rules box")
		}
		return nil
	}
	return v.checkOverflow("flavor", fonts.Flavor, v.Card.FlavorText, render.FlavorHeight)
}

func (v *Validator) checkOverflow(name string, role fonts.Role, text string, height int) error {
	lines, err := v.Renderer.Lines(role, text)
	if err != nil {
		return err
	}
	capacity := layout.Capacity(height, render.LineTop, render.LinePitch)
	if len(lines) > capacity {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s text needs %d lines but the panel fits %d", name, len(lines), capacity))
	}
	return nil
}
