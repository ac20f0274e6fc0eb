package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/hexcard/internal/assets"
	"github.com/arcanaland/hexcard/internal/card"
	"github.com/arcanaland/hexcard/internal/config"
	"github.com/arcanaland/hexcard/internal/fonts"
	"github.com/arcanaland/hexcard/internal/render"
)

// addCardFlags registers the flags that stand in for the card form
func addCardFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Card title")
	cmd.Flags().StringArray("type", nil, "Hex type (repeatable, in label order)")
	cmd.Flags().String("rules", "", "Rules text; a standalone /n forces a line break")
	cmd.Flags().String("flavor", "", "Flavor text")
	cmd.Flags().Bool("extend-rules", false, "Extend the rules box over the flavor text")
	cmd.Flags().String("assets", "", "Artwork directory (overrides asset_dir from the config)")
	cmd.Flags().BoolP("verbose", "v", false, "Trace render steps")
}

// cardFromArgs builds the card from an optional card file, then applies flags on top
func cardFromArgs(cmd *cobra.Command, args []string) (card.Card, render.Options, error) {
	f := &card.File{}
	if len(args) == 1 {
		loaded, err := card.LoadFile(args[0])
		if err != nil {
			return card.Card{}, render.Options{}, err
		}
		f = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		f.Title, _ = flags.GetString("title")
	}
	if flags.Changed("type") {
		f.Types, _ = flags.GetStringArray("type")
	}
	if flags.Changed("rules") {
		f.Rules, _ = flags.GetString("rules")
	}
	if flags.Changed("flavor") {
		f.Flavor, _ = flags.GetString("flavor")
	}
	if flags.Changed("extend-rules") {
		f.ExtendRules, _ = flags.GetBool("extend-rules")
	}

	c, err := f.Card()
	if err != nil {
		return card.Card{}, render.Options{}, err
	}
	return c, render.Options{ExtendRulesBox: f.ExtendRules}, nil
}

// session is everything a command needs to render against the user's config
type session struct {
	dir      assets.Dir
	palette  render.Palette
	renderer *render.Renderer
}

// loadSession loads the config and resolves the artwork directory and palette,
// leaving the renderer unset
func loadSession(cmd *cobra.Command) (*session, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	s := &session{dir: assets.Dir{Path: cfg.AssetDir}}
	if override, _ := cmd.Flags().GetString("assets"); override != "" {
		s.dir.Path = override
	}

	s.palette, err = cfg.RenderPalette()
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

// setup is loadSession plus fonts and the renderer
func setup(cmd *cobra.Command) (*session, error) {
	s, cfg, err := loadSession(cmd)
	if err != nil {
		return nil, err
	}

	fs, err := fonts.Resolve(cfg.Fonts, fonts.FileLoader{})
	if err != nil {
		return nil, err
	}

	var src assets.Source = s.dir
	if cfg.CacheArtwork {
		src = assets.NewCache(s.dir)
	}

	opts := []render.Option{render.WithPalette(s.palette)}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, render.WithLogf(func(format string, args ...any) {
			fmt.Fprintln(os.Stderr, colorize.HiBlackString(format, args...))
		}))
	}

	s.renderer, err = render.New(fs, src, opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}
