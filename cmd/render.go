package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [card.toml]",
	Short: "Render a hexcard to a PNG file",
	Long: `Render composites a hexcard from a card file and/or flags and writes it as a PNG.

Flags override the values read from the card file. Artwork is looked up in the
asset directory as <Type>.png; a missing file for any listed type aborts the render.

Examples:
  hexcard render greenwood.toml
  hexcard render --title Greenwood --type Forest --rules "Grants +1 to adjacent hexes." -o greenwood.png
  hexcard render --extend-rules --rules "Line one /n Line two" crossroads.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, opts, err := cardFromArgs(cmd, args)
		if err != nil {
			return err
		}

		s, err := setup(cmd)
		if err != nil {
			return err
		}

		img, err := s.renderer.Render(c, opts)
		if err != nil {
			return fmt.Errorf("error rendering card: %w", err)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = slug(c.Title) + ".png"
		}
		if err := imaging.Save(img, output); err != nil {
			return fmt.Errorf("error writing %s: %w", output, err)
		}

		fmt.Println(colorize.GreenString("✔ ") + colorize.CyanString("Rendered ") + colorize.HiWhiteString(output))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	addCardFlags(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "Output PNG path (default <title>.png)")
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// slug turns a title into a file name
func slug(title string) string {
	s := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if s == "" {
		return "hexcard"
	}
	return s
}
