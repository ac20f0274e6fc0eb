package cmd

import (
	"fmt"
	"image"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/hexcard/internal/card"
	"github.com/arcanaland/hexcard/internal/preview"
	"github.com/arcanaland/hexcard/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview [card.toml]",
	Short: "Render a hexcard and display it with ANSI art",
	Long: `Preview renders a hexcard the same way as 'render' but draws it in the terminal
with 24-bit ANSI half blocks instead of writing a file.

Use --mask to show the empty hexagon placeholder without rendering a card.

Examples:
  hexcard preview greenwood.toml
  hexcard preview --title "Frozen Ford" --type Snow --type River`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get terminal width
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80 // Default if we can't get terminal width
		}
		cols, rows := preview.Size(width, 4)

		if mask, _ := cmd.Flags().GetBool("mask"); mask {
			displayCard(render.MaskImage(), cols, rows, nil)
			return nil
		}

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

		displayCard(img, cols, rows, infoLines(c, opts, width-2))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(previewCmd)

	addCardFlags(previewCmd)
	previewCmd.Flags().Bool("mask", false, "Show the blank hexagon placeholder")
}

// infoLines describes the card, truncating values that would wrap past width columns
func infoLines(c card.Card, opts render.Options, width int) []string {
	title := c.Title
	if title == "" {
		title = "(untitled)"
	}
	fit := func(label, value string) string {
		return colorize.CyanString(label) + colorize.HiWhiteString("%s", runewidth.Truncate(value, width-runewidth.StringWidth(label), "…"))
	}
	lines := []string{
		fit("Title: ", title),
		fit("Types: ", c.Types.String()),
	}
	if opts.ExtendRulesBox {
		lines = append(lines, colorize.CyanString("Rules: ")+colorize.HiWhiteString("extended"))
	}
	return lines
}

// displayCard prints the ANSI art with the card info underneath
func displayCard(img image.Image, cols, rows int, info []string) {
	art := preview.ToANSI(img, cols, rows)

	fmt.Println()
	for _, line := range strings.Split(strings.TrimSuffix(art, "\n"), "\n") {
		fmt.Print("  ")
		fmt.Println(line)
	}
	if len(info) > 0 {
		fmt.Println()
		for _, line := range info {
			fmt.Println("  " + line)
		}
	}
	fmt.Println()
}
