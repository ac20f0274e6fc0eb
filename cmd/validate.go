package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/hexcard/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [card.toml]",
	Short: "Validate a hexcard before rendering it",
	Long: `Validate checks that a card's types are known and that artwork exists for each of them.
It also warns when text will run past its panel or the type label is wider than the card;
those cards still render, the overflowing text is simply cut off by the card edge.`,
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

		v := validator.NewValidator(c, opts, s.dir, s.renderer)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		name := c.Title
		if len(args) == 1 {
			name = args[0]
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Card '%s' is ready to render.\n", name)
		} else {
			fmt.Printf("❌ Card '%s' has %d validation errors:\n", name, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println(colorize.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Println(colorize.YellowString("%d. %s", i+1, warn))
			}
		}

		return nil
	},
}

func init() {
	addCardFlags(validateCmd)
}
