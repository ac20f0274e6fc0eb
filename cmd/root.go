package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hexcard",
	Short: "Tool for rendering hexagonal terrain cards",
	Long: `Hexcard renders hexagonal game-board tiles: terrain artwork layered by type,
a title banner, a type label, and rules and flavor text, cut to a hexagon.
Cards are described with flags or small TOML files; artwork and fonts are configured
in $XDG_CONFIG_HOME/hexcard/config.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
