package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/hexcard/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and the artwork directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize config
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())

		// Create the artwork directory if it doesn't exist
		if err := os.MkdirAll(cfg.AssetDir, 0755); err != nil {
			return fmt.Errorf("error creating artwork directory: %w", err)
		}

		fmt.Println("Artwork directory initialized at:", cfg.AssetDir)
		fmt.Println("Add one <Type>.png (500x500, transparent where the base color should show) per hex type.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
