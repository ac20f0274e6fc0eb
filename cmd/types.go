package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/hexcard/internal/card"
	"github.com/arcanaland/hexcard/internal/render"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List hex types, their layer order, and artwork status",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSession(cmd)
		if err != nil {
			return err
		}
		dir := s.dir

		fmt.Println(colorize.CyanString("Layer order (bottom to top):"))
		missing := map[card.TypeTag]bool{}
		for _, tag := range dir.Missing(render.LayerOrder) {
			missing[tag] = true
		}
		for i, tag := range render.LayerOrder {
			status := colorize.GreenString("ok")
			if missing[tag] {
				status = colorize.RedString("missing %s", dir.PathFor(tag))
			}
			fmt.Printf("%2d. %-10s %s\n", i+1, tag, status)
		}

		fmt.Println()
		fmt.Println(colorize.CyanString("Base colors (first match wins):"))
		bases := []struct {
			label string
			types card.TypeSet
		}{
			{"Snow", card.MustTypeSet(card.Snow)},
			{"Desert", card.MustTypeSet(card.Desert)},
			{"Swamp", card.MustTypeSet(card.Swamp)},
			{"default", card.TypeSet{}},
		}
		for _, b := range bases {
			c := s.palette.Base(b.types)
			swatch := fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", c.R, c.G, c.B)
			fmt.Printf("    %-10s %s #%02x%02x%02x\n", b.label, swatch, c.R, c.G, c.B)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(typesCmd)

	typesCmd.Flags().String("assets", "", "Artwork directory (overrides asset_dir from the config)")
}
