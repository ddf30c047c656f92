package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milk9111/arplace/ar/sim"
	"github.com/milk9111/arplace/prefabs"
)

var prefabsCmd = &cobra.Command{
	Use:   "prefabs [category]",
	Short: "List the placeable catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := prefabs.LoadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		categories := catalog.Categories()
		if len(args) == 1 {
			categories = []string{strings.ToLower(args[0])}
		}
		for _, c := range categories {
			items := catalog.ByCategory(c)
			if len(items) == 0 {
				return fmt.Errorf("no placeables in category %q", c)
			}
			fmt.Fprintf(out, "%s:\n", c)
			for _, p := range items {
				fmt.Fprintf(out, "  %-22s %-6s radius=%.2f size=(%.2f, %.2f, %.2f)\n",
					p.Name, p.Class, p.PickRadius, p.Size.X(), p.Size.Y(), p.Size.Z())
			}
		}
		return nil
	},
}

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List the embedded rooms and their planes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range sim.RoomNames() {
			room, err := sim.LoadRoom(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s (%dx%d):\n", room.Name, room.Camera.Width, room.Camera.Height)
			for _, p := range room.Planes {
				fmt.Fprintf(out, "  plane %d %-8s after %.1fs\n", p.ID, p.Alignment, p.DetectAfter)
			}
		}
		return nil
	},
}

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "List the embedded scenario scripts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range prefabs.ScriptNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(prefabsCmd, roomsCmd, scriptsCmd)
}
