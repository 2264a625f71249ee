package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower-climber/internal/tower/level"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List available maps",
	Long: `Shows the built-in maps followed by maps loaded from --maps-dir.
A map file with the id of a built-in map replaces it.

Examples:
  tower maps
  tower maps --maps-dir ./towers`,
	Run: runMaps,
}

func runMaps(_ *cobra.Command, _ []string) {
	catalog, err := level.NewCatalog(flagMapsDir)
	if err != nil {
		fail("%v", err)
	}

	maps := catalog.List()
	if len(maps) == 0 {
		fmt.Println("No maps available.")
		return
	}

	maxIDLen := 2
	for _, m := range maps {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-8s  %s\n", "#", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-3s  %-*s  %-8s  %s\n", "-", maxIDLen, "--", "----", "----")
	for i, m := range maps {
		size := fmt.Sprintf("%dx%d", m.Columns(), len(m.Rows))
		name := m.Name
		if m.FilePath != "" {
			name += " (" + m.FilePath + ")"
		}
		fmt.Printf("  %-3d  %-*s  %-8s  %s\n", i+1, maxIDLen, m.ID, size, name)
	}

	fmt.Println()
	fmt.Println("Run 'tower play <id|#>' to play a map.")
}
