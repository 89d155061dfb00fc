package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "levelgen",
	Short: "levelgen generates 2D tile levels",
	Long:  `levelgen builds playable tile grids: separated regions connected by single-width corridors, repaired and classified for rendering.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
