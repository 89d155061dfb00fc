package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ko-stant/levelgen-engine/internal/mapgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level and print it",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Int("width", 50, "grid width")
	generateCmd.Flags().Int("height", 50, "grid height")
	generateCmd.Flags().Int("regions", 0, "region count (0 = density default)")
	generateCmd.Flags().Int("min-distance", 4, "minimum distance between region centers")
	generateCmd.Flags().Int64("seed", 0, "random seed (omit for a fresh seed)")
	generateCmd.Flags().Bool("json", false, "emit the grid snapshot as JSON")
	rootCmd.AddCommand(generateCmd)
}

func configFromFlags(cmd *cobra.Command) mapgen.Config {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	regions, _ := cmd.Flags().GetInt("regions")
	minDist, _ := cmd.Flags().GetInt("min-distance")
	seed, _ := cmd.Flags().GetInt64("seed")

	return mapgen.Config{
		Width:             width,
		Height:            height,
		RegionCount:       regions,
		MinRegionDistance: minDist,
		Seed:              seed,
		SeedSet:           cmd.Flags().Changed("seed"),
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	res, err := mapgen.Generate(configFromFlags(cmd))
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Snapshot("levelgen-cli"))
	}

	fmt.Println(renderASCII(res))
	fmt.Printf("seed=%d regions=%d unroutable=%d\n", res.Seed, len(res.Regions), res.Diagnostics.UnroutableEdges)
	for _, w := range res.Diagnostics.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	return nil
}

func renderASCII(res *mapgen.Result) string {
	var sb strings.Builder
	g := res.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.At(x, y).Rune())
		}
		if y < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
