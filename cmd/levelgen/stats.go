package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
	"github.com/Ko-stant/levelgen-engine/internal/mapgen"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Run repeated generations and report warning rates",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int("width", 50, "grid width")
	statsCmd.Flags().Int("height", 50, "grid height")
	statsCmd.Flags().Int("regions", 0, "region count (0 = density default)")
	statsCmd.Flags().Int("min-distance", 4, "minimum distance between region centers")
	statsCmd.Flags().Int("runs", 100, "number of generation runs")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	runs, _ := cmd.Flags().GetInt("runs")
	base := configFromStatsFlags(cmd)

	var (
		failures   int
		cleanup    int
		unreached  int
		unroutable int
		pathCells  int
	)

	for i := 0; i < runs; i++ {
		res, err := mapgen.Generate(base)
		if err != nil {
			failures++
			continue
		}
		if res.Diagnostics.HasWarning(mapgen.WarningPartialCleanup) {
			cleanup++
		}
		if res.Diagnostics.HasWarning(mapgen.WarningUnreachableRegion) {
			unreached++
		}
		unroutable += res.Diagnostics.UnroutableEdges
		pathCells += res.Grid.Count(grid.TilePath)
	}

	ok := runs - failures
	fmt.Printf("runs=%d ok=%d failed=%d\n", runs, ok, failures)
	fmt.Printf("partialCleanup=%d unreachableRegion=%d unroutableEdges=%d\n", cleanup, unreached, unroutable)
	if ok > 0 {
		fmt.Printf("avgPathCells=%d\n", pathCells/ok)
	}
	return nil
}

func configFromStatsFlags(cmd *cobra.Command) mapgen.Config {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	regions, _ := cmd.Flags().GetInt("regions")
	minDist, _ := cmd.Flags().GetInt("min-distance")
	return mapgen.Config{
		Width:             width,
		Height:            height,
		RegionCount:       regions,
		MinRegionDistance: minDist,
	}
}
