package mapgen

import "github.com/Ko-stant/levelgen-engine/internal/grid"

// classifyOuterTiles relabels geometrically notable border cells as
// RegionOuter for rendering emphasis: corners (exactly two orthogonal
// filled neighbors forming an L) and intersections (three or more). The
// pass is otherwise read-only and cannot change connectivity, since
// RegionOuter still counts as filled everywhere else in the pipeline.
func classifyOuterTiles(g *grid.Grid) int {
	relabeled := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x != 0 && y != 0 && x != g.Width-1 && y != g.Height-1 {
				continue
			}
			if !g.At(x, y).Filled() {
				continue
			}
			if isCorner(g, x, y) || g.OrthogonalFilled(x, y) >= 3 {
				g.Set(x, y, grid.TileRegionOuter)
				relabeled++
			}
		}
	}
	return relabeled
}

// isCorner requires the two filled neighbors to be perpendicular; two
// opposite neighbors are a straight run, not a corner.
func isCorner(g *grid.Grid, x, y int) bool {
	up := g.FilledAt(x, y-1)
	right := g.FilledAt(x+1, y)
	down := g.FilledAt(x, y+1)
	left := g.FilledAt(x-1, y)

	count := 0
	for _, f := range [4]bool{up, right, down, left} {
		if f {
			count++
		}
	}
	if count != 2 {
		return false
	}
	straight := (up && down) || (left && right)
	return !straight
}
