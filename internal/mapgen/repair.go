package mapgen

import (
	"sort"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
)

// repairMaxPasses caps the scan/fix loop. Demoting a cell can, in rare
// adjacent configurations, create a new violation elsewhere, so the loop
// repeats until a clean scan or the cap.
const repairMaxPasses = 32

// RepairOutcome reports one structural-repair run: how it terminated, how
// many scan passes it took, and how many cells were demoted.
type RepairOutcome struct {
	Reason  TerminationReason
	Passes  int
	Demoted int
}

// repairDoubleWide removes every 2x2 block of Path cells. Within a
// violating block the cell with the fewest filled orthogonal neighbors
// outside the block is demoted to Empty; ties fall to scan order
// (top-left first). Cells whose removal would split the walkable network
// are passed over in favor of the next candidate, so a repair after the
// reconnect stage cannot silently strand a region.
func repairDoubleWide(g *grid.Grid) RepairOutcome {
	out := RepairOutcome{Reason: CapReached}

	for pass := 1; pass <= repairMaxPasses; pass++ {
		out.Passes = pass
		violations := 0

		for y := 0; y < g.Height-1; y++ {
			for x := 0; x < g.Width-1; x++ {
				if !isDoubleWide(g, x, y) {
					continue
				}
				violations++
				bx, by := demotionTarget(g, x, y)
				g.Set(bx, by, grid.TileEmpty)
				out.Demoted++
			}
		}

		if violations == 0 {
			out.Reason = Converged
			return out
		}
	}

	return out
}

func isDoubleWide(g *grid.Grid, x, y int) bool {
	return g.At(x, y) == grid.TilePath &&
		g.At(x+1, y) == grid.TilePath &&
		g.At(x, y+1) == grid.TilePath &&
		g.At(x+1, y+1) == grid.TilePath
}

// demotionTarget picks the block cell least connected to the path network
// outside the block, skipping cells whose removal would cut that network.
// When every cell is load-bearing the least connected one goes anyway and
// the connectivity audit downstream reports the damage.
func demotionTarget(g *grid.Grid, x, y int) (int, int) {
	block := [4]grid.Point{{X: x, Y: y}, {X: x + 1, Y: y}, {X: x, Y: y + 1}, {X: x + 1, Y: y + 1}}

	inBlock := func(p grid.Point) bool {
		return p.X >= x && p.X <= x+1 && p.Y >= y && p.Y <= y+1
	}

	type candidate struct {
		cell    grid.Point
		outside int
	}
	cands := make([]candidate, 0, 4)
	for _, cell := range block {
		outside := 0
		for _, d := range grid.Orthogonal() {
			n := grid.Point{X: cell.X + d.X, Y: cell.Y + d.Y}
			if inBlock(n) {
				continue
			}
			if g.FilledAt(n.X, n.Y) {
				outside++
			}
		}
		cands = append(cands, candidate{cell: cell, outside: outside})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].outside < cands[j].outside })

	_, components := g.Components()
	for _, c := range cands {
		if !splitsNetwork(g, c.cell, components) {
			return c.cell.X, c.cell.Y
		}
	}
	return cands[0].cell.X, cands[0].cell.Y
}

// splitsNetwork reports whether demoting the cell increases the component
// count. The tentative demotion is always rolled back.
func splitsNetwork(g *grid.Grid, p grid.Point, before int) bool {
	prev := g.At(p.X, p.Y)
	g.Set(p.X, p.Y, grid.TileEmpty)
	_, after := g.Components()
	g.Set(p.X, p.Y, prev)
	return after > before
}
