package mapgen

import "github.com/Ko-stant/levelgen-engine/internal/grid"

const (
	// extendRadius bounds the search when extending a dead-end stub
	// toward nearby unconnected structure.
	extendRadius = 6

	// minStubLength is the shortest dead-end corridor worth keeping.
	minStubLength = 3

	// prunePasses caps the trim loop; removing a stub can expose a new,
	// shorter one behind it.
	prunePasses = 4
)

// deadEndAnalyzer improves corridor topology after the initial carve:
// extend short stubs to nearby structure, bridge diagonal-only contacts,
// prune leftover stubs, then reconnect anything still stranded. It reuses
// the carver for all route work.
type deadEndAnalyzer struct {
	g *grid.Grid
	c *carver
}

func (a *deadEndAnalyzer) run() {
	a.extend()
	a.bridgeCorners()
	a.prune()
	a.reconnect()
}

// deadEnds lists Path cells with exactly one filled orthogonal neighbor,
// in scan order.
func (a *deadEndAnalyzer) deadEnds() []grid.Point {
	var tips []grid.Point
	for y := 0; y < a.g.Height; y++ {
		for x := 0; x < a.g.Width; x++ {
			if a.g.At(x, y) == grid.TilePath && a.g.OrthogonalFilled(x, y) == 1 {
				tips = append(tips, grid.Point{X: x, Y: y})
			}
		}
	}
	return tips
}

// extend connects each dead-end tip to the nearest filled cell of a
// different component within extendRadius, when the bounded search finds a
// route. Stubs that cannot reach anything nearby are left for prune.
func (a *deadEndAnalyzer) extend() {
	labels, _ := a.g.Components()

	for _, tip := range a.deadEnds() {
		if a.g.OrthogonalFilled(tip.X, tip.Y) != 1 {
			continue // a previous extension already touched this stub
		}
		own := labels[a.g.Index(tip.X, tip.Y)]
		target, ok := a.nearestForeignFilled(tip, own, labels)
		if !ok {
			continue
		}
		if a.c.connect(tip, target, allowAllRegions, allowAllRegions, extendRadius*2) {
			labels, _ = a.g.Components()
		}
	}
}

func (a *deadEndAnalyzer) nearestForeignFilled(from grid.Point, own int, labels []int) (grid.Point, bool) {
	best := grid.Point{}
	bestDist := extendRadius*extendRadius + 1
	found := false

	for y := max(0, from.Y-extendRadius); y <= min(a.g.Height-1, from.Y+extendRadius); y++ {
		for x := max(0, from.X-extendRadius); x <= min(a.g.Width-1, from.X+extendRadius); x++ {
			idx := a.g.Index(x, y)
			if labels[idx] == -1 || labels[idx] == own {
				continue
			}
			p := grid.Point{X: x, Y: y}
			if d := from.DistSq(p); d < bestDist {
				bestDist = d
				best = p
				found = true
			}
		}
	}
	return best, found
}

// bridgeCorners inserts an orthogonal connector wherever two Path cells
// touch only diagonally. Diagonal contact is not traversable under the
// 4-directional movement rules, so without the connector the two cells
// read as joined but play as separate.
func (a *deadEndAnalyzer) bridgeCorners() int {
	inserted := 0
	for y := 0; y < a.g.Height-1; y++ {
		for x := 0; x < a.g.Width-1; x++ {
			nw := a.g.At(x, y) == grid.TilePath
			ne := a.g.At(x+1, y) == grid.TilePath
			sw := a.g.At(x, y+1) == grid.TilePath
			se := a.g.At(x+1, y+1) == grid.TilePath

			if nw && se && !a.g.FilledAt(x+1, y) && !a.g.FilledAt(x, y+1) {
				a.insertConnector(grid.Point{X: x + 1, Y: y}, grid.Point{X: x, Y: y + 1})
				inserted++
			}
			if ne && sw && !a.g.FilledAt(x, y) && !a.g.FilledAt(x+1, y+1) {
				a.insertConnector(grid.Point{X: x, Y: y}, grid.Point{X: x + 1, Y: y + 1})
				inserted++
			}
		}
	}
	return inserted
}

// insertConnector fills whichever candidate cell is better connected to
// the surrounding network; ties go to the first candidate.
func (a *deadEndAnalyzer) insertConnector(p, q grid.Point) {
	cell := p
	if a.g.OrthogonalFilled(q.X, q.Y) > a.g.OrthogonalFilled(p.X, p.Y) {
		cell = q
	}
	a.g.Set(cell.X, cell.Y, grid.TilePath)
}

// prune removes dead-end stubs shorter than minStubLength that extend did
// not absorb. Corridors that actually join two structures never end in a
// tip, so pruning only eats dangling spurs.
func (a *deadEndAnalyzer) prune() int {
	removed := 0
	for pass := 0; pass < prunePasses; pass++ {
		trimmed := 0
		for _, tip := range a.deadEnds() {
			if a.g.At(tip.X, tip.Y) != grid.TilePath || a.g.OrthogonalFilled(tip.X, tip.Y) != 1 {
				continue
			}
			cells, short := a.walkStub(tip)
			if !short {
				continue
			}
			for _, c := range cells {
				a.g.Set(c.X, c.Y, grid.TileEmpty)
			}
			trimmed += len(cells)
		}
		removed += trimmed
		if trimmed == 0 {
			break
		}
	}
	return removed
}

// walkStub follows a stub from its tip toward its anchor (junction or
// region). It reports the stub cells and whether the stub is below the
// keep threshold; walking stops early once the stub proves long enough.
func (a *deadEndAnalyzer) walkStub(tip grid.Point) ([]grid.Point, bool) {
	cells := make([]grid.Point, 0, minStubLength)
	prev := grid.Point{X: -1, Y: -1}
	cur := tip

	for {
		cells = append(cells, cur)
		if len(cells) >= minStubLength {
			return nil, false
		}

		next, ok := a.soleForward(cur, prev)
		if !ok {
			return cells, true // isolated spur, no anchor
		}
		if a.g.At(next.X, next.Y) != grid.TilePath {
			return cells, true // anchored on a region footprint
		}
		if a.g.OrthogonalFilled(next.X, next.Y) > 2 {
			return cells, true // anchored on a junction
		}
		prev, cur = cur, next
	}
}

func (a *deadEndAnalyzer) soleForward(cur, prev grid.Point) (grid.Point, bool) {
	var next grid.Point
	count := 0
	for _, d := range grid.Orthogonal() {
		n := grid.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
		if n == prev || !a.g.FilledAt(n.X, n.Y) {
			continue
		}
		count++
		next = n
	}
	if count != 1 {
		return grid.Point{}, false
	}
	return next, true
}

// reconnect joins every component back to the main one: regions first
// (including edges the carver marked unroutable), then orphan path
// fragments. It does not report failures; the pipeline audits the final
// grid after the last repair pass, which is the state callers receive.
func (a *deadEndAnalyzer) reconnect() {
	if len(a.c.regions) == 0 {
		return
	}

	labels, count := a.g.Components()
	if count <= 1 {
		return
	}
	anchor := a.c.regions[0].Center
	main := labels[a.g.Index(anchor.X, anchor.Y)]

	for _, r := range a.c.regions {
		lbl := labels[a.g.Index(r.Center.X, r.Center.Y)]
		if lbl == main {
			continue
		}
		// Regions that cannot be routed directly get a second chance in
		// the orphan pass below.
		target := a.nearestMainRegion(r, labels, main)
		if target >= 0 && a.c.connect(r.Center, a.c.regions[target].Center, r.Index, target, 0) {
			labels, _ = a.g.Components()
			main = labels[a.g.Index(anchor.X, anchor.Y)]
		}
	}

	// Orphan path fragments with no region attached: pull them in too, or
	// leave them be when no route exists (they are harmless decoration).
	labels, _ = a.g.Components()
	main = labels[a.g.Index(anchor.X, anchor.Y)]
	attempted := make(map[int]bool)
	for y := 0; y < a.g.Height; y++ {
		for x := 0; x < a.g.Width; x++ {
			lbl := labels[a.g.Index(x, y)]
			if lbl == -1 || lbl == main || attempted[lbl] {
				continue
			}
			attempted[lbl] = true
			from := grid.Point{X: x, Y: y}
			if to, ok := a.nearestMainCell(from, labels, main); ok {
				if a.c.connect(from, to, allowAllRegions, allowAllRegions, 0) {
					labels, _ = a.g.Components()
					main = labels[a.g.Index(anchor.X, anchor.Y)]
				}
			}
		}
	}
}

func (a *deadEndAnalyzer) nearestMainRegion(r grid.Region, labels []int, main int) int {
	best := -1
	bestDist := 1 << 30
	for _, other := range a.c.regions {
		if other.Index == r.Index {
			continue
		}
		if labels[a.g.Index(other.Center.X, other.Center.Y)] != main {
			continue
		}
		if d := r.Center.DistSq(other.Center); d < bestDist {
			bestDist = d
			best = other.Index
		}
	}
	return best
}

func (a *deadEndAnalyzer) nearestMainCell(from grid.Point, labels []int, main int) (grid.Point, bool) {
	best := grid.Point{}
	bestDist := 1 << 30
	found := false
	for y := 0; y < a.g.Height; y++ {
		for x := 0; x < a.g.Width; x++ {
			if labels[a.g.Index(x, y)] != main {
				continue
			}
			p := grid.Point{X: x, Y: y}
			if d := from.DistSq(p); d < bestDist {
				bestDist = d
				best = p
				found = true
			}
		}
	}
	return best, found
}
