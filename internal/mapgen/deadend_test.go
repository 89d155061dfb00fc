package mapgen

import (
	"math/rand"
	"testing"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
)

func makeRegion(g *grid.Grid, idx, cx, cy int) grid.Region {
	r := grid.Region{Index: idx, Center: grid.Point{X: cx, Y: cy}}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			g.Set(cx+dx, cy+dy, grid.TileRegion)
			r.Cells = append(r.Cells, grid.Point{X: cx + dx, Y: cy + dy})
		}
	}
	return r
}

func newAnalyzer(g *grid.Grid, regions []grid.Region) *deadEndAnalyzer {
	rng := rand.New(rand.NewSource(7))
	return &deadEndAnalyzer{g: g, c: newCarver(g, regions, rng)}
}

func TestBridgeCornersJoinsDiagonalContact(t *testing.T) {
	g := grid.New(8, 8)
	g.Set(2, 2, grid.TilePath)
	g.Set(3, 3, grid.TilePath)

	a := newAnalyzer(g, nil)
	if inserted := a.bridgeCorners(); inserted != 1 {
		t.Fatalf("expected 1 connector, got %d", inserted)
	}

	_, count := g.Components()
	if count != 1 {
		t.Fatalf("diagonal cells still disconnected: %d components", count)
	}
}

func TestPruneRemovesShortSpur(t *testing.T) {
	g := grid.New(8, 5)
	g.Set(0, 2, grid.TileRegion)
	g.Set(7, 2, grid.TileRegion)
	for x := 1; x <= 6; x++ {
		g.Set(x, 2, grid.TilePath)
	}
	g.Set(3, 3, grid.TilePath) // one-cell spur off the corridor

	a := newAnalyzer(g, nil)
	if removed := a.prune(); removed != 1 {
		t.Fatalf("expected 1 cell pruned, got %d", removed)
	}
	if g.At(3, 3) != grid.TileEmpty {
		t.Fatalf("spur survived pruning")
	}
	for x := 1; x <= 6; x++ {
		if g.At(x, 2) != grid.TilePath {
			t.Fatalf("corridor cell (%d,2) was pruned", x)
		}
	}
}

func TestPruneKeepsLongStub(t *testing.T) {
	g := grid.New(10, 8)
	g.Set(2, 2, grid.TileRegion)
	for x := 3; x <= 7; x++ {
		g.Set(x, 2, grid.TilePath)
	}

	a := newAnalyzer(g, nil)
	if removed := a.prune(); removed != 0 {
		t.Fatalf("long stub should be kept, pruned %d cells", removed)
	}
}

func TestExtendJoinsNearbySegments(t *testing.T) {
	g := grid.New(12, 6)
	g.Set(2, 2, grid.TilePath)
	g.Set(3, 2, grid.TilePath)
	g.Set(6, 2, grid.TilePath)
	g.Set(7, 2, grid.TilePath)

	a := newAnalyzer(g, nil)
	a.extend()

	_, count := g.Components()
	if count != 1 {
		t.Fatalf("segments within reach should merge, got %d components", count)
	}
}

func TestReconnectJoinsStrandedRegion(t *testing.T) {
	g := grid.New(16, 8)
	regions := []grid.Region{
		makeRegion(g, 0, 2, 3),
		makeRegion(g, 1, 12, 3),
	}

	a := newAnalyzer(g, regions)
	a.reconnect()

	labels, count := g.Components()
	if count != 1 {
		t.Fatalf("expected single component after reconnect, got %d", count)
	}
	if labels[g.Index(2, 3)] != labels[g.Index(12, 3)] {
		t.Fatalf("region centers remain in different components")
	}

	var diag Diagnostics
	auditConnectivity(g, regions, &diag)
	if len(diag.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", diag.Warnings)
	}
}

func TestReconnectRoutesAroundBlockingFootprint(t *testing.T) {
	g := grid.New(16, 10)
	regions := []grid.Region{
		makeRegion(g, 0, 2, 5),
		makeRegion(g, 1, 12, 5),
	}
	// Wall between the two regions: a third region's footprint spanning
	// the full height. The direct region-to-region route is inadmissible;
	// the orphan pass still pulls region 1 in across the wall cells.
	blocker := grid.Region{Index: 2}
	for y := 0; y < g.Height; y++ {
		g.Set(8, y, grid.TileRegion)
		blocker.Cells = append(blocker.Cells, grid.Point{X: 8, Y: y})
	}
	blocker.Center = grid.Point{X: 8, Y: 0}
	regions = append(regions, blocker)

	a := newAnalyzer(g, regions)
	a.reconnect()

	labels, _ := g.Components()
	if labels[g.Index(2, 5)] != labels[g.Index(12, 5)] {
		t.Fatalf("region 1 not reconnected across the blocking footprint")
	}

	var diag Diagnostics
	auditConnectivity(g, regions, &diag)
	if diag.HasWarning(WarningUnreachableRegion) {
		t.Fatalf("connected grid must not carry warnings: %v", diag.Warnings)
	}
}

func TestAuditReportsSeveredRegion(t *testing.T) {
	g := grid.New(16, 8)
	regions := []grid.Region{
		makeRegion(g, 0, 2, 3),
		makeRegion(g, 1, 12, 3),
	}

	var diag Diagnostics
	auditConnectivity(g, regions, &diag)

	if !diag.HasWarning(WarningUnreachableRegion) {
		t.Fatalf("expected unreachable-region warning, got %v", diag.Warnings)
	}
	if len(diag.Warnings) != 1 {
		t.Fatalf("expected one warning for the one severed region, got %v", diag.Warnings)
	}
}
