package mapgen

import (
	"testing"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
)

func regionsAt(centers ...grid.Point) []grid.Region {
	regions := make([]grid.Region, len(centers))
	for i, c := range centers {
		regions[i] = grid.Region{Index: i, Center: c}
	}
	return regions
}

func TestConnectingEdgesDeduplicatesSharedEdges(t *testing.T) {
	// A square triangulates into two triangles sharing one diagonal:
	// 4 outer edges + 1 diagonal, never 6.
	regions := regionsAt(
		grid.Point{X: 2, Y: 2},
		grid.Point{X: 10, Y: 2},
		grid.Point{X: 10, Y: 10},
		grid.Point{X: 2, Y: 10},
	)

	edges := connectingEdges(regions)
	if len(edges) != 5 {
		t.Fatalf("expected 5 unique edges for a square, got %d", len(edges))
	}

	seen := make(map[[2]int]bool)
	for _, e := range edges {
		if e.A >= e.B {
			t.Fatalf("edge endpoints not normalized: %d-%d", e.A, e.B)
		}
		key := [2]int{e.A, e.B}
		if seen[key] {
			t.Fatalf("duplicate edge %d-%d", e.A, e.B)
		}
		seen[key] = true
	}
}

func TestConnectingEdgesTwoRegions(t *testing.T) {
	regions := regionsAt(grid.Point{X: 3, Y: 3}, grid.Point{X: 12, Y: 3})

	edges := connectingEdges(regions)
	if len(edges) != 1 {
		t.Fatalf("expected single edge, got %d", len(edges))
	}
	if edges[0].A != 0 || edges[0].B != 1 {
		t.Fatalf("unexpected endpoints: %d-%d", edges[0].A, edges[0].B)
	}
	if edges[0].Length != 9 {
		t.Fatalf("expected length 9, got %v", edges[0].Length)
	}
}

func TestConnectingEdgesCollinearFallsBackToCompleteGraph(t *testing.T) {
	regions := regionsAt(
		grid.Point{X: 2, Y: 5},
		grid.Point{X: 8, Y: 5},
		grid.Point{X: 14, Y: 5},
	)

	edges := connectingEdges(regions)
	if len(edges) != 3 {
		t.Fatalf("expected complete graph of 3 edges, got %d", len(edges))
	}
}

func TestScheduleEdgesShortestFirstStable(t *testing.T) {
	edges := []grid.Edge{
		{A: 0, B: 1, Length: 8},
		{A: 1, B: 2, Length: 3},
		{A: 0, B: 2, Length: 8},
		{A: 2, B: 3, Length: 5},
	}

	scheduled := scheduleEdges(edges)

	wantOrder := [][2]int{{1, 2}, {2, 3}, {0, 1}, {0, 2}}
	for i, w := range wantOrder {
		if scheduled[i].A != w[0] || scheduled[i].B != w[1] {
			t.Fatalf("position %d: got %d-%d, want %d-%d", i, scheduled[i].A, scheduled[i].B, w[0], w[1])
		}
	}

	// Input order untouched.
	if edges[0].A != 0 || edges[0].B != 1 {
		t.Fatalf("scheduleEdges mutated its input")
	}
}
