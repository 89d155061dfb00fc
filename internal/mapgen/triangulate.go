package mapgen

import (
	"sort"

	"github.com/fogleman/delaunay"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
)

// connectingEdges derives the region graph from a Delaunay triangulation
// over the centers. Each mesh edge appears once regardless of how many
// triangles share it; points are referenced by region index only, so the
// mesh needs no linked structure. Fewer than three regions, or a
// degenerate (collinear) point set, yield the trivial complete graph.
func connectingEdges(regions []grid.Region) []grid.Edge {
	if len(regions) < 3 {
		return completeGraph(regions)
	}

	points := make([]delaunay.Point, len(regions))
	for i, r := range regions {
		points[i] = delaunay.Point{X: float64(r.Center.X), Y: float64(r.Center.Y)}
	}

	tri, err := delaunay.Triangulate(points)
	if err != nil || len(tri.Triangles) == 0 {
		// Collinear centers produce no triangles; fall back to all pairs.
		return completeGraph(regions)
	}

	seen := make(map[[2]int]struct{}, len(tri.Triangles))
	edges := make([]grid.Edge, 0, len(tri.Triangles))
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		a := tri.Triangles[i]
		b := tri.Triangles[i+1]
		c := tri.Triangles[i+2]
		for _, pair := range [3][2]int{{a, b}, {b, c}, {c, a}} {
			lo, hi := pair[0], pair[1]
			if lo > hi {
				lo, hi = hi, lo
			}
			key := [2]int{lo, hi}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, grid.Edge{
				A:      lo,
				B:      hi,
				Length: regions[lo].Center.DistanceTo(regions[hi].Center),
			})
		}
	}
	return edges
}

func completeGraph(regions []grid.Region) []grid.Edge {
	var edges []grid.Edge
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			edges = append(edges, grid.Edge{
				A:      i,
				B:      j,
				Length: regions[i].Center.DistanceTo(regions[j].Center),
			})
		}
	}
	return edges
}

// scheduleEdges orders edges shortest-first so local corridors are carved
// before long routes have to work around them. The sort is stable: equal
// lengths keep their discovery order, which keeps output deterministic.
func scheduleEdges(edges []grid.Edge) []grid.Edge {
	out := make([]grid.Edge, len(edges))
	copy(out, edges)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Length < out[j].Length
	})
	return out
}
