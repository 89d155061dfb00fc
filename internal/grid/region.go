package grid

// Region is a placed room: a stable index, its center, and the footprint
// cells painted around the center. Regions never move after placement.
type Region struct {
	Index  int
	Center Point
	Cells  []Point
}

// Edge connects two regions by index, with the Euclidean center distance
// cached for scheduling. Index pairs are normalized so A < B.
type Edge struct {
	A      int
	B      int
	Length float64
}

// Components labels the 4-connected components of filled tiles. The result
// holds -1 for unfilled cells and a component id for the rest, plus the
// number of components found. Scan order makes the labeling deterministic.
func (g *Grid) Components() ([]int, int) {
	labels := make([]int, len(g.Tiles))
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	qx := make([]int, 0, len(g.Tiles))
	qy := make([]int, 0, len(g.Tiles))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			if labels[idx] != -1 || !g.Tiles[idx].Filled() {
				continue
			}
			labels[idx] = next
			qx = qx[:0]
			qy = qy[:0]
			qx = append(qx, x)
			qy = append(qy, y)

			for len(qx) > 0 {
				cx := qx[0]
				cy := qy[0]
				qx = qx[1:]
				qy = qy[1:]

				for _, d := range orthogonal {
					nx := cx + d.X
					ny := cy + d.Y
					if !g.InBounds(nx, ny) {
						continue
					}
					nidx := g.Index(nx, ny)
					if labels[nidx] == -1 && g.Tiles[nidx].Filled() {
						labels[nidx] = next
						qx = append(qx, nx)
						qy = append(qy, ny)
					}
				}
			}
			next++
		}
	}

	return labels, next
}
