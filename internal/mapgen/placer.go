package mapgen

import (
	"math/rand"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
)

// attemptsPerRegion bounds rejection sampling. Exhausting the budget is a
// caller-visible InsufficientSpaceError, never silently degraded output.
const attemptsPerRegion = 64

// footprintRadius gives each region a 3x3 footprint around its center,
// clipped to the grid bounds.
const footprintRadius = 1

// placeRegions samples region centers by rejection: draw a candidate,
// accept it if it keeps Euclidean distance >= MinRegionDistance to every
// accepted center, resample otherwise. Centers stay one cell off the
// border so footprints normally fit whole.
func placeRegions(g *grid.Grid, cfg Config, rng *rand.Rand) ([]grid.Region, error) {
	count := cfg.EffectiveRegionCount()
	minDistSq := cfg.MinRegionDistance * cfg.MinRegionDistance

	centers := make([]grid.Point, 0, count)
	budget := count * attemptsPerRegion

	for len(centers) < count && budget > 0 {
		budget--
		p := grid.Point{
			X: 1 + rng.Intn(g.Width-2),
			Y: 1 + rng.Intn(g.Height-2),
		}
		ok := true
		for _, c := range centers {
			if c.DistSq(p) < minDistSq {
				ok = false
				break
			}
		}
		if ok {
			centers = append(centers, p)
		}
	}

	if len(centers) < count {
		return nil, &InsufficientSpaceError{Requested: count, Placed: len(centers)}
	}

	regions := make([]grid.Region, 0, count)
	for i, c := range centers {
		r := grid.Region{Index: i, Center: c}
		for dy := -footprintRadius; dy <= footprintRadius; dy++ {
			for dx := -footprintRadius; dx <= footprintRadius; dx++ {
				x := c.X + dx
				y := c.Y + dy
				if !g.InBounds(x, y) {
					continue
				}
				g.Set(x, y, grid.TileRegion)
				r.Cells = append(r.Cells, grid.Point{X: x, Y: y})
			}
		}
		regions = append(regions, r)
	}

	return regions, nil
}
