package mapgen

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
)

func TestPlaceRegionsRespectsSeparation(t *testing.T) {
	cfg := Config{Width: 50, Height: 50, RegionCount: 15, MinRegionDistance: 4}
	g := grid.New(cfg.Width, cfg.Height)
	rng := rand.New(rand.NewSource(1))

	regions, err := placeRegions(g, cfg, rng)
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	if len(regions) != 15 {
		t.Fatalf("expected 15 regions, got %d", len(regions))
	}

	minSq := cfg.MinRegionDistance * cfg.MinRegionDistance
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			if d := regions[i].Center.DistSq(regions[j].Center); d < minSq {
				t.Fatalf("regions %d and %d too close: distSq=%d", i, j, d)
			}
		}
	}
}

func TestPlaceRegionsPaintsFootprints(t *testing.T) {
	cfg := Config{Width: 30, Height: 30, RegionCount: 4, MinRegionDistance: 8}
	g := grid.New(cfg.Width, cfg.Height)
	rng := rand.New(rand.NewSource(2))

	regions, err := placeRegions(g, cfg, rng)
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	for _, r := range regions {
		if g.At(r.Center.X, r.Center.Y) != grid.TileRegion {
			t.Fatalf("region %d center not painted", r.Index)
		}
		if len(r.Cells) != 9 {
			t.Fatalf("region %d footprint has %d cells, expected 9", r.Index, len(r.Cells))
		}
	}
}

func TestPlaceRegionsInsufficientSpace(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, RegionCount: 30, MinRegionDistance: 10}
	g := grid.New(cfg.Width, cfg.Height)
	rng := rand.New(rand.NewSource(3))

	_, err := placeRegions(g, cfg, rng)
	var ise *InsufficientSpaceError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InsufficientSpaceError, got %v", err)
	}
	if ise.Requested != 30 || ise.Placed >= 30 {
		t.Fatalf("unexpected shortfall report: %+v", ise)
	}
}

func TestEffectiveRegionCountDefaults(t *testing.T) {
	cases := []struct {
		w, h, explicit, want int
	}{
		{50, 50, 0, 30},  // density default capped
		{10, 10, 0, 3},   // density default floored
		{48, 10, 0, 10},  // straight density
		{50, 50, 12, 12}, // explicit wins
	}
	for _, tc := range cases {
		cfg := Config{Width: tc.w, Height: tc.h, RegionCount: tc.explicit}
		if got := cfg.EffectiveRegionCount(); got != tc.want {
			t.Fatalf("EffectiveRegionCount(%dx%d, %d) = %d, want %d", tc.w, tc.h, tc.explicit, got, tc.want)
		}
	}
}
