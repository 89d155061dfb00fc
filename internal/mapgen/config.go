package mapgen

import "fmt"

// Recommended parameter bounds from the generator contract. Values outside
// these ranges are rejected before any stage runs.
const (
	MinDimension = 10
	MaxDimension = 100
	MaxRegions   = 30
	MinSeparation = 1
	MaxSeparation = 10
)

// densityDivisor drives the implicit region count when RegionCount is
// unset: one region per this many cells, clamped to [3, MaxRegions].
const densityDivisor = 48

// Config is the full input of a generation run. A run is a pure function
// of this struct; two runs with equal configs (and SeedSet) produce
// bit-identical grids.
type Config struct {
	Width             int
	Height            int
	RegionCount       int // 0 selects the density-based default
	MinRegionDistance int
	Seed              int64
	SeedSet           bool // false draws a fresh seed per run
}

func (c Config) Validate() error {
	if c.Width < MinDimension || c.Width > MaxDimension {
		return &ConfigError{Field: "width", Message: fmt.Sprintf("must be in [%d,%d], got %d", MinDimension, MaxDimension, c.Width)}
	}
	if c.Height < MinDimension || c.Height > MaxDimension {
		return &ConfigError{Field: "height", Message: fmt.Sprintf("must be in [%d,%d], got %d", MinDimension, MaxDimension, c.Height)}
	}
	if c.RegionCount < 0 || c.RegionCount > MaxRegions {
		return &ConfigError{Field: "regionCount", Message: fmt.Sprintf("must be in [0,%d], got %d", MaxRegions, c.RegionCount)}
	}
	if c.MinRegionDistance < MinSeparation || c.MinRegionDistance > MaxSeparation {
		return &ConfigError{Field: "minRegionDistance", Message: fmt.Sprintf("must be in [%d,%d], got %d", MinSeparation, MaxSeparation, c.MinRegionDistance)}
	}
	return nil
}

// EffectiveRegionCount resolves the density default for RegionCount == 0.
func (c Config) EffectiveRegionCount() int {
	if c.RegionCount > 0 {
		return c.RegionCount
	}
	n := c.Width * c.Height / densityDivisor
	if n < 3 {
		n = 3
	}
	if n > MaxRegions {
		n = MaxRegions
	}
	return n
}
