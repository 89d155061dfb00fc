// Package mapgen generates playable tile levels: spatially separated
// regions joined by single-width corridors, repaired and classified for
// rendering. A generation run is a pure function of its Config; all
// randomness flows through one seeded source.
package mapgen

import (
	"math/rand"
	"time"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
)

// Result is the finished output of one run. Grid is handed over as a
// snapshot the pipeline will never touch again.
type Result struct {
	Grid        *grid.Grid
	Regions     []grid.Region
	Config      Config
	Seed        int64
	Diagnostics Diagnostics
}

// Generate runs the full pipeline: place regions, triangulate, schedule,
// carve, repair, analyze dead ends, repair again, classify. Stages run
// strictly in that order; the only error cases are invalid config and
// placement capacity, everything else degrades to warnings in the
// diagnostics record.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := grid.New(cfg.Width, cfg.Height)
	diag := Diagnostics{}

	regions, err := placeRegions(g, cfg, rng)
	if err != nil {
		return nil, err
	}

	edges := scheduleEdges(connectingEdges(regions))

	c := newCarver(g, regions, rng)
	unroutable := c.carveAll(edges)
	diag.UnroutableEdges = len(unroutable)

	recordRepair(&diag, repairDoubleWide(g))

	analyzer := &deadEndAnalyzer{g: g, c: c}
	analyzer.run()

	// Extension and bridging can reintroduce 2x2 blocks.
	recordRepair(&diag, repairDoubleWide(g))

	auditConnectivity(g, regions, &diag)

	classifyOuterTiles(g)

	return &Result{
		Grid:        g.Clone(),
		Regions:     regions,
		Config:      cfg,
		Seed:        seed,
		Diagnostics: diag,
	}, nil
}

// auditConnectivity records a warning for every region left outside the
// main component. It runs after the last mutating stage, so the warnings
// describe the grid the caller actually receives: a reconnect failure that
// a later pass happens to heal stays silent, and damage done by a later
// pass is reported.
func auditConnectivity(g *grid.Grid, regions []grid.Region, diag *Diagnostics) {
	if len(regions) == 0 {
		return
	}
	labels, _ := g.Components()
	main := labels[g.Index(regions[0].Center.X, regions[0].Center.Y)]
	for _, r := range regions {
		if labels[g.Index(r.Center.X, r.Center.Y)] != main {
			diag.warnf(WarningUnreachableRegion, "region %d unreachable from main component", r.Index)
		}
	}
}

func recordRepair(diag *Diagnostics, out RepairOutcome) {
	diag.RepairPasses = append(diag.RepairPasses, out)
	if out.Reason == CapReached {
		diag.warnf(WarningPartialCleanup, "structural repair hit the %d-pass cap with %d cells demoted", repairMaxPasses, out.Demoted)
	}
}
