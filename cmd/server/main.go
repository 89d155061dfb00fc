package main

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
	"github.com/Ko-stant/levelgen-engine/internal/mapgen"
	"github.com/Ko-stant/levelgen-engine/internal/metrics"
	"github.com/Ko-stant/levelgen-engine/internal/protocol"
	"github.com/Ko-stant/levelgen-engine/internal/ws"
)

// serverState guards the most recent generation result. Each regeneration
// runs on its own fresh grid; only the published snapshot is shared.
type serverState struct {
	mu       sync.Mutex
	result   *mapgen.Result
	snapshot protocol.GridSnapshot
	sequence uint64
}

func (s *serverState) publish(res *mapgen.Result) protocol.GridSnapshot {
	snap := res.Snapshot("levelgen-dev")
	s.mu.Lock()
	s.result = res
	s.snapshot = snap
	s.mu.Unlock()
	return snap
}

func (s *serverState) current() protocol.GridSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *serverState) nextSequence() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequence++
	return s.sequence
}

// runGeneration wraps mapgen.Generate with metrics accounting.
func runGeneration(cfg mapgen.Config) (*mapgen.Result, error) {
	start := time.Now()
	res, err := mapgen.Generate(cfg)
	if err != nil {
		metrics.GenerationFailuresTotal.Inc()
		return nil, err
	}
	metrics.GenerationsTotal.Inc()
	metrics.GenerationDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	metrics.UnroutableEdgesTotal.Add(float64(res.Diagnostics.UnroutableEdges))
	metrics.PathCellsTotal.Add(float64(res.Grid.Count(grid.TilePath)))
	for _, w := range res.Diagnostics.Warnings {
		metrics.WarningsTotal.WithLabelValues(string(w.Kind)).Inc()
	}
	return res, nil
}

func main() {
	cfg := loadConfig()

	res, err := runGeneration(cfg.Defaults)
	if err != nil {
		log.Fatalf("initial generation failed: %v", err)
	}
	state := &serverState{}
	state.publish(res)
	log.Printf("generated initial %dx%d grid, seed=%d, %d regions, %d warnings",
		res.Grid.Width, res.Grid.Height, res.Seed, len(res.Regions), len(res.Diagnostics.Warnings))

	hub := ws.NewHub()

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleIndex(state))
	mux.HandleFunc("/api/grid", handleGrid(state))
	mux.HandleFunc("/api/generate", handleGenerate(state, hub, cfg))
	mux.HandleFunc("/stream", handleStream(state, hub, cfg))
	mux.Handle("/metrics", metrics.Handler())

	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
