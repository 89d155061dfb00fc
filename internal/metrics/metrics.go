package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GenerationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "levelgen_generations_total",
		Help: "Total number of completed generation runs",
	})
	GenerationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "levelgen_generation_failures_total",
		Help: "Total generation runs rejected (config or placement capacity)",
	})
	GenerationDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "levelgen_generation_duration_ms",
		Help:    "Generation run duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	WarningsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "levelgen_warnings_total",
		Help: "Non-fatal generation warnings by kind",
	}, []string{"kind"})
	UnroutableEdgesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "levelgen_unroutable_edges_total",
		Help: "Edges the carver could not route at carve time",
	})
	PathCellsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "levelgen_path_cells_total",
		Help: "Corridor cells present in finished grids",
	})
	StreamClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "levelgen_stream_clients",
		Help: "Currently connected websocket viewers",
	})
)

func init() {
	prometheus.MustRegister(GenerationsTotal)
	prometheus.MustRegister(GenerationFailuresTotal)
	prometheus.MustRegister(GenerationDurationMs)
	prometheus.MustRegister(WarningsTotal)
	prometheus.MustRegister(UnroutableEdgesTotal)
	prometheus.MustRegister(PathCellsTotal)
	prometheus.MustRegister(StreamClients)
}

// Handler exposes the registered collectors for scraping; mounted on
// /metrics by the server entrypoint.
func Handler() http.Handler { return promhttp.Handler() }
