package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gsingh93/gdl-parser/pkg/config"
)

// Collector manages all Prometheus metrics for the GDL toolkit: parser
// activity, catalog size, watcher reloads, and sweep outcomes.
//
// Metrics (under namespace_subsystem_):
//   - parses_total: parse attempts by status ("success", "error")
//   - parse_duration_seconds: parse duration histogram
//   - clauses_parsed_total: total clauses across successful parses
//   - catalog_entries: current number of catalog entries
//   - watcher_reloads_total: file-change reloads triggered in watch mode
//   - sweep_runs_total: completed catalog sweeps
//   - sweep_pruned_total: entries removed by sweeps
//   - sweep_failures_total: entries that failed round-trip verification
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	parsesTotal        *prometheus.CounterVec
	parseDuration      prometheus.Histogram
	clausesParsedTotal prometheus.Counter
	catalogEntries     prometheus.Gauge
	watcherReloads     prometheus.Counter
	sweepRuns          prometheus.Counter
	sweepPruned        prometheus.Counter
	sweepFailures      prometheus.Counter
}

// NewCollector creates a metrics collector registered against the given
// Prometheus registry. If registry is nil, a fresh registry is created.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = config.DefaultMetricsNamespace
	}
	subsystem := cfg.Subsystem
	if subsystem == "" {
		subsystem = config.DefaultMetricsSubsystem
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		parsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "parses_total",
				Help:      "Total number of parse attempts by status",
			},
			[]string{"status"},
		),

		parseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "parse_duration_seconds",
				Help:      "Duration of parse operations in seconds",
				// Game descriptions range from a handful of clauses to tens
				// of thousands; parses are fast.
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
		),

		clausesParsedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "clauses_parsed_total",
				Help:      "Total number of clauses across successful parses",
			},
		),

		catalogEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_entries",
				Help:      "Current number of entries in the description catalog",
			},
		),

		watcherReloads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "watcher_reloads_total",
				Help:      "Total number of file-change reloads in watch mode",
			},
		),

		sweepRuns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sweep_runs_total",
				Help:      "Total number of completed catalog sweeps",
			},
		),

		sweepPruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sweep_pruned_total",
				Help:      "Total number of catalog entries pruned by sweeps",
			},
		),

		sweepFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sweep_failures_total",
				Help:      "Total number of entries that failed round-trip verification",
			},
		),
	}

	registry.MustRegister(
		c.parsesTotal,
		c.parseDuration,
		c.clausesParsedTotal,
		c.catalogEntries,
		c.watcherReloads,
		c.sweepRuns,
		c.sweepPruned,
		c.sweepFailures,
	)

	return c
}

// RecordParse records a completed parse attempt.
func (c *Collector) RecordParse(status string, duration time.Duration, clauses int) {
	if !c.config.Enabled {
		return
	}
	c.parsesTotal.WithLabelValues(status).Inc()
	c.parseDuration.Observe(duration.Seconds())
	if clauses > 0 {
		c.clausesParsedTotal.Add(float64(clauses))
	}
}

// SetCatalogEntries records the current catalog size.
func (c *Collector) SetCatalogEntries(n int) {
	if !c.config.Enabled {
		return
	}
	c.catalogEntries.Set(float64(n))
}

// RecordWatcherReload records a file-change reload.
func (c *Collector) RecordWatcherReload() {
	if !c.config.Enabled {
		return
	}
	c.watcherReloads.Inc()
}

// RecordSweep records a completed sweep and its outcomes.
func (c *Collector) RecordSweep(pruned, failures int) {
	if !c.config.Enabled {
		return
	}
	c.sweepRuns.Inc()
	c.sweepPruned.Add(float64(pruned))
	c.sweepFailures.Add(float64(failures))
}

// Registry returns the Prometheus registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
