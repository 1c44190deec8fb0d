// Package metrics records BISKO runs as Prometheus metrics and writes them
// in the node exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rshade/bisko/internal/engine"
)

const (
	metricPrefix = "bisko_"

	resultSuccess = "success"
	resultError   = "error"

	cacheHit  = "hit"
	cacheMiss = "miss"
)

// Metrics bundles the collectors of one CLI invocation. Each Metrics owns
// its registry.
type Metrics struct {
	registry *prometheus.Registry

	RunsTotal    *prometheus.CounterVec
	RunDuration  prometheus.Histogram
	SectorTotals *prometheus.GaugeVec
	Quality      *prometheus.GaugeVec
	CacheLookups *prometheus.CounterVec
}

// New constructs and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "runs_total",
				Help: "Total BISKO computations by result",
			},
			[]string{"result"},
		),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricPrefix + "run_duration_seconds",
			Help:    "BISKO computation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		SectorTotals: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "sector_total",
				Help: "Sector totals by region and quantity (energy, co2e_cb, co2e_pb)",
			},
			[]string{"region", "sector", "quantity"},
		),
		Quality: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "quality",
				Help: "BISKO quality indicator by region",
			},
			[]string{"region"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cache_lookups_total",
				Help: "Result cache lookups by outcome",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(
		m.RunsTotal,
		m.RunDuration,
		m.SectorTotals,
		m.Quality,
		m.CacheLookups,
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRun records one computation. res may be nil when err is set.
func (m *Metrics) ObserveRun(res *engine.Result, err error, duration time.Duration) {
	m.RunDuration.Observe(duration.Seconds())
	if err != nil || res == nil || res.Bisko == nil {
		m.RunsTotal.WithLabelValues(resultError).Inc()
		return
	}
	m.RunsTotal.WithLabelValues(resultSuccess).Inc()

	for _, row := range engine.Rows(res.Bisko) {
		if !row.IsTotal() {
			continue
		}
		if row.Energy != nil {
			m.SectorTotals.WithLabelValues(res.Region, row.Sector, "energy").Set(*row.Energy)
		}
		if row.CO2eCb != nil {
			m.SectorTotals.WithLabelValues(res.Region, row.Sector, "co2e_cb").Set(*row.CO2eCb)
		}
		m.SectorTotals.WithLabelValues(res.Region, row.Sector, "co2e_pb").Set(row.CO2ePb)
	}
	m.Quality.WithLabelValues(res.Region).Set(res.Bisko.Quality)
}

// ObserveCache records a cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if hit {
		m.CacheLookups.WithLabelValues(cacheHit).Inc()
		return
	}
	m.CacheLookups.WithLabelValues(cacheMiss).Inc()
}

// WriteTextfile writes every collected metric to path, replacing the file
// atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
