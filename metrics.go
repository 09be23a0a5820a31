package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// searchMetrics counts search work in a registry private to one optimizer,
// so repeated runs in one process never collide.
type searchMetrics struct {
	registry    *prometheus.Registry
	placements  prometheus.Counter
	pruned      prometheus.Counter
	linkSubsets prometheus.Counter
	submissions *prometheus.CounterVec
	survivors   prometheus.Gauge
}

func newSearchMetrics() *searchMetrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &searchMetrics{
		registry: reg,
		placements: f.NewCounter(prometheus.CounterOpts{
			Namespace: "usi",
			Name:      "placements_total",
			Help:      "Shard placements evaluated.",
		}),
		pruned: f.NewCounter(prometheus.CounterOpts{
			Namespace: "usi",
			Name:      "placements_pruned_total",
			Help:      "Placements discarded for having no potential focus.",
		}),
		linkSubsets: f.NewCounter(prometheus.CounterOpts{
			Namespace: "usi",
			Name:      "link_subsets_total",
			Help:      "Link subsets tested across all placements.",
		}),
		submissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "usi",
			Name:      "candidates_total",
			Help:      "Candidates offered to the dominance tracker, by outcome.",
		}, []string{"result"}),
		survivors: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "usi",
			Name:      "survivors",
			Help:      "Non-dominated focus-sets after the last search.",
		}),
	}
}

// WriteTextfile dumps the registry for a node-exporter textfile collector.
func (m *searchMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
