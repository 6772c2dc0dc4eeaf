package main

import "github.com/prometheus/client_golang/prometheus"

// metrics wraps the optional Prometheus instrumentation recorded around
// each directive's solve call in harness (-file) mode; -dir batch solves
// are not recorded. It is instrumentation around the core solver, never
// inside it: sokoban itself never imports prometheus.
type metrics struct {
	searches       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	nodesGenerated *prometheus.CounterVec
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sokoban",
			Name:      "searches_total",
			Help:      "Number of solver invocations, labeled by driver and outcome.",
		}, []string{"driver", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sokoban",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock time spent in a single solve call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"driver"}),
		nodesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sokoban",
			Name:      "nodes_generated_total",
			Help:      "States expanded across all solve calls, labeled by driver.",
		}, []string{"driver"}),
	}
	reg.MustRegister(m.searches, m.duration, m.nodesGenerated)
	return m
}

func (m *metrics) observe(driver, outcome string, seconds float64, iterations int64) {
	m.searches.WithLabelValues(driver, outcome).Inc()
	m.duration.WithLabelValues(driver).Observe(seconds)
	m.nodesGenerated.WithLabelValues(driver).Add(float64(iterations))
}
