package network

import "github.com/prometheus/client_golang/prometheus"

// metrics groups the engine's Prometheus collectors.
type metrics struct {
	builds        prometheus.Counter
	buildFailures prometheus.Counter
	nodes         prometheus.Gauge
	edges         prometheus.Gauge
	collapsed     prometheus.Counter
	reachQueries  prometheus.Counter
	mismatches    *prometheus.CounterVec
}

// newMetrics creates the collectors and registers them on reg when non-nil.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lodgenet_builds_total",
			Help: "Total number of network builds",
		}),
		buildFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lodgenet_build_failures_total",
			Help: "Total number of builds aborted by catalog errors",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lodgenet_graph_nodes",
			Help: "Lodges present in the current network",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lodgenet_graph_edges",
			Help: "Trail edges present in the current network",
		}),
		collapsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lodgenet_parallel_connections_collapsed_total",
			Help: "Connections dropped because their lodge pair already had an edge",
		}),
		reachQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lodgenet_reachability_queries_total",
			Help: "Total number of reachability queries against a present lodge",
		}),
		mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lodgenet_reachability_mismatch_total",
			Help: "Reachability strategy pairs that disagreed",
		}, []string{"pair"}),
	}
	if reg != nil {
		reg.MustRegister(m.builds, m.buildFailures, m.nodes, m.edges, m.collapsed, m.reachQueries, m.mismatches)
	}

	return m
}
