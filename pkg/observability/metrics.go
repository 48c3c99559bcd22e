package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsHooks records pipeline events as Prometheus metrics on a private
// registry. A CLI run has no scrape endpoint, so the registry is meant to be
// flushed with WriteTextfile for the node_exporter textfile collector.
type MetricsHooks struct {
	registry *prometheus.Registry

	worlds        *prometheus.CounterVec
	failures      *prometheus.CounterVec
	edges         *prometheus.CounterVec
	generateTime  *prometheus.HistogramVec
	artifacts     *prometheus.CounterVec
	writeTime     *prometheus.HistogramVec
	lastSuccessTS prometheus.Gauge
}

// NewMetricsHooks creates hooks backed by a fresh registry.
func NewMetricsHooks() *MetricsHooks {
	m := &MetricsHooks{
		registry: prometheus.NewRegistry(),
		worlds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worldgen_worlds_total",
				Help: "Worlds whose generation started, by kind",
			},
			[]string{"kind"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worldgen_generate_errors_total",
				Help: "Failed world generations, by world",
			},
			[]string{"world"},
		),
		edges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worldgen_edges_total",
				Help: "Edges generated, by world",
			},
			[]string{"world"},
		),
		generateTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "worldgen_generate_duration_seconds",
				Help:    "World generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"world"},
		),
		artifacts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worldgen_artifacts_total",
				Help: "Artifact writes, by format and result",
			},
			[]string{"format", "result"},
		),
		writeTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "worldgen_write_duration_seconds",
				Help:    "Artifact write duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		),
		lastSuccessTS: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "worldgen_last_success_timestamp_seconds",
				Help: "Unix time of the last successfully written artifact",
			},
		),
	}
	m.registry.MustRegister(m.worlds, m.failures, m.edges, m.generateTime, m.artifacts, m.writeTime, m.lastSuccessTS)
	return m
}

// Registry exposes the underlying registry, e.g. for tests or an HTTP handler.
func (m *MetricsHooks) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (m *MetricsHooks) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

var _ PipelineHooks = (*MetricsHooks)(nil)

func (m *MetricsHooks) OnGenerateStart(_ context.Context, _, kind string, _ int) {
	m.worlds.WithLabelValues(kind).Inc()
}

func (m *MetricsHooks) OnGenerateComplete(_ context.Context, world string, edges int, d time.Duration, err error) {
	if err != nil {
		m.failures.WithLabelValues(world).Inc()
		return
	}
	m.edges.WithLabelValues(world).Add(float64(edges))
	m.generateTime.WithLabelValues(world).Observe(d.Seconds())
}

func (m *MetricsHooks) OnWriteStart(context.Context, string, string, string) {}

func (m *MetricsHooks) OnWriteComplete(_ context.Context, _, format, _ string, d time.Duration, err error) {
	if err != nil {
		m.artifacts.WithLabelValues(format, "error").Inc()
		return
	}
	m.artifacts.WithLabelValues(format, "ok").Inc()
	m.writeTime.WithLabelValues(format).Observe(d.Seconds())
	m.lastSuccessTS.SetToCurrentTime()
}
