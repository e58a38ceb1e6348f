package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"net/http"
	"strings"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/benz9527/xlist/lib/infra"
)

type MetricsExporterKind string

const (
	NoneMetrics       MetricsExporterKind = "none"
	ConsoleMetrics    MetricsExporterKind = "console"
	PrometheusMetrics MetricsExporterKind = "prometheus"
)

func ParseMetricsExporterKind(kind string) (MetricsExporterKind, error) {
	switch k := MetricsExporterKind(strings.ToLower(strings.TrimSpace(kind))); k {
	case "":
		return NoneMetrics, nil
	case NoneMetrics, ConsoleMetrics, PrometheusMetrics:
		return k, nil
	default:
	}
	return NoneMetrics, infra.NewErrorStack("unknown metrics exporter kind " + kind)
}

// MetricsExporter is the installed global meter provider.
// Handler is only present for the pull based exporters.
type MetricsExporter struct {
	Shutdown func(ctx context.Context) error
	Handler  http.Handler
}

func noopShutdown(context.Context) error { return nil }

// NewMetricsExporter installs the meter provider of the kind as the
// global one. The none kind keeps the global provider untouched.
func NewMetricsExporter(kind MetricsExporterKind, interval time.Duration) (*MetricsExporter, error) {
	switch kind {
	case NoneMetrics:
		return &MetricsExporter{Shutdown: noopShutdown}, nil
	case ConsoleMetrics:
		if interval <= 0 {
			return nil, infra.NewErrorStack("console metrics exporter interval must be positive")
		}
		shutdown, err := newConsoleMetricsExporter(interval, interval)
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "console metrics exporter")
		}
		return &MetricsExporter{Shutdown: shutdown}, nil
	case PrometheusMetrics:
		reg := promclient.NewRegistry()
		shutdown, err := newPrometheusMetricsExporter(reg)
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "prometheus metrics exporter")
		}
		return &MetricsExporter{
			Shutdown: shutdown,
			Handler:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		}, nil
	default:
	}
	return nil, infra.NewErrorStack("unknown metrics exporter kind " + string(kind))
}

// Serves for test/dev environment.
func newConsoleMetricsExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (func(ctx context.Context) error, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	callback := mp.Shutdown
	otel.SetMeterProvider(mp)
	return callback, nil
}

// Serves for the product environment and fetch stats metrics by HTTP.
// Every exporter gets its own registry, so it may be built more than once.
func newPrometheusMetricsExporter(reg promclient.Registerer) (func(ctx context.Context) error, error) {
	exporter, err := prometheus.New(prometheus.WithRegisterer(reg))
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	callback := mp.Shutdown
	otel.SetMeterProvider(mp)
	return callback, nil
}
