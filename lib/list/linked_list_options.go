package list

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type linkedListOptions struct {
	statsName      string
	meterProvider  metric.MeterProvider
	isStatsEnabled bool
}

type LinkedListOption func(opts *linkedListOptions)

// WithLinkedListStats enables the OpenTelemetry stats of the list.
// The instruments are registered under meter "xlist/<name>".
func WithLinkedListStats(name string) LinkedListOption {
	return func(opts *linkedListOptions) {
		opts.isStatsEnabled = true
		opts.statsName = name
	}
}

// WithLinkedListMeterProvider overrides the global meter provider.
// It takes effect only with WithLinkedListStats.
func WithLinkedListMeterProvider(mp metric.MeterProvider) LinkedListOption {
	return func(opts *linkedListOptions) {
		opts.meterProvider = mp
	}
}

func buildLinkedListStats(opts ...LinkedListOption) *linkedListStats {
	o := &linkedListOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if !o.isStatsEnabled {
		return nil
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}
	return newLinkedListStats(o.meterProvider, o.statsName)
}
