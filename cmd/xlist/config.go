package main

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/observability"
)

const (
	envLogEncoder      = "XLIST_LOG_ENCODER"
	envMetrics         = "XLIST_METRICS"
	envMetricsInterval = "XLIST_METRICS_INTERVAL"
	envMetricsAddr     = "XLIST_METRICS_ADDR"
	envScenarioRepeat  = "XLIST_SCENARIO_REPEAT"

	defaultMetricsInterval = 10 * time.Second
	defaultMetricsAddr     = ":9464"
)

type config struct {
	plainTextLog    bool
	metrics         observability.MetricsExporterKind
	metricsInterval time.Duration
	metricsAddr     string
	repeat          int
}

// loadConfig reads the environment through getenv. Every invalid
// variable is reported, not only the first one.
func loadConfig(getenv func(string) string) (*config, error) {
	cfg := &config{
		metrics:         observability.NoneMetrics,
		metricsInterval: defaultMetricsInterval,
		metricsAddr:     defaultMetricsAddr,
		repeat:          1,
	}
	var merr error

	switch enc := strings.ToLower(strings.TrimSpace(getenv(envLogEncoder))); enc {
	case "", "json":
	case "text":
		cfg.plainTextLog = true
	default:
		merr = multierr.Append(merr, infra.NewErrorStack(envLogEncoder+" must be json or text, got "+enc))
	}

	kind, err := observability.ParseMetricsExporterKind(getenv(envMetrics))
	if err != nil {
		merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(err, envMetrics))
	}
	cfg.metrics = kind

	if v := strings.TrimSpace(getenv(envMetricsInterval)); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(err, envMetricsInterval))
		} else if interval <= 0 {
			merr = multierr.Append(merr, infra.NewErrorStack(envMetricsInterval+" must be positive, got "+v))
		} else {
			cfg.metricsInterval = interval
		}
	}

	if v := strings.TrimSpace(getenv(envMetricsAddr)); v != "" {
		cfg.metricsAddr = v
	}

	if v := strings.TrimSpace(getenv(envScenarioRepeat)); v != "" {
		repeat, err := strconv.Atoi(v)
		if err != nil {
			merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(err, envScenarioRepeat))
		} else if repeat < 1 {
			merr = multierr.Append(merr, infra.NewErrorStack(envScenarioRepeat+" must be at least 1, got "+v))
		} else {
			cfg.repeat = repeat
		}
	}

	if merr != nil {
		return nil, merr
	}
	return cfg, nil
}
