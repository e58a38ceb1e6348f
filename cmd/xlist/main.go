package main

import (
	"context"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlist/observability"
	"github.com/benz9527/xlist/xlog"
)

type xlistBanner struct{}

func (xlistBanner) JSON() string {
	return `{"app":"xlist"}`
}

func (xlistBanner) PlainText() string {
	return `
 __  __ _     _     _   
 \ \/ /| |   (_)___| |_ 
  \  / | |   | / __| __|
  /  \ | |___| \__ \ |_ 
 /_/\_\|_____|_|___/\__|
`
}

func newLogger(cfg *config) xlog.XLogger {
	opts := []xlog.XLoggerOption{
		xlog.WithXLoggerConsoleCore(),
		xlog.WithXLoggerContextFieldExtract(scenarioCtxKey),
	}
	if cfg != nil && cfg.plainTextLog {
		opts = append(opts, xlog.WithXLoggerEncoder(xlog.PlainText))
	}
	return xlog.NewXLogger(opts...)
}

func registerScenarios(lc fx.Lifecycle, cfg *config, logger xlog.XLogger) {
	withStats := cfg.metrics != observability.NoneMetrics
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if withStats {
				if err := observability.InitAppStats(ctx, "xlist"); err != nil {
					return err
				}
			}
			if err := runScenarios(ctx, logger, cfg.repeat, withStats); err != nil {
				return err
			}
			logger.Info("scenarios passed", zap.Int("repeat", cfg.repeat))
			return nil
		},
	})
}

func newApp(cfg *config, logger xlog.XLogger, opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		fx.Provide(func() xlog.XLogger { return logger }),
		fx.WithLogger(func(l xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(l)
		}),
		fx.Provide(newMetricsExporter, newMetricsServer),
		fx.Invoke(func(*metricsServer) {}),
		fx.Invoke(registerScenarios),
		fx.Options(opts...),
	)
}

// run returns the process exit code. wait blocks between the start and
// the stop of the app, it is only called for the pull based metrics.
func run(getenv func(string) string, wait func(app *fx.App)) int {
	cfg, err := loadConfig(getenv)
	logger := newLogger(cfg)
	defer func() {
		_ = logger.Sync()
	}()
	if err != nil {
		logger.ErrorStack(err, "invalid configuration")
		return 1
	}

	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Logf(zapcore.InfoLevel, format, args...)
	}))
	defer undo()
	if err != nil {
		logger.Warn("unable to set GOMAXPROCS", zap.Error(err))
	}

	logger.Banner(xlistBanner{})
	app := newApp(cfg, logger)
	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err = app.Start(startCtx); err != nil {
		logger.ErrorStack(err, "xlist failed")
		return 1
	}

	if cfg.metrics == observability.PrometheusMetrics && wait != nil {
		wait(app)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	if err = app.Stop(stopCtx); err != nil {
		logger.ErrorStack(err, "xlist stop failed")
		return 1
	}
	return 0
}

// waitForSignal keeps the metrics endpoint up until SIGINT or SIGTERM.
func waitForSignal(app *fx.App) {
	<-app.Done()
}

func main() {
	os.Exit(run(os.Getenv, waitForSignal))
}
