package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/observability"
	"github.com/benz9527/xlist/xlog"
)

func newMetricsExporter(lc fx.Lifecycle, cfg *config, logger xlog.XLogger) (*observability.MetricsExporter, error) {
	exp, err := observability.NewMetricsExporter(cfg.metrics, cfg.metricsInterval)
	if err != nil {
		return nil, err
	}
	logger.Info("metrics exporter installed", zap.String("kind", string(cfg.metrics)))
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return exp.Shutdown(ctx)
		},
	})
	return exp, nil
}

// metricsServer serves the pull based exporter. It is idle for the
// push based ones.
type metricsServer struct {
	srv *http.Server
	lis net.Listener
}

// Addr is the bound address, nil until started or without a handler.
func (s *metricsServer) Addr() net.Addr {
	if s == nil || s.lis == nil {
		return nil
	}
	return s.lis.Addr()
}

func newMetricsServer(lc fx.Lifecycle, cfg *config, exp *observability.MetricsExporter, logger xlog.XLogger) *metricsServer {
	s := &metricsServer{}
	if exp.Handler == nil {
		return s
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", exp.Handler)
	s.srv = &http.Server{
		Addr:              cfg.metricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", s.srv.Addr)
			if err != nil {
				return infra.WrapErrorStackWithMessage(err, "metrics server listen")
			}
			s.lis = lis
			logger.Info("metrics server started", zap.Stringer("addr", lis.Addr()))
			go func() {
				if err := s.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.ErrorStack(infra.WrapErrorStack(err), "metrics server stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.srv.Shutdown(ctx)
		},
	})
	return s
}
