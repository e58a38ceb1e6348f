package xlog

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ fxevent.Logger = (*FxXLogger)(nil)

// FxXLogger prints the fx lifecycle events under the "fx" component.
type FxXLogger struct {
	logger XLogger
}

func moduleField(module string) zap.Field {
	if module == "" {
		return zap.Skip()
	}
	return zap.String("module", module)
}

func (l *FxXLogger) LogEvent(event fxevent.Event) {
	if l == nil || l.logger == nil {
		return
	}

	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.logger.Debug("hook OnStart executing",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStartExecuted:
		fields := []zap.Field{
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
			zap.Duration("in", e.Runtime),
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "hook OnStart failed", fields...)
		} else {
			l.logger.Debug("hook OnStart executed", fields...)
		}
	case *fxevent.OnStopExecuting:
		l.logger.Debug("hook OnStop executing",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStopExecuted:
		fields := []zap.Field{
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
			zap.Duration("in", e.Runtime),
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "hook OnStop failed", fields...)
		} else {
			l.logger.Debug("hook OnStop executed", fields...)
		}
	case *fxevent.Supplied:
		if e.Err != nil {
			l.logger.Error(e.Err, "supply failed",
				zap.String("type", e.TypeName),
				moduleField(e.ModuleName),
				zap.Strings("stacktrace", e.StackTrace),
			)
		} else {
			l.logger.Debug("supplied", zap.String("type", e.TypeName), moduleField(e.ModuleName))
		}
	case *fxevent.Provided:
		for _, rtype := range e.OutputTypeNames {
			l.logger.Debug("provided",
				zap.Bool("private", e.Private),
				zap.String("type", rtype),
				zap.String("constructor", e.ConstructorName),
				moduleField(e.ModuleName),
			)
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "provide failed",
				moduleField(e.ModuleName),
				zap.Strings("stacktrace", e.StackTrace),
			)
		}
	case *fxevent.Replaced:
		for _, rtype := range e.OutputTypeNames {
			l.logger.Debug("replaced", zap.String("type", rtype), moduleField(e.ModuleName))
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "replace failed",
				moduleField(e.ModuleName),
				zap.Strings("stacktrace", e.StackTrace),
			)
		}
	case *fxevent.Decorated:
		for _, rtype := range e.OutputTypeNames {
			l.logger.Debug("decorated",
				zap.String("type", rtype),
				zap.String("decorator", e.DecoratorName),
				moduleField(e.ModuleName),
			)
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "decorate failed",
				moduleField(e.ModuleName),
				zap.Strings("stacktrace", e.StackTrace),
			)
		}
	case *fxevent.Invoking:
		l.logger.Debug("invoking", zap.String("function", e.FunctionName), moduleField(e.ModuleName))
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error(e.Err, "invoke failed",
				zap.String("function", e.FunctionName),
				moduleField(e.ModuleName),
				zap.String("trace", e.Trace),
			)
		}
	case *fxevent.Stopping:
		l.logger.Info("stopping", zap.String("signal", e.Signal.String()))
	case *fxevent.Stopped:
		if e.Err != nil {
			l.logger.Error(e.Err, "stop failed")
		}
	case *fxevent.RollingBack:
		l.logger.Error(e.StartErr, "start failed, rolling back")
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.logger.Error(e.Err, "roll back failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.logger.Error(e.Err, "start failed")
		} else {
			l.logger.Debug("started")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.logger.Error(e.Err, "custom logger initialization failed")
		} else {
			l.logger.Debug("custom logger initialized", zap.String("constructor", e.ConstructorName))
		}
	}
}

// NewFxXLogger shares the writer and the dynamic level of the logger,
// but drops the caller because it always points into fx.
func NewFxXLogger(logger XLogger) *FxXLogger {
	l := &xLogger{}
	l.logger.Store(logger.
		zap().
		Named("fx").
		WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			if core == nil {
				panic("[XLogger] core is nil")
			}
			xc, ok := core.(XLogCore)
			if !ok {
				panic("[XLogger] core is not XLogCore")
			}
			cc, err := WrapCore(xc, componentCoreEncoderCfg())
			if err != nil {
				panic(err)
			}
			return cc
		})),
	)
	if xl, ok := logger.(*xLogger); ok {
		l.dynamicLevelEnabler = xl.dynamicLevelEnabler
		l.encoder, l.writer = xl.encoder, xl.writer
	}
	return &FxXLogger{logger: l}
}
