package xlog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestCommonCore(t *testing.T) {
	var cc XLogCore = &commonCore{}
	require.Nil(t, cc.outEncoder())
	require.Nil(t, cc.writeSyncer())
	require.Nil(t, cc.levelEncoder())
	require.Nil(t, cc.timeEncoder())

	w := newTestMemWriter(t)
	lvlEnabler := zap.NewAtomicLevelAt(LogLevelDebug.zapLevel())
	cc = &commonCore{
		lvlEnabler: &lvlEnabler,
		lvlEnc:     zapcore.CapitalLevelEncoder,
		tsEnc:      zapcore.ISO8601TimeEncoder,
		ws:         getOutWriterByType(testMemAsOut),
		enc:        getEncoderByType(logEncoderType(6)), // Unknown falls back to JSON.
	}
	config := zapcore.EncoderConfig{
		MessageKey:  "msg",
		LevelKey:    "lvl",
		EncodeLevel: cc.levelEncoder(),
		TimeKey:     "ts",
		EncodeTime:  cc.timeEncoder(),
		NameKey:     "component",
		EncodeName:  zapcore.FullNameEncoder,
	}
	cc.(*commonCore).core = zapcore.NewCore(cc.outEncoder()(config), cc.writeSyncer(), &lvlEnabler)

	require.True(t, cc.Enabled(zapcore.DebugLevel))
	lvlEnabler.SetLevel(zapcore.ErrorLevel)
	require.False(t, cc.Enabled(zapcore.DebugLevel))
	require.False(t, cc.Enabled(zapcore.WarnLevel))
	require.True(t, cc.Enabled(zapcore.ErrorLevel))
	lvlEnabler.SetLevel(zapcore.DebugLevel)

	require.NotNil(t, cc.With([]zap.Field{zap.String("key", "value")}))
	ent := zapcore.Entry{Level: zapcore.DebugLevel, Message: "direct"}
	require.NotNil(t, cc.Check(ent, nil))
	require.NoError(t, cc.Write(ent, []zap.Field{zap.String("key", "value")}))
	require.NoError(t, cc.Sync())

	_, err := WrapCore(cc, nil)
	require.Error(t, err)
	_, err = WrapCore(nil, componentCoreEncoderCfg())
	require.Error(t, err)

	wrapped, err := WrapCore(cc, componentCoreEncoderCfg())
	require.NoError(t, err)
	require.NotNil(t, wrapped)
	require.NoError(t, wrapped.Write(
		zapcore.Entry{Level: zapcore.InfoLevel, LoggerName: "commonCore", Message: "wrapped"},
		[]zap.Field{zap.String("key", "value")},
	))

	// The wrapped core follows the dynamic level of the origin.
	lvlEnabler.SetLevel(zapcore.WarnLevel)
	require.False(t, wrapped.Enabled(zapcore.InfoLevel))
	require.True(t, wrapped.Enabled(zapcore.WarnLevel))

	entries := w.entries(t)
	require.Len(t, entries, 2)
	require.Equal(t, "direct", entries[0]["msg"])
	require.Equal(t, "value", entries[0]["key"])
	require.Equal(t, "wrapped", entries[1]["msg"])
	require.Equal(t, "commonCore", entries[1]["component"])
}
