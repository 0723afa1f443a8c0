package inspector

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the editor logger. Debug enables per-field draw logs.
func NewLogger(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if debug {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	} else {
		cfg.Level.SetLevel(zapcore.InfoLevel)
	}

	lggr, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return lggr.Named("inspector").Sugar(), nil
}

// NopLogger discards everything.
func NopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
