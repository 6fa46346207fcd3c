// Package logging builds the structured zap loggers used by tracecell
// processes.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log level and encoding. Fields read TRACECELL_-prefixed
// variables.
type Config struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Development switches to the human-readable console encoder.
	Development bool `env:"LOG_DEV" envDefault:"false"`
}

// New builds a logger for the named service.
func New(service string, cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// stdout is reserved for protocol traffic in the stdio bridge.
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("service", service)), nil
}

// ParseLevel resolves a level name. Blank means info.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return level, nil
}

// Printf adapts a logger to printf-style callbacks.
func Printf(logger *zap.Logger) func(string, ...any) {
	if logger == nil {
		return nil
	}
	sugar := logger.Sugar()
	return func(format string, args ...any) {
		sugar.Infof(format, args...)
	}
}
