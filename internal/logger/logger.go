// Package logger builds the zap logger of the store programs.
package logger

import (
	"github.com/go-leo/online-store/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLoggerConfig struct {
	IsDevelopment     bool
	Encoding          string
	Level             string
	DisableCaller     bool
	DisableStacktrace bool
}

// FromConfig maps the environment configuration to a ZapLoggerConfig.
// The "development" environment selects zap's development defaults.
func FromConfig(appEnv string, cfg config.LoggerConfig) *ZapLoggerConfig {
	return &ZapLoggerConfig{
		IsDevelopment:     appEnv == "development",
		Encoding:          cfg.Encoding,
		Level:             cfg.Level,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
	}
}

func NewZapLogger(cfg *ZapLoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "logger: level %q", cfg.Level)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	zapCfg.DisableCaller = cfg.DisableCaller
	zapCfg.DisableStacktrace = cfg.DisableStacktrace

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "logger: build")
	}
	return logger, nil
}
