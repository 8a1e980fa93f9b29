// Package logger builds the zap loggers used by the CLI, replay and the
// dashboard. Engine packages do not log.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hamzaelsherif03/Calculator/config"
)

// New builds a logger from the log section of the configuration. An unknown
// level falls back to info. Console output goes to stderr; when a file is
// configured it receives the same stream through a size-rotated sink.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	if cfg.File == "" {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		return zc.Build()
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	rotated := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
		zapcore.NewCore(encoder, rotated, level),
	)
	return zap.New(core), nil
}
