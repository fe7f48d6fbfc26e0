package utils

import (
	"log"
	"sync"

	"blueriver/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. Use GetLogger.
var Logger *zap.Logger

var loggerOnce sync.Once

// NewLogger builds a JSON production logger at level, or a colored development
// logger that logs everything when production is false.
func NewLogger(production bool, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", "blueriver")), nil
}

// GetLogger returns the global logger, building it from config on first use.
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		if Logger != nil {
			return
		}
		l, err := NewLogger(config.IsProduction(), config.AppConfig.LogLevel)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		Logger = l
		zap.ReplaceGlobals(Logger)
	})
	return Logger
}

func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zap.InfoLevel
	}
	return l
}
