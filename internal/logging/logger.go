package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.SugaredLogger

// Init builds the global JSON logger. level is a zap level name ("debug",
// "info", ...); empty keeps the environment default.
func Init(appEnv, level string) error {
	var config zap.Config
	if appEnv == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Encoding = "json"

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		config.Level = lvl
	}

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	globalLogger = logger.Sugar().With("service", "enterprisehub", "env", appEnv)
	return nil
}

// GetLogger returns the global logger, falling back to zap's production
// defaults when Init has not run (tests, one-off tools).
func GetLogger() *zap.SugaredLogger {
	if globalLogger == nil {
		logger, _ := zap.NewProduction(zap.AddCallerSkip(1))
		globalLogger = logger.Sugar()
	}
	return globalLogger
}

// Named returns a child logger tagged with component, without the extra
// caller skip the package helpers need.
func Named(component string) *zap.SugaredLogger {
	return GetLogger().WithOptions(zap.AddCallerSkip(-1)).Named(component)
}

// Close flushes buffered entries.
func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

func Info(message string, fields ...interface{}) {
	GetLogger().Infow(message, fields...)
}

func Debug(message string, fields ...interface{}) {
	GetLogger().Debugw(message, fields...)
}

func Warn(message string, fields ...interface{}) {
	GetLogger().Warnw(message, fields...)
}

func Error(message string, fields ...interface{}) {
	GetLogger().Errorw(message, fields...)
}

func Fatal(message string, fields ...interface{}) {
	GetLogger().Fatalw(message, fields...)
	os.Exit(1)
}
