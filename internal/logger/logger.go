package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "dev"
)

var logger *zap.Logger

func init() {
	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}

	var err error
	switch env {
	case "dev":
		logger, err = zap.NewDevelopment()
	case "prod":
		logger, err = zap.NewProduction()
	case "nop":
		logger = zap.NewNop()
	}

	if err != nil || logger == nil {
		log.Fatal("logger init: ", err, " (unknown LOG_ENV ", env, "?)")
	}
}

// Replace swaps the package logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	prev := logger
	logger = l
	return func() { logger = prev }
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}

// Sync flushes buffered entries; call it before the process exits.
func Sync() {
	_ = logger.Sync()
}

// Named returns a child of the package logger for libraries that take a *zap.Logger.
func Named(name string) *zap.Logger {
	return logger.Named(name)
}
