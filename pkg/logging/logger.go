package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger handles, valid after InitLogger.
var Sugar *zap.SugaredLogger
var Logger *zap.Logger

// InitLogger builds the process-wide logger. Events and warnings go to
// stderr and, when logFile is set, to the log file as well. debug lowers the
// level to Debug; jsonFormat switches from the console encoder to the
// production JSON encoder.
func InitLogger(logFile string, debug bool, jsonFormat bool) error {
	var config zap.Config
	if jsonFormat {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	config.OutputPaths = []string{"stderr"}
	if logFile != "" {
		config.OutputPaths = append(config.OutputPaths, logFile)
	}
	config.ErrorOutputPaths = []string{"stderr"}

	var err error
	Logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	Sugar = Logger.Sugar()
	return nil
}

// CloseLogger flushes any buffered log entries on exit.
func CloseLogger() {
	if Logger != nil {
		Logger.Sync()
	}
}
