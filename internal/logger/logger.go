// Package logger holds the shared zap logger, initialized once at startup.
package logger

import (
	"go.uber.org/zap"
)

var (
	// Log is the structured logger
	Log *zap.Logger
	// SLog is the sugared logger for printf-style call sites
	SLog *zap.SugaredLogger
)

func init() {
	// Safe default so packages can log before Init runs (tests, tooling)
	Log = zap.NewNop()
	SLog = Log.Sugar()
}

// Init configures the global loggers for the given environment
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = l
	SLog = l.Sugar()
	return nil
}

// Sync flushes buffered log entries; call on shutdown
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
