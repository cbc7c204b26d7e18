// Package config handles logger setup for the processor.
package config

import (
	"io"

	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger that writes to output, os.Stdout is used if
// output is nil. Debug records are only emitted for debug loggers, quiet
// loggers only report errors.
func CreateLogger(debug, quiet bool, output io.Writer) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = output
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
