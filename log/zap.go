package log

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	// DefaultDir is the log directory relative to the working directory
	DefaultDir = "logs"

	// FileName is the log file inside the log directory
	FileName = "vi-racer.log"

	// maxLogSize triggers rotation of the previous session's log on startup
	maxLogSize = 10 * 1024 * 1024
)

// New builds the application logger
// With debug off logging is discarded; the terminal runs in raw mode so stdout is never a sink
func New(debug bool, dir string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// rotate moves an oversized log aside, keeping one previous file
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log: %w", err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}
	if err := os.Rename(path, path+".old"); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
