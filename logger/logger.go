// Package logger holds the process-wide structured logging handle.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	setupOnce sync.Once
	log       *zap.SugaredLogger
)

// Setup configures the process-wide logger, writing one file per day under
// dir. It is idempotent: calling it again returns the already-configured
// instance, it never duplicates output handlers.
//
// When the log directory cannot be created the logger falls back to stderr;
// logging must never prevent the application from running.
func Setup(dir string) *zap.SugaredLogger {
	setupOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		if err := os.MkdirAll(dir, 0755); err == nil {
			name := fmt.Sprintf("biomarket_%s.log", time.Now().Format("20060102"))
			cfg.OutputPaths = []string{filepath.Join(dir, name)}
		} else {
			cfg.OutputPaths = []string{"stderr"}
		}

		zapLogger, err := cfg.Build()
		if err != nil {
			zapLogger = zap.NewNop()
		}
		log = zapLogger.Sugar()
	})
	return log
}

// L returns the process-wide logger, performing a default Setup on first use.
func L() *zap.SugaredLogger {
	return Setup("logs")
}
