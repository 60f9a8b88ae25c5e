// Package logging builds the zap logger used by the commands.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/flowdecomp/internal/config"
)

// New returns a production (JSON) or development (console) logger writing to
// stderr at cfg.Level.
func New(cfg config.Logging) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.Sampling = nil
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// WithRun tags every entry of l with the command name and a fresh run_id,
// returning the tagged logger and the id.
func WithRun(l *zap.Logger, command string) (*zap.Logger, string) {
	id := uuid.NewString()

	return l.With(zap.String("command", command), zap.String("run_id", id)), id
}
