// Package logger builds the process-wide zap logger.
package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level is shared by every logger built by New.
var level = zap.NewAtomicLevel()

// Config describes the logger.
type Config struct {
	// Level is a zap level name such as "debug" or "info".
	Level string
	// Dev switches to the human-readable console encoder.
	Dev bool
}

// New builds a logger from cfg and installs it as the global zap logger.
func New(cfg Config) (*zap.Logger, error) {
	if err := SetLevel(cfg.Level); err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Dev {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level

	l, err := zcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	zap.ReplaceGlobals(l)
	return l, nil
}

// SetLevel changes the level of the loggers built by New. An empty name means
// info.
func SetLevel(name string) error {
	var l zapcore.Level
	if name != "" {
		if err := l.UnmarshalText([]byte(name)); err != nil {
			return errors.Wrapf(err, "invalid log level %q", name)
		}
	}

	level.SetLevel(l)
	return nil
}
