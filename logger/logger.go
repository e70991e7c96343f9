// Package logger builds the zap loggers used by the hardhat commands.
package logger

import (
	"errors"
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnknownLevel is returned for a log level zap does not know
var ErrUnknownLevel = errors.New("unknown log level")

// Config defines where and how much to log
type Config struct {
	// Level is one of debug, info, warn or error
	Level string `mapstructure:"level"`
	// Dir is the directory for rotated log files.  Empty logs to the console
	// only
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the size a log file reaches before it is rotated
	MaxSizeMB int `mapstructure:"max_size_mb" validate:"gte=0"`
	// MaxBackups is the number of rotated files kept
	MaxBackups int `mapstructure:"max_backups" validate:"gte=0"`
	// MaxAgeDays is the number of days rotated files are kept
	MaxAgeDays int `mapstructure:"max_age_days" validate:"gte=0"`
}

// DefaultConfig returns console logging at info level with rotation settings
// used when a log directory is configured
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		MaxSizeMB:  100,
		MaxBackups: 7,
		MaxAgeDays: 7,
	}
}

// ParseLevel converts a level name into a zap level
func ParseLevel(level string) (zapcore.Level, error) {

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel, nil
	case "", "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// encoderConfig is shared by the console and file encoders
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "trace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(time.RFC3339),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// rotatingWriter returns a size and age rotated log file writer
func rotatingWriter(cfg Config, name string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})
}

// New returns a logger writing to the console, plus a JSON log file and an
// error only log file in cfg.Dir when it is set
func New(cfg Config) (*zap.Logger, error) {

	level, err := ParseLevel(cfg.Level)

	if err != nil {
		return nil, err
	}

	enc := encoderConfig()

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(os.Stderr), level),
	}

	if cfg.Dir != "" {

		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating log dir: %w", err)
		}

		errorLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel
		})

		cores = append(cores,
			zapcore.NewCore(zapcore.NewJSONEncoder(enc), rotatingWriter(cfg, "hardhat.log"), level),
			zapcore.NewCore(zapcore.NewJSONEncoder(enc), rotatingWriter(cfg, "error_hardhat.log"), errorLevel),
		)
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
