package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelOff disables logging entirely.
const LevelOff = "off"

// Options configures the CLI logger.
type Options struct {
	Level string
	// File receives log output when set; otherwise Fallback does.
	File     string
	Fallback io.Writer
}

// New builds a console logger. The returned close function flushes the
// logger and closes the log file, if one was opened.
func New(opts Options) (*zap.Logger, func(), error) {
	levelName := strings.ToLower(strings.TrimSpace(opts.Level))
	if levelName == LevelOff {
		return zap.NewNop(), func() {}, nil
	}
	if levelName == "" {
		levelName = "warn"
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var (
		sink    zapcore.WriteSyncer
		closeFn = func() {}
	)
	switch {
	case opts.File != "":
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.AddSync(file)
		closeFn = func() { _ = file.Close() }
	case opts.Fallback != nil:
		sink = zapcore.AddSync(opts.Fallback)
	default:
		sink = zapcore.AddSync(io.Discard)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, level)
	logger := zap.New(core)
	return logger, func() {
		_ = logger.Sync()
		closeFn()
	}, nil
}
