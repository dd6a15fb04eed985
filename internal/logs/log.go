// Package logs builds the zap logger of the command line tool.
package logs

import (
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syssam/faktorgen/internal/config"
)

var (
	logger = zap.NewNop()
	// helpers logs for the package functions, skipping their frame.
	helpers = logger

	// console receives the human readable output.
	console zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
)

// New returns a logger writing coloured console output and, if cfg.File is
// set, JSON lines to a rotated log file. Unknown levels fall back to info.
func New(name string, cfg config.LogConfig) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	level := zap.NewAtomicLevelAt(lvl)

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !cfg.Dev {
		consoleCfg.TimeKey = ""
		consoleCfg.CallerKey = ""
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), console, level)

	// The file gets JSON without colour codes.
	if cfg.File != "" {
		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		file := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		})
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), file, level))
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}
	return zap.New(core, opts...).Named(name)
}

// Init replaces the package logger with New(name, cfg) and returns it.
func Init(name string, cfg config.LogConfig) *zap.Logger {
	_ = logger.Sync()
	logger = New(name, cfg)
	helpers = logger.WithOptions(zap.AddCallerSkip(1))
	return logger
}

// L returns the package logger. It discards everything until Init is called.
func L() *zap.Logger { return logger }

// Sync flushes the package logger.
func Sync() error { return logger.Sync() }

// Debug logs at debug level.
func Debug(msg string, fields ...zap.Field) { helpers.Debug(msg, fields...) }

// Info logs at info level.
func Info(msg string, fields ...zap.Field) { helpers.Info(msg, fields...) }

// Warn logs at warn level.
func Warn(msg string, fields ...zap.Field) { helpers.Warn(msg, fields...) }

// Error logs at error level.
func Error(msg string, fields ...zap.Field) { helpers.Error(msg, fields...) }
