package logutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// LogConfig describes how the application logger is built.
// The terminal owns stdout, so logs only ever go to a file.
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Filename   string `yaml:"file"`
	MaxSize    int    `yaml:"maxSize"`
	MaxDays    int    `yaml:"maxDays"`
	MaxBackups int    `yaml:"maxBackups"`
}

// NewLogConfig returns the default log settings.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:      zapcore.InfoLevel.String(),
		Format:     FormatConsole,
		MaxSize:    16,
		MaxDays:    7,
		MaxBackups: 3,
	}
}

// Validate checks level and format.
func (cfg *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	switch strings.ToLower(cfg.Format) {
	case FormatConsole, FormatJSON, "":
	default:
		return fmt.Errorf("invalid log format %q", cfg.Format)
	}
	if cfg.MaxSize < 0 || cfg.MaxDays < 0 || cfg.MaxBackups < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}
	return nil
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}
	return level
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(cfg.Format)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "name",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if strings.ToLower(format) == FormatJSON {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// NewLogger builds a logger from the config. Without a file name it returns a no-op logger.
func NewLogger(cfg *LogConfig) (*zap.Logger, error) {
	if cfg == nil || cfg.Filename == "" {
		return zap.NewNop(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	core := zapcore.NewCore(cfg.getEncoder(), cfg.getSyncer(), cfg.getLevel())
	return zap.New(core, cfg.getOptions()...), nil
}
