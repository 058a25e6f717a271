package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type Option = zap.Option

var (
	WithCaller    = zap.WithCaller
	AddCallerSkip = zap.AddCallerSkip
	AddStacktrace = zap.AddStacktrace
)

type config struct {
	filter string
}

// ConfigOption configures the core created by New and DevLogger.
// Unlike Option these are applied before the zap.Logger is built.
type ConfigOption func(*config)

// WithFilter restricts the output by logger name using zapfilter rules,
// e.g. "debug:stream.* info:*"
func WithFilter(rules string) ConfigOption {
	return func(c *config) {
		c.filter = rules
	}
}

// New creates a logger producing json output
func New(writer io.Writer, level Level, opts ...Option) *Logger {
	return NewWithConfig(writer, level, nil, opts...)
}

//nolint:whitespace // editor/linter issue
func NewWithConfig(
	writer io.Writer, level Level, cfgOpts []ConfigOption, opts ...Option,
) *Logger {
	if writer == nil {
		panic("the writer is nil")
	}
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	return build(
		zapcore.NewJSONEncoder(cfg.EncoderConfig), writer, level, cfgOpts, opts...)
}

// DevLogger creates a logger producing console output
func DevLogger(writer io.Writer, level Level, opts ...Option) *Logger {
	return DevLoggerWithConfig(writer, level, nil, opts...)
}

//nolint:whitespace // editor/linter issue
func DevLoggerWithConfig(
	writer io.Writer, level Level, cfgOpts []ConfigOption, opts ...Option,
) *Logger {
	if writer == nil {
		panic("the writer is nil")
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return build(zapcore.NewConsoleEncoder(cfg), writer, level, cfgOpts, opts...)
}

//nolint:whitespace // editor/linter issue
func build(
	enc zapcore.Encoder,
	writer io.Writer,
	level Level,
	cfgOpts []ConfigOption,
	opts ...Option,
) *Logger {
	c := &config{}
	for _, o := range cfgOpts {
		o(c)
	}
	atomicLevel := zap.NewAtomicLevelAt(level)
	var core zapcore.Core = zapcore.NewCore(enc, zapcore.AddSync(writer), atomicLevel)
	if c.filter != "" {
		if rules, err := zapfilter.ParseRules(c.filter); err == nil {
			core = zapfilter.NewFilteringCore(core, rules)
		} else {
			// keep the unfiltered core, the caller gets notified on stderr
			_, _ = os.Stderr.WriteString("invalid log filter: " + err.Error() + "\n")
		}
	}
	return &Logger{
		l:     zap.New(core, opts...),
		level: atomicLevel,
	}
}
