// Package xlog is a thin context-aware wrapper over zap.
//
// Every log call takes a context so the correlation id set by the HTTP
// middleware or the job runner is attached to the entry automatically.
package xlog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

type options struct {
	level      zapcore.Level
	env        string
	caller     bool
	callerSkip int
}

type Option func(*options)

// WithLevel sets the minimum level, unknown values fall back to info.
func WithLevel(level string) Option {
	return func(o *options) {
		lvl, err := zapcore.ParseLevel(strings.ToLower(level))
		if err != nil {
			lvl = zapcore.InfoLevel
		}
		o.level = lvl
	}
}

func WithEnv(env string) Option {
	return func(o *options) {
		o.env = env
	}
}

func WithCaller(enabled bool) Option {
	return func(o *options) {
		o.caller = enabled
	}
}

func AddCallerSkip(skip int) Option {
	return func(o *options) {
		o.callerSkip = skip
	}
}

func DebugLogLevel() Option { return WithLevel("debug") }

func InfoLogLevel() Option { return WithLevel("info") }

// Init builds the process-wide logger. Local environments get a console
// encoder, everything else is JSON on stdout.
func Init(serviceName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encCfg)
	if strings.EqualFold(o.env, "local") {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), o.level)

	zapOpts := []zap.Option{zap.Fields(zap.String("service", serviceName))}
	if o.caller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	global.Store(zap.New(core, zapOpts...))
}

// InitForTest installs a development logger that only prints warnings and above.
func InitForTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	global.Store(logger)
}

// Logger exposes the underlying zap logger, used to bridge New Relic logging.
func Logger() *zap.Logger {
	return global.Load()
}

func Sync() {
	_ = global.Load().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if id := CorrelationID(ctx); id != "" {
		fields = append(fields, zap.String(correlationIDKey, id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	global.Load().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	global.Load().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	global.Load().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	global.Load().Error(msg, withContext(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	global.Load().Panic(msg, withContext(ctx, fields)...)
}

func Fatal(ctx context.Context, msg string, fields ...Field) {
	global.Load().Fatal(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...any) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...any) {
	Fatal(ctx, fmt.Sprintf(format, args...))
}
