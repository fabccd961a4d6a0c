package avlog

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"unicode"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/pjscruggs/slogcp"
	"google.golang.org/grpc/grpclog"
)

// Adapter is a Callback that renders libavutil events with the native
// formatter and forwards them to a slog.Logger built on slogcp, or to one of
// the gRPC logging sinks.
type Adapter struct {
	sink            sink
	diag            *slog.Logger
	nativeThreshold bool

	renderFailures atomic.Uint64
	failures       atomic.Uint64
}

type adapterConfig struct {
	logger          *slog.Logger
	levelMapper     func(Filter) slog.Level
	middleware      grpc_logging.Logger
	grpcLogger      grpclog.LoggerV2
	nativeThreshold bool
}

// AdapterOption customizes adapter construction.
type AdapterOption func(*adapterConfig)

// NewAdapter creates an adapter backed by the provided slogcp handler. If no
// handler or slog.Logger is provided, the default slog logger is used so
// existing slogcp defaults apply.
//
// Example:
//
//	handler, _ := slogcp.NewHandler(os.Stdout)
//	reg := avlog.Register(avlog.NewAdapter(handler))
//	defer reg.Close()
func NewAdapter(handler *slogcp.Handler, opts ...AdapterOption) *Adapter {
	cfg := adapterConfig{
		levelMapper: defaultLevelMapper,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch {
	case cfg.logger != nil:
	case handler != nil:
		cfg.logger = slog.New(handler)
	default:
		cfg.logger = slog.Default()
	}

	if cfg.levelMapper == nil {
		cfg.levelMapper = defaultLevelMapper
	}

	a := &Adapter{
		diag:            cfg.logger,
		nativeThreshold: cfg.nativeThreshold,
	}
	switch {
	case cfg.middleware != nil:
		a.sink = middlewareSink{log: cfg.middleware}
	case cfg.grpcLogger != nil:
		a.sink = grpclogSink{log: cfg.grpcLogger}
	default:
		a.sink = slogSink{log: cfg.logger, mapLevel: cfg.levelMapper}
	}
	return a
}

// Install registers a new Adapter and returns its Registration.
//
// Example:
//
//	handler, _ := slogcp.NewHandler(os.Stderr)
//	defer avlog.Install(handler, avlog.WithNativeThreshold(true)).Close()
func Install(handler *slogcp.Handler, opts ...AdapterOption) *Registration {
	return Register(NewAdapter(handler, opts...))
}

// WithLogger overrides the slog.Logger used by the adapter, allowing reuse of an existing logger.
//
// Example:
//
//	base := slog.New(slog.NewTextHandler(os.Stdout, nil))
//	adapter := avlog.NewAdapter(nil, avlog.WithLogger(base))
func WithLogger(logger *slog.Logger) AdapterOption {
	return func(cfg *adapterConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithLevelMapper customizes how Filter ranks map to slog levels, for example
// to lift fatal libavutil output to a slogcp critical severity.
func WithLevelMapper(mapper func(Filter) slog.Level) AdapterOption {
	return func(cfg *adapterConfig) {
		if mapper != nil {
			cfg.levelMapper = mapper
		}
	}
}

// WithMiddlewareLogger sends rendered events to a go-grpc-middleware
// logging.Logger instead of slog, so libavutil output lands wherever a
// service already sends its interceptor logs.
func WithMiddlewareLogger(logger grpc_logging.Logger) AdapterOption {
	return func(cfg *adapterConfig) {
		if logger != nil {
			cfg.middleware = logger
		}
	}
}

// WithGRPCLogger sends rendered events to a grpclog.LoggerV2. Trace and
// debug output is gated on V(2) and V(1).
func WithGRPCLogger(logger grpclog.LoggerV2) AdapterOption {
	return func(cfg *adapterConfig) {
		if logger != nil {
			cfg.grpcLogger = logger
		}
	}
}

// WithNativeThreshold makes the adapter drop events below the level set
// with SetLevel before doing any other work.
func WithNativeThreshold(enabled bool) AdapterOption {
	return func(cfg *adapterConfig) {
		cfg.nativeThreshold = enabled
	}
}

// Log satisfies Callback. It never panics and never returns an error to
// libavutil; events that cannot be rendered are dropped and counted.
func (a *Adapter) Log(src Source, level Level, _ string, args Args) {
	if a == nil || a.sink == nil {
		return
	}
	defer a.recoverSink(level)

	if a.nativeThreshold {
		if enabled, err := GetLevel(); err == nil && !level.Passes(enabled) {
			return
		}
	}

	filter := level.Filter()
	if filter == FilterOff || !a.sink.enabled(filter) {
		return
	}

	msg, err := Render(args)
	if err != nil {
		a.renderFailures.Add(1)
		a.debug("avlog: dropped unrenderable event",
			slog.String("error", err.Error()),
			slog.String("av_level", level.String()),
		)
		return
	}
	msg = strings.TrimRightFunc(msg, unicode.IsSpace)
	a.sink.emit(filter, msg, buildAttrs(src, level))
}

// RenderFailures returns how many events were dropped because libavutil
// could not render them.
func (a *Adapter) RenderFailures() uint64 {
	if a == nil {
		return 0
	}
	return a.renderFailures.Load()
}

// Failures returns how many events were lost to a panicking sink.
func (a *Adapter) Failures() uint64 {
	if a == nil {
		return 0
	}
	return a.failures.Load()
}

func (a *Adapter) recoverSink(level Level) {
	if r := recover(); r != nil {
		a.failures.Add(1)
		a.debug("avlog: sink panicked",
			slog.Any("panic", r),
			slog.String("av_level", level.String()),
		)
	}
}

func (a *Adapter) debug(msg string, attrs ...slog.Attr) {
	if a.diag == nil {
		return
	}
	a.diag.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// defaultLevelMapper converts Filter ranks into slog levels.
func defaultLevelMapper(f Filter) slog.Level {
	if level, ok := f.SlogLevel(); ok {
		return level
	}
	return slog.LevelError
}

// buildAttrs describes the event's origin as slog attributes.
func buildAttrs(src Source, level Level) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if name := SourceName(src); name != "" {
		attrs = append(attrs, slog.String("component", name))
	}
	attrs = append(attrs, slog.String("av_level", level.String()))
	return attrs
}
