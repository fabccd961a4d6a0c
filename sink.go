package avlog

import (
	"context"
	"log/slog"
	"strings"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc/grpclog"
)

// sink is where an Adapter sends rendered text.
type sink interface {
	enabled(f Filter) bool
	emit(f Filter, msg string, attrs []slog.Attr)
}

type slogSink struct {
	log      *slog.Logger
	mapLevel func(Filter) slog.Level
}

func (s slogSink) enabled(f Filter) bool {
	return s.log.Enabled(context.Background(), s.mapLevel(f))
}

func (s slogSink) emit(f Filter, msg string, attrs []slog.Attr) {
	s.log.LogAttrs(context.Background(), s.mapLevel(f), msg, attrs...)
}

// middlewareSink forwards to a go-grpc-middleware logging.Logger. The
// interface has no level query, so every non-off rank is enabled.
type middlewareSink struct {
	log grpc_logging.Logger
}

func (middlewareSink) enabled(Filter) bool { return true }

func (s middlewareSink) emit(f Filter, msg string, attrs []slog.Attr) {
	fields := make([]any, 0, 2*len(attrs))
	for _, a := range attrs {
		fields = append(fields, a.Key, a.Value.String())
	}
	s.log.Log(context.Background(), middlewareLevel(f), msg, fields...)
}

func middlewareLevel(f Filter) grpc_logging.Level {
	switch f {
	case FilterTrace, FilterDebug:
		return grpc_logging.LevelDebug
	case FilterInfo:
		return grpc_logging.LevelInfo
	case FilterWarn:
		return grpc_logging.LevelWarn
	default:
		return grpc_logging.LevelError
	}
}

// grpclogSink forwards to a grpclog.LoggerV2. Errors use Error, never Fatal,
// since a libavutil fatal message must not exit the host.
type grpclogSink struct {
	log grpclog.LoggerV2
}

func (s grpclogSink) enabled(f Filter) bool {
	switch f {
	case FilterTrace:
		return s.log.V(2)
	case FilterDebug:
		return s.log.V(1)
	default:
		return true
	}
}

func (s grpclogSink) emit(f Filter, msg string, attrs []slog.Attr) {
	line := joinAttrs(msg, attrs)
	switch f {
	case FilterWarn:
		s.log.Warning(line)
	case FilterError:
		s.log.Error(line)
	default:
		s.log.Info(line)
	}
}

// joinAttrs appends attrs to msg as key=value pairs.
func joinAttrs(msg string, attrs []slog.Attr) string {
	if len(attrs) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Value.String())
	}
	return b.String()
}
