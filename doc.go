// Copyright 2025-2026 Patrick J. Scruggs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avlog bridges FFmpeg's libavutil log callback into Go and wires it
// into [github.com/pjscruggs/slogcp]. libavutil supports exactly one global
// callback taking a context pointer, a numeric level, a printf format and a
// va_list. This package owns that slot: Register installs a Callback behind
// a read/write lock and a C trampoline, and the returned Registration puts
// av_log_default_callback back when closed.
//
// The va_list never becomes a Go value. Callbacks receive it as an opaque
// Args handle that is valid only during Log, and turn it into text with
// Render, which delegates to av_log_format_line2.
//
// Three severity scales meet here. Level mirrors the AV_LOG_* constants
// one-to-one (Native and FromNative are exact inverses), and Filter is the
// coarser off/trace/debug/info/warn/error scale a general logger filters on.
// The dispatcher decodes unknown native levels as LevelInfo rather than
// failing; GetLevel reports them as ErrInvalidLevel.
//
// Quick start:
//
//	handler, _ := slogcp.NewHandler(os.Stderr)
//
//	avlog.SetLevel(avlog.LevelVerbose)
//	reg := avlog.Register(avlog.NewAdapter(handler, avlog.WithNativeThreshold(true)))
//	defer reg.Close()
//
// Adapter renders each event, trims trailing whitespace and logs it with the
// emitting component's AVClass name. WithLogger and WithLevelMapper reuse an
// existing slog.Logger and adjust the Filter to slog.Level mapping, while
// WithMiddlewareLogger and WithGRPCLogger send events to a go-grpc-middleware
// logging.Logger or a grpclog.LoggerV2 instead.
//
// Building with CGO_ENABLED=0 or the avlog_nocgo tag swaps libavutil for an
// in-process stand-in that only carries messages sent with Print.
package avlog
