package avlog

import (
	"errors"
	"unsafe"
)

// Source is the opaque context pointer libavutil passes with each event
// (the avcl argument of av_log). It is usually a struct whose first field
// is an AVClass pointer, and may be nil.
type Source unsafe.Pointer

// Args is the opaque handle for one native log event's format string and
// va_list. It is valid only for the duration of the Callback.Log call that
// received it and must not be stored or handed to another goroutine. The
// only operations on it are Render and NativeDefault.
type Args struct {
	level  int32
	format unsafe.Pointer
	list   unsafe.Pointer
}

// ErrRenderFailure reports that libavutil could not render an event.
var ErrRenderFailure = errors.New("avlog: render failed")

// Callback receives native log events once installed with Register.
//
// Log runs synchronously on whichever thread libavutil logged from, possibly
// many at once. It must not panic and must not call Register,
// Registration.Close, Unregister or Print.
type Callback interface {
	Log(src Source, level Level, format string, args Args)
}

// CallbackFunc adapts a plain function to Callback.
type CallbackFunc func(src Source, level Level, format string, args Args)

// Log calls f.
func (f CallbackFunc) Log(src Source, level Level, format string, args Args) {
	f(src, level, format, args)
}

// Render formats the event behind args with libavutil's own formatter
// (av_log_format_line2). The result has no component prefix and keeps any
// trailing newline from the format string.
func Render(args Args) (string, error) {
	if args.format == nil || args.list == nil {
		return "", ErrRenderFailure
	}
	return lib.render(args)
}

// SourceName returns the item name of the AVClass behind src, or "" when
// src is nil or carries no class.
func SourceName(src Source) string {
	if src == nil {
		return ""
	}
	return lib.itemName(src)
}

// NativeDefault hands every event to av_log_default_callback, which
// applies the native threshold and flags and writes to stderr. Registering
// it is equivalent to having nothing registered, except that events still
// pass through the bridge.
var NativeDefault Callback = nativeDefault{}

type nativeDefault struct{}

func (nativeDefault) Log(src Source, _ Level, _ string, args Args) {
	if args.format == nil || args.list == nil {
		return
	}
	lib.forwardDefault(src, args)
}
