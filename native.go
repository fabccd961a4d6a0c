package avlog

// nativeLib is the slice of libavutil the package talks to. The cgo build
// binds it to the real library; tests swap in a simulated one.
type nativeLib interface {
	setLevel(n int32)
	level() int32
	setFlags(n int32)
	flags() int32

	// installDispatcher points av_log_set_callback at the bridge trampoline
	// and installDefault restores av_log_default_callback.
	installDispatcher()
	installDefault()

	render(args Args) (string, error)
	forwardDefault(src Source, args Args)
	itemName(src Source) string
	print(src Source, level int32, msg string)
}

var lib nativeLib = newNativeLib()

// SetLevel sets the libavutil threshold (av_log_set_level).
func SetLevel(l Level) { lib.setLevel(l.Native()) }

// GetLevel returns the libavutil threshold. A value set behind this package's
// back that is not an AV_LOG_* constant yields ErrInvalidLevel.
func GetLevel() (Level, error) { return FromNative(lib.level()) }

// SetFlags replaces the libavutil flag bits (av_log_set_flags).
func SetFlags(f Flags) { lib.setFlags(int32(f)) }

// GetFlags returns the libavutil flag bits, unknown bits included.
func GetFlags() Flags { return Flags(lib.flags()) }

// Print emits msg through av_log at level, attributed to src (which may be
// nil). The message reaches the registered Callback, or the native default
// output when nothing is registered.
//
// Print must not be called from inside Callback.Log.
func Print(src Source, level Level, msg string) {
	lib.print(src, level.Native(), msg)
}
