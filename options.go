package dpiprobe

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// binder makes the Go func pointed to by fptr call the native code at addr.
type binder func(fptr any, addr uintptr)

type options struct {
	out           io.Writer
	logger        *zap.Logger
	loader        Loader
	binder        binder
	effectiveType MonitorDpiType
}

type Option func(*options)

// WithOutput sets where the report and diagnostics are printed.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLogger sets the debug logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// withLoader replaces the system dynamic loader.
func withLoader(l Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// withBinder replaces the purego based binder.
func withBinder(b binder) Option {
	return func(o *options) {
		o.binder = b
	}
}

// WithEffectiveDpiType sets the selector used for the "Effective DPI" line.
// The default is RawDPI, so that line repeats the raw reading. Pass
// EffectiveDPI to query what the label says.
func WithEffectiveDpiType(t MonitorDpiType) Option {
	return func(o *options) {
		o.effectiveType = t
	}
}

func applyOptions(opts []Option) options {
	o := options{
		out:           os.Stdout,
		effectiveType: RawDPI,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.loader == nil {
		o.loader = SystemLoader()
	}
	if o.binder == nil {
		o.binder = registerFunc
	}
	return o
}
