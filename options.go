package groupcfg

import "go.uber.org/zap"

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger attaches a logger for debug-level state transition events
// (group selection, override push/release, reset). The default is a no-op
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithName sets the program name used in command line help text. The
// default is "config".
func WithName(name string) Option {
	return func(r *Registry) {
		if name != "" {
			r.name = name
		}
	}
}
