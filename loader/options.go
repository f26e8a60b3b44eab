package loader

import "go.uber.org/zap"

// Option configures Load and LoadFile.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger sets the logger used for skip warnings and the load summary.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
