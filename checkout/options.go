package checkout

import "go.uber.org/zap"

type option struct {
	Logger *zap.Logger
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*option)

// Logger logs every product visit of the summary at debug level.
func Logger(logger *zap.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}
