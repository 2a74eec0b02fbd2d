package registry

import (
	"log/slog"

	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

type registryOptions struct {
	logger *slog.Logger
	specs  []domain.OperatorSpec
}

// WithLogger sets the logger receiving registration records.
func WithLogger(l *slog.Logger) Option {
	return func(o *registryOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSpecs registers specs when the registry is created.
func WithSpecs(specs ...domain.OperatorSpec) Option {
	return func(o *registryOptions) {
		o.specs = append(o.specs, specs...)
	}
}

// Option configures registry behavior through the functional options pattern.
type Option func(*registryOptions)
