package decoder

import (
	"github.com/vinicius-lino-figueiredo/gesel/adapter/selector"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

// WithRegistry sets the registry given to decoded selectors.
func WithRegistry(r domain.Registry) Option {
	return func(d *Decoder) {
		d.registry = r
	}
}

// WithSelectorOptions sets options applied to every decoded selector.
func WithSelectorOptions(options ...selector.Option) Option {
	return func(d *Decoder) {
		d.selectorOptions = append(d.selectorOptions, options...)
	}
}

// Option configures decoder behavior through the functional options pattern.
type Option func(*Decoder)
