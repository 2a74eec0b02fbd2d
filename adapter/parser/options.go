package parser

import (
	"github.com/vinicius-lino-figueiredo/gesel/adapter/selector"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

// WithRegistry sets the registry used to find operators. It is also given to
// every parsed selector.
func WithRegistry(r domain.Registry) Option {
	return func(p *Parser) {
		p.registry = r
	}
}

// WithSelectorOptions sets options applied to every parsed selector.
func WithSelectorOptions(options ...selector.Option) Option {
	return func(p *Parser) {
		p.selectorOptions = append(p.selectorOptions, options...)
	}
}

// Option configures parser behavior through the functional options pattern.
type Option func(*Parser)
