package selector

import "github.com/vinicius-lino-figueiredo/gesel/domain"

type selectorOptions struct {
	registry   domain.Registry
	resolver   domain.FieldResolver
	not        *bool
	group      string
	quote      rune
	forceMatch *bool
}

// WithRegistry sets the registry used to resolve the operator symbol.
func WithRegistry(r domain.Registry) Option {
	return func(o *selectorOptions) {
		o.registry = r
	}
}

// WithResolver sets the resolver used to read candidate fields.
func WithResolver(r domain.FieldResolver) Option {
	return func(o *selectorOptions) {
		o.resolver = r
	}
}

// WithNot sets the negation flag, overriding a "!" prefix in the field.
func WithNot(not bool) Option {
	return func(o *selectorOptions) {
		o.not = &not
	}
}

// WithGroup sets the group label.
func WithGroup(group string) Option {
	return func(o *selectorOptions) {
		o.group = group
	}
}

// WithQuote sets the opening quote used when rendering the value.
func WithQuote(q rune) Option {
	return func(o *selectorOptions) {
		o.quote = q
	}
}

// WithForceMatch makes the selector always return match.
func WithForceMatch(match bool) Option {
	return func(o *selectorOptions) {
		o.forceMatch = &match
	}
}

// Option configures selector behavior through the functional options pattern.
type Option func(*selectorOptions)
