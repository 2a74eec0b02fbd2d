package operator

import "github.com/vinicius-lino-figueiredo/gesel/domain"

// WithComparer sets the comparer used by equality and ordering operators.
func WithComparer(c domain.Comparer) Option {
	return func(p *Predicates) {
		p.comparer = c
	}
}

// WithWordSplitter sets the splitter used to read the words of stored values
// in word based operators.
func WithWordSplitter(s domain.WordSplitter) Option {
	return func(p *Predicates) {
		p.splitter = s
	}
}

// Option configures predicate behavior through the functional options pattern.
type Option func(*Predicates)
