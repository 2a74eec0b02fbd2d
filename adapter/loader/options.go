package loader

import (
	"github.com/vinicius-lino-figueiredo/gesel/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/parser"
)

// WithParser sets the parser reading string items.
func WithParser(p *parser.Parser) Option {
	return func(l *Loader) {
		l.parser = p
	}
}

// WithDecoder sets the decoder reading mapping items.
func WithDecoder(d *decoder.Decoder) Option {
	return func(l *Loader) {
		l.decoder = d
	}
}

// Option configures loader behavior through the functional options pattern.
type Option func(*Loader)
