// Package loader reads suites of selectors from YAML streams.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dolmen-go/contextio"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/parser"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/selector"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
	"gopkg.in/yaml.v3"
)

// Loader reads YAML documents holding a sequence of selectors. Each item is
// either a selector string, read by a [parser.Parser], or a mapping, read by a
// [decoder.Decoder].
type Loader struct {
	parser  *parser.Parser
	decoder *decoder.Decoder
}

// NewLoader returns a new Loader.
func NewLoader(options ...Option) *Loader {
	l := &Loader{}
	for _, option := range options {
		option(l)
	}
	if l.parser == nil {
		l.parser = parser.NewParser()
	}
	if l.decoder == nil {
		l.decoder = decoder.NewDecoder()
	}
	return l
}

// Load reads every document of r. Reading stops when ctx is done. A string
// item may hold several comma separated selectors.
func (l *Loader) Load(ctx context.Context, r io.Reader) ([]*selector.Selector, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	dec := yaml.NewDecoder(contextio.NewReader(ctx, r))

	var sels []*selector.Selector
	n := 0
	for {
		var items []any
		if err := dec.Decode(&items); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("read selectors: %w", err)
		}
		for _, item := range items {
			loaded, err := l.item(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", n, err)
			}
			sels = append(sels, loaded...)
			n++
		}
	}
	return sels, nil
}

func (l *Loader) item(item any) ([]*selector.Selector, error) {
	switch t := item.(type) {
	case string:
		return l.parser.ParseAll(t)
	case map[string]any:
		sel, err := l.decoder.Decode(t)
		if err != nil {
			return nil, err
		}
		return []*selector.Selector{sel}, nil
	default:
		return nil, domain.ErrInvalidArgument{Argument: "item", Reason: "expected selector string or mapping", Actual: item}
	}
}
