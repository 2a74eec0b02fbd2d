// Package parser reads selectors from their textual form,
// "[!][group@]field1|field2OPvalue1|value2". Several selectors are separated
// by commas.
package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vinicius-lino-figueiredo/gesel/adapter/registry"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/selector"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

// Parser reads selector strings. Operators are recognized with
// [domain.Registry.Longest], so a symbol sharing a prefix with another one
// ("*=" and "*+=") is always read as the longest one.
type Parser struct {
	registry        domain.Registry
	selectorOptions []selector.Option
}

// NewParser returns a new Parser.
func NewParser(options ...Option) *Parser {
	p := &Parser{}
	for _, option := range options {
		option(p)
	}
	if p.registry == nil {
		p.registry = registry.Default()
	}
	return p
}

// Parse reads a single selector. The value may be wrapped in one of the
// quote pairs "", '', [], {} or (), which is kept as the selector quote.
// Values are split on "|".
func (p *Parser) Parse(s string) (*selector.Selector, error) {
	s = strings.TrimSpace(s)

	start := 0
	if strings.HasPrefix(s, "!") {
		start = 1
	}
	var (
		spec domain.OperatorSpec
		at   = -1
	)
	for i := start; i < len(s); i++ {
		if sp, ok := p.registry.Longest(s[i:]); ok {
			spec, at = sp, i
			break
		}
	}
	if at < 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrNoOperator, domain.ErrInvalidArgument{
			Argument: "selector",
			Reason:   "no operator found",
			Actual:   s,
		})
	}

	left := strings.TrimSpace(s[:at])
	right := strings.TrimSpace(s[at+len(spec.Symbol):])

	not := strings.HasPrefix(left, "!")
	left = strings.TrimPrefix(left, "!")
	group := ""
	if g, f, ok := strings.Cut(left, "@"); ok {
		group, left = strings.TrimSpace(g), f
	}

	quote, right := unquote(right)

	options := make([]selector.Option, 0, len(p.selectorOptions)+4)
	options = append(options, selector.WithRegistry(p.registry))
	options = append(options, p.selectorOptions...)
	options = append(options,
		selector.WithNot(not),
		selector.WithGroup(group),
		selector.WithQuote(quote),
	)
	return selector.NewSelector(left, spec.Symbol, strings.Split(right, "|"), options...)
}

// unquote removes a quote pair around value and returns the opening quote.
func unquote(value string) (rune, string) {
	if len(value) < 2 {
		return 0, value
	}
	open, size := utf8.DecodeRuneInString(value)
	closing, ok := selector.ClosingQuote(open)
	if !ok {
		return 0, value
	}
	last, lastSize := utf8.DecodeLastRuneInString(value)
	if last != closing {
		return 0, value
	}
	return open, value[size : len(value)-lastSize]
}

// ParseAll reads comma separated selectors. Commas inside a quoted value do
// not separate selectors. Empty items are skipped.
func (p *Parser) ParseAll(s string) ([]*selector.Selector, error) {
	var sels []*selector.Selector
	for n, item := range Split(s) {
		sel, err := p.Parse(item)
		if err != nil {
			return nil, fmt.Errorf("selector %d (%q): %w", n, item, err)
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

// Split splits s on commas outside quoted values. A quote only opens right
// after an operator character, so apostrophes inside words do not.
func Split(s string) []string {
	var (
		items   []string
		closing rune
		last    rune
		begin   int
	)
	for i, r := range s {
		switch {
		case closing != 0:
			if r == closing {
				closing = 0
			}
		case r == ',':
			items = appendItem(items, s[begin:i])
			begin = i + 1
		case strings.ContainsRune("=<>&", last):
			if c, ok := selector.ClosingQuote(r); ok {
				closing = c
			}
		}
		if r != ' ' {
			last = r
		}
	}
	return appendItem(items, s[begin:])
}

func appendItem(items []string, item string) []string {
	if item = strings.TrimSpace(item); item != "" {
		items = append(items, item)
	}
	return items
}
