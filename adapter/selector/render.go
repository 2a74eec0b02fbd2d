package selector

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/vinicius-lino-figueiredo/gesel"))

var quotes = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'[':  ']',
	'{':  '}',
	'(':  ')',
}

// ClosingQuote returns the rune closing the quote opened by q.
func ClosingQuote(q rune) (rune, bool) {
	c, ok := quotes[q]
	return c, ok
}

// String renders the selector as "[!][group@]field1|field2OPvalue1|value2",
// with the value wrapped in the selector quotes if any.
func (s *Selector) String() string {
	var sb strings.Builder
	if s.not {
		sb.WriteByte('!')
	}
	if s.group != "" {
		sb.WriteString(s.group)
		sb.WriteByte('@')
	}
	sb.WriteString(s.Field())
	sb.WriteString(s.spec.Symbol)
	if s.quote != 0 {
		sb.WriteRune(s.quote)
	}
	sb.WriteString(joinValues(s.values))
	if c, ok := ClosingQuote(s.quote); ok {
		sb.WriteRune(c)
	}
	return sb.String()
}

// GoString implements [fmt.GoStringer], listing every attribute.
func (s *Selector) GoString() string {
	force := "<nil>"
	if s.forceMatch != nil {
		force = fmt.Sprint(*s.forceMatch)
	}
	return fmt.Sprintf(
		"selector.Selector{Fields: %q, Values: %#v, Operator: %q, Kind: %s, Not: %t, Group: %q, Quote: %q, ForceMatch: %s}",
		s.fields, s.values, s.spec.Symbol, s.spec.Kind, s.not, s.group, s.quote, force,
	)
}

// UniqueID returns a name based UUID derived from [Selector.String]. Equal
// strings give equal ids.
func (s *Selector) UniqueID() string {
	return uuid.NewSHA1(namespace, []byte(s.String())).String()
}
