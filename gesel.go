// Package gesel provides selectors: small "field OPERATOR value" conditions
// that can be matched against values in memory and classified for query
// builders.
//
// A selector is created with [New], or read from text with [Parse] and
// [ParseAll]:
//
//	sel, err := gesel.Parse("title|body*=foo, status!=1|2")
//
// Multiple fields and multiple values are OR groups. [Selector.Matches]
// evaluates a selector against a candidate, which may be a scalar, a map, a
// struct or an implementation of [FieldResolvable]. Query builders read
// [Selector.ComparisonKind] instead.
package gesel

import (
	"context"
	"io"

	"github.com/vinicius-lino-figueiredo/gesel/adapter/data"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/loader"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/operator"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/parser"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/registry"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/selector"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

var (
	// ErrNoFields is returned when a selector is created without field.
	ErrNoFields = domain.ErrNoFields
	// ErrNoOperator is returned by [Parse] when the text has no known
	// operator.
	ErrNoOperator = domain.ErrNoOperator
	// ErrEmptySymbol is returned when registering an operator without
	// symbol.
	ErrEmptySymbol = domain.ErrEmptySymbol
	// ErrNilPredicate is returned when registering an operator without
	// predicate.
	ErrNilPredicate = domain.ErrNilPredicate
)

// ErrUnknownOperator is returned when a selector uses an operator that is not
// registered.
type ErrUnknownOperator = domain.ErrUnknownOperator

// ErrDuplicateOperator is returned when a symbol is registered twice with
// different definitions.
type ErrDuplicateOperator = domain.ErrDuplicateOperator

// ErrImmutableOperator is returned by [Selector.SetOperator].
type ErrImmutableOperator = domain.ErrImmutableOperator

// ErrInvalidArgument is returned when a selector receives a field, value or
// quote of an unexpected shape.
type ErrInvalidArgument = domain.ErrInvalidArgument

// ComparisonKind classifies operators for query builders.
type ComparisonKind = domain.ComparisonKind

// Comparison kinds.
const (
	Exact    = domain.Exact
	Sort     = domain.Sort
	Find     = domain.Find
	Like     = domain.Like
	Bitwise  = domain.Bitwise
	Expand   = domain.Expand
	Command  = domain.Command
	Database = domain.Database
)

// Selector is a single field/operator/value condition.
type Selector = selector.Selector

// SelectorOption configures a [Selector].
type SelectorOption = selector.Option

// Operator identifies a built-in operator.
type Operator = operator.Operator

// OperatorSpec is the metadata of a registered operator.
type OperatorSpec = domain.OperatorSpec

// Predicate compares a candidate value with a stored value.
type Predicate = domain.Predicate

// Registry maps operator symbols to specs.
type Registry = domain.Registry

// Comparer compares scalar values loosely.
type Comparer = domain.Comparer

// WordSplitter splits text into words.
type WordSplitter = domain.WordSplitter

// FieldResolver reads candidate fields.
type FieldResolver = domain.FieldResolver

// FieldResolvable is implemented by candidates resolving their own fields.
type FieldResolvable = domain.FieldResolvable

// Resolved is a resolved candidate field.
type Resolved = domain.Resolved

// M is a map candidate whose nested maps are reachable with dotted paths.
type M = data.M

// Definition is the map or struct form of a selector, read by [Decode].
type Definition = decoder.Definition

// New creates a selector. field is a string, possibly "|" separated and
// prefixed with "!", or a list of strings. value is a scalar or a list of
// scalars. op must be registered in the registry, [DefaultRegistry] unless
// [WithRegistry] is given.
func New(field any, op string, value any, options ...SelectorOption) (*Selector, error) {
	return selector.NewSelector(field, op, value, options...)
}

// Parse reads one selector written as "[!][group@]field1|field2OPvalue1|value2".
func Parse(s string, options ...SelectorOption) (*Selector, error) {
	return parser.NewParser(parser.WithSelectorOptions(options...)).Parse(s)
}

// ParseAll reads comma separated selectors.
func ParseAll(s string, options ...SelectorOption) ([]*Selector, error) {
	return parser.NewParser(parser.WithSelectorOptions(options...)).ParseAll(s)
}

// Decode creates a selector from a map or struct with the keys of
// [Definition].
func Decode(source any, options ...SelectorOption) (*Selector, error) {
	return decoder.NewDecoder(decoder.WithSelectorOptions(options...)).Decode(source)
}

// Encode returns the [Definition] of a selector.
func Encode(sel *Selector) Definition {
	return decoder.Encode(sel)
}

// Load reads selectors from a YAML stream holding a sequence of selector
// strings and definitions.
func Load(ctx context.Context, r io.Reader, options ...SelectorOption) ([]*Selector, error) {
	l := loader.NewLoader(
		loader.WithParser(parser.NewParser(parser.WithSelectorOptions(options...))),
		loader.WithDecoder(decoder.NewDecoder(decoder.WithSelectorOptions(options...))),
	)
	return l.Load(ctx, r)
}

// DefaultRegistry returns the registry holding every built-in operator.
func DefaultRegistry() Registry {
	return registry.Default()
}

// NewRegistry returns an empty registry, or one holding specs.
func NewRegistry(specs ...OperatorSpec) (Registry, error) {
	return registry.NewRegistry(registry.WithSpecs(specs...))
}

// Operators returns the spec of every built-in operator.
func Operators() []OperatorSpec {
	return operator.Specs()
}

// WithRegistry sets the registry resolving the selector operator.
func WithRegistry(r Registry) SelectorOption {
	return selector.WithRegistry(r)
}

// WithResolver sets the resolver reading candidate fields.
func WithResolver(r FieldResolver) SelectorOption {
	return selector.WithResolver(r)
}

// WithNot sets the negation flag.
func WithNot(not bool) SelectorOption {
	return selector.WithNot(not)
}

// WithGroup sets the group label.
func WithGroup(group string) SelectorOption {
	return selector.WithGroup(group)
}

// WithQuote sets the quote wrapping the rendered value.
func WithQuote(q rune) SelectorOption {
	return selector.WithQuote(q)
}

// WithForceMatch makes the selector always return match.
func WithForceMatch(match bool) SelectorOption {
	return selector.WithForceMatch(match)
}
