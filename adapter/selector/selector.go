// Package selector contains [Selector], a single field/operator/value
// condition, and the algorithm matching it against candidates.
package selector

import (
	"slices"
	"strings"

	"github.com/vinicius-lino-figueiredo/gesel/adapter/registry"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/resolver"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
	"github.com/vinicius-lino-figueiredo/gesel/pkg/structure"
)

// Selector is one field/operator/value condition. Multiple fields and
// multiple values form OR groups. The operator cannot change after
// construction.
//
// A Selector may be evaluated concurrently. Setters must not be called while
// it is being evaluated.
type Selector struct {
	fields     []string
	values     []any
	spec       domain.OperatorSpec
	not        bool
	group      string
	quote      rune
	forceMatch *bool
	resolver   domain.FieldResolver
}

// NewSelector returns a selector comparing field with value using the
// operator written as op. field is a string, possibly "|" separated and
// prefixed by "!", or a list of strings. value is a scalar or a list of
// scalars.
func NewSelector(field any, op string, value any, options ...Option) (*Selector, error) {
	opts := selectorOptions{}
	for _, option := range options {
		option(&opts)
	}
	if opts.registry == nil {
		opts.registry = registry.Default()
	}
	if opts.resolver == nil {
		opts.resolver = resolver.NewResolver()
	}

	spec, err := opts.registry.Resolve(op)
	if err != nil {
		return nil, err
	}

	s := &Selector{
		spec:       spec,
		group:      opts.group,
		forceMatch: opts.forceMatch,
		resolver:   opts.resolver,
	}
	if err := s.SetField(field); err != nil {
		return nil, err
	}
	if err := s.SetValue(value); err != nil {
		return nil, err
	}
	if err := s.SetQuote(opts.quote); err != nil {
		return nil, err
	}
	if opts.not != nil {
		s.not = *opts.not
	}
	return s, nil
}

// SetField replaces the fields. A list is joined with "|" first. A leading
// "!" negates the selector and is removed; without it the selector is not
// negated. Repeated fields are kept once. On error the selector is left
// unchanged.
func (s *Selector) SetField(field any) error {
	var joined string
	switch f := field.(type) {
	case string:
		joined = f
	case []string:
		joined = strings.Join(f, "|")
	default:
		if !structure.IsList(field) {
			return domain.ErrInvalidArgument{Argument: "field", Reason: "expected string or list of strings", Actual: field}
		}
		seq, _, err := structure.Seq(field)
		if err != nil {
			return err
		}
		var parts []string
		for v := range seq {
			str, ok := v.(string)
			if !ok {
				return domain.ErrInvalidArgument{Argument: "field", Reason: "expected string or list of strings", Actual: v}
			}
			parts = append(parts, str)
		}
		joined = strings.Join(parts, "|")
	}

	joined = strings.TrimSpace(joined)
	not := strings.HasPrefix(joined, "!")
	joined = strings.TrimPrefix(joined, "!")

	var fields []string
	for f := range strings.SplitSeq(joined, "|") {
		if f = strings.TrimSpace(f); f != "" && !slices.Contains(fields, f) {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return domain.ErrNoFields
	}
	s.fields = fields
	s.not = not
	return nil
}

// SetValue replaces the values. A list becomes an OR group; nil and empty
// lists are stored as the empty string. Values are stored as given, a "|"
// inside a string is only split when matching. On error the selector is left
// unchanged.
func (s *Selector) SetValue(value any) error {
	switch {
	case value == nil:
		s.values = []any{""}
		return nil
	case structure.IsList(value):
		seq, _, err := structure.Seq(value)
		if err != nil {
			return err
		}
		var values []any
		for v := range seq {
			if err := checkScalar(v); err != nil {
				return err
			}
			if v == nil {
				v = ""
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			values = []any{""}
		}
		s.values = values
		return nil
	default:
		if err := checkScalar(value); err != nil {
			return err
		}
		s.values = []any{value}
		return nil
	}
}

func checkScalar(v any) error {
	if structure.IsList(v) || structure.IsObject(v) {
		return domain.ErrInvalidArgument{Argument: "value", Reason: "expected scalar or list of scalars", Actual: v}
	}
	return nil
}

// SetOperator always fails: the operator of a selector is fixed at
// construction.
func (s *Selector) SetOperator(op string) error {
	return domain.ErrImmutableOperator{Operator: s.spec.Symbol, Attempted: op}
}

// SetNot sets the negation flag.
func (s *Selector) SetNot(not bool) {
	s.not = not
}

// SetGroup sets the group label. It has no effect on matching.
func (s *Selector) SetGroup(group string) {
	s.group = group
}

// SetQuote sets the opening quote used by [Selector.String]. Zero removes
// quoting. It has no effect on matching.
func (s *Selector) SetQuote(q rune) error {
	if q != 0 {
		if _, ok := ClosingQuote(q); !ok {
			return domain.ErrInvalidArgument{Argument: "quote", Reason: `expected one of "'[{(`, Actual: string(q)}
		}
	}
	s.quote = q
	return nil
}

// SetForceMatch makes [Selector.Matches] return match for any candidate.
func (s *Selector) SetForceMatch(match bool) {
	s.forceMatch = &match
}

// ClearForceMatch restores regular matching.
func (s *Selector) ClearForceMatch() {
	s.forceMatch = nil
}

// Fields returns the field names. The result is never empty.
func (s *Selector) Fields() []string {
	return slices.Clone(s.fields)
}

// Values returns the stored values. The result is never empty.
func (s *Selector) Values() []any {
	return slices.Clone(s.values)
}

// Field returns the fields joined with "|".
func (s *Selector) Field() string {
	return strings.Join(s.fields, "|")
}

// Value returns the single stored value, or the values joined with "|".
func (s *Selector) Value() any {
	if len(s.values) == 1 {
		return s.values[0]
	}
	return joinValues(s.values)
}

func joinValues(values []any) string {
	strs := make([]string, len(values))
	for n, v := range values {
		strs[n] = structure.ToString(v)
	}
	return strings.Join(strs, "|")
}

// Operator returns the operator symbol.
func (s *Selector) Operator() string {
	return s.spec.Symbol
}

// ComparisonKind returns the classification of the operator.
func (s *Selector) ComparisonKind() domain.ComparisonKind {
	return s.spec.Kind
}

// Spec returns the operator spec.
func (s *Selector) Spec() domain.OperatorSpec {
	return s.spec
}

// Label returns the operator label.
func (s *Selector) Label() string {
	return s.spec.Label
}

// Description returns the operator description.
func (s *Selector) Description() string {
	return s.spec.Description
}

// Not reports whether the selector is negated.
func (s *Selector) Not() bool {
	return s.not
}

// Group returns the group label.
func (s *Selector) Group() string {
	return s.group
}

// Quote returns the opening quote, or zero.
func (s *Selector) Quote() rune {
	return s.quote
}

// ForceMatch returns the forced result and whether one is set.
func (s *Selector) ForceMatch() (match bool, set bool) {
	if s.forceMatch == nil {
		return false, false
	}
	return *s.forceMatch, true
}

// Clone returns a deep copy of s.
func (s *Selector) Clone() *Selector {
	c := *s
	c.fields = slices.Clone(s.fields)
	c.values = slices.Clone(s.values)
	if s.forceMatch != nil {
		f := *s.forceMatch
		c.forceMatch = &f
	}
	return &c
}

// Equal reports whether both selectors have the same fields, operator,
// negation and values. Values are compared by their string form after
// splitting on "|". Group, quote and force match are ignored.
func (s *Selector) Equal(other *Selector) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.spec.Symbol == other.spec.Symbol &&
		s.not == other.not &&
		slices.Equal(s.fields, other.fields) &&
		slices.Equal(stringValues(s.matchValues()), stringValues(other.matchValues()))
}

func stringValues(values []any) []string {
	strs := make([]string, len(values))
	for n, v := range values {
		strs[n] = structure.ToString(v)
	}
	return strs
}
