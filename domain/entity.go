package domain

import (
	"strings"
)

// ComparisonKind is a set of flags describing how an operator should be
// executed by a consumer that translates selectors into another query
// language. Flags are independent and can be combined with bitwise or. The
// in-memory matcher never reads them.
type ComparisonKind uint16

// Comparison kinds. Order is part of the public API, new flags must be
// appended.
const (
	// Exact marks operators comparing whole values.
	Exact ComparisonKind = 1 << iota
	// Sort marks ordering operators (<, >, <=, >=).
	Sort
	// Find marks text-search operators.
	Find
	// Like marks operators that map to a LIKE-style pattern search.
	Like
	// Bitwise marks the bitwise-and operator.
	Bitwise
	// Expand asks the consumer to expand the search terms (synonyms,
	// stems). It has no in-memory effect.
	Expand
	// Command marks operators whose value is a small command language.
	Command
	// Database marks operators that only give full results in a database
	// (relevance ranking, full-text indexes).
	Database
)

var kindNames = [...]struct {
	kind ComparisonKind
	name string
}{
	{Exact, "Exact"},
	{Sort, "Sort"},
	{Find, "Find"},
	{Like, "Like"},
	{Bitwise, "Bitwise"},
	{Expand, "Expand"},
	{Command, "Command"},
	{Database, "Database"},
}

// Has reports whether every flag in f is set in k.
func (k ComparisonKind) Has(f ComparisonKind) bool {
	return f != 0 && k&f == f
}

// Any reports whether at least one flag in f is set in k.
func (k ComparisonKind) Any(f ComparisonKind) bool {
	return k&f != 0
}

// String returns the flag names joined by "|", such as "Find|Like". A zero
// kind returns "None".
func (k ComparisonKind) String() string {
	if k == 0 {
		return "None"
	}
	names := make([]string, 0, len(kindNames))
	for _, kn := range kindNames {
		if k&kn.kind != 0 {
			names = append(names, kn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseComparisonKind reads a "|" separated list of flag names, case
// insensitive. Empty input and "None" return a zero kind.
func ParseComparisonKind(s string) (ComparisonKind, error) {
	var k ComparisonKind
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return 0, nil
	}
Names:
	for name := range strings.SplitSeq(s, "|") {
		name = strings.TrimSpace(name)
		for _, kn := range kindNames {
			if strings.EqualFold(kn.name, name) {
				k |= kn.kind
				continue Names
			}
		}
		return 0, ErrInvalidArgument{Argument: "kind", Reason: "unknown comparison kind", Actual: name}
	}
	return k, nil
}

// Predicate compares a candidate value (first argument) against a value
// stored in a selector (second argument). Predicates return the raw result of
// the comparison: negation is applied by the caller.
type Predicate func(candidate, stored any) bool

// OperatorSpec is the static metadata of one operator.
type OperatorSpec struct {
	// ID identifies the operator implementation. Two specs with the same
	// ID share the same predicate.
	ID uint8
	// Symbol is the operator as written in a selector string, such as
	// "*=".
	Symbol string
	// Kind classifies the operator for query builders.
	Kind ComparisonKind
	// Label is a short human name.
	Label string
	// Description explains what the operator matches.
	Description string
	// Predicate is the comparison function.
	Predicate Predicate
}

// SameDefinition reports whether two specs describe the same operator. The
// predicate is not compared because functions are not comparable, ID stands
// in for it.
func (o OperatorSpec) SameDefinition(other OperatorSpec) bool {
	return o.ID == other.ID &&
		o.Symbol == other.Symbol &&
		o.Kind == other.Kind &&
		o.Label == other.Label &&
		o.Description == other.Description
}

// Resolved is the value of a candidate field after resolution. A scalar is
// returned as a one element list.
type Resolved struct {
	// Values contains the string form of every candidate value.
	Values []string
	// Found is false when the field could not be resolved on the
	// candidate.
	Found bool
}
