// Package domain contains the types shared by every GESEL component: the
// comparison kinds, operator metadata, the interfaces implemented by adapters
// and the error taxonomy.
package domain

// Registry maps operator symbols to their [OperatorSpec]. A registry is
// populated once and then only read, concurrent reads are safe once every
// Register call has returned.
type Registry interface {
	// Register adds an operator. Registering a symbol that already exists
	// with the same definition is a no-op; a different definition returns
	// [ErrDuplicateOperator].
	Register(spec OperatorSpec) error
	// Resolve returns the spec for a symbol or [ErrUnknownOperator].
	Resolve(symbol string) (OperatorSpec, error)
	// All returns every registered spec ordered by symbol.
	All() []OperatorSpec
	// Longest returns the spec with the longest symbol that is a prefix of
	// input. Symbols share prefixes ("*=", "*+=", "**="), so tokenizers
	// must use this longest-match-first lookup.
	Longest(input string) (OperatorSpec, bool)
	// Symbols returns every symbol ordered by descending length, then
	// lexically.
	Symbols() []string
	// Len returns the number of registered operators.
	Len() int
}

// Comparer compares scalar values loosely: numeric strings compare as
// numbers, everything else compares by its string form.
type Comparer interface {
	// Equal reports whether both values are loosely equal. Equal is
	// symmetric.
	Equal(a, b any) bool
	// Compare returns -1, 0 or 1.
	Compare(a, b any) int
}

// WordSplitter splits free text into the words used by word-based
// operators.
type WordSplitter interface {
	// Split returns the words of text in order. Empty text returns no
	// words.
	Split(text string) []string
}

// FieldResolver turns a candidate and a field name into the values the
// operators compare against.
type FieldResolver interface {
	// Resolve never fails: a field that cannot be found resolves to a
	// single empty string with Found set to false.
	Resolve(candidate any, field string) Resolved
}

// FieldResolvable is implemented by candidates that know how to look up their
// own fields. The returned value may be a scalar, a slice, or another object.
type FieldResolvable interface {
	ResolveField(field string) (value any, ok bool)
}
