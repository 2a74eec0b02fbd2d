// Package operator contains the closed set of selector operators, their
// metadata and the predicates used to evaluate them in memory.
package operator

import (
	"strconv"

	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

// Operator identifies one of the supported operators. The zero value is not a
// valid operator.
type Operator uint8

// Supported operators, in declaration order.
const (
	Equal Operator = iota + 1
	NotEqual
	GreaterThan
	LessThan
	GreaterThanEqual
	LessThanEqual
	ContainsPhrase
	ContainsPhraseExpand
	ContainsLike
	ContainsWords
	ContainsWordsPartial
	ContainsWordsLive
	ContainsWordsLike
	ContainsWordsExpand
	ContainsAnyWords
	ContainsAnyWordsPartial
	ContainsAnyWordsLike
	ContainsMatch
	ContainsMatchExpand
	ContainsAdvanced
	Starts
	StartsLike
	Ends
	EndsLike
	Bitwise

	count = iota + 1
)

type metadata struct {
	symbol      string
	name        string
	kind        domain.ComparisonKind
	label       string
	description string
}

var table = [count]metadata{
	Equal: {
		symbol: "=", name: "Equal", kind: domain.Exact,
		label:       "Equals",
		description: "Given value is equal to the field value",
	},
	NotEqual: {
		symbol: "!=", name: "NotEqual", kind: domain.Exact,
		label:       "Not equals",
		description: "Given value is not equal to any of the field values",
	},
	GreaterThan: {
		symbol: ">", name: "GreaterThan", kind: domain.Sort,
		label:       "Greater than",
		description: "Field value is greater than the given value",
	},
	LessThan: {
		symbol: "<", name: "LessThan", kind: domain.Sort,
		label:       "Less than",
		description: "Field value is less than the given value",
	},
	GreaterThanEqual: {
		symbol: ">=", name: "GreaterThanEqual", kind: domain.Sort,
		label:       "Greater than or equal",
		description: "Field value is greater than or equal to the given value",
	},
	LessThanEqual: {
		symbol: "<=", name: "LessThanEqual", kind: domain.Sort,
		label:       "Less than or equal",
		description: "Field value is less than or equal to the given value",
	},
	ContainsPhrase: {
		symbol: "*=", name: "ContainsPhrase", kind: domain.Find,
		label:       "Contains phrase",
		description: "Given phrase appears in the field value bounded by word boundaries",
	},
	ContainsPhraseExpand: {
		symbol: "*+=", name: "ContainsPhraseExpand", kind: domain.Find | domain.Expand | domain.Database,
		label:       "Contains phrase expand",
		description: "Given phrase or an expanded form of it appears in the field value",
	},
	ContainsLike: {
		symbol: "%=", name: "ContainsLike", kind: domain.Find | domain.Like,
		label:       "Contains text like",
		description: "Given text appears anywhere in the field value",
	},
	ContainsWords: {
		symbol: "~=", name: "ContainsWords", kind: domain.Find,
		label:       "Contains all words",
		description: "All given words appear as whole words in the field value, in any order",
	},
	ContainsWordsPartial: {
		symbol: "~*=", name: "ContainsWordsPartial", kind: domain.Find,
		label:       "Contains all partial words",
		description: "All given words appear at least as the start of words in the field value",
	},
	ContainsWordsLive: {
		symbol: "~~=", name: "ContainsWordsLive", kind: domain.Find,
		label:       "Contains all words live",
		description: "All given words appear as whole words, the last one may be partial",
	},
	ContainsWordsLike: {
		symbol: "~%=", name: "ContainsWordsLike", kind: domain.Find | domain.Like,
		label:       "Contains all words like",
		description: "All given words appear anywhere in the field value",
	},
	ContainsWordsExpand: {
		symbol: "~+=", name: "ContainsWordsExpand", kind: domain.Find | domain.Expand,
		label:       "Contains all words expand",
		description: "All given words or expanded forms of them appear as whole words",
	},
	ContainsAnyWords: {
		symbol: "~|=", name: "ContainsAnyWords", kind: domain.Find,
		label:       "Contains any words",
		description: "At least one given word appears as a whole word in the field value",
	},
	ContainsAnyWordsPartial: {
		symbol: "~|*=", name: "ContainsAnyWordsPartial", kind: domain.Find,
		label:       "Contains any partial words",
		description: "At least one given word appears at least as the start of a word",
	},
	ContainsAnyWordsLike: {
		symbol: "~|%=", name: "ContainsAnyWordsLike", kind: domain.Find | domain.Like,
		label:       "Contains any words like",
		description: "At least one given word appears anywhere in the field value",
	},
	ContainsMatch: {
		symbol: "**=", name: "ContainsMatch", kind: domain.Find | domain.Database,
		label:       "Contains match",
		description: "Field value is relevant to the given words",
	},
	ContainsMatchExpand: {
		symbol: "**+=", name: "ContainsMatchExpand", kind: domain.Find | domain.Expand | domain.Database,
		label:       "Contains match expand",
		description: "Field value is relevant to the given words or expanded forms of them",
	},
	ContainsAdvanced: {
		symbol: "#=", name: "ContainsAdvanced", kind: domain.Find | domain.Command,
		label:       "Advanced text search",
		description: `Field value satisfies a query of +required, -excluded, optional, prefix* and "quoted phrase" terms`,
	},
	Starts: {
		symbol: "^=", name: "Starts", kind: domain.Find,
		label:       "Starts with",
		description: "Field value starts with the given text",
	},
	StartsLike: {
		symbol: "%^=", name: "StartsLike", kind: domain.Find | domain.Like,
		label:       "Starts like",
		description: "Field value starts with the given text",
	},
	Ends: {
		symbol: "$=", name: "Ends", kind: domain.Find,
		label:       "Ends with",
		description: "Field value ends with the given text",
	},
	EndsLike: {
		symbol: "%$=", name: "EndsLike", kind: domain.Find | domain.Like,
		label:       "Ends like",
		description: "Field value ends with the given text",
	},
	Bitwise: {
		symbol: "&", name: "Bitwise", kind: domain.Bitwise,
		label:       "Bitwise AND",
		description: "Field value and given value have at least one bit in common",
	},
}

var bySymbol = func() map[string]Operator {
	m := make(map[string]Operator, count)
	for _, op := range All() {
		m[op.Symbol()] = op
	}
	return m
}()

// All returns every operator in declaration order.
func All() []Operator {
	ops := make([]Operator, 0, count-1)
	for op := Equal; op < count; op++ {
		ops = append(ops, op)
	}
	return ops
}

// Lookup returns the operator written as symbol.
func Lookup(symbol string) (Operator, bool) {
	op, ok := bySymbol[symbol]
	return op, ok
}

// Valid reports whether op is one of the declared operators.
func (op Operator) Valid() bool {
	return op > 0 && op < count
}

func (op Operator) meta() metadata {
	if !op.Valid() {
		return metadata{}
	}
	return table[op]
}

// Symbol returns the operator as written in a selector string.
func (op Operator) Symbol() string {
	return op.meta().symbol
}

// Name returns the Go identifier of the operator.
func (op Operator) Name() string {
	return op.meta().name
}

// Kind returns the comparison kind of the operator.
func (op Operator) Kind() domain.ComparisonKind {
	return op.meta().kind
}

// Label returns a short human readable name.
func (op Operator) Label() string {
	return op.meta().label
}

// Description returns what the operator matches.
func (op Operator) Description() string {
	return op.meta().description
}

// String implements [fmt.Stringer].
func (op Operator) String() string {
	if !op.Valid() {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return op.Name() + "(" + op.Symbol() + ")"
}

