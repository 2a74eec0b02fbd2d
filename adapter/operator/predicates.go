package operator

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/gesel/adapter/comparer"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/textsearch"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/wordsplitter"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
	"github.com/vinicius-lino-figueiredo/gesel/pkg/structure"
)

// Predicates evaluates operators in memory. Every method receives the
// candidate value first and the value stored in the selector second, and
// returns the raw result: negation is applied by the selector.
type Predicates struct {
	comparer domain.Comparer
	splitter domain.WordSplitter
}

// NewPredicates returns a new Predicates.
func NewPredicates(options ...Option) *Predicates {
	p := &Predicates{
		comparer: comparer.NewComparer(),
		splitter: wordsplitter.NewSplitter(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Match evaluates op against a candidate value and a stored value. Invalid
// operators never match.
func (p *Predicates) Match(op Operator, candidate, stored any) bool {
	switch op {
	case Equal:
		return p.comparer.Equal(candidate, stored)
	case NotEqual:
		return !p.comparer.Equal(candidate, stored)
	case GreaterThan:
		return p.comparer.Compare(candidate, stored) > 0
	case LessThan:
		return p.comparer.Compare(candidate, stored) < 0
	case GreaterThanEqual:
		return p.comparer.Compare(candidate, stored) >= 0
	case LessThanEqual:
		return p.comparer.Compare(candidate, stored) <= 0
	case ContainsPhrase, ContainsPhraseExpand:
		return p.containsPhrase(str(candidate), str(stored))
	case ContainsLike:
		return textsearch.ContainsFold(str(candidate), str(stored))
	case ContainsWords, ContainsWordsExpand:
		return p.allWords(str(candidate), str(stored), textsearch.ContainsWord)
	case ContainsWordsPartial:
		return p.allWords(str(candidate), str(stored), textsearch.ContainsPrefix)
	case ContainsWordsLive:
		return p.containsWordsLive(str(candidate), str(stored))
	case ContainsWordsLike:
		return p.allWords(str(candidate), str(stored), textsearch.ContainsFold)
	case ContainsAnyWords, ContainsMatch, ContainsMatchExpand:
		return p.anyWord(str(candidate), str(stored), textsearch.ContainsWord)
	case ContainsAnyWordsPartial:
		return p.anyWord(str(candidate), str(stored), textsearch.ContainsPrefix)
	case ContainsAnyWordsLike:
		return p.anyWord(str(candidate), str(stored), textsearch.ContainsFold)
	case ContainsAdvanced:
		return textsearch.CachedCommand(str(stored)).Match(str(candidate))
	case Starts, StartsLike:
		return textsearch.HasPrefixFold(strings.TrimSpace(str(candidate)), str(stored))
	case Ends, EndsLike:
		return textsearch.HasSuffixFold(strings.TrimSpace(str(candidate)), strings.TrimSpace(str(stored)))
	case Bitwise:
		return structure.AsInt64(candidate)&structure.AsInt64(stored) != 0
	default:
		return false
	}
}

// Predicate returns op bound to p.
func (p *Predicates) Predicate(op Operator) domain.Predicate {
	return func(candidate, stored any) bool {
		return p.Match(op, candidate, stored)
	}
}

func (p *Predicates) containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return text == ""
	}
	return textsearch.ContainsWord(text, phrase)
}

// allWords reports whether every word of query is found in text by fn. A
// query without words is always found.
func (p *Predicates) allWords(text, query string, fn func(text, word string) bool) bool {
	for _, w := range p.splitter.Split(query) {
		if !fn(text, w) {
			return false
		}
	}
	return true
}

// anyWord reports whether at least one word of query is found in text by fn.
// A query without words is never found.
func (p *Predicates) anyWord(text, query string, fn func(text, word string) bool) bool {
	for _, w := range p.splitter.Split(query) {
		if fn(text, w) {
			return true
		}
	}
	return false
}

func (p *Predicates) containsWordsLive(text, query string) bool {
	words := p.splitter.Split(query)
	for n, w := range words {
		match := textsearch.ContainsWord
		if n == len(words)-1 {
			match = textsearch.ContainsPrefix
		}
		if !match(text, w) {
			return false
		}
	}
	return true
}

func str(v any) string {
	return structure.ToString(v)
}

// Specs returns the spec of every operator, with predicates bound to a
// [Predicates] built from options.
func Specs(options ...Option) []domain.OperatorSpec {
	p := NewPredicates(options...)
	ops := All()
	specs := make([]domain.OperatorSpec, len(ops))
	for n, op := range ops {
		specs[n] = p.Spec(op)
	}
	return specs
}

// Spec returns the spec of op with its predicate bound to p.
func (p *Predicates) Spec(op Operator) domain.OperatorSpec {
	return domain.OperatorSpec{
		ID:          uint8(op),
		Symbol:      op.Symbol(),
		Kind:        op.Kind(),
		Label:       op.Label(),
		Description: op.Description(),
		Predicate:   p.Predicate(op),
	}
}
