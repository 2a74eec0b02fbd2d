package selector

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/gesel/adapter/operator"
)

// Matches reports whether candidate satisfies the selector. A forced result
// is returned as is. Otherwise each field is resolved on the candidate and
// the operator predicate is evaluated for every pair of stored and candidate
// values; the first field reaching the required number of matching pairs
// matches.
//
// One pair is required, unless exactly one of "operator is !=" and "selector
// is negated" holds: every pair must then match, so "x!=a|b" only matches
// when x differs from both a and b.
func (s *Selector) Matches(candidate any) bool {
	if s.forceMatch != nil {
		return *s.forceMatch
	}

	stored := s.matchValues()
	universal := (s.spec.Symbol == operator.NotEqual.Symbol()) != s.not

	for _, field := range s.fields {
		resolved := s.resolver.Resolve(candidate, field)
		need := 1
		if universal {
			need = len(stored) * len(resolved.Values)
		}
		count := 0
		for _, v1 := range stored {
			for _, v2 := range resolved.Values {
				var a, b any = v2, v1
				if isEmpty(a) && isEmpty(b) {
					a, b = "", ""
				}
				if !s.Evaluate(s.spec.Predicate(a, b)) {
					continue
				}
				if count++; count >= need {
					return true
				}
			}
		}
	}
	return false
}

// Evaluate applies the force match and negation flags to a raw predicate
// result.
func (s *Selector) Evaluate(result bool) bool {
	if s.forceMatch != nil {
		return *s.forceMatch
	}
	if s.not {
		return !result
	}
	return result
}

// matchValues returns the stored values with strings split on "|".
func (s *Selector) matchValues() []any {
	values := make([]any, 0, len(s.values))
	for _, v := range s.values {
		str, ok := v.(string)
		if !ok || !strings.Contains(str, "|") {
			values = append(values, v)
			continue
		}
		for part := range strings.SplitSeq(str, "|") {
			values = append(values, part)
		}
	}
	return values
}

// isEmpty reports whether v is nil or "". Zero values are not empty.
func isEmpty(v any) bool {
	return v == nil || v == ""
}
