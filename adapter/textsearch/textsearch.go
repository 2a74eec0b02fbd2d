// Package textsearch builds the word-boundary patterns used by text operators.
// Every pattern is built from escaped user input, so values may contain any
// regular expression metacharacter.
package textsearch

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

const (
	boundaryStart = `(?:^|[^\p{L}\p{M}\p{N}_])`
	boundaryEnd   = `(?:$|[^\p{L}\p{M}\p{N}_])`
)

type patternKey struct {
	phrase string
	prefix bool
}

// patterns holds every compiled expression by phrase and prefix flag.
// Selector values are few and reused across candidates.
var patterns sync.Map

// Fold returns the case-folded form of s, used for case-insensitive
// comparison.
func Fold(s string) string {
	// a Caser keeps state between calls, so each call gets its own
	return cases.Fold().String(s)
}

// ContainsFold reports whether sub is within s ignoring case.
func ContainsFold(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}

// HasPrefixFold reports whether s begins with prefix ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(Fold(s), Fold(prefix))
}

// HasSuffixFold reports whether s ends with suffix ignoring case.
func HasSuffixFold(s, suffix string) bool {
	return strings.HasSuffix(Fold(s), Fold(suffix))
}

// Pattern returns a case-insensitive expression matching phrase at a word
// boundary. Whitespace inside phrase matches any run of whitespace. If prefix
// is false the phrase must also end at a word boundary, otherwise it may be
// the beginning of a longer word.
func Pattern(phrase string, prefix bool) *regexp.Regexp {
	key := patternKey{phrase: phrase, prefix: prefix}
	if re, ok := patterns.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	re, _ := patterns.LoadOrStore(key, compile(phrase, prefix))
	return re.(*regexp.Regexp)
}

func compile(phrase string, prefix bool) *regexp.Regexp {
	words := strings.Fields(phrase)
	quoted := make([]string, len(words))
	for n, w := range words {
		quoted[n] = regexp.QuoteMeta(w)
	}
	expr := `(?i)` + boundaryStart + strings.Join(quoted, `\s+`)
	if !prefix {
		expr += boundaryEnd
	}
	return regexp.MustCompile(expr)
}

// ContainsWord reports whether word appears in text as a whole word.
func ContainsWord(text, word string) bool {
	if strings.TrimSpace(word) == "" {
		return false
	}
	return Pattern(word, false).MatchString(text)
}

// ContainsPrefix reports whether some word of text begins with word.
func ContainsPrefix(text, word string) bool {
	if strings.TrimSpace(word) == "" {
		return false
	}
	return Pattern(word, true).MatchString(text)
}
