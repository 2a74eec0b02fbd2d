// Package wordsplitter contains the default [domain.WordSplitter]
// implementation.
package wordsplitter

import (
	"strings"
	"unicode"

	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

// Splitter implements [domain.WordSplitter]. A word is a run of letters,
// digits, marks and underscores. Apostrophes and hyphens are kept when they
// join two word runes ("don't", "e-mail").
type Splitter struct {
	minLength int
}

// NewSplitter returns a new implementation of [domain.WordSplitter].
func NewSplitter(options ...Option) domain.WordSplitter {
	s := &Splitter{minLength: 1}
	for _, option := range options {
		option(s)
	}
	return s
}

// Split implements [domain.WordSplitter].
func (s *Splitter) Split(text string) []string {
	runes := []rune(text)
	var words []string
	var sb strings.Builder
	flush := func() {
		if sb.Len() == 0 {
			return
		}
		if w := sb.String(); len([]rune(w)) >= s.minLength {
			words = append(words, w)
		}
		sb.Reset()
	}
	for i, r := range runes {
		switch {
		case isWordRune(r):
			sb.WriteRune(r)
		case isJoiner(r) && sb.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			sb.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}
