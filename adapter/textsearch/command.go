package textsearch

import (
	"regexp"
	"strings"
	"sync"
)

var (
	phraseRe = regexp.MustCompile(`([+-]?)"([^"]*)"`)
	commands sync.Map
)

// Term is a single token of a [Command].
type Term struct {
	Text string
	// Prefix is set for tokens ending in "*". The term may then be the
	// beginning of a longer word.
	Prefix bool
	// Phrase is set for quoted tokens.
	Phrase bool
}

// Match reports whether t occurs in text.
func (t Term) Match(text string) bool {
	return Pattern(t.Text, t.Prefix).MatchString(text)
}

// Command is a boolean text query. Tokens prefixed with "+" are required,
// tokens prefixed with "-" are excluded and the remaining ones are optional.
type Command struct {
	Required []Term
	Excluded []Term
	Optional []Term
}

// ParseCommand reads a boolean text query. Quoted phrases are extracted
// before the remainder is split on whitespace, and keep their own "+" or "-"
// prefix.
func ParseCommand(query string) Command {
	var c Command
	for _, m := range phraseRe.FindAllStringSubmatch(query, -1) {
		c.add(m[1], m[2], true)
	}
	rest := phraseRe.ReplaceAllString(query, " ")
	for _, tok := range strings.Fields(rest) {
		sign := ""
		if tok[0] == '+' || tok[0] == '-' {
			sign, tok = tok[:1], tok[1:]
		}
		c.add(sign, tok, false)
	}
	return c
}

// CachedCommand returns [ParseCommand] of query, parsing each distinct query
// once. The returned command must not be modified.
func CachedCommand(query string) Command {
	if c, ok := commands.Load(query); ok {
		return c.(Command)
	}
	c, _ := commands.LoadOrStore(query, ParseCommand(query))
	return c.(Command)
}

func (c *Command) add(sign, text string, phrase bool) {
	text = strings.TrimSpace(text)
	prefix := strings.HasSuffix(text, "*")
	text = strings.TrimSpace(strings.TrimRight(text, "*"))
	if text == "" {
		return
	}
	t := Term{Text: text, Prefix: prefix, Phrase: phrase}
	switch sign {
	case "+":
		c.Required = append(c.Required, t)
	case "-":
		c.Excluded = append(c.Excluded, t)
	default:
		c.Optional = append(c.Optional, t)
	}
}

// IsEmpty reports whether the command has no terms.
func (c Command) IsEmpty() bool {
	return len(c.Required) == 0 && len(c.Excluded) == 0 && len(c.Optional) == 0
}

// Match reports whether text satisfies the command: every required term is
// present, no excluded term is present and, if there are optional terms, at
// least one of them is present.
func (c Command) Match(text string) bool {
	for _, t := range c.Required {
		if !t.Match(text) {
			return false
		}
	}
	for _, t := range c.Excluded {
		if t.Match(text) {
			return false
		}
	}
	if len(c.Optional) == 0 {
		return true
	}
	for _, t := range c.Optional {
		if t.Match(text) {
			return true
		}
	}
	return false
}

// String renders the command back to query form.
func (c Command) String() string {
	var parts []string
	render := func(sign string, terms []Term) {
		for _, t := range terms {
			s := t.Text
			if t.Prefix {
				s += "*"
			}
			if t.Phrase {
				s = `"` + s + `"`
			}
			parts = append(parts, sign+s)
		}
	}
	render("+", c.Required)
	render("-", c.Excluded)
	render("", c.Optional)
	return strings.Join(parts, " ")
}
