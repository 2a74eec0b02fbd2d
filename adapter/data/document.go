// Package data contains [M], the default candidate document type.
package data

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

var _ domain.FieldResolvable = M(nil)

// M is a map based candidate. Nested documents are reachable with dot
// separated paths ("parent.title").
type M map[string]any

// ResolveField implements [domain.FieldResolvable]. An exact key wins over a
// dotted path, so "a.b" first looks for the key "a.b".
func (m M) ResolveField(field string) (any, bool) {
	if v, ok := m[field]; ok {
		return v, true
	}
	head, rest, found := strings.Cut(field, ".")
	if !found {
		return nil, false
	}
	switch sub := m[head].(type) {
	case M:
		return sub.ResolveField(rest)
	case map[string]any:
		return M(sub).ResolveField(rest)
	default:
		return nil, false
	}
}

// Get returns the value under field, or nil.
func (m M) Get(field string) any {
	v, _ := m.ResolveField(field)
	return v
}

// Set stores a value under the given key.
func (m M) Set(field string, value any) {
	m[field] = value
}
