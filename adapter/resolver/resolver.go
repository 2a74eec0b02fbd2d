// Package resolver contains the default [domain.FieldResolver]
// implementation.
package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vinicius-lino-figueiredo/gesel/domain"
	"github.com/vinicius-lino-figueiredo/gesel/pkg/structure"
)

// Resolver implements [domain.FieldResolver].
type Resolver struct {
	separator string
	pipe      string
}

// NewResolver returns a new implementation of [domain.FieldResolver].
func NewResolver(options ...Option) domain.FieldResolver {
	r := &Resolver{separator: ".", pipe: "|"}
	for _, option := range options {
		option(r)
	}
	return r
}

// Resolve implements [domain.FieldResolver]. Candidates that are not objects
// are compared as they are, whatever the field. Objects are read with
// [structure.Field], falling back to a path walk when field contains the
// separator.
func (r *Resolver) Resolve(candidate any, field string) domain.Resolved {
	if !structure.IsObject(candidate) {
		return domain.Resolved{Values: r.flatten(candidate), Found: true}
	}

	if v, ok := structure.Field(candidate, field); ok {
		return domain.Resolved{Values: r.flatten(v), Found: true}
	}

	if r.separator == "" || !strings.Contains(field, r.separator) {
		return missing()
	}

	found := r.walk(candidate, strings.Split(field, r.separator))
	if len(found) == 0 {
		return missing()
	}
	var values []string
	for _, v := range found {
		values = append(values, r.flatten(v)...)
	}
	return domain.Resolved{Values: values, Found: true}
}

// walk follows the path parts from obj. A numeric part indexes a list, any
// other part is read from every object of a list.
func (r *Resolver) walk(obj any, parts []string) []any {
	curr := []any{obj}
	for _, part := range parts {
		var next []any
		for _, item := range curr {
			next = append(next, r.step(item, part)...)
		}
		if len(next) == 0 {
			return nil
		}
		curr = next
	}
	return curr
}

func (r *Resolver) step(item any, part string) []any {
	if structure.IsObject(item) {
		if v, ok := structure.Field(item, part); ok {
			return []any{v}
		}
		return nil
	}
	if !structure.IsList(item) {
		return nil
	}
	seq, l, err := structure.Seq(item)
	if err != nil {
		return nil
	}
	if i, err := strconv.Atoi(part); err == nil {
		if i < 0 || i >= l {
			return nil
		}
		n := 0
		for v := range seq {
			if n == i {
				return []any{v}
			}
			n++
		}
		return nil
	}
	var res []any
	for v := range seq {
		if structure.IsObject(v) {
			if fv, ok := structure.Field(v, part); ok {
				res = append(res, fv)
			}
		}
	}
	return res
}

// flatten returns the string form of v. Lists become one value per element,
// nested objects become their [fmt.Stringer] form or the empty string, and
// scalar strings are split on the pipe character.
func (r *Resolver) flatten(v any) []string {
	if structure.IsList(v) {
		seq, _, err := structure.Seq(v)
		if err != nil {
			return []string{""}
		}
		var values []string
		for e := range seq {
			values = append(values, scalar(e))
		}
		if len(values) == 0 {
			return []string{""}
		}
		return values
	}
	s := scalar(v)
	if r.pipe != "" && strings.Contains(s, r.pipe) {
		return strings.Split(s, r.pipe)
	}
	return []string{s}
}

func scalar(v any) string {
	if structure.IsObject(v) {
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return ""
	}
	return structure.ToString(v)
}

func missing() domain.Resolved {
	return domain.Resolved{Values: []string{""}, Found: false}
}
