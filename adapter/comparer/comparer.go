// Package comparer contains the default [domain.Comparer] implementation.
package comparer

import (
	"cmp"
	"math/big"
	"strings"
	"time"

	"github.com/vinicius-lino-figueiredo/gesel/domain"
	"github.com/vinicius-lino-figueiredo/gesel/pkg/structure"
)

var timeLayouts = [...]string{
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
}

// Comparer implements [domain.Comparer] with loose typing: two values that
// both look like numbers compare numerically, two times compare
// chronologically and everything else compares by string form.
type Comparer struct{}

// NewComparer returns a new implementation of [domain.Comparer].
func NewComparer() domain.Comparer {
	return &Comparer{}
}

// Equal implements [domain.Comparer].
func (c *Comparer) Equal(a, b any) bool {
	a, b = normalize(a), normalize(b)
	if comp, ok := c.checkNumbers(a, b); ok {
		return comp == 0
	}
	if comp, ok := c.checkTime(a, b); ok {
		return comp == 0
	}
	return structure.ToString(a) == structure.ToString(b)
}

// Compare implements [domain.Comparer].
func (c *Comparer) Compare(a, b any) int {
	a, b = normalize(a), normalize(b)
	if comp, ok := c.checkNumbers(a, b); ok {
		return comp
	}
	if comp, ok := c.checkTime(a, b); ok {
		return comp
	}
	return cmp.Compare(structure.ToString(a), structure.ToString(b))
}

// normalize replaces booleans and nil by their string form, so that they
// compare the same way once a candidate has been stringified.
func normalize(v any) any {
	switch v.(type) {
	case nil, bool:
		return structure.ToString(v)
	}
	return v
}

func (c *Comparer) checkNumbers(a, b any) (int, bool) {
	var x, y *big.Float
	var ok bool
	if x, ok = structure.AsNumber(a); !ok {
		return 0, false
	}
	if y, ok = structure.AsNumber(b); !ok {
		return 0, false
	}
	// big.Float compares int64 and float64 without precision loss
	return x.Cmp(y), true
}

func (c *Comparer) checkTime(a, b any) (int, bool) {
	ta, aIsTime := a.(time.Time)
	tb, bIsTime := b.(time.Time)
	switch {
	case aIsTime && bIsTime:
	case aIsTime:
		if tb, bIsTime = c.parseTime(b); !bIsTime {
			return 0, false
		}
	case bIsTime:
		if ta, aIsTime = c.parseTime(a); !aIsTime {
			return 0, false
		}
	default:
		return 0, false
	}
	return ta.Compare(tb), true
}

func (c *Comparer) parseTime(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
