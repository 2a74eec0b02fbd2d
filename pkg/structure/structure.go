// Package structure contains type-related operations, such as reading a field
// from a value of type any, iterating over lists and converting numbers.
package structure

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

// TagName is the struct tag used to rename fields when resolving them by name.
const TagName = "selector"

var (
	// ErrNilObj may be returned by [Seq] when a nil value is passed as
	// argument.
	ErrNilObj = errors.New("nil object")
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	resolvableTy = reflect.TypeOf((*domain.FieldResolvable)(nil)).Elem()
)

// ErrorNonList is returned by [Seq] when a value that is neither a slice
// nor an array is passed as argument.
type ErrorNonList struct {
	Type string
}

func (e ErrorNonList) Error() string {
	return fmt.Sprintf("expected list, got %s", e.Type)
}

// IsObject reports whether v can hold named fields: maps with string keys,
// structs (time.Time excluded), and implementations of
// [domain.FieldResolvable]. Pointers are followed.
func IsObject(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case domain.FieldResolvable, map[string]any, map[string]string:
		return true
	}
	if checkPrimitive(v) {
		return false
	}
	r, ok := deref(reflect.ValueNoEscapeOf(v))
	if !ok {
		return false
	}
	switch r.Kind() {
	case reflect.Map:
		return r.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return r.Type() != timeType
	}
	return false
}

// IsList reports whether v is a slice or an array. Byte slices count as
// scalars.
func IsList(v any) bool {
	switch v.(type) {
	case nil, []byte:
		return false
	case []any, []string:
		return true
	}
	r, ok := deref(reflect.ValueNoEscapeOf(v))
	if !ok {
		return false
	}
	k := r.Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Field returns the value stored under name in obj. Struct fields are
// matched by their [TagName] tag, then by name ignoring case; unexported
// fields are skipped. The second result is false if obj has no such field.
func Field(obj any, name string) (any, bool) {
	switch t := obj.(type) {
	case nil:
		return nil, false
	case domain.FieldResolvable:
		return t.ResolveField(name)
	case map[string]any:
		v, ok := t[name]
		return v, ok
	case map[string]string:
		v, ok := t[name]
		return v, ok
	}

	r, ok := deref(reflect.ValueNoEscapeOf(obj))
	if !ok {
		return nil, false
	}

	if r.Type().Implements(resolvableTy) && r.CanInterface() {
		return r.Interface().(domain.FieldResolvable).ResolveField(name)
	}

	switch r.Kind() {
	case reflect.Map:
		if r.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		for _, k := range r.MapKeys() {
			if k.String() == name {
				return r.MapIndex(k).Interface(), true
			}
		}
	case reflect.Struct:
		if r.Type() == timeType {
			return nil, false
		}
		return structField(r, name)
	}
	return nil, false
}

func structField(r reflect.Value, name string) (any, bool) {
	typ := r.Type()
	byName := -1
	for n := range typ.NumField() {
		field := typ.Field(n)
		if field.PkgPath != "" {
			continue
		}
		if tag, ok := field.Tag.Lookup(TagName); ok {
			if i := strings.IndexRune(tag, ','); i >= 0 {
				tag = tag[:i]
			}
			if tag == "-" {
				continue
			}
			if tag == name {
				return r.Field(n).Interface(), true
			}
			if tag != "" {
				continue
			}
		}
		if byName < 0 && strings.EqualFold(field.Name, name) {
			byName = n
		}
	}
	if byName >= 0 {
		return r.Field(byName).Interface(), true
	}
	return nil, false
}

func deref(r reflect.Value) (reflect.Value, bool) {
	for r.Kind() == reflect.Ptr || r.Kind() == reflect.Interface {
		if r.IsNil() {
			return r, false
		}
		r = r.Elem()
	}
	return r, r.IsValid()
}

func checkPrimitive(obj any) bool {
	switch obj.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time, *regexp.Regexp, []byte:
		return true
	default:
		return false
	}
}

// Seq returns an iterator over a slice or array of any type.
func Seq(obj any) (iter.Seq[any], int, error) {
	if obj == nil {
		return nil, 0, ErrNilObj
	}
	if i, length := fastPathList(obj); i != nil {
		return i, length, nil
	}
	r, ok := deref(reflect.ValueNoEscapeOf(obj))
	if !ok {
		return nil, 0, ErrNilObj
	}
	if k := r.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, 0, ErrorNonList{Type: fmt.Sprintf("%T", obj)}
	}
	l := r.Len()
	return func(yield func(any) bool) {
		for n := range l {
			if !yield(r.Index(n).Interface()) {
				return
			}
		}
	}, l, nil
}

func fastPathList(obj any) (iter.Seq[any], int) {
	switch t := obj.(type) {
	case []any:
		return iterSlice(t), len(t)
	case []string:
		return iterSlice(t), len(t)
	case []int:
		return iterSlice(t), len(t)
	case []int64:
		return iterSlice(t), len(t)
	case []float64:
		return iterSlice(t), len(t)
	case []bool:
		return iterSlice(t), len(t)
	}
	return nil, 0
}

func iterSlice[T any](m []T) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range m {
			if !yield(v) {
				return
			}
		}
	}
}

// AsInteger converts any built-in number to int and returns a flag that informs
// if the argument is a valid integer.
func AsInteger(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case uint64:
		return int(t), true
	case float32:
		if trunc := math.Trunc(float64(t)); trunc == float64(t) {
			return int(trunc), true
		}
		return 0, false
	case float64:
		if trunc := math.Trunc(t); trunc == t {
			return int(trunc), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsNumber converts built-in numbers and numeric strings to a [big.Float].
// Strings are trimmed before parsing; empty strings are not numbers.
func AsNumber(v any) (*big.Float, bool) {
	r := big.NewFloat(0)
	switch n := v.(type) {
	case int:
		r.SetInt64(int64(n))
	case int8:
		r.SetInt64(int64(n))
	case int16:
		r.SetInt64(int64(n))
	case int32:
		r.SetInt64(int64(n))
	case int64:
		r.SetInt64(n)
	case uint:
		r.SetUint64(uint64(n))
	case uint8:
		r.SetUint64(uint64(n))
	case uint16:
		r.SetUint64(uint64(n))
	case uint32:
		r.SetUint64(uint64(n))
	case uint64:
		r.SetUint64(n)
	case float32:
		r.SetFloat64(float64(n))
	case float64:
		if math.IsNaN(n) {
			return nil, false
		}
		r.SetFloat64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		r.SetFloat64(f)
	default:
		return nil, false
	}
	return r, true
}

// AsInt64 converts v to an integer the way a loosely typed language casts:
// numbers are truncated, numeric strings are parsed, leading digits of other
// strings are used and anything else is zero.
func AsInt64(v any) int64 {
	if i, ok := AsInteger(v); ok {
		return int64(i)
	}
	switch t := v.(type) {
	case float32:
		return int64(t)
	case float64:
		return int64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	}
	s := strings.TrimSpace(ToString(v))
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, ok := AsNumber(s); ok {
		i, _ := f.Int64()
		return i
	}
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	i, _ := strconv.ParseInt(s[:end], 10, 64)
	return i
}

// ToString returns the string form used when comparing scalars. nil is the
// empty string, booleans are "1" and "", times use RFC 3339.
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case bool:
		if t {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		return t.Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	}
	if i, ok := AsInteger(v); ok {
		return strconv.Itoa(i)
	}
	if _, ok := deref(reflect.ValueNoEscapeOf(v)); !ok {
		return ""
	}
	return fmt.Sprint(v)
}
