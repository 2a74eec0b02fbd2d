// Package decoder builds selectors from maps and structs, such as the ones
// produced by JSON or YAML decoders.
package decoder

import (
	"fmt"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/registry"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/selector"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
	"github.com/vinicius-lino-figueiredo/gesel/pkg/structure"
)

// Definition is the decoded form of a selector.
type Definition struct {
	// Field is a string, possibly "|" separated and prefixed by "!", or a
	// list of strings.
	Field any `selector:"field"`
	// Operator is the operator symbol.
	Operator string `selector:"operator"`
	// Value is a scalar or a list of scalars.
	Value any `selector:"value"`
	// Not negates the selector. A "!" prefix in Field has the same effect.
	Not bool `selector:"not"`
	// Group is the selector group label.
	Group string `selector:"group"`
	// Quote is a single opening quote character, or empty.
	Quote string `selector:"quote"`
	// ForceMatch, when set, overrides matching.
	ForceMatch *bool `selector:"force_match"`
}

// Decoder decodes selector definitions.
type Decoder struct {
	registry        domain.Registry
	selectorOptions []selector.Option
}

// NewDecoder returns a new Decoder.
func NewDecoder(options ...Option) *Decoder {
	d := &Decoder{}
	for _, option := range options {
		option(d)
	}
	if d.registry == nil {
		d.registry = registry.Default()
	}
	return d
}

// Decode builds a selector from source, a map or a struct holding the keys of
// [Definition]. Input is weakly typed, so "not" may be given as "true" or 1.
// Unknown keys are rejected.
func (d *Decoder) Decode(source any) (*selector.Selector, error) {
	if source == nil {
		return nil, domain.ErrInvalidArgument{Argument: "definition", Reason: "expected map or struct", Actual: source}
	}
	if def, ok := source.(Definition); ok {
		return d.Build(def)
	}
	if def, ok := source.(*Definition); ok && def != nil {
		return d.Build(*def)
	}
	if !structure.IsObject(source) {
		return nil, domain.ErrInvalidArgument{Argument: "definition", Reason: "expected map or struct", Actual: source}
	}

	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          structure.TagName,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &def,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(source); err != nil {
		return nil, fmt.Errorf("decode selector definition: %w", err)
	}
	return d.Build(def)
}

// Build creates the selector described by def.
func (d *Decoder) Build(def Definition) (*selector.Selector, error) {
	quote, err := parseQuote(def.Quote)
	if err != nil {
		return nil, err
	}

	options := make([]selector.Option, 0, len(d.selectorOptions)+5)
	options = append(options, selector.WithRegistry(d.registry))
	options = append(options, d.selectorOptions...)
	options = append(options, selector.WithGroup(def.Group), selector.WithQuote(quote))
	if def.Not {
		options = append(options, selector.WithNot(true))
	}
	if def.ForceMatch != nil {
		options = append(options, selector.WithForceMatch(*def.ForceMatch))
	}
	return selector.NewSelector(def.Field, def.Operator, def.Value, options...)
}

func parseQuote(q string) (rune, error) {
	if q == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(q)
	if size != len(q) {
		return 0, domain.ErrInvalidArgument{Argument: "quote", Reason: "expected a single character", Actual: q}
	}
	return r, nil
}

// Encode returns the definition of sel. Decoding it gives an equal selector.
func Encode(sel *selector.Selector) Definition {
	def := Definition{
		Field:    sel.Field(),
		Operator: sel.Operator(),
		Value:    sel.Value(),
		Not:      sel.Not(),
		Group:    sel.Group(),
	}
	if values := sel.Values(); len(values) > 1 {
		def.Value = values
	}
	if q := sel.Quote(); q != 0 {
		def.Quote = string(q)
	}
	if force, ok := sel.ForceMatch(); ok {
		def.ForceMatch = &force
	}
	return def
}
