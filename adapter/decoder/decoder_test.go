package decoder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/data"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/selector"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

type rule struct {
	Name  string `selector:"field"`
	Op    string `selector:"operator"`
	Value any    `selector:"value"`
}

type DecoderTestSuite struct {
	suite.Suite
	d *Decoder
}

func (s *DecoderTestSuite) SetupTest() {
	s.d = NewDecoder()
}

// Maps are decoded with weak typing.
func (s *DecoderTestSuite) TestDecodeMap() {
	sel, err := s.d.Decode(map[string]any{
		"field":       []any{"title", "body"},
		"operator":    "*=",
		"value":       []any{"foo", 2},
		"not":         "true",
		"group":       "g",
		"quote":       `"`,
		"force_match": 0,
	})
	s.Require().NoError(err)
	s.Equal([]string{"title", "body"}, sel.Fields())
	s.Equal("*=", sel.Operator())
	s.Equal([]any{"foo", 2}, sel.Values())
	s.True(sel.Not())
	s.Equal("g", sel.Group())
	s.Equal('"', sel.Quote())
	force, set := sel.ForceMatch()
	s.True(set)
	s.False(force)
}

// A "!" prefix in the field negates without the not key.
func (s *DecoderTestSuite) TestDecodeNotPrefix() {
	sel, err := s.d.Decode(data.M{"field": "!status", "operator": "=", "value": 1})
	s.Require().NoError(err)
	s.True(sel.Not())
	s.True(sel.Matches(data.M{"status": 2}))
	s.False(sel.Matches(data.M{"status": 1}))
}

// Tagged structs are decoded too.
func (s *DecoderTestSuite) TestDecodeStruct() {
	sel, err := s.d.Decode(rule{Name: "n", Op: ">=", Value: 3})
	s.Require().NoError(err)
	s.Equal("n>=3", sel.String())

	sel, err = s.d.Decode(&Definition{Field: "a", Operator: "=", Value: "x"})
	s.Require().NoError(err)
	s.Equal("a=x", sel.String())
}

// Invalid definitions are rejected.
func (s *DecoderTestSuite) TestDecodeErrors() {
	_, err := s.d.Decode(nil)
	var invalid domain.ErrInvalidArgument
	s.True(errors.As(err, &invalid))

	_, err = s.d.Decode("a=1")
	s.True(errors.As(err, &invalid))

	_, err = s.d.Decode(map[string]any{"field": "a", "operator": "=", "value": 1, "extra": 1})
	s.ErrorContains(err, "extra")

	_, err = s.d.Decode(map[string]any{"field": "a", "operator": "?", "value": 1})
	s.ErrorIs(err, domain.ErrUnknownOperator{Operator: "?"})

	_, err = s.d.Decode(map[string]any{"operator": "=", "value": 1})
	s.True(errors.As(err, &invalid))

	_, err = s.d.Decode(map[string]any{"field": "a", "operator": "=", "quote": "[]"})
	s.True(errors.As(err, &invalid))
	s.Equal("quote", invalid.Argument)

	_, err = s.d.Decode(map[string]any{"field": "a", "operator": "=", "not": "maybe"})
	s.Error(err)
}

// Encoding and decoding gives an equal selector.
func (s *DecoderTestSuite) TestEncode() {
	for _, str := range []struct {
		field string
		op    string
		value any
		opts  []selector.Option
	}{
		{field: "a", op: "=", value: 1},
		{field: "!a|b", op: "!=", value: []int{1, 2}},
		{field: "t", op: "#=", value: `+a -b`, opts: []selector.Option{selector.WithQuote('['), selector.WithGroup("g")}},
		{field: "t", op: "~=", value: "x", opts: []selector.Option{selector.WithForceMatch(true)}},
	} {
		orig, err := selector.NewSelector(str.field, str.op, str.value, str.opts...)
		s.Require().NoError(err)

		got, err := s.d.Decode(Encode(orig))
		s.Require().NoError(err)
		s.True(orig.Equal(got))
		s.Equal(orig.GoString(), got.GoString())
	}

	def := Encode(mustSelector("!a|b", "=", []int{1, 2}))
	s.Equal(Definition{Field: "a|b", Operator: "=", Value: []any{1, 2}, Not: true}, def)
}

// Decoder options are given to every selector.
func (s *DecoderTestSuite) TestOptions() {
	d := NewDecoder(WithSelectorOptions(selector.WithForceMatch(true)))
	sel, err := d.Decode(map[string]any{"field": "a", "operator": "=", "value": 1})
	s.Require().NoError(err)
	s.True(sel.Matches(nil))
}

func mustSelector(field, op string, value any) *selector.Selector {
	sel, err := selector.NewSelector(field, op, value)
	if err != nil {
		panic(err)
	}
	return sel
}

func TestDecoderTestSuite(t *testing.T) {
	suite.Run(t, new(DecoderTestSuite))
}
