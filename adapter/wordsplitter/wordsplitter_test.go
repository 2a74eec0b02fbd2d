package wordsplitter

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SplitterTestSuite struct {
	suite.Suite
	s *Splitter
}

func (s *SplitterTestSuite) SetupTest() {
	s.s = NewSplitter().(*Splitter)
}

// Words are separated by anything that is not a word rune.
func (s *SplitterTestSuite) TestSplit() {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "   ", want: nil},
		{in: "hello world", want: []string{"hello", "world"}},
		{in: "  hello,   world! ", want: []string{"hello", "world"}},
		{in: "foo_bar baz42", want: []string{"foo_bar", "baz42"}},
		{in: "don't e-mail", want: []string{"don't", "e-mail"}},
		{in: "- leading -dash trailing-", want: []string{"leading", "dash", "trailing"}},
		{in: "café naïve 東京", want: []string{"café", "naïve", "東京"}},
		{in: "a+b (c)", want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		s.Equal(tt.want, s.s.Split(tt.in), tt.in)
	}
}

// Short words are dropped when a minimum length is set.
func (s *SplitterTestSuite) TestMinLength() {
	sp := NewSplitter(WithMinLength(3))
	s.Equal([]string{"the", "fox"}, sp.Split("the fox is up"))

	sp = NewSplitter(WithMinLength(-1))
	s.Equal([]string{"a"}, sp.Split("a"))
}

func TestSplitterTestSuite(t *testing.T) {
	suite.Run(t, new(SplitterTestSuite))
}
