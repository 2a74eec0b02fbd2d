package operator

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

type comparerMock struct{ mock.Mock }

// Equal implements [domain.Comparer].
func (c *comparerMock) Equal(a any, b any) bool {
	return c.Called(a, b).Bool(0)
}

// Compare implements [domain.Comparer].
func (c *comparerMock) Compare(a any, b any) int {
	return c.Called(a, b).Int(0)
}

type splitterMock struct{ mock.Mock }

// Split implements [domain.WordSplitter].
func (s *splitterMock) Split(text string) []string {
	return s.Called(text).Get(0).([]string)
}

type OperatorTestSuite struct {
	suite.Suite
	p *Predicates
}

func (s *OperatorTestSuite) SetupTest() {
	s.p = NewPredicates()
}

// There are 25 operators with distinct symbols and names.
func (s *OperatorTestSuite) TestAll() {
	ops := All()
	s.Len(ops, 25)
	symbols := map[string]bool{}
	names := map[string]bool{}
	for _, op := range ops {
		s.True(op.Valid())
		s.NotEmpty(op.Symbol())
		s.NotEmpty(op.Label())
		s.NotEmpty(op.Description())
		s.NotZero(op.Kind())
		s.False(symbols[op.Symbol()], op.Symbol())
		s.False(names[op.Name()], op.Name())
		symbols[op.Symbol()] = true
		names[op.Name()] = true

		found, ok := Lookup(op.Symbol())
		s.True(ok)
		s.Equal(op, found)
	}
	s.Equal(Equal, ops[0])
	s.Equal(Bitwise, ops[len(ops)-1])
}

// Symbols and kinds follow the operator table.
func (s *OperatorTestSuite) TestMetadata() {
	tests := []struct {
		op     Operator
		symbol string
		kind   domain.ComparisonKind
	}{
		{Equal, "=", domain.Exact},
		{NotEqual, "!=", domain.Exact},
		{GreaterThanEqual, ">=", domain.Sort},
		{ContainsPhrase, "*=", domain.Find},
		{ContainsPhraseExpand, "*+=", domain.Find | domain.Expand | domain.Database},
		{ContainsLike, "%=", domain.Find | domain.Like},
		{ContainsWordsLive, "~~=", domain.Find},
		{ContainsWordsExpand, "~+=", domain.Find | domain.Expand},
		{ContainsAnyWordsPartial, "~|*=", domain.Find},
		{ContainsAnyWordsLike, "~|%=", domain.Find | domain.Like},
		{ContainsMatch, "**=", domain.Find | domain.Database},
		{ContainsMatchExpand, "**+=", domain.Find | domain.Expand | domain.Database},
		{ContainsAdvanced, "#=", domain.Find | domain.Command},
		{StartsLike, "%^=", domain.Find | domain.Like},
		{Ends, "$=", domain.Find},
		{Bitwise, "&", domain.Bitwise},
	}
	for _, tt := range tests {
		s.Equal(tt.symbol, tt.op.Symbol())
		s.Equal(tt.kind, tt.op.Kind(), tt.symbol)
	}
	s.Equal("ContainsWordsLive(~~=)", ContainsWordsLive.String())
}

// Invalid operators have no metadata and never match.
func (s *OperatorTestSuite) TestInvalid() {
	for _, op := range []Operator{0, 26, 200} {
		s.False(op.Valid())
		s.Empty(op.Symbol())
		s.Zero(op.Kind())
		s.False(s.p.Match(op, "a", "a"))
	}
	s.Equal("Operator(0)", Operator(0).String())
	s.Equal("Operator(200)", Operator(200).String())

	_, ok := Lookup("=>")
	s.False(ok)
}

// Every operator evaluates candidate against stored value.
func (s *OperatorTestSuite) TestMatch() {
	tests := []struct {
		op        Operator
		candidate any
		stored    any
		want      bool
	}{
		{Equal, "1", 1, true},
		{Equal, "a", "b", false},
		{NotEqual, "1", 1, false},
		{NotEqual, "3", 1, true},
		{GreaterThan, "10", "9", true},
		{GreaterThan, "a", "b", false},
		{LessThan, "9", "10", true},
		{GreaterThanEqual, "5", 5, true},
		{LessThanEqual, "6", 5, false},

		{ContainsPhrase, "foo bar", "foo", true},
		{ContainsPhrase, "foobar", "foo", false},
		{ContainsPhrase, "a foobar", "bar", false},
		{ContainsPhrase, "Hello World", "world", true},
		{ContainsPhrase, "", "", true},
		{ContainsPhrase, "abc", "", false},
		{ContainsPhraseExpand, "foo bar", "bar", true},
		{ContainsPhrase, "brown foxes", "brown fox", false},
		{ContainsPhrase, "the brown  fox.", "Brown Fox", true},
		{ContainsLike, "foobar", "OBA", true},
		{ContainsLike, "foobar", "x", false},

		{ContainsWords, "the quick brown fox", "fox quick", true},
		{ContainsWords, "the quick brown fox", "fox qui", false},
		{ContainsWords, "x", "", true},
		{ContainsWordsPartial, "the quick brown fox", "fo qui", true},
		{ContainsWordsPartial, "the quick brown fox", "ox", false},
		{ContainsWordsLive, "hello world", "hel wor", false},
		{ContainsWordsLive, "hello world", "hello wor", true},
		{ContainsWordsLive, "hello world", "hello", true},
		{ContainsWordsLive, "hello world", "world hel", true},
		{ContainsWordsLike, "the quick brown fox", "uic row", true},
		{ContainsWordsLike, "the quick", "uic zz", false},
		{ContainsWordsExpand, "a b", "b a", true},

		{ContainsAnyWords, "the quick brown fox", "cat fox", true},
		{ContainsAnyWords, "the quick", "cat dog", false},
		{ContainsAnyWords, "abc", "", false},
		{ContainsAnyWordsPartial, "the quick", "cat qu", true},
		{ContainsAnyWordsPartial, "the quick", "uick", false},
		{ContainsAnyWordsLike, "the quick", "zz uic", true},
		{ContainsMatch, "the quick", "zz quick", true},
		{ContainsMatchExpand, "the quick", "zz qu", false},

		{ContainsAdvanced, "the quick brown fox", `+quick -lazy "brown fox"`, true},
		{ContainsAdvanced, "the quick brown fox", `+quick -brown "brown fox"`, false},

		{Starts, "  Hello world", "hello", true},
		{Starts, "hello", "world", false},
		{StartsLike, "Hello", "HE", true},
		{Ends, "Hello World  ", "WORLD ", true},
		{Ends, "Hello", "hell", false},
		{EndsLike, "file.txt", ".TXT", true},

		{Bitwise, 6, 2, true},
		{Bitwise, 6, 1, false},
		{Bitwise, "6", "2", true},
		{Bitwise, "abc", 1, false},
	}
	for _, tt := range tests {
		s.Equal(tt.want, s.p.Match(tt.op, tt.candidate, tt.stored), "%v %v %v", tt.candidate, tt.op.Symbol(), tt.stored)
	}
}

// Equality and ordering are delegated to the comparer.
func (s *OperatorTestSuite) TestComparerOption() {
	c := new(comparerMock)
	c.On("Equal", "a", "b").Return(true).Twice()
	c.On("Compare", "a", "b").Return(-1).Times(4)

	p := NewPredicates(WithComparer(c))
	s.True(p.Match(Equal, "a", "b"))
	s.False(p.Match(NotEqual, "a", "b"))
	s.False(p.Match(GreaterThan, "a", "b"))
	s.True(p.Match(LessThan, "a", "b"))
	s.False(p.Match(GreaterThanEqual, "a", "b"))
	s.True(p.Match(LessThanEqual, "a", "b"))
	c.AssertExpectations(s.T())
}

// Word operators read the stored value through the word splitter.
func (s *OperatorTestSuite) TestWordSplitterOption() {
	sp := new(splitterMock)
	sp.On("Split", "quick-fox").Return([]string{"quick", "fox"}).Twice()

	p := NewPredicates(WithWordSplitter(sp))
	s.True(p.Match(ContainsWords, "the quick brown fox", "quick-fox"))
	s.True(p.Match(ContainsAnyWords, "the fox", "quick-fox"))
	sp.AssertExpectations(s.T())
}

// Specs carry the metadata and a bound predicate.
func (s *OperatorTestSuite) TestSpecs() {
	specs := Specs()
	s.Len(specs, 25)
	for n, op := range All() {
		spec := specs[n]
		s.Equal(uint8(op), spec.ID)
		s.Equal(op.Symbol(), spec.Symbol)
		s.Equal(op.Kind(), spec.Kind)
		s.Equal(op.Label(), spec.Label)
		s.Equal(op.Description(), spec.Description)
		s.NotNil(spec.Predicate)
	}
	s.True(specs[0].Predicate("1", 1))
	s.True(s.p.Spec(Bitwise).Predicate(6, 2))
}

func TestOperatorTestSuite(t *testing.T) {
	suite.Run(t, new(OperatorTestSuite))
}
