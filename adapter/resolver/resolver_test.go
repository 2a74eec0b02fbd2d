package resolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/data"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

type M = data.M

type page struct {
	Title  string
	Tags   []string `selector:"labels"`
	Parent *page
}

type point struct{ X, Y int }

func (p point) String() string { return "point" }

type ResolverTestSuite struct {
	suite.Suite
	r *Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	s.r = NewResolver().(*Resolver)
}

func (s *ResolverTestSuite) found(values ...string) domain.Resolved {
	return domain.Resolved{Values: values, Found: true}
}

// Scalar candidates are used as they are for any field.
func (s *ResolverTestSuite) TestScalarCandidate() {
	s.Equal(s.found("a"), s.r.Resolve("a", "whatever"))
	s.Equal(s.found("a", "b"), s.r.Resolve("a|b", "x"))
	s.Equal(s.found("5"), s.r.Resolve(5, "x"))
	s.Equal(s.found("1"), s.r.Resolve(true, "x"))
	s.Equal(s.found(""), s.r.Resolve(nil, "x"))
	s.Equal(s.found("a", "b"), s.r.Resolve([]string{"a", "b"}, "x"))
}

// Object fields are read and converted to strings.
func (s *ResolverTestSuite) TestObjectCandidate() {
	doc := M{
		"status": 1,
		"title":  "Hello",
		"multi":  "123|456",
		"tags":   []any{"a", 2, true},
		"none":   []string{},
		"at":     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		"empty":  nil,
	}
	s.Equal(s.found("1"), s.r.Resolve(doc, "status"))
	s.Equal(s.found("Hello"), s.r.Resolve(doc, "title"))
	s.Equal(s.found("123", "456"), s.r.Resolve(doc, "multi"))
	s.Equal(s.found("a", "2", "1"), s.r.Resolve(doc, "tags"))
	s.Equal(s.found(""), s.r.Resolve(doc, "none"))
	s.Equal(s.found("2024-01-02T03:04:05Z"), s.r.Resolve(doc, "at"))
	s.Equal(s.found(""), s.r.Resolve(doc, "empty"))
}

// Missing fields resolve to a single empty string.
func (s *ResolverTestSuite) TestMissing() {
	want := domain.Resolved{Values: []string{""}, Found: false}
	s.Equal(want, s.r.Resolve(M{"a": 1}, "b"))
	s.Equal(want, s.r.Resolve(M{"a": M{"b": 1}}, "a.c"))
	s.Equal(want, s.r.Resolve(map[string]any{"a": 1}, "a.b"))
	s.Equal(want, s.r.Resolve(page{}, "missing"))
}

// Nested objects become their string form or the empty string.
func (s *ResolverTestSuite) TestNestedObjects() {
	doc := map[string]any{"p": point{1, 2}, "m": M{"x": 1}, "l": []any{M{}, point{}}}
	s.Equal(s.found("point"), s.r.Resolve(doc, "p"))
	s.Equal(s.found(""), s.r.Resolve(doc, "m"))
	s.Equal(s.found("", "point"), s.r.Resolve(doc, "l"))
}

// Struct candidates are read by name, tag and path.
func (s *ResolverTestSuite) TestStruct() {
	p := &page{Title: "Child", Tags: []string{"x|y", "z"}, Parent: &page{Title: "Root"}}
	s.Equal(s.found("Child"), s.r.Resolve(p, "title"))
	s.Equal(s.found("x|y", "z"), s.r.Resolve(p, "labels"))
	s.Equal(s.found("Root"), s.r.Resolve(p, "parent.title"))
	s.Equal(s.found(""), s.r.Resolve(p, "parent.parent"))
	s.False(s.r.Resolve(p, "parent.parent.title").Found)
}

// Paths walk into lists by index or by expanding every element.
func (s *ResolverTestSuite) TestListPaths() {
	doc := map[string]any{
		"items": []any{
			map[string]any{"n": "a"},
			map[string]any{"n": "b|c"},
			"scalar",
			map[string]any{"other": 1},
		},
	}
	s.Equal(s.found("a", "b", "c"), s.r.Resolve(doc, "items.n"))
	s.Equal(s.found("b", "c"), s.r.Resolve(doc, "items.1.n"))
	s.Equal(s.found("scalar"), s.r.Resolve(doc, "items.2"))
	s.False(s.r.Resolve(doc, "items.9.n").Found)
	s.False(s.r.Resolve(doc, "items.-1").Found)
	s.False(s.r.Resolve(doc, "items.missing").Found)
}

// Separator and pipe can be changed or disabled.
func (s *ResolverTestSuite) TestOptions() {
	r := NewResolver(WithSeparator("/"), WithPipe(""))
	doc := map[string]any{"a": map[string]any{"b": "x|y"}}
	s.Equal(s.found("x|y"), r.Resolve(doc, "a/b"))
	s.False(r.Resolve(doc, "a.b").Found)

	r = NewResolver(WithSeparator(""), WithPipe(";"))
	s.Equal(s.found("x", "y"), r.Resolve("x;y", "a"))
	s.False(r.Resolve(doc, "a/b").Found)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
