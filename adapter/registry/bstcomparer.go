package registry

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/bst"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

type bstComparer struct{}

// NewBSTComparer returns the [bst.Comparer] used to order operator specs by
// symbol.
func NewBSTComparer() bst.Comparer[string, domain.OperatorSpec] {
	return bstComparer{}
}

// CompareKeys implements bst.Comparer.
func (bstComparer) CompareKeys(a string, b string) (int, error) {
	return strings.Compare(a, b), nil
}

// CompareValues implements bst.Comparer.
func (bstComparer) CompareValues(a domain.OperatorSpec, b domain.OperatorSpec) (bool, error) {
	return a.SameDefinition(b), nil
}
