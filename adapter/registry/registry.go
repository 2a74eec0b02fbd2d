// Package registry contains the default [domain.Registry] implementation.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/vinicius-lino-figueiredo/bst"
	"github.com/vinicius-lino-figueiredo/bst/adapter/avl"
	"github.com/vinicius-lino-figueiredo/gesel/adapter/operator"
	"github.com/vinicius-lino-figueiredo/gesel/domain"
)

// Default returns the process-wide registry holding every built-in operator.
// It is built on first use and must not be modified afterwards.
var Default = sync.OnceValue(func() domain.Registry {
	r, err := NewRegistry(WithSpecs(operator.Specs()...))
	if err != nil {
		panic(err)
	}
	return r
})

// Registry implements [domain.Registry]. Specs are kept in an AVL tree keyed
// by symbol.
type Registry struct {
	mu      sync.RWMutex
	tree    bst.BST[string, domain.OperatorSpec]
	symbols []string
	logger  *slog.Logger
}

// NewRegistry returns a new implementation of [domain.Registry].
func NewRegistry(options ...Option) (domain.Registry, error) {
	opts := registryOptions{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(&opts)
	}

	r := &Registry{
		tree:   avl.NewBST(true, 8, NewBSTComparer()),
		logger: opts.logger,
	}
	for _, spec := range opts.specs {
		if err := r.Register(spec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register implements [domain.Registry].
func (r *Registry) Register(spec domain.OperatorSpec) error {
	if spec.Symbol == "" {
		return ErrInvalidSpec(domain.ErrEmptySymbol, spec)
	}
	if spec.Predicate == nil {
		return ErrInvalidSpec(domain.ErrNilPredicate, spec)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok, err := r.search(spec.Symbol)
	if err != nil {
		return err
	}
	if ok {
		if existing.SameDefinition(spec) {
			r.logger.Debug("registry: operator already registered", "symbol", spec.Symbol)
			return nil
		}
		return domain.ErrDuplicateOperator{Symbol: spec.Symbol}
	}

	if err := r.tree.Insert(spec.Symbol, spec); err != nil {
		if e := new(bst.ErrUniqueViolated); errors.As(err, e) {
			return fmt.Errorf("%w: %w", domain.ErrDuplicateOperator{Symbol: spec.Symbol}, err)
		}
		return err
	}
	r.symbols = append(r.symbols, spec.Symbol)
	slices.SortFunc(r.symbols, compareSymbols)

	r.logger.Debug("registry: operator registered", "symbol", spec.Symbol, "kind", spec.Kind, "label", spec.Label)
	return nil
}

func (r *Registry) search(symbol string) (domain.OperatorSpec, bool, error) {
	found, err := r.tree.Search(symbol)
	if err != nil {
		return domain.OperatorSpec{}, false, err
	}
	if found == nil {
		return domain.OperatorSpec{}, false, nil
	}
	values := found.Values()
	if len(values) == 0 {
		return domain.OperatorSpec{}, false, nil
	}
	return values[0], true, nil
}

// Resolve implements [domain.Registry].
func (r *Registry) Resolve(symbol string) (domain.OperatorSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok, err := r.search(symbol)
	if err != nil {
		return domain.OperatorSpec{}, err
	}
	if !ok {
		return domain.OperatorSpec{}, domain.ErrUnknownOperator{Operator: symbol}
	}
	return spec, nil
}

// All implements [domain.Registry].
func (r *Registry) All() []domain.OperatorSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs := slices.Collect(r.tree.GetAll())
	slices.SortFunc(specs, func(a, b domain.OperatorSpec) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return specs
}

// Longest implements [domain.Registry].
func (r *Registry) Longest(input string) (domain.OperatorSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, symbol := range r.symbols {
		if !strings.HasPrefix(input, symbol) {
			continue
		}
		spec, ok, err := r.search(symbol)
		if err != nil || !ok {
			return domain.OperatorSpec{}, false
		}
		return spec, true
	}
	return domain.OperatorSpec{}, false
}

// Symbols implements [domain.Registry].
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.symbols)
}

// Len implements [domain.Registry].
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tree.GetNumberOfKeys()
}

// compareSymbols orders longer symbols first so that a tokenizer trying them
// in order always finds the longest match.
func compareSymbols(a, b string) int {
	if c := cmp.Compare(len(b), len(a)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// ErrInvalidSpec wraps err with the offending spec.
func ErrInvalidSpec(err error, spec domain.OperatorSpec) error {
	return fmt.Errorf("%w: %w", err, domain.ErrInvalidArgument{
		Argument: "operator spec",
		Reason:   err.Error(),
		Actual:   spec.Symbol,
	})
}
