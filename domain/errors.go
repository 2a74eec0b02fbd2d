package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFields is returned when a selector is built or updated with no
	// field name.
	ErrNoFields = errors.New("selector requires at least one field")
	// ErrEmptySymbol is returned when registering an operator without a
	// symbol.
	ErrEmptySymbol = errors.New("operator symbol cannot be empty")
	// ErrNilPredicate is returned when registering an operator without a
	// predicate.
	ErrNilPredicate = errors.New("operator predicate cannot be nil")
	// ErrNoOperator is returned by parsers when a selector string has no
	// recognizable operator.
	ErrNoOperator = errors.New("no operator found")
)

// ErrUnknownOperator is returned when a symbol is not registered.
type ErrUnknownOperator struct {
	Operator string
}

// Error implements [error].
func (e ErrUnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator %q", e.Operator)
}

// ErrDuplicateOperator is returned when a symbol is registered twice with
// different definitions.
type ErrDuplicateOperator struct {
	Symbol string
}

// Error implements [error].
func (e ErrDuplicateOperator) Error() string {
	return fmt.Sprintf("operator %q already registered with a different definition", e.Symbol)
}

// ErrImmutableOperator is returned when trying to replace the operator of an
// existing selector. The selector is left unchanged.
type ErrImmutableOperator struct {
	Operator  string
	Attempted string
}

// Error implements [error].
func (e ErrImmutableOperator) Error() string {
	return fmt.Sprintf("cannot change selector operator %q to %q", e.Operator, e.Attempted)
}

// ErrInvalidArgument is returned when a selector or registry receives a value
// of an unexpected shape.
type ErrInvalidArgument struct {
	Argument string
	Reason   string
	Actual   any
}

// Error implements [error].
func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s: %s, got %T(%v)", e.Argument, e.Reason, e.Actual, e.Actual)
}
