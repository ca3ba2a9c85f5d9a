package entity

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel causes for precondition violations. They signal caller misuse and
// are raised through Violate, never returned.
var (
	ErrNotCardinal          = errors.New("direction must be cardinal")
	ErrNotNonMasked         = errors.New("direction must be cardinal or none")
	ErrAmbiguousDirection   = errors.New("direction is ambiguous with multiple possible drawers")
	ErrImpossibleDirection  = errors.New("no drawer is registered for direction")
	ErrDuplicateDrawer      = errors.New("drawer content is already registered under another direction")
	ErrCrossAxisDrawer      = errors.New("drawers cannot occupy both the horizontal and vertical axis")
	ErrRevealWidthWhileOpen = errors.New("reveal width can only change while the pane is closed")
	ErrDirectionWhileOpen   = errors.New("direction cannot be reset while the pane is not closed")
	ErrNotSettleState       = errors.New("state must be closed, open or open wide")
	ErrNotComparable        = errors.New("handle type does not support == comparison")
)

// PreconditionError is the panic value for fatal caller misuse.
type PreconditionError struct {
	Op        string
	Direction Direction
	Err       error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Op, e.Direction, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// Violate panics with a PreconditionError.
func Violate(op string, d Direction, err error) {
	panic(&PreconditionError{Op: op, Direction: d, Err: err})
}

// MustBeCardinal panics unless d is a single edge.
func MustBeCardinal(op string, d Direction) {
	if !d.IsCardinal() {
		Violate(op, d, ErrNotCardinal)
	}
}

// MustBeNonMasked panics unless d is a single edge or None.
func MustBeNonMasked(op string, d Direction) {
	if !d.IsNonMasked() {
		Violate(op, d, ErrNotNonMasked)
	}
}

// MustBeComparable panics unless v's dynamic type supports ==. Content and
// plugin handles are matched by identity; a non-comparable value such as a
// struct holding a slice would otherwise panic at the first comparison.
// Nil passes.
func MustBeComparable(op string, d Direction, v any) {
	if v == nil {
		return
	}
	if !reflect.TypeOf(v).Comparable() {
		Violate(op, d, fmt.Errorf("%w: %T", ErrNotComparable, v))
	}
}
