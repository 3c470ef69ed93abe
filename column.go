package silo

import "github.com/TheBitDrifter/bark"

// column is the type-erased, homogeneous storage for one component type
// within an archetype. Row indices must be < Len(); callers violating that
// commit a programmer error.
type column interface {
	Len() int
	push(value any)
	pushBoxed(value any)
	set(row int, value any)
	swapRemove(row int)
	moveOutBoxed(row int) any
	cloneEmpty() column
	typeKey() TypeKey
}

// typedColumn is the sole implementation of column, instantiated once per
// distinct component type via generics.
type typedColumn[T any] struct {
	key    TypeKey
	values []T
}

// newTypedColumn builds the registry prototype for T. Only typekey.go calls
// this; everything else clones from the prototype via cloneEmpty.
func newTypedColumn[T any](key TypeKey) *typedColumn[T] {
	return &typedColumn[T]{key: key}
}

func (c *typedColumn[T]) Len() int { return len(c.values) }

func (c *typedColumn[T]) push(value any) {
	v, ok := value.(T)
	if !ok {
		panic(bark.AddTrace(TypeMismatchError{Key: c.key, Value: value}))
	}
	c.values = append(c.values, v)
}

func (c *typedColumn[T]) pushBoxed(value any) {
	c.push(value)
}

// set overwrites the value already stored at row, used when re-adding a
// component an entity's archetype already carries — the row count and every
// other column are untouched.
func (c *typedColumn[T]) set(row int, value any) {
	v, ok := value.(T)
	if !ok {
		panic(bark.AddTrace(TypeMismatchError{Key: c.key, Value: value}))
	}
	c.values[row] = v
}

func (c *typedColumn[T]) swapRemove(row int) {
	last := len(c.values) - 1
	if row != last {
		c.values[row] = c.values[last]
	}
	var zero T
	c.values[last] = zero
	c.values = c.values[:last]
}

func (c *typedColumn[T]) moveOutBoxed(row int) any {
	v := c.values[row]
	c.swapRemove(row)
	return v
}

func (c *typedColumn[T]) cloneEmpty() column {
	return &typedColumn[T]{key: c.key}
}

func (c *typedColumn[T]) typeKey() TypeKey { return c.key }

// columnSlice returns the typed backing slice for c, or panics with
// TypeMismatchError if c does not store T. This is the column's typed view
// (as_slice/as_mut_slice in spec terms); since Go slices alias their
// backing array, the same method serves both read and mutate callers.
func columnSlice[T any](c column) []T {
	tc, ok := c.(*typedColumn[T])
	if !ok {
		panic(bark.AddTrace(TypeMismatchError{Key: c.typeKey()}))
	}
	return tc.values
}
