// Package types is the runtime type system described in spec.md §4.4's
// Type Model: Scalar, Object, Interface, Union, Enum, InputObject, List and
// NonNull, built up either by hand or by pkg/astbuildschema from an SDL
// document. It is grounded on
// other_examples/.../qktrzrj-graphql__internal-types.go.go's Type/NamedType
// interface split and per-kind struct shape, generalized per spec.md §9
// "Lazy schema thunks": fields/interfaces/types accept a zero-argument
// producer evaluated once on first access rather than only a plain value,
// so mutually recursive types (an Object referencing itself, or two Objects
// referencing each other) can be declared without a forward-reference
// problem.
package types

import "sync"

// Thunk lazily produces a T, exactly once; later calls to Get return the
// cached value. This is the Go rendition of spec.md §9's lazy
// fields/interfaces/types thunks and of spec.md §5's "implementations may
// protect these with an internal one-time-init primitive" guidance — built
// on sync.Once because a generic memoize-once primitive isn't a concern any
// third-party library in the corpus covers; the corpus libraries are all
// domain-specific (HTTP, SQL, JSON, logging), not generic sync helpers.
type Thunk[T any] struct {
	once  sync.Once
	fn    func() T
	value T
}

// NewThunk wraps a zero-argument producer.
func NewThunk[T any](fn func() T) *Thunk[T] {
	return &Thunk[T]{fn: fn}
}

// Value wraps an already-known value as a Thunk, for callers that don't
// need laziness (e.g. leaf scalar types with no recursive references).
func Value[T any](v T) *Thunk[T] {
	t := &Thunk[T]{value: v}
	t.once.Do(func() {}) // mark resolved; fn stays nil and is never called
	return t
}

// Get evaluates fn on the first call and returns the cached result on every
// subsequent call, regardless of how many goroutines call it concurrently.
func (t *Thunk[T]) Get() T {
	t.once.Do(func() {
		if t.fn != nil {
			t.value = t.fn()
		}
	})
	return t.value
}
