// Package coercion implements spec.md §4.6's two coercion directions: input
// coercion (AST literal or externally supplied JSON → internal Go values)
// and output serialization (internal Go values → wire-ready leaves), plus
// the path-carrying error type both directions report through.
package coercion

import "strconv"

// Path is an ordered list of response keys (string) and list indices (int)
// describing where a value lives inside a coerced argument/variable or a
// completed response (spec.md §4.6 "Errors carry the field path").
type Path []interface{}

// Append returns a new Path with key appended, never mutating p — paths are
// shared across sibling coercions so each must get its own tail frame
// (mirrors pkg/execution's structural-sharing path note in spec.md §5).
func (p Path) Append(key interface{}) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = key
	return out
}

// String renders a Path as a dotted/bracketed accessor, e.g. `input.tags[2]`,
// used in error messages.
func (p Path) String() string {
	var b []byte
	for i, key := range p {
		switch k := key.(type) {
		case string:
			if i > 0 {
				b = append(b, '.')
			}
			b = append(b, k...)
		case int:
			b = append(b, '[')
			b = strconv.AppendInt(b, int64(k), 10)
			b = append(b, ']')
		}
	}
	return string(b)
}
