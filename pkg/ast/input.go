package ast

import "unsafe"

// ByteSliceReference is an offset/length pair into an Input's single byte
// arena. Keeping references as plain integers (rather than []byte slices)
// lets Document values be copied cheaply and compared by value, matching
// the ref-based closed AST family described in spec.md §9.
type ByteSliceReference struct {
	Start uint32
	End   uint32
}

// Length returns the number of bytes the reference spans.
func (r ByteSliceReference) Length() uint32 {
	return r.End - r.Start
}

// Input is the byte arena backing every Name, string value and description
// in a Document. The lexer replaces the arena with the raw source text up
// front, then appends each token's literal bytes (names, numbers, cooked
// string and block-string values, comments) to the same arena as it scans.
// Nothing is ever removed, so a ByteSliceReference handed out once remains
// valid for the Input's lifetime.
type Input struct {
	RawBytes []byte
}

// ResetInputBytes replaces the arena with input, discarding all previously
// issued references. Used when a Document is reused across Parse calls.
func (i *Input) ResetInputBytes(input []byte) {
	i.RawBytes = i.RawBytes[:0]
	i.RawBytes = append(i.RawBytes, input...)
}

// AppendInputBytes appends b to the arena and returns a reference to it.
func (i *Input) AppendInputBytes(b []byte) ByteSliceReference {
	start := uint32(len(i.RawBytes))
	i.RawBytes = append(i.RawBytes, b...)
	return ByteSliceReference{Start: start, End: uint32(len(i.RawBytes))}
}

// AppendInputString is AppendInputBytes for a string, avoiding an
// intermediate []byte allocation at call sites that already have a string.
func (i *Input) AppendInputString(s string) ByteSliceReference {
	start := uint32(len(i.RawBytes))
	i.RawBytes = append(i.RawBytes, s...)
	return ByteSliceReference{Start: start, End: uint32(len(i.RawBytes))}
}

// ByteSlice resolves a reference to the bytes it spans.
func (i *Input) ByteSlice(ref ByteSliceReference) []byte {
	return i.RawBytes[ref.Start:ref.End]
}

// ByteSliceString is a zero-copy view of ByteSlice.
func (i *Input) ByteSliceString(ref ByteSliceReference) string {
	b := i.ByteSlice(ref)
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Position converts a byte offset into the arena to a one-based line/column
// pair (spec.md §9 "Error location objects"), the same getLocation scan the
// GraphQL reference implementation does at error-serialization time rather
// than tracking line/column eagerly during lexing.
func (i *Input) Position(offset uint32) Position {
	if offset > uint32(len(i.RawBytes)) {
		offset = uint32(len(i.RawBytes))
	}
	line, lineStart := uint32(1), uint32(0)
	for idx := uint32(0); idx < offset; idx++ {
		if i.RawBytes[idx] == '\n' {
			line++
			lineStart = idx + 1
		}
	}
	return Position{Line: line, Column: offset - lineStart + 1}
}
