package ast

import "github.com/cespare/xxhash/v2"

// DocumentHash returns a stable hash of doc's source text, intended as a
// cache key for callers who want to cache parsed/validated documents
// themselves (spec.md §1 non-goal: "no built-in caching of parsed
// documents (callers may cache)"). Two Documents parsed from identical
// source bytes hash identically. The hash covers doc.Input.RawBytes (the
// source text plus the literal bytes the lexer appends while scanning),
// not the derived node slices; bytes appended to the arena later, e.g. by
// Document.AddNamedType, change the hash.
func DocumentHash(doc *Document) uint64 {
	return xxhash.Sum64(doc.Input.RawBytes)
}
