package types

import "github.com/cespare/xxhash/v2"

// Hash returns a content hash of s's shape (type and directive names, in
// discovery order) suitable as a cache key for callers that memoize
// validation or execution plans across repeated requests against the same
// schema — spec.md §1 lists "no built-in caching of parsed documents
// (callers may cache)" as a non-goal, so this is the cheap key a caller
// wires up themselves rather than anything this package does internally.
func Hash(s *Schema) uint64 {
	digest := xxhash.New()
	for _, t := range s.Types() {
		_, _ = digest.WriteString(t.TypeName())
		_, _ = digest.Write([]byte{0})
	}
	for _, d := range s.Directives {
		_, _ = digest.WriteString("@" + d.Name)
		_, _ = digest.Write([]byte{0})
	}
	return digest.Sum64()
}
