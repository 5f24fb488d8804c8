package log

import "github.com/davecgh/go-spew/spew"

// Inspect renders v as a multi-line debug dump, used only in error messages
// and debug-level log fields, never for control flow (spec.md §9's
// "Inspect helper" design note).
func Inspect(v interface{}) string {
	return spew.Sdump(v)
}
