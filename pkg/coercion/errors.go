package coercion

import "fmt"

// Error is a located coercion failure (spec.md §7 kind 4 "Coercion error").
type Error struct {
	Message string
	Path    Path
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (at %s)", e.Message, e.Path)
}

func errf(path Path, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Path: path}
}
