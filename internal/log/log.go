// Package log is the ambient logging stack shared by pkg/execution,
// pkg/subscription, pkg/astbuildschema and pkg/schemavalidate. It wraps
// abstractlogger.Logger rather than introducing a bespoke interface,
// grounded on the teacher's own `config.Logger == nil → abstractlogger.Noop{}`
// default in v2/pkg/engine/plan.NewPlanner — every long-lived component here
// defaults to a Noop logger exactly the same way.
package log

import (
	"github.com/jensneuse/abstractlogger"
)

// Logger is the logging interface every long-lived engine component
// accepts; an alias rather than a new type so callers can pass an
// abstractlogger.Logger they already have (zap/logrus/noop adapters) with
// no wrapping required.
type Logger = abstractlogger.Logger

// Noop returns a logger that discards everything, the zero-value default
// for any component's Logger field (mirrors the teacher's
// `config.Logger = abstractlogger.Noop{}` literal exactly).
func Noop() Logger {
	return abstractlogger.Noop{}
}

// NewZap builds a Logger backed by go.uber.org/zap at the given level, for
// production wiring (e.g. cmd/graphqlcheck).
func NewZap(level abstractlogger.Level) (Logger, error) {
	zapLogger, err := newZapLogger(level)
	if err != nil {
		return nil, err
	}
	return abstractlogger.NewZapLogger(zapLogger, level), nil
}
