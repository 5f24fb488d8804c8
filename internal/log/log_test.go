package log_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/internal/log"
)

func TestNoopDoesNotPanic(t *testing.T) {
	l := log.Noop()
	require.NotPanics(t, func() {
		l.Debug("message")
		l.Info("message")
		l.Error("message")
	})
}

func TestInspectRendersValue(t *testing.T) {
	out := log.Inspect(struct{ Name string }{Name: "hero"})
	require.Contains(t, out, "hero")
}

func TestNewCorrelationIDIsUnique(t *testing.T) {
	a := log.NewCorrelationID()
	b := log.NewCorrelationID()
	require.NotEqual(t, a, b)
}
