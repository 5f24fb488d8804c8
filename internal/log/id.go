package log

import "github.com/google/uuid"

// NewCorrelationID returns a fresh per-execution identifier, threaded into
// log fields by pkg/execution and pkg/subscription so every line logged
// during one execution can be grepped together (teacher `v2/go.mod` require
// on google/uuid; `anujdecoder-Jaal` wires an equivalent id generator for
// the same per-request-correlation concern).
func NewCorrelationID() string {
	return uuid.NewString()
}
