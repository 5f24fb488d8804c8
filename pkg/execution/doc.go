// Package execution implements spec.md §4.7's executor: given a schema, a
// parsed operation document and a set of raw variables, it collects fields,
// coerces arguments, dispatches resolvers concurrently where the spec
// allows, completes values against their declared return type, and
// produces a {data, errors} response with located, nulled-on-ancestor
// errors (spec.md §7 "resolver errors are caught, located and null the
// nearest nullable ancestor").
//
// There is very little teacher code shaped like a GraphQL executor in the
// retrieval pack (v2/pkg/engine/plan only plans a query against upstream
// data sources, it does not walk a schema's runtime field resolvers) — this
// package follows spec.md §4.7/§4.10's algorithm directly, in the teacher's
// general idiom: constructor validates its *Request before building a
// response (mirrors plan.NewPlanner's config-validate-then-build shape),
// abstractlogger.Noop{} as the zero-value logger, errgroup.Group for
// fan-out concurrency, context.Context threaded through every resolver
// call.
package execution
