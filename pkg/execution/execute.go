package execution

import (
	"context"

	"github.com/jensneuse/abstractlogger"

	"github.com/lexigraph/graphql/internal/log"
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/coercion"
	"github.com/lexigraph/graphql/pkg/types"
)

// Request is everything Execute/ExecuteSync need (spec.md §4.7's entry
// point parameters: schema, document, operation name, variable values,
// root value, context).
type Request struct {
	Schema        *types.Schema
	Document      *ast.Document
	OperationName string

	// RawVariableValues is the caller-supplied (e.g. request-body-decoded)
	// variable map, coerced against the operation's variable definitions
	// before execution begins (spec.md §4.6).
	RawVariableValues map[string]interface{}

	RootValue interface{}
	Context   context.Context

	// Logger defaults to log.Noop() when nil.
	Logger log.Logger

	// Concurrency bounds sibling fan-out (internal/config.Config's
	// ExecutorConcurrency); zero means unbounded.
	Concurrency int

	// DefaultFieldResolverStrict is forwarded to DefaultFieldResolver for
	// any field without its own Resolve func.
	DefaultFieldResolverStrict bool
}

// Response is spec.md §4.7's {data, errors} result. HasData distinguishes
// "execution never got far enough to produce a data object" (HasData
// false, e.g. the operation or its variables failed to validate/coerce —
// spec.md §6 "data is not present at all" in that case) from "execution
// completed but the root selection itself ended up null" (HasData true,
// Data nil, per a NonNull root field bubbling all the way up).
type Response struct {
	HasData bool
	Data    *OrderedMap
	Errors  []*FieldError
}

// Execute runs req to completion, awaiting any Deferred resolver result
// in-place (spec.md §6 "Field resolver ... → value | deferred<value>").
func Execute(req *Request) *Response {
	return execute(req, false)
}

// ExecuteSync is Execute but rejects any resolver result that is Deferred
// instead of awaiting it, matching graphql-js's executeSync contract that a
// caller asking for a synchronous result gets an error rather than a block
// if the schema cannot actually resolve synchronously.
func ExecuteSync(req *Request) *Response {
	return execute(req, true)
}

func execute(req *Request, syncOnly bool) *Response {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := req.Logger
	if logger == nil {
		logger = abstractlogger.Noop{}
	}

	opRef, operr := selectOperation(req.Document, req.OperationName)
	if operr != nil {
		return &Response{Errors: []*FieldError{operr}}
	}
	op := req.Document.OperationDefinitions[opRef]

	rootType := req.Schema.RootForOperation(op.OperationType.String())
	if rootType == nil {
		return &Response{Errors: []*FieldError{fieldErrorf(nil, -1, nil, "Schema is not configured for %s operations.", op.OperationType.String())}}
	}

	variableValues, verrs := coercion.CoerceVariableValues(req.Schema, req.Document, op.VariableDefinitions, req.RawVariableValues)
	if len(verrs) > 0 {
		errs := make([]*FieldError, len(verrs))
		for i, e := range verrs {
			errs[i] = &FieldError{Message: e.Error(), Path: []interface{}(Path(e.Path))}
		}
		return &Response{Errors: errs}
	}

	rc := &requestCtx{
		schema:         req.Schema,
		doc:            req.Document,
		operationRef:   opRef,
		variableValues: variableValues,
		rootValue:      req.RootValue,
		concurrency:    req.Concurrency,
		logger:         logger,
		correlationID:  log.NewCorrelationID(),
		resolverStrict: req.DefaultFieldResolverStrict,
		syncOnly:       syncOnly,
	}

	sequential := op.OperationType == ast.OperationTypeMutation
	groups := CollectFields(req.Document, req.Schema, rootType, op.SelectionSet, variableValues)
	res := rc.executeGroupedFieldSet(ctx, rootType, req.RootValue, groups, nil, sequential)

	if res.Bubble {
		return &Response{HasData: true, Data: nil, Errors: res.Errors}
	}
	data, _ := res.Value.(*OrderedMap)
	return &Response{HasData: true, Data: data, Errors: res.Errors}
}

// selectOperation picks the operation to execute (spec.md §4.7 "select the
// named operation, or the sole operation if exactly one is present and no
// name was given").
func selectOperation(doc *ast.Document, name string) (int, *FieldError) {
	if name != "" {
		ref := doc.OperationByName(name)
		if ref == -1 {
			return -1, fieldErrorf(nil, -1, nil, "Unknown operation named %q.", name)
		}
		return ref, nil
	}
	switch len(doc.OperationDefinitions) {
	case 0:
		return -1, fieldErrorf(nil, -1, nil, "No operations found in document.")
	case 1:
		return 0, nil
	default:
		return -1, fieldErrorf(nil, -1, nil, "Must provide an operation name when the document contains more than one operation.")
	}
}
