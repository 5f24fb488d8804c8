// Package subscription implements spec.md §4.8's subscription driver: it
// resolves a subscription operation's single root field through its
// dedicated subscribe resolver to obtain a SourceStream, then re-enters
// pkg/execution once per source event with that event as the new root
// value, forwarding each resulting Response to the consumer until the
// stream ends, the consumer stops consuming, or the stream itself errors.
package subscription

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/lexigraph/graphql/internal/log"
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/coercion"
	"github.com/lexigraph/graphql/pkg/execution"
	"github.com/lexigraph/graphql/pkg/types"
)

// Event is one message produced by a SourceStream. An Err terminates the
// stream (spec.md §4.8 "a source-stream error ... propagates"); a nil Err
// carries the next source value to re-run execution against.
type Event struct {
	Value interface{}
	Err   error
}

// SourceStream is what a subscribe resolver must return (spec.md §6
// "Subscribe resolver ... → async_iterable<event>"), type-asserted out of
// the interface{} types.SubscribeFunc returns since pkg/types cannot import
// this package without an import cycle.
type SourceStream interface {
	Events() <-chan Event
	Close() error
}

// Driver pumps one SourceStream's events through the executor and exposes
// the mapped responses as a channel (spec.md §4.8 "at-most-one-in-flight
// guarantee": exactly one event is being executed at any instant, enforced
// simply by the pump loop being single-goroutine and only ever advancing to
// the next Events() receive after the previous Response has been sent or
// the consumer has gone away).
type Driver struct {
	stream        SourceStream
	out           chan *execution.Response
	logger        log.Logger
	correlationID string

	closed    atomic.Bool
	closeOnce sync.Once
}

// Responses returns the channel of mapped results, closed once the source
// stream ends, errors, or Close is called.
func (d *Driver) Responses() <-chan *execution.Response {
	return d.out
}

// Close always closes the underlying source stream exactly once (spec.md
// §4.8 "closing the consumer closes the source" — the Open Question
// decision recorded for this package: the driver owns the source's
// lifetime and guarantees Close() regardless of which side — consumer
// context cancellation, a terminal stream error, or an explicit caller
// Close — ended things first).
func (d *Driver) Close() error {
	var err error
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		err = d.stream.Close()
	})
	return err
}

// Subscribe resolves req's subscription root field's subscribe resolver
// (spec.md §4.8 "subscribe(...) resolves the subscription root field via a
// dedicated subscribe resolver") and starts pumping its events.
func Subscribe(req *execution.Request) (*Driver, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := req.Logger
	if logger == nil {
		logger = log.Noop()
	}

	opRef, err := selectOperation(req.Document, req.OperationName)
	if err != nil {
		return nil, err
	}
	op := req.Document.OperationDefinitions[opRef]
	if op.OperationType != ast.OperationTypeSubscription {
		return nil, fmt.Errorf("operation %q is not a subscription", req.OperationName)
	}

	rootType := req.Schema.Subscription
	if rootType == nil {
		return nil, fmt.Errorf("schema has no subscription root type")
	}

	variableValues, verrs := coercion.CoerceVariableValues(req.Schema, req.Document, op.VariableDefinitions, req.RawVariableValues)
	if len(verrs) > 0 {
		return nil, verrs[0]
	}

	groups := execution.CollectFields(req.Document, req.Schema, rootType, op.SelectionSet, variableValues)
	if len(groups) != 1 {
		return nil, fmt.Errorf("subscription operations must select exactly one root field, got %d", len(groups))
	}
	group := groups[0]
	fieldRef := group.Fields[0]
	fieldName := req.Document.FieldNameString(fieldRef)

	fieldDef, ok := rootType.Fields.Lookup(fieldName)
	if !ok {
		return nil, fmt.Errorf("unknown subscription field %q", fieldName)
	}
	if fieldDef.Subscribe == nil {
		return nil, fmt.Errorf("field %q has no subscribe resolver", fieldName)
	}

	args, cerrs := coercion.CoerceArgumentValues(req.Document, req.Document.Fields[fieldRef].Arguments, fieldDef.Args, variableValues)
	if len(cerrs) > 0 {
		return nil, cerrs[0]
	}

	info := types.ResolveInfo{
		FieldName:      fieldName,
		FieldNodes:     group.Fields,
		ReturnType:     fieldDef.Type,
		ParentType:     rootType,
		Schema:         req.Schema,
		Operation:      opRef,
		VariableValues: variableValues,
		RootValue:      req.RootValue,
		Context:        ctx,
	}

	raw, err := fieldDef.Subscribe(ctx, req.RootValue, args, info)
	if err != nil {
		return nil, err
	}
	stream, ok := raw.(SourceStream)
	if !ok {
		return nil, fmt.Errorf("subscribe resolver for field %q did not return a SourceStream", fieldName)
	}

	d := &Driver{
		stream:        stream,
		out:           make(chan *execution.Response, subscriptionBufferSize(req)),
		logger:        logger,
		correlationID: log.NewCorrelationID(),
	}

	eventReq := *req
	go d.pump(ctx, &eventReq)

	return d, nil
}

func subscriptionBufferSize(req *execution.Request) int {
	if req.Concurrency > 0 {
		return req.Concurrency
	}
	return 8
}

func (d *Driver) pump(ctx context.Context, baseReq *execution.Request) {
	defer close(d.out)
	events := d.stream.Events()
	for {
		select {
		case <-ctx.Done():
			d.Close()
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if d.closed.Load() {
				return
			}
			if ev.Err != nil {
				d.logger.Error(fmt.Sprintf("subscription source stream terminated (correlation id %s): %v", d.correlationID, ev.Err))
				d.send(ctx, &execution.Response{Errors: []*execution.FieldError{{Message: ev.Err.Error()}}})
				d.Close()
				return
			}

			eventReq := *baseReq
			eventReq.RootValue = ev.Value
			eventReq.Context = ctx
			resp := execution.Execute(&eventReq)
			if !d.send(ctx, resp) {
				return
			}
		}
	}
}

func (d *Driver) send(ctx context.Context, resp *execution.Response) bool {
	select {
	case d.out <- resp:
		return true
	case <-ctx.Done():
		d.Close()
		return false
	}
}

// selectOperation mirrors pkg/execution's unexported operation-selection
// logic. Duplicated rather than exported from pkg/execution to keep the
// two packages decoupled per SPEC_FULL.md §2's dependency order
// (subscription depends on execution, never the reverse).
func selectOperation(doc *ast.Document, name string) (int, error) {
	if name != "" {
		ref := doc.OperationByName(name)
		if ref == -1 {
			return -1, fmt.Errorf("unknown operation named %q", name)
		}
		return ref, nil
	}
	switch len(doc.OperationDefinitions) {
	case 0:
		return -1, fmt.Errorf("no operations found in document")
	case 1:
		return 0, nil
	default:
		return -1, fmt.Errorf("must provide an operation name when the document contains more than one operation")
	}
}
