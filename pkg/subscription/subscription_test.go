package subscription_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astbuildschema"
	"github.com/lexigraph/graphql/pkg/astparser"
	"github.com/lexigraph/graphql/pkg/execution"
	"github.com/lexigraph/graphql/pkg/operationreport"
	"github.com/lexigraph/graphql/pkg/subscription"
	"github.com/lexigraph/graphql/pkg/types"
)

const chatSDL = `
schema { query: Query subscription: Subscription }

type Query {
  placeholder: String
}

type Subscription {
  messageAdded: Message!
}

type Message {
  text: String!
}
`

func parse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc := ast.NewDocument()
	doc.Input.ResetInputBytes([]byte(src))
	var report operationreport.Report
	astparser.NewParser().Parse(doc, &report)
	require.False(t, report.HasErrors(), report.Error())
	return doc
}

func buildSchema(t *testing.T) *types.Schema {
	t.Helper()
	sdl := parse(t, chatSDL)
	var report operationreport.Report
	schema := astbuildschema.Build(sdl, &report)
	require.False(t, report.HasErrors(), report.Error())
	return schema
}

type fakeStream struct {
	events    chan subscription.Event
	closeOnce sync.Once
	closed    bool
	mu        sync.Mutex
}

func newFakeStream() *fakeStream {
	return &fakeStream{events: make(chan subscription.Event, 8)}
}

func (s *fakeStream) Events() <-chan subscription.Event { return s.events }

func (s *fakeStream) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.events)
	})
	return nil
}

func (s *fakeStream) push(ev subscription.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.events <- ev
}

func TestSubscribe_MapsEachEventThroughTheExecutor(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	schema := buildSchema(t)
	stream := newFakeStream()
	subField, ok := schema.TypeByName("Subscription").(*types.Object)
	require.True(t, ok)
	field, ok := subField.Fields.Lookup("messageAdded")
	require.True(t, ok)
	field.Subscribe = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		return stream, nil
	}

	op := parse(t, `subscription { messageAdded { text } }`)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	driver, err := subscription.Subscribe(&execution.Request{Schema: schema, Document: op, Context: ctx})
	require.NoError(t, err)

	stream.push(subscription.Event{Value: map[string]interface{}{
		"messageAdded": map[string]interface{}{"text": "hello"},
	}})

	select {
	case resp := <-driver.Responses():
		require.Empty(t, resp.Errors)
		msg, ok := resp.Data.Get("messageAdded")
		require.True(t, ok)
		text, _ := msg.(*execution.OrderedMap).Get("text")
		require.Equal(t, "hello", text)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for mapped response")
	}

	require.NoError(t, driver.Close())
	_, open := <-driver.Responses()
	require.False(t, open)
}

func TestSubscribe_SourceStreamErrorTerminatesWithoutKillingPriorEvents(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	schema := buildSchema(t)
	stream := newFakeStream()
	subField, ok := schema.TypeByName("Subscription").(*types.Object)
	require.True(t, ok)
	field, ok := subField.Fields.Lookup("messageAdded")
	require.True(t, ok)
	field.Subscribe = func(ctx context.Context, source interface{}, args map[string]interface{}, info types.ResolveInfo) (interface{}, error) {
		return stream, nil
	}

	op := parse(t, `subscription { messageAdded { text } }`)
	driver, err := subscription.Subscribe(&execution.Request{Schema: schema, Document: op, Context: context.Background()})
	require.NoError(t, err)

	stream.push(subscription.Event{Value: map[string]interface{}{
		"messageAdded": map[string]interface{}{"text": "first"},
	}})
	<-driver.Responses()

	stream.push(subscription.Event{Err: errors.New("upstream closed")})

	select {
	case resp, open := <-driver.Responses():
		require.True(t, open)
		require.Len(t, resp.Errors, 1)
		require.Equal(t, "upstream closed", resp.Errors[0].Message)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for terminal error")
	}

	_, open := <-driver.Responses()
	require.False(t, open, "channel should close after a source-stream error")
}
