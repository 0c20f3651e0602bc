package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop-supply/greenloop-go/catalog"
	"github.com/greenloop-supply/greenloop-go/config"
)

var _ Transport = (*HTTP)(nil)
var _ Transport = (*Fixture)(nil)

func TestNewEnvelopeBodyShape(t *testing.T) {
	env, err := NewEnvelope("https://greenloop.example/graphql", Request{
		OperationName: "PickupsByPropertyId",
		Query:         "query PickupsByPropertyId($input: PickupsByPropertyIdInput!) { pickupsByPropertyId(input: $input) { pickups { id } } }",
		Input:         map[string]interface{}{"propertyId": "PropertyId1"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, env.Method)
	assert.Equal(t, "application/json", env.Header.Get("Content-Type"))

	// Exactly {query, variables}, with all variables under the one "input"
	// key, round-tripping the original values.
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Body, &body))
	require.Len(t, body, 2)
	require.Contains(t, body, "query")
	require.Contains(t, body, "variables")

	var variables map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["variables"], &variables))
	require.Len(t, variables, 1)

	var input map[string]string
	require.NoError(t, json.Unmarshal(variables["input"], &input))
	assert.Equal(t, map[string]string{"propertyId": "PropertyId1"}, input)
}

func TestNewEnvelopeAllOperations(t *testing.T) {
	for _, op := range catalog.Operations() {
		doc := catalog.Lookup(op)

		env, err := NewEnvelope("https://greenloop.example/graphql", Request{
			OperationName: doc.Name,
			Query:         doc.Document,
			Input:         map[string]string{"id": "Id1"},
		})
		require.NoError(t, err, op)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(env.Body, &body))
		assert.Len(t, body, 2, op)

		var variables map[string]map[string]string
		require.NoError(t, json.Unmarshal(body["variables"], &variables))
		assert.Equal(t, map[string]map[string]string{"input": {"id": "Id1"}}, variables, op)
	}
}

func TestNewEnvelopeEncodingError(t *testing.T) {
	_, err := NewEnvelope("https://greenloop.example/graphql", Request{
		OperationName: "SchedulePickup",
		Query:         "mutation { schedulePickup }",
		Input:         map[string]interface{}{"bad": make(chan int)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SchedulePickup")
}

func TestHTTPSend(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"data":{"userById":{"user":{"id":"UserId1"}}}}`))
	}))
	defer ts.Close()

	env, err := NewEnvelope(ts.URL, Request{
		OperationName: "UserById",
		Query:         "query UserById($input: UserByIdInput!) { userById(input: $input) { user { id } } }",
		Input:         map[string]string{"userId": "UserId1"},
	})
	require.NoError(t, err)

	tr := &HTTP{}
	raw, err := tr.Send(context.Background(), env)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, string(env.Body), string(gotBody))
	assert.JSONEq(t, `{"data":{"userById":{"user":{"id":"UserId1"}}}}`, string(raw))
}

func TestHTTPSendDoesNotInterpretStatus(t *testing.T) {
	// Application errors arrive in the JSON body whatever the status code;
	// status interpretation is the unwrapper's job, not the transport's.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"No result found"}]}`))
	}))
	defer ts.Close()

	env, err := NewEnvelope(ts.URL, Request{OperationName: "CancelPickup", Query: "mutation { cancelPickup }"})
	require.NoError(t, err)

	raw, err := (&HTTP{}).Send(context.Background(), env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":[{"message":"No result found"}]}`, string(raw))
}

func TestHTTPSendRequestOptions(t *testing.T) {
	var gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer ts.Close()

	tr := NewHTTP(config.Config{
		Endpoint: ts.URL,
		Headers:  map[string]string{"x-api-key": "secret"},
	})

	env, err := NewEnvelope(ts.URL, Request{OperationName: "LogIn", Query: "query { logIn }"})
	require.NoError(t, err)

	_, err = tr.Send(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
}

func TestHTTPSendContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer ts.Close()

	env, err := NewEnvelope(ts.URL, Request{OperationName: "UserById", Query: "query { userById }"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = (&HTTP{}).Send(ctx, env)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFixtureReplay(t *testing.T) {
	fx := NewFixture().
		Seed("UserById", []byte(`{"data":{"userById":{"user":{"id":"UserId1"}}}}`)).
		SeedError("PaymentsByPropertyId", errors.New("connection reset"))

	env, err := NewEnvelope("https://greenloop.example/graphql", Request{
		OperationName: "UserById",
		Query:         "query { userById }",
	})
	require.NoError(t, err)

	raw, err := fx.Send(context.Background(), env)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "UserId1")

	env.Operation = "PaymentsByPropertyId"
	_, err = fx.Send(context.Background(), env)
	assert.EqualError(t, err, "connection reset")

	env.Operation = "UpdateProperty"
	_, err = fx.Send(context.Background(), env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UpdateProperty")

	assert.Len(t, fx.Sent(), 3)
}
