// Package transport moves GraphQL request bodies to the GreenLoop backend
// and hands raw response bytes back. The HTTP implementation is the only
// code in the module that performs network I/O; the Fixture implementation
// replays canned bytes so everything above it tests without a backend.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Request is one operation about to be sent: the catalog document plus the
// caller's input variables.
type Request struct {
	OperationName string
	Query         string
	Input         interface{}
}

// OperationRequest is the JSON body shape the backend expects. Every
// operation takes its variables wrapped under a single "input" key.
type OperationRequest struct {
	Query     string    `json:"query"`
	Variables Variables `json:"variables"`
}

type Variables struct {
	Input interface{} `json:"input"`
}

// Envelope is a fully built outbound request: where it goes and the exact
// bytes to post. Built once per call and discarded after Send.
type Envelope struct {
	Operation string
	URL       string
	Method    string
	Header    http.Header
	Body      []byte
}

// NewEnvelope serializes req into the backend's body shape. It fails only
// when the input variables cannot be marshaled.
func NewEnvelope(url string, req Request) (*Envelope, error) {
	body, err := json.Marshal(OperationRequest{
		Query:     req.Query,
		Variables: Variables{Input: req.Input},
	})
	if err != nil {
		return nil, fmt.Errorf("transport: encode %s variables: %w", req.OperationName, err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	return &Envelope{
		Operation: req.OperationName,
		URL:       url,
		Method:    http.MethodPost,
		Header:    header,
		Body:      body,
	}, nil
}

type Transport interface {
	Send(ctx context.Context, env *Envelope) ([]byte, error)
}
