package transport

import (
	"context"
	"fmt"
	"sync"
)

// Fixture is a replay transport: canned response bytes or errors keyed by
// operation name, no I/O. It records every envelope it is handed so tests
// can assert on what would have gone over the wire.
type Fixture struct {
	mu        sync.Mutex
	responses map[string]fixtureResult
	sent      []*Envelope
}

type fixtureResult struct {
	body []byte
	err  error
}

func NewFixture() *Fixture {
	return &Fixture{responses: map[string]fixtureResult{}}
}

// Seed registers the response bytes replayed for the named operation.
func (f *Fixture) Seed(operation string, body []byte) *Fixture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[operation] = fixtureResult{body: body}
	return f
}

// SeedError registers a transport-level failure for the named operation.
func (f *Fixture) SeedError(operation string, err error) *Fixture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[operation] = fixtureResult{err: err}
	return f
}

func (f *Fixture) Send(_ context.Context, env *Envelope) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, env)

	res, ok := f.responses[env.Operation]
	if !ok {
		return nil, fmt.Errorf("transport: no fixture seeded for %q", env.Operation)
	}
	if res.err != nil {
		return nil, res.err
	}
	return res.body, nil
}

// Sent returns the envelopes handed to Send, in order.
func (f *Fixture) Sent() []*Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Envelope, len(f.sent))
	copy(out, f.sent)
	return out
}
