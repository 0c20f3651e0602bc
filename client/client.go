// Package client is the typed GraphQL client for the GreenLoop backend: one
// method per supported operation, each a single build -> send -> unwrap ->
// decode round trip. No retries, no caching, no state shared between calls
// beyond the endpoint and the token provider, both read-only.
package client

import (
	"context"
	"fmt"

	"github.com/greenloop-supply/greenloop-go/catalog"
	"github.com/greenloop-supply/greenloop-go/client/transport"
	"github.com/greenloop-supply/greenloop-go/config"
	"github.com/greenloop-supply/greenloop-go/model"
)

// TokenProvider supplies the bearer token for auth-required operations. An
// empty token or an error means no token is available.
type TokenProvider func() (string, error)

type Option func(*Client)

func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) {
		c.token = tp
	}
}

type Client struct {
	endpoint string
	tr       transport.Transport
	token    TokenProvider
}

// New builds a client posting to cfg.Endpoint through tr. The transport is
// injected, so tests hand in a transport.Fixture and production hands in
// transport.NewHTTP(cfg).
func New(cfg config.Config, tr transport.Transport, opts ...Option) *Client {
	c := &Client{
		endpoint: cfg.Endpoint,
		tr:       tr,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Do runs one cataloged operation: input is wrapped under the "input"
// variables key, out (unless nil) receives the decoded payload. Every typed
// method below rides on it. Operations the catalog has no document for fail
// with ErrUnimplemented before any I/O.
func (c *Client) Do(ctx context.Context, op catalog.Operation, input interface{}, out interface{}) error {
	doc := catalog.Lookup(op)
	if doc.IsZero() {
		return fmt.Errorf("%w: %s", ErrUnimplemented, op)
	}

	env, err := transport.NewEnvelope(c.endpoint, transport.Request{
		OperationName: doc.Name,
		Query:         doc.Document,
		Input:         input,
	})
	if err != nil {
		return err
	}

	raw, err := c.tr.Send(ctx, env)
	if err != nil {
		return &TransportError{Err: err}
	}

	payload, err := unwrap(raw, doc.Nesting)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return decode(payload, out)
}

type tokenInput struct {
	Token string `json:"token"`
}

type userIDInput struct {
	UserID string `json:"userId"`
}

type propertyIDInput struct {
	PropertyID string `json:"propertyId"`
}

type pickupIDInput struct {
	PickupID string `json:"pickupId"`
}

// LogIn exchanges the provider's bearer token for the account's User. With
// no provider, or a provider that yields nothing, it fails with ErrNoToken
// before touching the transport.
func (c *Client) LogIn(ctx context.Context) (*model.User, error) {
	if c.token == nil {
		return nil, ErrNoToken
	}

	tok, err := c.token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoToken, err)
	}
	if tok == "" {
		return nil, ErrNoToken
	}

	var user model.User
	if err := c.Do(ctx, catalog.LogIn, tokenInput{Token: tok}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ImpactStats fetches the recycling impact rollup for one property.
func (c *Client) ImpactStats(ctx context.Context, propertyID string) (*model.ImpactStats, error) {
	var stats model.ImpactStats
	if err := c.Do(ctx, catalog.ImpactStatsByPropertyID, propertyIDInput{PropertyID: propertyID}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// User fetches one account holder by id.
func (c *Client) User(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := c.Do(ctx, catalog.UserByID, userIDInput{UserID: userID}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Properties fetches every property the user manages.
func (c *Client) Properties(ctx context.Context, userID string) ([]model.Property, error) {
	var properties []model.Property
	if err := c.Do(ctx, catalog.PropertiesByUserID, userIDInput{UserID: userID}, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Payments fetches the payment history for one property.
func (c *Client) Payments(ctx context.Context, propertyID string) ([]model.Payment, error) {
	var payments []model.Payment
	if err := c.Do(ctx, catalog.PaymentsByPropertyID, propertyIDInput{PropertyID: propertyID}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Pickups fetches the pickups scheduled for one property.
func (c *Client) Pickups(ctx context.Context, propertyID string) ([]model.Pickup, error) {
	var pickups []model.Pickup
	if err := c.Do(ctx, catalog.PickupsByPropertyID, propertyIDInput{PropertyID: propertyID}, &pickups); err != nil {
		return nil, err
	}
	return pickups, nil
}

// SchedulePickup creates a pickup and returns it with its shipping label.
func (c *Client) SchedulePickup(ctx context.Context, input model.ScheduleInput) (*model.ScheduleResult, error) {
	var result model.ScheduleResult
	if err := c.Do(ctx, catalog.SchedulePickup, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelPickup cancels one pickup and returns its final state.
func (c *Client) CancelPickup(ctx context.Context, pickupID string) (*model.Pickup, error) {
	var pickup model.Pickup
	if err := c.Do(ctx, catalog.CancelPickup, pickupIDInput{PickupID: pickupID}, &pickup); err != nil {
		return nil, err
	}
	return &pickup, nil
}

// UpdateUserProfile saves profile edits and returns the updated User.
func (c *Client) UpdateUserProfile(ctx context.Context, input model.EditableProfileInfo) (*model.User, error) {
	var user model.User
	if err := c.Do(ctx, catalog.UpdateUserProfile, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProperty saves property edits and returns the updated Property.
func (c *Client) UpdateProperty(ctx context.Context, input model.EditablePropertyInfo) (*model.Property, error) {
	var property model.Property
	if err := c.Do(ctx, catalog.UpdateProperty, input, &property); err != nil {
		return nil, err
	}
	return &property, nil
}
