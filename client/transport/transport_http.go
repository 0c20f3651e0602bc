package transport

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/greenloop-supply/greenloop-go/config"
)

type RequestOption func(req *http.Request)

// HTTP posts envelopes over the wire. Connectivity, timeout and TLS errors
// come back verbatim; the HTTP status is not interpreted here, since the
// backend reports application errors in the JSON body regardless of status.
type HTTP struct {
	// Client defaults to http.DefaultClient
	Client         *http.Client
	RequestOptions []RequestOption
	// Logger, when set, emits one debug line per request.
	Logger *slog.Logger
}

// NewHTTP builds the live transport from client configuration: the timeout
// lands on the http.Client, extra headers become a request option.
func NewHTTP(cfg config.Config) *HTTP {
	tr := &HTTP{
		Client: &http.Client{Timeout: cfg.Timeout()},
	}

	if len(cfg.Headers) > 0 {
		headers := cfg.Headers
		tr.RequestOptions = append(tr.RequestOptions, func(req *http.Request) {
			for k, v := range headers {
				req.Header.Set(k, v)
			}
		})
	}

	return tr
}

func (h *HTTP) Send(ctx context.Context, env *Envelope) ([]byte, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, env.Method, env.URL, bytes.NewReader(env.Body))
	if err != nil {
		return nil, err
	}

	for k, vs := range env.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	for _, ro := range h.RequestOptions {
		ro(req)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if h.Logger != nil {
		h.Logger.DebugContext(ctx, "graphql request",
			"operation", env.Operation,
			"status", res.StatusCode,
			"request_bytes", len(env.Body),
			"response_bytes", len(data),
		)
	}

	return data, nil
}
