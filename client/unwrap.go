package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/greenloop-supply/greenloop-go/catalog"
)

// operationResponse is the top level of every backend response.
type operationResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors gqlerror.List   `json:"errors"`
}

// unwrap extracts the payload sub-object from a raw response body.
//
// The backend wraps query results in an extra object named after the query
// method, so most operations sit two keys under "data"; the schedule-pickup
// mutation sits one key under. Which applies is catalog data, never guessed
// from the JSON itself.
//
// A missing/empty "data", or a payload of JSON null, is the business "no
// result" outcome and comes back as *BackendError carrying the server's
// messages in order. A present "data" whose key structure does not match the
// catalog's nesting mode is ErrInvalidData.
func unwrap(raw []byte, nesting catalog.Nesting) (json.RawMessage, error) {
	var opres operationResponse
	if err := json.Unmarshal(raw, &opres); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	if emptyData(opres.Data) {
		return nil, &BackendError{Messages: errorMessages(opres.Errors)}
	}

	payload, err := peel(opres.Data, nesting)
	if err != nil {
		return nil, err
	}

	if isNull(payload) {
		return nil, &BackendError{Messages: errorMessages(opres.Errors)}
	}

	return payload, nil
}

// peel descends one key for flat nesting, two for nested.
func peel(data json.RawMessage, nesting catalog.Nesting) (json.RawMessage, error) {
	inner, err := soleValue(data)
	if err != nil {
		return nil, err
	}

	if nesting == catalog.NestingFlat || isNull(inner) {
		return inner, nil
	}

	return soleValue(inner)
}

// soleValue returns the value of obj's only key, failing when obj is not an
// object with exactly one key.
func soleValue(obj json.RawMessage) (json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(obj, &m); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrInvalidData, head(obj))
	}
	if len(m) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one key, got %d", ErrInvalidData, len(m))
	}

	for _, v := range m {
		return v, nil
	}
	return nil, ErrInvalidData // unreachable
}

// decode converts the unwrapped payload into the target domain value.
func decode(payload json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(payload, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func errorMessages(list gqlerror.List) []string {
	msgs := make([]string, 0, len(list))
	for _, e := range list {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// emptyData reports whether "data" is absent, null or {}.
func emptyData(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}

	var m map[string]json.RawMessage
	return json.Unmarshal(trimmed, &m) == nil && len(m) == 0
}

func isNull(v json.RawMessage) bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func head(v json.RawMessage) string {
	const n = 40
	if len(v) <= n {
		return string(v)
	}
	return string(v[:n]) + "..."
}
