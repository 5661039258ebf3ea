package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Transport executes a document against the remote API.
type Transport interface {
	Execute(ctx context.Context, doc Document) Envelope
}

// Envelope is the outcome of one remote call. On success Err is nil; on failure Data may be empty.
type Envelope struct {
	Data json.RawMessage
	Err  error
}

// Response is an Envelope whose payload has been decoded. Data is nil when the payload was absent or null.
type Response[T any] struct {
	Data *T
	Err  error
}

// Execute runs doc and decodes the data payload into T.
func Execute[T any](ctx context.Context, t Transport, doc Document) Response[T] {
	env := t.Execute(ctx, doc)
	if env.Err != nil {
		return Response[T]{Err: env.Err}
	}

	raw := strings.TrimSpace(string(env.Data))
	if raw == "" || raw == "null" {
		return Response[T]{}
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Response[T]{Err: fmt.Errorf("decoding graphql data: %w", err)}
	}
	return Response[T]{Data: &data}
}

// Error is one entry of a GraphQL "errors" array.
type Error struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

func (e *Error) Error() string {
	if e.Type == "" {
		return e.Message
	}
	return e.Type + ": " + e.Message
}

// Errors is returned when a response carries more than one GraphQL error.
type Errors []*Error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, err := range e {
		errs = append(errs, err)
	}
	return errs
}

// AsError collapses a decoded "errors" array into a single error value, or nil when empty.
func AsError(errs []*Error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return Errors(errs)
	}
}
