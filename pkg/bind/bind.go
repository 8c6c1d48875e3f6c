// Package bind carries the parsed JSON request payload through the context
// and decodes it into typed, validated inputs.
package bind

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/tasker/pkg/validate"
)

// ErrEmptyBody is returned by JSON when the request carried no payload.
var ErrEmptyBody = errors.New("request body is empty")

type ctxKey struct{}

type payload struct {
	raw    []byte
	parsed interface{}
}

// WithPayload stores the raw and parsed body in ctx. Called by the JSON body
// middleware once the body has been read and checked.
func WithPayload(ctx context.Context, raw []byte, parsed interface{}) context.Context {
	return context.WithValue(ctx, ctxKey{}, payload{raw: raw, parsed: parsed})
}

// Payload returns the parsed JSON body (map[string]interface{}, []interface{},
// or a scalar) and whether one was present.
func Payload(r *http.Request) (interface{}, bool) {
	p, ok := r.Context().Value(ctxKey{}).(payload)
	if !ok {
		return nil, false
	}
	return p.parsed, true
}

// JSON decodes the payload stored by the JSON body middleware into dest and
// runs validation. Only bodies the middleware accepted are bound: a request
// with no stored payload, such as a text/plain body, yields ErrEmptyBody.
// Returns (errs, nil) when there are validation failures and (nil, err) when
// the payload is missing or cannot be decoded into dest.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	p, ok := r.Context().Value(ctxKey{}).(payload)
	if !ok || len(p.raw) == 0 {
		return nil, ErrEmptyBody
	}

	if err := json.Unmarshal(p.raw, dest); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}
