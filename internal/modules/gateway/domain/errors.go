package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "ledgerdesk/internal/platform/errors"
)

// GatewayError is a non-2xx answer from the API. Message is the server's
// "message" field when it sent one.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string { return e.Message }

// Is lets a 404 match apperrors.ErrNotFound.
func (e *GatewayError) Is(target error) bool {
	return target == apperrors.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// NewGatewayError builds the error for a failed response from its raw body.
func NewGatewayError(status int, body []byte) *GatewayError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		return &GatewayError{StatusCode: status, Message: payload.Message}
	}
	return &GatewayError{StatusCode: status, Message: fmt.Sprintf("API Error: %d", status)}
}

// TransportError covers everything that kept a usable response from
// arriving: network failures and malformed bodies.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
