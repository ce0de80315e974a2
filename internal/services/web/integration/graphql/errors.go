package graphql

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var errNoTransport = errors.New("no transport configured")

// TransportErrorKind classifies transport failures.
type TransportErrorKind string

const (
	TransportNetwork TransportErrorKind = "network"
	TransportStatus  TransportErrorKind = "status"
	TransportPayload TransportErrorKind = "payload"
)

// TransportError reports that an operation never produced a usable GraphQL
// response.
type TransportError struct {
	Kind       TransportErrorKind
	StatusCode int
	Err        error
}

// Error renders the failure.
func (e *TransportError) Error() string {
	switch e.Kind {
	case TransportStatus:
		return fmt.Sprintf("graphql transport: upstream status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	default:
		if e.Err == nil {
			return "graphql transport: " + string(e.Kind)
		}
		return fmt.Sprintf("graphql transport: %s: %v", e.Kind, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseErrors reports GraphQL errors returned alongside a 2xx response.
type ResponseErrors []ResponseError

// Error joins the error messages.
func (e ResponseErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, item := range e {
		if msg := strings.TrimSpace(item.Message); msg != "" {
			messages = append(messages, msg)
		}
	}
	if len(messages) == 0 {
		return "graphql: response contained errors"
	}
	return "graphql: " + strings.Join(messages, "; ")
}

// HasCode reports whether any error carries extensions.code == code.
func (e ResponseErrors) HasCode(code string) bool {
	for _, item := range e {
		if item.Code() == code {
			return true
		}
	}
	return false
}

// CodeUnauthenticated is the extensions code the API uses for auth failures.
const CodeUnauthenticated = "UNAUTHENTICATED"

// IsUnauthenticated reports whether err means the upstream rejected the
// caller's credentials.
func IsUnauthenticated(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Kind == TransportStatus && transportErr.StatusCode == http.StatusUnauthorized
	}
	var responseErrs ResponseErrors
	if errors.As(err, &responseErrs) {
		return responseErrs.HasCode(CodeUnauthenticated)
	}
	return false
}
