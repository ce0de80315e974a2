// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/graphql"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
)

// CodeBadUserInput is the extensions code the API uses for rejected input.
const CodeBadUserInput = "BAD_USER_INPUT"

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return upstreamHTTPStatus(err, http.StatusInternalServerError)
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func upstreamHTTPStatus(err error, fallback int) int {
	if graphql.IsUnauthenticated(err) {
		return http.StatusUnauthorized
	}
	var responseErrs graphql.ResponseErrors
	if stderrors.As(err, &responseErrs) {
		if responseErrs.HasCode(CodeBadUserInput) {
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	}
	var transportErr *graphql.TransportError
	if !stderrors.As(err, &transportErr) {
		return fallback
	}
	switch transportErr.Kind {
	case graphql.TransportNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// UpstreamMessages returns the user-facing messages of GraphQL errors in err.
func UpstreamMessages(err error) []string {
	var responseErrs graphql.ResponseErrors
	if !stderrors.As(err, &responseErrs) {
		return nil
	}
	messages := make([]string, 0, len(responseErrs))
	for _, item := range responseErrs {
		if msg := strings.TrimSpace(item.Message); msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages
}
