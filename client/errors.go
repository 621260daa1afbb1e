package client

import (
	"fmt"
	"net/http"
)

// ValidationError reports a bad argument caught before any request is made.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
}

func missingParam(name string) *ValidationError {
	return &ValidationError{Param: name, Reason: "is required"}
}

// ErrorKind classifies a remote or transport failure.
type ErrorKind int

const (
	// KindTransport covers failures with no usable response: connection
	// errors, timeouts, and status codes the daemon does not document.
	KindTransport ErrorKind = iota
	// KindBadRequest is a 400: the daemon could not parse the request.
	KindBadRequest
	// KindUnauthorized is a 401: missing or invalid API key.
	KindUnauthorized
	// KindWalletNotOpen is a 403: no wallet container is currently open.
	KindWalletNotOpen
	// KindNotFound is a 404.
	KindNotFound
	// KindInternal is a 500: the daemon failed to process the request.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindWalletNotOpen:
		return "wallet not open"
	case KindNotFound:
		return "not found"
	case KindInternal:
		return "internal server error"
	default:
		return "transport failure"
	}
}

// APIError is a classified remote or transport failure. StatusCode is zero
// when the request never produced a response.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.String()
}

func (e *APIError) Unwrap() error { return e.err }

// classify maps an HTTP status code and optional daemon-supplied detail to
// an APIError. It is total: unrecognized codes become KindTransport.
func classify(status int, detail string) *APIError {
	var kind ErrorKind
	var msg string

	switch status {
	case http.StatusBadRequest:
		kind = KindBadRequest
		msg = "wallet-api could not parse the request"
	case http.StatusUnauthorized:
		kind = KindUnauthorized
		msg = "authentication failed: missing or invalid API key"
	case http.StatusForbidden:
		kind = KindWalletNotOpen
		msg = "no wallet container is open"
	case http.StatusNotFound:
		kind = KindNotFound
		msg = "not found"
	case http.StatusInternalServerError:
		kind = KindInternal
		msg = "wallet-api failed to process the request"
	default:
		kind = KindTransport
		msg = fmt.Sprintf("unexpected status %d", status)
	}

	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}

	return &APIError{Kind: kind, StatusCode: status, Message: msg}
}

// transportError wraps a failure that never produced an HTTP response.
func transportError(err error) *APIError {
	return &APIError{
		Kind:    KindTransport,
		Message: fmt.Sprintf("request failed: %v", err),
		err:     err,
	}
}
