package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnauthenticated marks a mutation attempted without a current
	// identity. Never retried; the caller should prompt for login.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrValidationFailed marks a local precondition violation. Surfaced
	// inline, no network call was made.
	ErrValidationFailed = errors.New("validation failed")

	// ErrRemoteRejected marks a non-success response from the server.
	ErrRemoteRejected = errors.New("rejected by server")

	// ErrRemoteUnavailable marks a transport failure or timeout. Toggles
	// roll back; nothing is retried automatically.
	ErrRemoteUnavailable = errors.New("server unavailable")

	// ErrMutationInFlight rejects a second toggle on a subject whose first
	// toggle has not resolved yet.
	ErrMutationInFlight = errors.New("mutation already in flight for subject")

	// ErrNoStoredIdentity is returned by an identity store with nothing
	// persisted.
	ErrNoStoredIdentity = errors.New("no stored identity")
)

// ValidationError carries the field that failed a local precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// RejectionError carries the server's rejection payload. Fields holds
// field-keyed messages when the backend returned per-field validation errors
// (registration), Message holds the generic detail otherwise.
type RejectionError struct {
	Message string
	Fields  map[string][]string
}

func (e *RejectionError) Error() string {
	return e.Detail()
}

func (e *RejectionError) Unwrap() error { return ErrRemoteRejected }

// Detail returns the most specific message available: the first field-level
// message (fields in stable order) over the generic one.
func (e *RejectionError) Detail() string {
	if len(e.Fields) > 0 {
		fields := make([]string, 0, len(e.Fields))
		for field := range e.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			messages := e.Fields[field]
			if len(messages) == 0 {
				continue
			}
			return fmt.Sprintf("%s: %s", field, messages[0])
		}
	}

	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}

	return ErrRemoteRejected.Error()
}
