package domain

type SessionState string

const (
	// StateResolving is the strictly-initial state, before the persisted
	// identity has been checked. It is never re-entered.
	StateResolving SessionState = "resolving"

	StateAuthenticated SessionState = "authenticated"
	StateAnonymous     SessionState = "anonymous"
)
