package domain

// Identity is the client-visible shape of an authenticated user. It is
// normalized at the gateway boundary: the backend sometimes nests it under a
// "user" field and sometimes returns it flat, but only this one shape exists
// past the gateway.
type Identity struct {
	ID       int64
	Username string
	Email    string
}

type Registration struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}
