package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationshipToggled(t *testing.T) {
	tests := []struct {
		name string
		rel  Relationship
		want Relationship
	}{
		{name: "activate increments", rel: Relationship{Active: false, Count: 3}, want: Relationship{Active: true, Count: 4}},
		{name: "deactivate decrements", rel: Relationship{Active: true, Count: 4}, want: Relationship{Active: false, Count: 3}},
		{name: "count floors at zero", rel: Relationship{Active: true, Count: 0}, want: Relationship{Active: false, Count: 0}},
		{name: "zero value activates", rel: Relationship{}, want: Relationship{Active: true, Count: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rel.Toggled())
		})
	}
}

func TestSubjectKeyString(t *testing.T) {
	key := SubjectKey{Kind: SubjectPost, ID: "hello-world"}
	assert.Equal(t, "post/hello-world", key.String())
}

func TestValidationErrorUnwrapsToSentinel(t *testing.T) {
	err := &ValidationError{Field: "body", Reason: "too short"}

	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "body: too short", err.Error())
}

func TestRejectionErrorDetailPrefersFieldMessages(t *testing.T) {
	tests := []struct {
		name string
		err  RejectionError
		want string
	}{
		{
			name: "field message wins over generic",
			err: RejectionError{
				Message: "Registration failed",
				Fields:  map[string][]string{"username": {"already taken"}},
			},
			want: "username: already taken",
		},
		{
			name: "fields in stable order",
			err: RejectionError{
				Fields: map[string][]string{
					"username": {"already taken"},
					"email":    {"invalid address"},
				},
			},
			want: "email: invalid address",
		},
		{
			name: "generic message when no fields",
			err:  RejectionError{Message: "Invalid credentials"},
			want: "Invalid credentials",
		},
		{
			name: "fallback when empty",
			err:  RejectionError{},
			want: "rejected by server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Detail())
		})
	}
}

func TestRejectionErrorUnwrapsToSentinel(t *testing.T) {
	err := &RejectionError{Message: "nope"}
	require.True(t, errors.Is(err, ErrRemoteRejected))
}
