package application

import (
	"context"
	"errors"
	"testing"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartsResolving(t *testing.T) {
	session := NewSession(&fakeGateway{}, &fakeIdentityStore{})

	assert.Equal(t, domain.StateResolving, session.Current())
}

func TestResolveRestoresPersistedIdentity(t *testing.T) {
	store := &fakeIdentityStore{saved: &domain.Identity{ID: 1, Username: "alice"}}
	session := NewSession(&fakeGateway{}, store)

	session.Resolve(context.Background())

	assert.Equal(t, domain.StateAuthenticated, session.Current())
	identity, ok := session.Identity()
	require.True(t, ok)
	assert.Equal(t, "alice", identity.Username)
}

func TestResolveWithoutPersistedIdentityIsAnonymous(t *testing.T) {
	session := NewSession(&fakeGateway{}, &fakeIdentityStore{})

	session.Resolve(context.Background())

	assert.Equal(t, domain.StateAnonymous, session.Current())
}

func TestResolveTreatsLoadFailureAsAnonymous(t *testing.T) {
	store := &fakeIdentityStore{loadErr: errors.New("unsupported identity schema version 9")}
	session := NewSession(&fakeGateway{}, store)

	session.Resolve(context.Background())

	assert.Equal(t, domain.StateAnonymous, session.Current())
}

func TestResolveRunsOnce(t *testing.T) {
	store := &fakeIdentityStore{}
	session := NewSession(&fakeGateway{}, store)

	session.Resolve(context.Background())
	require.Equal(t, domain.StateAnonymous, session.Current())

	// A later write to the store must not be picked up by a second resolve.
	store.saved = &domain.Identity{ID: 2, Username: "mallory"}
	session.Resolve(context.Background())

	assert.Equal(t, domain.StateAnonymous, session.Current())
}

func TestLoginSuccessAuthenticatesAndPersists(t *testing.T) {
	gateway := &fakeGateway{identity: domain.Identity{ID: 7, Username: "alice"}}
	store := &fakeIdentityStore{}
	session := NewSession(gateway, store)
	session.Resolve(context.Background())

	err := session.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, domain.StateAuthenticated, session.Current())
	require.NotNil(t, store.stored())
	assert.Equal(t, "alice", store.stored().Username)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	gateway := &fakeGateway{loginErr: &domain.RejectionError{Message: "Invalid credentials"}}
	store := &fakeIdentityStore{}
	session := NewSession(gateway, store)
	session.Resolve(context.Background())

	err := session.Login(context.Background(), "alice", "wrong")

	require.ErrorIs(t, err, domain.ErrRemoteRejected)
	assert.Equal(t, domain.StateAnonymous, session.Current())
	assert.Nil(t, store.stored())
}

func TestRegisterSuccessDoesNotLogIn(t *testing.T) {
	gateway := &fakeGateway{}
	session := NewSession(gateway, &fakeIdentityStore{})
	session.Resolve(context.Background())

	err := session.Register(context.Background(), domain.Registration{
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "hunter22",
		PasswordConfirm: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateAnonymous, session.Current())
}

func TestRegisterValidatesLocallyBeforeAnyNetworkCall(t *testing.T) {
	tests := []struct {
		name  string
		reg   domain.Registration
		field string
	}{
		{name: "missing username", reg: domain.Registration{Email: "a@b.c", Password: "x", PasswordConfirm: "x"}, field: "username"},
		{name: "missing email", reg: domain.Registration{Username: "a", Password: "x", PasswordConfirm: "x"}, field: "email"},
		{name: "missing password", reg: domain.Registration{Username: "a", Email: "a@b.c"}, field: "password"},
		{name: "password mismatch", reg: domain.Registration{Username: "a", Email: "a@b.c", Password: "x", PasswordConfirm: "y"}, field: "password_confirm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeGateway{}
			session := NewSession(gateway, &fakeIdentityStore{})
			session.Resolve(context.Background())

			err := session.Register(context.Background(), tt.reg)

			require.ErrorIs(t, err, domain.ErrValidationFailed)
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Zero(t, gateway.callCount())
		})
	}
}

func TestRegisterSurfacesFieldKeyedRejection(t *testing.T) {
	gateway := &fakeGateway{registerErr: &domain.RejectionError{
		Fields: map[string][]string{"username": {"A user with that username already exists."}},
	}}
	session := NewSession(gateway, &fakeIdentityStore{})
	session.Resolve(context.Background())

	err := session.Register(context.Background(), domain.Registration{
		Username:        "taken",
		Email:           "taken@example.com",
		Password:        "hunter22",
		PasswordConfirm: "hunter22",
	})

	require.ErrorIs(t, err, domain.ErrRemoteRejected)
	var rejection *domain.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "username: A user with that username already exists.", rejection.Detail())
}

func TestLogoutIsFinalEvenWhenServerCallFails(t *testing.T) {
	gateway := &fakeGateway{
		identity:  domain.Identity{ID: 7, Username: "alice"},
		logoutErr: errors.New("connection refused"),
	}
	store := &fakeIdentityStore{}
	session := NewSession(gateway, store)
	session.Resolve(context.Background())
	require.NoError(t, session.Login(context.Background(), "alice", "s3cret"))

	err := session.Logout(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.StateAnonymous, session.Current())
	assert.Nil(t, store.stored())
	assert.Equal(t, 1, store.clears)
}

func TestLogoutSurfacesStoreClearFailure(t *testing.T) {
	store := &fakeIdentityStore{
		saved:    &domain.Identity{ID: 7, Username: "alice"},
		clearErr: errors.New("read-only filesystem"),
	}
	session := NewSession(&fakeGateway{}, store)
	session.Resolve(context.Background())

	err := session.Logout(context.Background())

	require.Error(t, err)
	// The in-memory state still flips; only the persisted copy lingers.
	assert.Equal(t, domain.StateAnonymous, session.Current())
}
