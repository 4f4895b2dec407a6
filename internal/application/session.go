package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/aitaprogrammer/blogify-cli/internal/ports"
)

// Session is the sole owner of the current identity. It resolves the
// persisted identity exactly once at startup, exposes login/register/logout,
// and hands out value copies so callers cannot mutate its state.
type Session struct {
	gateway ports.Gateway
	store   ports.IdentityStore

	mu       sync.RWMutex
	resolved bool
	identity *domain.Identity

	// loginMu serializes credential exchanges so two logins cannot race to
	// set different identities.
	loginMu sync.Mutex
}

func NewSession(gateway ports.Gateway, store ports.IdentityStore) *Session {
	return &Session{
		gateway: gateway,
		store:   store,
	}
}

// Resolve reads the persisted identity and moves the session out of the
// resolving state. It is local-only (no network) and runs once; later calls
// are no-ops. Any load failure, including a corrupt or unversioned file,
// resolves to anonymous.
func (s *Session) Resolve(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolved {
		return
	}
	s.resolved = true

	identity, err := s.store.Load(ctx)
	if err != nil {
		return
	}
	if strings.TrimSpace(identity.Username) == "" {
		return
	}

	s.identity = &identity
}

func (s *Session) Current() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case !s.resolved:
		return domain.StateResolving
	case s.identity != nil:
		return domain.StateAuthenticated
	default:
		return domain.StateAnonymous
	}
}

// Identity returns a copy of the current identity, if any.
func (s *Session) Identity() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return domain.Identity{}, false
	}

	return *s.identity, true
}

// Login exchanges credentials through the gateway. On success the session
// becomes authenticated and the identity is persisted; on failure the state
// is untouched and the gateway's error is surfaced as-is.
func (s *Session) Login(ctx context.Context, username, password string) error {
	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	identity, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("exchange credentials: %w", err)
	}

	s.mu.Lock()
	s.resolved = true
	s.identity = &identity
	s.mu.Unlock()

	if err := s.store.Save(ctx, identity); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}

	return nil
}

// Register creates an account. It does not log in: a successful registration
// leaves the session state unchanged.
func (s *Session) Register(ctx context.Context, reg domain.Registration) error {
	if err := validateRegistration(reg); err != nil {
		return err
	}

	if err := s.gateway.Register(ctx, reg); err != nil {
		return fmt.Errorf("register account: %w", err)
	}

	return nil
}

// Logout transitions to anonymous and clears the persisted identity
// unconditionally, then notifies the server best-effort. A failed network
// call does not keep the user logged in.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.resolved = true
	s.identity = nil
	s.mu.Unlock()

	clearErr := s.store.Clear(ctx)

	// Server notification is advisory only.
	_ = s.gateway.Logout(ctx)

	if clearErr != nil {
		return fmt.Errorf("clear persisted identity: %w", clearErr)
	}

	return nil
}

func validateRegistration(reg domain.Registration) error {
	switch {
	case strings.TrimSpace(reg.Username) == "":
		return &domain.ValidationError{Field: "username", Reason: "required"}
	case strings.TrimSpace(reg.Email) == "":
		return &domain.ValidationError{Field: "email", Reason: "required"}
	case reg.Password == "":
		return &domain.ValidationError{Field: "password", Reason: "required"}
	case reg.Password != reg.PasswordConfirm:
		return &domain.ValidationError{Field: "password_confirm", Reason: "passwords do not match"}
	}

	return nil
}
