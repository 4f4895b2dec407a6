package application

import (
	"context"
	"sync"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/aitaprogrammer/blogify-cli/internal/ports"
)

// fakeGateway records every call and returns canned results. When gate is
// non-nil, toggle calls block until it is closed, which lets tests observe
// optimistic state while a mutation is in flight.
type fakeGateway struct {
	mu    sync.Mutex
	calls []string

	gate chan struct{}

	identity    domain.Identity
	loginErr    error
	registerErr error
	logoutErr   error

	toggleOutcome domain.ToggleOutcome
	toggleErr     error

	comment    domain.Comment
	commentErr error
}

var _ ports.Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeGateway) waitGate() {
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeGateway) Login(_ context.Context, username, _ string) (domain.Identity, error) {
	f.record("login " + username)
	if f.loginErr != nil {
		return domain.Identity{}, f.loginErr
	}
	return f.identity, nil
}

func (f *fakeGateway) Register(_ context.Context, reg domain.Registration) error {
	f.record("register " + reg.Username)
	return f.registerErr
}

func (f *fakeGateway) Logout(context.Context) error {
	f.record("logout")
	return f.logoutErr
}

func (f *fakeGateway) Posts(context.Context) ([]domain.Post, error) {
	f.record("posts")
	return nil, nil
}

func (f *fakeGateway) Post(_ context.Context, slug string) (domain.Post, error) {
	f.record("post " + slug)
	return domain.Post{Slug: slug}, nil
}

func (f *fakeGateway) Categories(context.Context) ([]domain.Category, error) {
	f.record("categories")
	return nil, nil
}

func (f *fakeGateway) Creators(context.Context) ([]domain.Profile, error) {
	f.record("creators")
	return nil, nil
}

func (f *fakeGateway) Profile(_ context.Context, username string) (domain.Profile, error) {
	f.record("profile " + username)
	return domain.Profile{Username: username}, nil
}

func (f *fakeGateway) Comments(_ context.Context, slug string) ([]domain.Comment, error) {
	f.record("comments " + slug)
	return nil, nil
}

func (f *fakeGateway) LikePost(_ context.Context, slug string) (domain.ToggleOutcome, error) {
	f.record("like post " + slug)
	f.waitGate()
	return f.toggleOutcome, f.toggleErr
}

func (f *fakeGateway) LikeComment(_ context.Context, id string) (domain.ToggleOutcome, error) {
	f.record("like comment " + id)
	f.waitGate()
	return f.toggleOutcome, f.toggleErr
}

func (f *fakeGateway) FollowCategory(_ context.Context, slug string) (domain.ToggleOutcome, error) {
	f.record("follow category " + slug)
	f.waitGate()
	return f.toggleOutcome, f.toggleErr
}

func (f *fakeGateway) FollowProfile(_ context.Context, username string) (domain.ToggleOutcome, error) {
	f.record("follow profile " + username)
	f.waitGate()
	return f.toggleOutcome, f.toggleErr
}

func (f *fakeGateway) AddComment(_ context.Context, slug, body string) (domain.Comment, error) {
	f.record("add comment " + slug + " " + body)
	if f.commentErr != nil {
		return domain.Comment{}, f.commentErr
	}
	return f.comment, nil
}

// fakeIdentityStore keeps the identity in memory.
type fakeIdentityStore struct {
	mu       sync.Mutex
	saved    *domain.Identity
	loadErr  error
	saveErr  error
	clearErr error
	clears   int
}

var _ ports.IdentityStore = (*fakeIdentityStore)(nil)

func (f *fakeIdentityStore) Load(context.Context) (domain.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loadErr != nil {
		return domain.Identity{}, f.loadErr
	}
	if f.saved == nil {
		return domain.Identity{}, domain.ErrNoStoredIdentity
	}
	return *f.saved, nil
}

func (f *fakeIdentityStore) Save(_ context.Context, identity domain.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &identity
	return nil
}

func (f *fakeIdentityStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.saved = nil
	return nil
}

func (f *fakeIdentityStore) stored() *domain.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved
}
