package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/aitaprogrammer/blogify-cli/internal/ports"
)

const minCommentLength = 3

// Engine applies toggle mutations optimistically: the local snapshot changes
// before the network call resolves, the server's answer overwrites the guess
// on success, and the exact pre-mutation snapshot is restored on failure.
//
// Snapshots live in one keyed store shared by every view, so a like issued
// from a list and the detail view of the same post reconcile against the same
// state. Subscribers are notified on every change, including the optimistic
// apply, and a cancelled subscription is simply removed: a view that goes
// away mid-flight cannot fault the engine.
type Engine struct {
	session *Session
	gateway ports.Gateway

	mu       sync.Mutex
	states   map[domain.SubjectKey]domain.Relationship
	inflight map[domain.SubjectKey]struct{}
	subs     map[int]func(domain.SubjectKey, domain.Relationship)
	nextSub  int
}

func NewEngine(session *Session, gateway ports.Gateway) *Engine {
	return &Engine{
		session:  session,
		gateway:  gateway,
		states:   make(map[domain.SubjectKey]domain.Relationship),
		inflight: make(map[domain.SubjectKey]struct{}),
		subs:     make(map[int]func(domain.SubjectKey, domain.Relationship)),
	}
}

// Track seeds the store with a freshly fetched relationship. Fetching views
// call this before issuing mutations so toggles start from the server-known
// count rather than zero.
func (e *Engine) Track(key domain.SubjectKey, rel domain.Relationship) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.states[key] = rel
}

// Snapshot returns the current relationship for key and whether one is
// tracked.
func (e *Engine) Snapshot(key domain.SubjectKey) (domain.Relationship, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rel, ok := e.states[key]
	return rel, ok
}

// Subscribe registers fn for every state change. The returned cancel func
// removes the subscription; calling it more than once is harmless.
func (e *Engine) Subscribe(fn func(domain.SubjectKey, domain.Relationship)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

// ToggleLike likes a post or comment. Likes are one-directional: an already
// active relationship is returned unchanged with no network call.
func (e *Engine) ToggleLike(ctx context.Context, key domain.SubjectKey) (domain.Relationship, error) {
	switch key.Kind {
	case domain.SubjectPost, domain.SubjectComment:
	default:
		return domain.Relationship{}, fmt.Errorf("subject %s does not support likes", key)
	}

	return e.toggle(ctx, key, true, func(ctx context.Context) (domain.ToggleOutcome, error) {
		if key.Kind == domain.SubjectPost {
			return e.gateway.LikePost(ctx, key.ID)
		}
		return e.gateway.LikeComment(ctx, key.ID)
	})
}

// ToggleFollow follows or unfollows a category or creator profile.
func (e *Engine) ToggleFollow(ctx context.Context, key domain.SubjectKey) (domain.Relationship, error) {
	switch key.Kind {
	case domain.SubjectCategory, domain.SubjectProfile:
	default:
		return domain.Relationship{}, fmt.Errorf("subject %s does not support follows", key)
	}

	return e.toggle(ctx, key, false, func(ctx context.Context) (domain.ToggleOutcome, error) {
		if key.Kind == domain.SubjectCategory {
			return e.gateway.FollowCategory(ctx, key.ID)
		}
		return e.gateway.FollowProfile(ctx, key.ID)
	})
}

// AddComment posts a comment and returns the server-confirmed result. There
// is no optimistic insertion: the comment does not exist locally until the
// backend has assigned it an id and timestamp.
func (e *Engine) AddComment(ctx context.Context, slug, body string) (domain.Comment, error) {
	if e.session.Current() != domain.StateAuthenticated {
		return domain.Comment{}, domain.ErrUnauthenticated
	}

	trimmed := strings.TrimSpace(body)
	if len(trimmed) < minCommentLength {
		return domain.Comment{}, &domain.ValidationError{Field: "body", Reason: fmt.Sprintf("must be at least %d characters", minCommentLength)}
	}

	comment, err := e.gateway.AddComment(ctx, slug, trimmed)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("add comment to %s: %w", slug, err)
	}

	return comment, nil
}

func (e *Engine) toggle(ctx context.Context, key domain.SubjectKey, oneWay bool, call func(context.Context) (domain.ToggleOutcome, error)) (domain.Relationship, error) {
	if e.session.Current() != domain.StateAuthenticated {
		return domain.Relationship{}, domain.ErrUnauthenticated
	}

	e.mu.Lock()
	prev := e.states[key]

	if _, busy := e.inflight[key]; busy {
		e.mu.Unlock()
		return prev, fmt.Errorf("toggle %s: %w", key, domain.ErrMutationInFlight)
	}

	if oneWay && prev.Active {
		e.mu.Unlock()
		return prev, nil
	}

	optimistic := prev.Toggled()
	e.states[key] = optimistic
	e.inflight[key] = struct{}{}
	e.notifyLocked(key, optimistic)
	e.mu.Unlock()

	outcome, err := call(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inflight, key)

	if err != nil {
		// Restore the captured snapshot exactly, not a recomputation.
		e.states[key] = prev
		e.notifyLocked(key, prev)
		return prev, fmt.Errorf("toggle %s: %w", key, err)
	}

	reconciled := domain.Relationship{Active: outcome.Active, Count: optimistic.Count}
	if outcome.HasCount {
		reconciled.Count = outcome.Count
	}
	e.states[key] = reconciled
	e.notifyLocked(key, reconciled)

	return reconciled, nil
}

func (e *Engine) notifyLocked(key domain.SubjectKey, rel domain.Relationship) {
	for _, fn := range e.subs {
		fn(key, rel)
	}
}
