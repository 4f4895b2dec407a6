package ports

import (
	"context"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
)

// Gateway is the typed boundary to the Blogify backend. Implementations
// translate every transport or protocol fault into the domain error taxonomy;
// no raw HTTP error escapes through this interface.
type Gateway interface {
	Login(ctx context.Context, username, password string) (domain.Identity, error)
	Register(ctx context.Context, reg domain.Registration) error
	Logout(ctx context.Context) error

	Posts(ctx context.Context) ([]domain.Post, error)
	Post(ctx context.Context, slug string) (domain.Post, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Creators(ctx context.Context) ([]domain.Profile, error)
	Profile(ctx context.Context, username string) (domain.Profile, error)
	Comments(ctx context.Context, slug string) ([]domain.Comment, error)

	LikePost(ctx context.Context, slug string) (domain.ToggleOutcome, error)
	LikeComment(ctx context.Context, id string) (domain.ToggleOutcome, error)
	FollowCategory(ctx context.Context, slug string) (domain.ToggleOutcome, error)
	FollowProfile(ctx context.Context, username string) (domain.ToggleOutcome, error)
	AddComment(ctx context.Context, slug, body string) (domain.Comment, error)
}
