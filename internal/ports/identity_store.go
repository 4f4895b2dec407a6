package ports

import (
	"context"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
)

// IdentityStore persists the current identity between runs. It is owned
// exclusively by the session authority; nothing else writes to it.
type IdentityStore interface {
	Load(ctx context.Context) (domain.Identity, error)
	Save(ctx context.Context, identity domain.Identity) error
	Clear(ctx context.Context) error
}
