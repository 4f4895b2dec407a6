// Package file persists the signed-in identity as a JSON file under the
// user's config directory. Writes go through a temp file plus rename so a
// crash mid-write never leaves a truncated identity behind.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/aitaprogrammer/blogify-cli/internal/ports"
)

const (
	schemaVersion    = 1
	identityFileMode = 0o600
	identityDirMode  = 0o700
	tempFilePattern  = ".identity-*.json.tmp"
)

type Store struct {
	path  string
	clock ports.Clock
	mu    *sync.RWMutex
}

// Concurrent stores pointed at the same file share one lock, so two commands
// in the same process cannot interleave a read with a half-finished write.
var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.IdentityStore = (*Store)(nil)

type fileSchema struct {
	Version  int            `json:"version"`
	SavedAt  string         `json:"saved_at"`
	Identity identitySchema `json:"identity"`
}

type identitySchema struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

func NewStore(path string, clock ports.Clock) (*Store, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve identity path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Store{path: absPath, clock: clock, mu: lockForPath(absPath)}, nil
}

func (s *Store) Load(ctx context.Context) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Identity{}, domain.ErrNoStoredIdentity
		}
		return domain.Identity{}, fmt.Errorf("read identity file: %w", err)
	}

	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.Identity{}, fmt.Errorf("decode identity file: %w", err)
	}

	if file.Version != schemaVersion {
		return domain.Identity{}, fmt.Errorf("identity file version %d is not supported", file.Version)
	}

	if file.Identity.Username == "" {
		return domain.Identity{}, domain.ErrNoStoredIdentity
	}

	return domain.Identity{
		ID:       file.Identity.ID,
		Username: file.Identity.Username,
		Email:    file.Identity.Email,
	}, nil
}

func (s *Store) Save(ctx context.Context, identity domain.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file := fileSchema{
		Version: schemaVersion,
		SavedAt: s.clock.Now().UTC().Format(time.RFC3339),
		Identity: identitySchema{
			ID:       identity.ID,
			Username: identity.Username,
			Email:    identity.Email,
		},
	}

	return s.writeSchema(file)
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove identity file: %w", err)
	}

	return nil
}

func (s *Store) writeSchema(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(s.path), identityDirMode); err != nil {
		return fmt.Errorf("create identity directory: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode identity file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp identity file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp identity file: %w", err)
	}

	if err := tempFile.Chmod(identityFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp identity file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp identity file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace identity file: %w", err)
	}

	cleanup = false

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
