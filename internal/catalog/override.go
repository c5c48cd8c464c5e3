package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// OverrideStore is the locally persisted catalog override. Entries are written
// by the admin tooling outside this service; the storefront only ever reads
// them. A present, parseable entry fully replaces the remote catalog resource.
type OverrideStore struct {
	dir string // Directory holding override entries (e.g., "./data")
}

// NewOverrideStore creates an override store rooted at dir.
// The directory is created if it doesn't exist.
func NewOverrideStore(dir string) (*OverrideStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create override directory: %w", err)
	}

	return &OverrideStore{dir: dir}, nil
}

// Get reads the entry for key. The second return is false when no entry
// exists; that is the normal case, not an error.
func (s *OverrideStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read override %q: %w", key, err)
	}

	return data, true, nil
}

// Put writes the entry for key, replacing any prior value (last write wins).
// The storefront never calls this; it exists for the admin tooling and tests.
func (s *OverrideStore) Put(key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write override %q: %w", key, err)
	}

	return nil
}

// Delete removes the entry for key. Removing a missing entry is a no-op.
func (s *OverrideStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete override %q: %w", key, err)
	}

	return nil
}

func (s *OverrideStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
