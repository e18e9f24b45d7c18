package papertrade

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Registry owns the live accounts, keyed by id. It exists so that callers
// (HTTP handlers, the CLI server) receive an explicit handle instead of
// sharing a package-level account.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewRegistry creates an empty account registry.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]*Account)}
}

// Open creates an account and registers it. An empty id gets a generated
// UUID; a taken id is rejected with ErrDuplicateID.
func (r *Registry) Open(id string, initialDeposit Money) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	if _, ok := r.accounts[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	account, err := NewAccount(id, initialDeposit)
	if err != nil {
		return nil, err
	}
	r.accounts[id] = account
	return account, nil
}

// Get returns the account registered under id, or ErrNotFound.
func (r *Registry) Get(id string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return account, nil
}

// List returns the sorted ids of all registered accounts.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.accounts))
}
