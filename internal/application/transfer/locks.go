package transfer

import (
	"sync"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// lockRegistry hands out one RWMutex per manager.
// Entries are reference counted and dropped once nobody holds or waits on them.
type lockRegistry struct {
	mu      sync.Mutex
	entries map[shared.ManagerID]*lockEntry
}

type lockEntry struct {
	mu   sync.RWMutex
	refs int
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{
		entries: make(map[shared.ManagerID]*lockEntry),
	}
}

// Lock takes the manager's write lock and returns its release function
func (r *lockRegistry) Lock(managerID shared.ManagerID) func() {
	entry := r.acquire(managerID)
	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		r.release(managerID, entry)
	}
}

// RLock takes the manager's read lock and returns its release function
func (r *lockRegistry) RLock(managerID shared.ManagerID) func() {
	entry := r.acquire(managerID)
	entry.mu.RLock()
	return func() {
		entry.mu.RUnlock()
		r.release(managerID, entry)
	}
}

func (r *lockRegistry) acquire(managerID shared.ManagerID) *lockEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[managerID]
	if !ok {
		entry = &lockEntry{}
		r.entries[managerID] = entry
	}
	entry.refs++
	return entry
}

func (r *lockRegistry) release(managerID shared.ManagerID, entry *lockEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(r.entries, managerID)
	}
}

func (r *lockRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
