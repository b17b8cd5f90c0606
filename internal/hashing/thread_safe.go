package hashing

import "sync"

// ThreadSafeTable wraps Table with mutex protection for concurrent access.
type ThreadSafeTable struct {
	table *Table
	mu    sync.RWMutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{table: NewTable(maxCapacity)}
}

// Probe looks up the node count stored for key at depth.
func (t *ThreadSafeTable) Probe(key uint64, depth int) (uint64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Probe(key, depth)
}

// Store records a node count, returning false if the table is full.
func (t *ThreadSafeTable) Store(key uint64, depth int, nodes uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Store(key, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}

// Stats returns the probe hit and miss counts.
func (t *ThreadSafeTable) Stats() (hits, misses uint64) {
	return t.table.Stats()
}

// LoadFromTable copies entries from an existing table. Call before concurrent use.
func (t *ThreadSafeTable) LoadFromTable(other *Table) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, nodes := range other.entries {
		t.table.entries[k] = nodes
	}
}
