package hashing

import "sync/atomic"

// Entry is one stored node count.
type Entry struct {
	Key   uint64
	Depth int
	Nodes uint64
}

type tableKey struct {
	key   uint64
	depth int
}

// Table remembers perft node counts by position key and remaining depth.
// It is not safe for concurrent writes; see ThreadSafeTable.
type Table struct {
	entries map[tableKey]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Probe looks up the node count stored for key at depth.
func (t *Table) Probe(key uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{key, depth}]
	if ok {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}
	return nodes, ok
}

// Store records a node count. Once the table is full new entries are
// dropped and Store returns false; existing entries can still be updated.
func (t *Table) Store(key uint64, depth int, nodes uint64) bool {
	k := tableKey{key, depth}
	if _, ok := t.entries[k]; !ok && t.IsFull() {
		return false
	}
	t.entries[k] = nodes
	return true
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Stats returns the probe hit and miss counts.
func (t *Table) Stats() (hits, misses uint64) {
	return t.hits.Load(), t.misses.Load()
}

// Entries returns a copy of every stored entry, in no particular order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for k, nodes := range t.entries {
		out = append(out, Entry{Key: k.key, Depth: k.depth, Nodes: nodes})
	}
	return out
}

// Reset clears the table and its statistics.
func (t *Table) Reset() {
	t.entries = make(map[tableKey]uint64)
	t.hits.Store(0)
	t.misses.Store(0)
}
