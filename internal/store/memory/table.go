package memory

import "sync"

// table is an insertion-ordered keyed collection. Every access goes
// through the mutex, and entities cross the table boundary only as
// clones: add stores a copy of its argument and the read paths return
// copies, so a caller never holds memory that mutate writes to. Without
// that, a concurrent read and update of the same entity would race even
// though the map itself is guarded.
type table[T any] struct {
	mu    sync.RWMutex
	clone func(*T) *T
	items map[string]*T
	order []string
}

func newTable[T any](clone func(*T) *T) *table[T] {
	return &table[T]{clone: clone, items: make(map[string]*T)}
}

func (t *table[T]) add(id string, v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[id]; !ok {
		t.order = append(t.order, id)
	}
	t.items[id] = t.clone(v)
}

func (t *table[T]) get(id string) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if v, ok := t.items[id]; ok {
		return t.clone(v)
	}
	return nil
}

// list returns all entries in insertion order.
func (t *table[T]) list() []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.clone(t.items[id]))
	}
	return out
}

// first returns the first entry, in insertion order, matching the
// predicate, or nil when none match.
func (t *table[T]) first(match func(*T) bool) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if v := t.items[id]; match(v) {
			return t.clone(v)
		}
	}
	return nil
}

// mutate runs fn on the stored entry under the write lock. Missing ids
// are a silent no-op; callers are expected to have checked existence.
func (t *table[T]) mutate(id string, fn func(*T)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.items[id]; ok {
		fn(v)
	}
}

func (t *table[T]) delete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[id]; !ok {
		return
	}
	delete(t.items, id)
	for i, k := range t.order {
		if k == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}
