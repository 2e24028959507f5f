// Package handles maps Go values to opaque uintptr ids.
//
// Native objects cross the bridge as plain integers, so Go-side objects are
// registered here and only their id is handed out. Id 0 is never issued and
// stands for "no object".
package handles

import "sync"

// Table is a thread-safe id table for values of type T.
// The zero value is ready to use.
type Table[T any] struct {
	mu     sync.RWMutex
	values map[uintptr]T
	nextID uintptr
}

// Register stores v and returns its id.
func (t *Table[T]) Register(v T) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.values == nil {
		t.values = make(map[uintptr]T)
	}
	t.nextID++
	t.values[t.nextID] = v
	return t.nextID
}

// Lookup returns the value registered under id.
func (t *Table[T]) Lookup(id uintptr) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.values[id]
	return v, ok
}

// Unregister removes id and returns the value it held.
func (t *Table[T]) Unregister(id uintptr) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.values[id]
	if ok {
		delete(t.values, id)
	}
	return v, ok
}

// Len returns the number of registered values.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}
