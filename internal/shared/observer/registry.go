// Package observer keeps ordered listener sets for the in-process stores.
package observer

// Registry keeps listeners keyed by a subscription handle and remembers the
// order they were added in. It is not safe for concurrent use; the owning
// store guards it with its own mutex.
type Registry[T any] struct {
	nextID    uint64
	order     []uint64
	listeners map[uint64]func(T)
}

// Add registers fn at the end of the order and returns its handle.
func (r *Registry[T]) Add(fn func(T)) uint64 {
	if r.listeners == nil {
		r.listeners = make(map[uint64]func(T))
	}
	r.nextID++
	id := r.nextID
	r.listeners[id] = fn
	r.order = append(r.order, id)
	return id
}

// Remove drops the listener behind id. Unknown handles are ignored.
func (r *Registry[T]) Remove(id uint64) {
	if _, ok := r.listeners[id]; !ok {
		return
	}
	delete(r.listeners, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
}

// Snapshot returns the listeners in registration order so they can be called
// after the store releases its lock.
func (r *Registry[T]) Snapshot() []func(T) {
	out := make([]func(T), 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.listeners[id])
	}
	return out
}

func (r *Registry[T]) Len() int {
	return len(r.order)
}
