package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_SnapshotKeepsRegistrationOrder(t *testing.T) {
	var r Registry[int]
	var calls []string
	r.Add(func(int) { calls = append(calls, "a") })
	r.Add(func(int) { calls = append(calls, "b") })
	r.Add(func(int) { calls = append(calls, "c") })

	for _, fn := range r.Snapshot() {
		fn(1)
	}

	assert.Equal(t, []string{"a", "b", "c"}, calls)
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_RemoveOnlyDropsOne(t *testing.T) {
	var r Registry[int]
	var calls []string
	r.Add(func(int) { calls = append(calls, "a") })
	id := r.Add(func(int) { calls = append(calls, "b") })
	r.Add(func(int) { calls = append(calls, "c") })

	r.Remove(id)
	r.Remove(id)
	r.Remove(99)

	for _, fn := range r.Snapshot() {
		fn(1)
	}
	assert.Equal(t, []string{"a", "c"}, calls)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_SnapshotIsDetached(t *testing.T) {
	var r Registry[int]
	id := r.Add(func(int) {})

	snap := r.Snapshot()
	r.Remove(id)
	r.Add(func(int) {})
	r.Add(func(int) {})

	assert.Len(t, snap, 1)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_ZeroValueIsEmpty(t *testing.T) {
	var r Registry[string]

	assert.Empty(t, r.Snapshot())
	assert.Equal(t, 0, r.Len())
}
