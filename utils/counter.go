package utils

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"

	"github.com/axelarnetwork/polls/utils/key"
	"github.com/axelarnetwork/utils/convert"
)

// Counter is a stateful counter that works with the kv store and starts from zero
type Counter[T constraints.Unsigned] struct {
	key   key.Key
	store KVStore
}

// NewCounter is the constructor for counter
func NewCounter[T constraints.Unsigned](key key.Key, store KVStore) Counter[T] {
	return Counter[T]{
		key:   key,
		store: store,
	}
}

// Incr increments the counter and returns the value before the increment
func (c Counter[T]) Incr() T {
	curr := c.Curr()
	c.store.SetRaw(c.key, convert.IntToBytes(uint64(curr+1)))

	return curr
}

// Add increases the counter by the given amount. Should only be used when importing a genesis state
func (c Counter[T]) Add(v T) {
	c.store.SetRaw(c.key, convert.IntToBytes(uint64(c.Curr()+v)))
}

// Curr returns the current value of the counter
func (c Counter[T]) Curr() T {
	bz := c.store.GetRaw(c.key)
	if bz == nil {
		return 0
	}

	return T(binary.BigEndian.Uint64(bz))
}
