package utils

import (
	"fmt"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"

	"github.com/axelarnetwork/polls/utils/key"
)

// KVStore wraps a store and encodes values with the given codec, so callers can work with typed values and typed keys
type KVStore struct {
	store storetypes.KVStore
	cdc   *codec.LegacyAmino
}

// NewNormalizedStore returns a new KVStore
func NewNormalizedStore(store storetypes.KVStore, cdc *codec.LegacyAmino) KVStore {
	return KVStore{store: store, cdc: cdc}
}

// Set stores the encoded value under the given key
func (s KVStore) Set(key key.Key, value interface{}) {
	s.store.Set(key.Bytes(), s.cdc.MustMarshal(value))
}

// Get decodes the value stored under the given key into the given pointer. Returns false if the key does not exist
func (s KVStore) Get(key key.Key, value interface{}) bool {
	bz := s.store.Get(key.Bytes())
	if bz == nil {
		return false
	}

	s.cdc.MustUnmarshal(bz, value)
	return true
}

// SetRaw stores the value under the given key without encoding it
func (s KVStore) SetRaw(key key.Key, value []byte) {
	s.store.Set(key.Bytes(), value)
}

// GetRaw returns the raw value stored under the given key, nil if the key does not exist
func (s KVStore) GetRaw(key key.Key) []byte {
	return s.store.Get(key.Bytes())
}

// Has returns true if the key exists
func (s KVStore) Has(key key.Key) bool {
	return s.store.Has(key.Bytes())
}

// Iterator returns an iterator over all keys nested below the given prefix, in ascending key order
func (s KVStore) Iterator(prefix key.Key) Iterator {
	bz := prefix.Prefix()

	return iterator{
		Iterator: storetypes.KVStorePrefixIterator(s.store, bz),
		prefix:   bz,
		cdc:      s.cdc,
	}
}

// Iterator is an easier and safer to use sdk.Iterator extension
type Iterator interface {
	storetypes.Iterator
	UnmarshalValue(value interface{})
	// Suffix returns the part of the current key that follows the iterated prefix
	Suffix() string
}

type iterator struct {
	storetypes.Iterator
	prefix []byte
	cdc    *codec.LegacyAmino
}

// UnmarshalValue decodes the current value into the given pointer
func (i iterator) UnmarshalValue(value interface{}) {
	i.cdc.MustUnmarshal(i.Value(), value)
}

func (i iterator) Suffix() string {
	return string(i.Key()[len(i.prefix):])
}

// CloseLogError closes the given iterator and logs if an error is returned
func CloseLogError(iter storetypes.Iterator, logger log.Logger) {
	if err := iter.Close(); err != nil {
		logger.Error(fmt.Sprintf("failed to close kv store iterator: %s", err.Error()))
	}
}
