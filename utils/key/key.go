package key

import (
	"bytes"
)

// DefaultDelimiter represents the default delimiter used for the KV store keys when concatenating them together
const DefaultDelimiter = "_"

// Key provides a type safe way to interact with the store
type Key interface {
	Append(Key) Key
	Bytes(delimiter ...string) []byte
	// Prefix returns the key bytes followed by the delimiter, so it only matches keys nested below this one
	Prefix(delimiter ...string) []byte
}

type basicKey struct {
	particles [][]byte
}

func (k basicKey) Append(suffix Key) Key {
	var bz [][]byte
	switch suffix := suffix.(type) {
	case basicKey:
		bz = suffix.particles
	default:
		bz = [][]byte{suffix.Bytes()}
	}

	particles := make([][]byte, 0, len(k.particles)+len(bz))
	particles = append(particles, k.particles...)

	return basicKey{
		particles: append(particles, bz...),
	}
}

func (k basicKey) Bytes(delimiter ...string) []byte {
	return bytes.Join(k.particles, []byte(getDelimiter(delimiter)))
}

func (k basicKey) Prefix(delimiter ...string) []byte {
	return append(k.Bytes(delimiter...), getDelimiter(delimiter)...)
}

func getDelimiter(delimiter []string) string {
	if len(delimiter) == 1 {
		return delimiter[0]
	}

	return DefaultDelimiter
}

// FromBz creates a new Key from bytes
func FromBz(key []byte) Key {
	return basicKey{particles: [][]byte{key}}
}

// FromStr creates a new Key from a string. Case is preserved, poll and voter ids are case sensitive.
func FromStr(key string) Key {
	return FromBz([]byte(key))
}
