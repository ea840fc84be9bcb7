package app

import (
	"io"

	"github.com/axelarnetwork/polls/x/poll/exported"
)

const seedLength = 32

var _ exported.Env = &callEnv{}

// callEnv exposes the caller and a fresh random seed to a single operation
type callEnv struct {
	caller  string
	owner   string
	entropy io.Reader
	seed    []byte
}

func (e *callEnv) Caller() string {
	return e.caller
}

func (e *callEnv) Owner() string {
	return e.owner
}

// RandomSeed draws the seed of this call on first use. It panics if the entropy source fails, which aborts the operation.
func (e *callEnv) RandomSeed() []byte {
	if e.seed == nil {
		seed := make([]byte, seedLength)
		if _, err := io.ReadFull(e.entropy, seed); err != nil {
			panic(err)
		}

		e.seed = seed
	}

	return e.seed
}
