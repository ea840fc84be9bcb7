package testutils

import (
	"github.com/cometbft/cometbft/crypto/tmhash"
	"github.com/cosmos/btcutil/base58"

	"github.com/axelarnetwork/utils/test/rand"
)

// RandomPollID generates a random poll id in the same format as ids issued by the keeper
func RandomPollID() string {
	return base58.Encode(tmhash.Sum(rand.Bytes(32)))
}

// RandomIdentity generates a random normalized caller identity
func RandomIdentity() string {
	return rand.AlphaNumericStrBetween(5, 20)
}

// RandomIdentities generates count distinct random caller identities
func RandomIdentities(count int) []string {
	return rand.AlphaNumericStrings(5, 20).Distinct().Take(count)
}
