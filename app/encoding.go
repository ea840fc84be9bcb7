package app

import (
	"github.com/cosmos/cosmos-sdk/codec"

	pollTypes "github.com/axelarnetwork/polls/x/poll/types"
)

// MakeEncodingConfig creates the codec used by all stores of the app
func MakeEncodingConfig() *codec.LegacyAmino {
	cdc := codec.NewLegacyAmino()
	pollTypes.RegisterLegacyAminoCodec(cdc)
	cdc.Seal()

	return cdc
}
