package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc encodes poll definitions in the poll store
var ModuleCdc = codec.NewLegacyAmino()

// RegisterLegacyAminoCodec registers the concrete types of the poll module on the given codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(PollDefinition{}, "poll/PollDefinition", nil)
	cdc.RegisterConcrete(VotingOption{}, "poll/VotingOption", nil)
}

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
