package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelarnetwork/utils/funcs"
	"github.com/axelarnetwork/utils/slices"

	"github.com/axelarnetwork/polls/x/poll/types"
)

// InitGenesis initializes the poll store with the given state. It panics if the state is invalid or a poll already exists.
func (k Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	funcs.MustNoErr(genState.Validate())

	for _, record := range genState.Polls {
		if k.hasPoll(ctx, record.Poll.PollID) || k.hasResults(ctx, record.Poll.PollID) {
			panic(types.ErrInvalidGenesis.Wrapf("poll %s already exists", record.Poll.PollID))
		}

		k.setPoll(ctx, record.Poll)
		k.setResults(ctx, record.Poll.PollID)

		for _, tally := range record.Tallies {
			k.setTally(ctx, record.Poll.PollID, tally.OptionID, tally.Count)
		}

		for _, voter := range record.Voters {
			k.setVoted(ctx, record.Poll.PollID, voter)
		}
	}

	k.pollCounter(ctx).Add(uint64(len(genState.Polls)))
}

// ExportGenesis returns the current state of the poll store
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return types.NewGenesisState(slices.Map(k.GetPolls(ctx), func(poll types.PollDefinition) types.PollRecord {
		return types.NewPollRecord(types.PollStats{Poll: poll, Results: k.getResults(ctx, poll.PollID)})
	}))
}
