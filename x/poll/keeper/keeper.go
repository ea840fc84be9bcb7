/*
Package keeper implements the poll store. It creates polls, records at most one vote per identity and poll,
and answers queries about poll definitions and their tallies.
*/
package keeper

import (
	"fmt"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelarnetwork/polls/utils"
	"github.com/axelarnetwork/polls/utils/key"
	"github.com/axelarnetwork/polls/x/poll/types"
)

var (
	countKey = key.FromStr("count")

	pollPrefix    = key.FromStr("poll")
	resultsPrefix = key.FromStr("results")
	tallyPrefix   = key.FromStr("tally")
	voterPrefix   = key.FromStr("voter")
)

// Keeper provides access to the poll store
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      *codec.LegacyAmino
}

// NewKeeper returns a new poll keeper
func NewKeeper(cdc *codec.LegacyAmino, storeKey storetypes.StoreKey) Keeper {
	return Keeper{cdc: cdc, storeKey: storeKey}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// PollCount returns the number of polls that have been created
func (k Keeper) PollCount(ctx sdk.Context) uint64 {
	return k.pollCounter(ctx).Curr()
}

func (k Keeper) pollCounter(ctx sdk.Context) utils.Counter[uint64] {
	return utils.NewCounter[uint64](countKey, k.getStore(ctx))
}

func (k Keeper) setPoll(ctx sdk.Context, poll types.PollDefinition) {
	k.getStore(ctx).Set(pollPrefix.Append(key.FromStr(poll.PollID)), &poll)
}

func (k Keeper) getPoll(ctx sdk.Context, pollID string) (types.PollDefinition, bool) {
	var poll types.PollDefinition
	if ok := k.getStore(ctx).Get(pollPrefix.Append(key.FromStr(pollID)), &poll); !ok {
		return types.PollDefinition{}, false
	}

	return poll, true
}

func (k Keeper) setResults(ctx sdk.Context, pollID string) {
	k.getStore(ctx).SetRaw(resultsPrefix.Append(key.FromStr(pollID)), []byte(pollID))
}

func (k Keeper) hasResults(ctx sdk.Context, pollID string) bool {
	return k.getStore(ctx).Has(resultsPrefix.Append(key.FromStr(pollID)))
}

func (k Keeper) hasPoll(ctx sdk.Context, pollID string) bool {
	return k.getStore(ctx).Has(pollPrefix.Append(key.FromStr(pollID)))
}

func (k Keeper) getTally(ctx sdk.Context, pollID, optionID string) uint64 {
	bz := k.getStore(ctx).GetRaw(tallyPrefix.Append(key.FromStr(pollID)).Append(key.FromStr(optionID)))
	if bz == nil {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setTally(ctx sdk.Context, pollID, optionID string, count uint64) {
	k.getStore(ctx).SetRaw(tallyPrefix.Append(key.FromStr(pollID)).Append(key.FromStr(optionID)), sdk.Uint64ToBigEndian(count))
}

func (k Keeper) hasVoted(ctx sdk.Context, pollID, voter string) bool {
	return k.getStore(ctx).Has(voterPrefix.Append(key.FromStr(pollID)).Append(key.FromStr(voter)))
}

func (k Keeper) setVoted(ctx sdk.Context, pollID, voter string) {
	k.getStore(ctx).SetRaw(voterPrefix.Append(key.FromStr(pollID)).Append(key.FromStr(voter)), []byte{1})
}

func (k Keeper) getResults(ctx sdk.Context, pollID string) types.PollResults {
	results := types.NewPollResults(pollID)

	tallies := k.getStore(ctx).Iterator(tallyPrefix.Append(key.FromStr(pollID)))
	defer utils.CloseLogError(tallies, k.Logger(ctx))

	for ; tallies.Valid(); tallies.Next() {
		results.Variants[tallies.Suffix()] = sdk.BigEndianToUint64(tallies.Value())
	}

	voters := k.getStore(ctx).Iterator(voterPrefix.Append(key.FromStr(pollID)))
	defer utils.CloseLogError(voters, k.Logger(ctx))

	for ; voters.Valid(); voters.Next() {
		results.Voted[voters.Suffix()] = struct{}{}
	}

	return results
}

func (k Keeper) getStore(ctx sdk.Context) utils.KVStore {
	return utils.NewNormalizedStore(ctx.KVStore(k.storeKey), k.cdc)
}
