package keeper

import (
	"fmt"

	"github.com/armon/go-metrics"
	"github.com/cometbft/cometbft/crypto/tmhash"
	"github.com/cosmos/btcutil/base58"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/axelarnetwork/polls/utils"
	"github.com/axelarnetwork/polls/utils/events"
	"github.com/axelarnetwork/polls/x/poll/exported"
	"github.com/axelarnetwork/polls/x/poll/types"
)

// CreatePoll creates a new poll owned by the caller and returns its id.
// The id is derived from the random seed of the call.
func (k Keeper) CreatePoll(ctx sdk.Context, env exported.Env, question string, variants map[string]string) string {
	creator := env.Caller()
	k.Logger(ctx).Info(fmt.Sprintf("create_poll for %s currently have %d polls", question, k.PollCount(ctx)))

	pollID := k.nextPollID(ctx, env.RandomSeed())
	poll := types.NewPollDefinition(creator, pollID, question, variants)

	k.setPoll(ctx, poll)
	k.setResults(ctx, pollID)
	k.pollCounter(ctx).Incr()

	events.Emit(ctx, types.PollCreated{PollID: pollID, Creator: creator})
	telemetry.IncrCounter(1, types.ModuleName, "created")

	return pollID
}

// nextPollID hashes the seed into a poll id. A seed that was already used is hashed again until the id is free.
func (k Keeper) nextPollID(ctx sdk.Context, seed []byte) string {
	digest := tmhash.Sum(seed)
	for {
		pollID := base58.Encode(digest)
		if !k.hasPoll(ctx, pollID) && !k.hasResults(ctx, pollID) {
			return pollID
		}

		k.Logger(ctx).Debug(fmt.Sprintf("poll id %s is taken, rehashing", pollID))
		digest = tmhash.Sum(digest)
	}
}

// Vote records the caller's ballot in the given poll and returns true if it was counted
func (k Keeper) Vote(ctx sdk.Context, env exported.Env, pollID string, votes map[string]int32) bool {
	return k.CastVote(ctx, env, pollID, votes).Accepted()
}

// CastVote records the caller's ballot in the given poll. Every option with a nonzero flag gains exactly one vote.
// A ballot is rejected if the poll does not exist or the caller has already voted in it, and the store is left untouched.
func (k Keeper) CastVote(ctx sdk.Context, env exported.Env, pollID string, votes map[string]int32) exported.VoteResult {
	voter := env.Caller()
	logger := k.Logger(ctx).With("poll", pollID, "voter", voter)
	logger.Info(fmt.Sprintf("%s is voting on %s owner is %s", voter, pollID, env.Owner()))

	result := k.castVote(ctx, pollID, voter, votes)
	switch result {
	case exported.VoteRejectedUnknownPoll:
		logger.Info(fmt.Sprintf("no poll known for %s", pollID))
	case exported.VoteRejectedAlreadyVoted:
		logger.Info(fmt.Sprintf("%s already voted in %s", voter, pollID))
	}

	events.Emit(ctx, types.Voted{PollID: pollID, Voter: voter, Result: result.String()})
	telemetry.IncrCounterWithLabels([]string{types.ModuleName, "vote"}, 1, []metrics.Label{
		telemetry.NewLabel("result", result.String()),
	})

	return result
}

func (k Keeper) castVote(ctx sdk.Context, pollID string, voter string, votes map[string]int32) exported.VoteResult {
	if !k.hasResults(ctx, pollID) {
		return exported.VoteRejectedUnknownPoll
	}

	if k.hasVoted(ctx, pollID, voter) {
		return exported.VoteRejectedAlreadyVoted
	}

	k.setVoted(ctx, pollID, voter)

	optionIDs := maps.Keys(votes)
	slices.Sort(optionIDs)

	for _, optionID := range optionIDs {
		if votes[optionID] == 0 {
			continue
		}

		k.setTally(ctx, pollID, optionID, k.getTally(ctx, pollID, optionID)+1)
	}

	return exported.VoteAccepted
}

// ShowPoll returns the definition of the given poll
func (k Keeper) ShowPoll(ctx sdk.Context, pollID string) (types.PollDefinition, bool) {
	poll, ok := k.getPoll(ctx, pollID)
	if !ok {
		k.Logger(ctx).Debug(fmt.Sprintf("Unknown voting %s", pollID))
		return types.PollDefinition{}, false
	}

	return poll, true
}

// ShowResults returns the definition of the given poll together with its current tally and voters
func (k Keeper) ShowResults(ctx sdk.Context, pollID string) (types.PollStats, bool) {
	poll, ok := k.getPoll(ctx, pollID)
	if !ok || !k.hasResults(ctx, pollID) {
		return types.PollStats{}, false
	}

	return types.PollStats{Poll: poll, Results: k.getResults(ctx, pollID)}, true
}

// GetPolls returns the definitions of all polls, ordered by poll id
func (k Keeper) GetPolls(ctx sdk.Context) []types.PollDefinition {
	iter := k.getStore(ctx).Iterator(pollPrefix)
	defer utils.CloseLogError(iter, k.Logger(ctx))

	var polls []types.PollDefinition
	for ; iter.Valid(); iter.Next() {
		var poll types.PollDefinition
		iter.UnmarshalValue(&poll)

		polls = append(polls, poll)
	}

	return polls
}

// Ping is a liveness check
func (k Keeper) Ping() string {
	return types.Pong
}
