package keeper_test

import (
	"testing"

	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/testutils"
	"github.com/axelarnetwork/polls/utils/events"
	"github.com/axelarnetwork/polls/x/poll/exported"
	"github.com/axelarnetwork/polls/x/poll/exported/mock"
	"github.com/axelarnetwork/polls/x/poll/keeper"
	"github.com/axelarnetwork/polls/x/poll/types"
	pollTestutils "github.com/axelarnetwork/polls/x/poll/types/testutils"
	. "github.com/axelarnetwork/utils/test"
	"github.com/axelarnetwork/utils/test/rand"
)

const owner = "polls_near"

func setup() (sdk.Context, keeper.Keeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	return testutils.NewContext(storeKey), keeper.NewKeeper(types.ModuleCdc, storeKey)
}

func newEnv(caller string, seed []byte) *mock.EnvMock {
	return &mock.EnvMock{
		CallerFunc:     func() string { return caller },
		OwnerFunc:      func() string { return owner },
		RandomSeedFunc: func() []byte { return seed },
	}
}

func TestKeeper_ToBeOrNotToBe(t *testing.T) {
	ctx, k := setup()

	alice := newEnv("alice_near", rand.Bytes(32))
	pollID := k.CreatePoll(ctx, alice, "To be or not to be?", map[string]string{"v1": "To be", "v2": "Not to be"})

	poll, ok := k.ShowPoll(ctx, pollID)
	assert.True(t, ok)
	assert.Equal(t, "alice_near", poll.Creator)
	assert.Equal(t, "To be or not to be?", poll.Question)
	assert.Equal(t, []types.VotingOption{{OptionID: "v1", Message: "To be"}, {OptionID: "v2", Message: "Not to be"}}, poll.Variants)

	stats, ok := k.ShowResults(ctx, pollID)
	assert.True(t, ok)
	assert.Empty(t, stats.Results.Variants)
	assert.Empty(t, stats.Results.Voted)

	assert.True(t, k.Vote(ctx, newEnv("bob", nil), pollID, map[string]int32{"v1": 1}))
	assert.True(t, k.Vote(ctx, newEnv("carol", nil), pollID, map[string]int32{"v1": 1, "v2": 1}))
	assert.False(t, k.Vote(ctx, newEnv("bob", nil), pollID, map[string]int32{"v2": 1}))

	stats, ok = k.ShowResults(ctx, pollID)
	assert.True(t, ok)
	assert.Equal(t, poll, stats.Poll)
	assert.Equal(t, map[string]uint64{"v1": 2, "v2": 1}, stats.Results.Variants)
	assert.Equal(t, []string{"bob", "carol"}, stats.Results.Voters())
}

func TestKeeper_CreatePoll(t *testing.T) {
	var (
		ctx     sdk.Context
		k       keeper.Keeper
		env     *mock.EnvMock
		seed    []byte
		pollID  string
		otherID string
	)

	givenKeeper := Given("a poll keeper", func() {
		ctx, k = setup()
		seed = rand.Bytes(32)
		env = newEnv(pollTestutils.RandomIdentity(), seed)
	})

	whenPollIsCreated := When("a poll is created", func() {
		pollID = k.CreatePoll(ctx, env, rand.Str(10), map[string]string{"b": rand.Str(5), "a": rand.Str(5)})
	})

	givenKeeper.
		Branch(
			whenPollIsCreated.
				Then("the poll is stored with the caller as creator", func(t *testing.T) {
					poll, ok := k.ShowPoll(ctx, pollID)
					assert.True(t, ok)
					assert.Equal(t, env.Caller(), poll.Creator)
					assert.Equal(t, pollID, poll.PollID)
					assert.Equal(t, "a", poll.Variants[0].OptionID)
					assert.Equal(t, "b", poll.Variants[1].OptionID)
					assert.Len(t, env.RandomSeedCalls(), 1)
				}),

			whenPollIsCreated.
				Then("the poll has empty results", func(t *testing.T) {
					stats, ok := k.ShowResults(ctx, pollID)
					assert.True(t, ok)
					assert.Equal(t, pollID, stats.Results.PollID)
					assert.Empty(t, stats.Results.Variants)
					assert.Empty(t, stats.Results.Voted)
				}),

			whenPollIsCreated.
				Then("the poll count increases", func(t *testing.T) {
					assert.EqualValues(t, 1, k.PollCount(ctx))
				}),

			whenPollIsCreated.
				Then("a poll_created event is emitted", func(t *testing.T) {
					evts := ctx.EventManager().Events()
					assert.Len(t, evts, 1)
					assert.Equal(t, types.EventTypePollCreated, evts[0].Type)

					id, ok := events.Attribute(evts[0], types.AttributeKeyPollID)
					assert.True(t, ok)
					assert.Equal(t, pollID, id)
				}),

			whenPollIsCreated.
				When("another poll is created with the same seed", func() {
					otherID = k.CreatePoll(ctx, env, rand.Str(10), nil)
				}).
				Then("both polls exist with different ids", func(t *testing.T) {
					assert.NotEqual(t, pollID, otherID)
					_, ok := k.ShowPoll(ctx, pollID)
					assert.True(t, ok)
					_, ok = k.ShowPoll(ctx, otherID)
					assert.True(t, ok)
					assert.EqualValues(t, 2, k.PollCount(ctx))
				}),

			When("a poll without variants is created", func() {
				pollID = k.CreatePoll(ctx, env, rand.Str(10), map[string]string{})
			}).
				Then("the poll exists without variants", func(t *testing.T) {
					poll, ok := k.ShowPoll(ctx, pollID)
					assert.True(t, ok)
					assert.Empty(t, poll.Variants)
				}),
		).Run(t, 5)
}

func TestKeeper_CreatePoll_DeterministicID(t *testing.T) {
	seed := rand.Bytes(32)

	ctx1, k1 := setup()
	ctx2, k2 := setup()

	assert.Equal(t,
		k1.CreatePoll(ctx1, newEnv("alice", seed), "q", nil),
		k2.CreatePoll(ctx2, newEnv("bob", seed), "other", nil),
	)
}

func TestKeeper_CreatePoll_DistinctIDs(t *testing.T) {
	ctx, k := setup()

	ids := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		ids[k.CreatePoll(ctx, newEnv("alice", rand.Bytes(32)), rand.Str(5), nil)] = struct{}{}
	}

	assert.Len(t, ids, 50)
	assert.Len(t, k.GetPolls(ctx), 50)
}

func TestKeeper_CastVote(t *testing.T) {
	var (
		ctx    sdk.Context
		k      keeper.Keeper
		pollID string
		voter  *mock.EnvMock
		result exported.VoteResult
	)

	givenPoll := Given("a poll", func() {
		ctx, k = setup()
		pollID = k.CreatePoll(ctx, newEnv("alice", rand.Bytes(32)), "?", map[string]string{"v1": "yes", "v2": "no"})
		voter = newEnv(pollTestutils.RandomIdentity(), nil)
		ctx = ctx.WithEventManager(sdk.NewEventManager())
	})

	resultsOf := func(t *testing.T) types.PollResults {
		stats, ok := k.ShowResults(ctx, pollID)
		assert.True(t, ok)
		return stats.Results
	}

	givenPoll.
		Branch(
			When("voting for one option", func() {
				result = k.CastVote(ctx, voter, pollID, map[string]int32{"v1": 1})
			}).
				Then("the vote is counted", func(t *testing.T) {
					assert.Equal(t, exported.VoteAccepted, result)
					results := resultsOf(t)
					assert.Equal(t, map[string]uint64{"v1": 1}, results.Variants)
					assert.True(t, results.HasVoted(voter.Caller()))
					assert.Len(t, voter.OwnerCalls(), 1)
				}),

			When("voting with zero flags", func() {
				result = k.CastVote(ctx, voter, pollID, map[string]int32{"v1": 0, "v2": 0})
			}).
				Then("the voter is recorded but no option gains a vote", func(t *testing.T) {
					assert.Equal(t, exported.VoteAccepted, result)
					results := resultsOf(t)
					assert.Empty(t, results.Variants)
					assert.True(t, results.HasVoted(voter.Caller()))
				}),

			When("voting with an empty ballot", func() {
				result = k.CastVote(ctx, voter, pollID, nil)
			}).
				Then("the voter is recorded", func(t *testing.T) {
					assert.Equal(t, exported.VoteAccepted, result)
					assert.True(t, resultsOf(t).HasVoted(voter.Caller()))
				}),

			When("voting with arbitrary nonzero flags", func() {
				result = k.CastVote(ctx, voter, pollID, map[string]int32{"v1": -7, "v2": 42})
			}).
				Then("each option gains exactly one vote", func(t *testing.T) {
					assert.Equal(t, exported.VoteAccepted, result)
					assert.Equal(t, map[string]uint64{"v1": 1, "v2": 1}, resultsOf(t).Variants)
				}),

			When("voting for an undeclared option", func() {
				result = k.CastVote(ctx, voter, pollID, map[string]int32{"v3": 1})
			}).
				Then("the undeclared option is tallied", func(t *testing.T) {
					assert.Equal(t, exported.VoteAccepted, result)
					assert.EqualValues(t, 1, resultsOf(t).Count("v3"))
				}),

			When("voting in an unknown poll", func() {
				result = k.CastVote(ctx, voter, pollTestutils.RandomPollID(), map[string]int32{"v1": 1})
			}).
				Then("the vote is rejected and the poll is untouched", func(t *testing.T) {
					assert.Equal(t, exported.VoteRejectedUnknownPoll, result)
					results := resultsOf(t)
					assert.Empty(t, results.Variants)
					assert.Empty(t, results.Voted)
				}),

			When("voting twice", func() {
				k.CastVote(ctx, voter, pollID, map[string]int32{"v1": 1})
				result = k.CastVote(ctx, voter, pollID, map[string]int32{"v2": 1})
			}).
				Then("the second vote is rejected", func(t *testing.T) {
					assert.Equal(t, exported.VoteRejectedAlreadyVoted, result)
					assert.Equal(t, map[string]uint64{"v1": 1}, resultsOf(t).Variants)
				}),

			When("voting with a differently cased identity", func() {
				k.CastVote(ctx, newEnv("Bob", nil), pollID, map[string]int32{"v1": 1})
				result = k.CastVote(ctx, newEnv("bob", nil), pollID, map[string]int32{"v1": 1})
			}).
				Then("both identities are counted", func(t *testing.T) {
					assert.Equal(t, exported.VoteAccepted, result)
					assert.EqualValues(t, 2, resultsOf(t).Count("v1"))
				}),

			When("a vote is cast", func() {
				result = k.CastVote(ctx, voter, pollID, map[string]int32{"v1": 1})
			}).
				Then("a voted event carries the result", func(t *testing.T) {
					evts := ctx.EventManager().Events()
					assert.Len(t, evts, 1)
					assert.Equal(t, types.EventTypeVoted, evts[0].Type)

					res, ok := events.Attribute(evts[0], types.AttributeKeyResult)
					assert.True(t, ok)
					assert.Equal(t, exported.VoteAccepted.String(), res)
				}),
		).Run(t, 5)
}

func TestKeeper_ShowPoll_Unknown(t *testing.T) {
	ctx, k := setup()

	_, ok := k.ShowPoll(ctx, pollTestutils.RandomPollID())
	assert.False(t, ok)

	_, ok = k.ShowResults(ctx, pollTestutils.RandomPollID())
	assert.False(t, ok)
}

func TestKeeper_ShowPoll_ReturnsCopy(t *testing.T) {
	ctx, k := setup()
	pollID := k.CreatePoll(ctx, newEnv("alice", rand.Bytes(32)), "q", map[string]string{"v1": "yes"})

	poll, _ := k.ShowPoll(ctx, pollID)
	poll.Variants[0].Message = "changed"
	poll.Question = "changed"

	stats, _ := k.ShowResults(ctx, pollID)
	stats.Results.Variants["v1"] = 100

	poll, _ = k.ShowPoll(ctx, pollID)
	assert.Equal(t, "q", poll.Question)
	assert.Equal(t, "yes", poll.Variants[0].Message)

	stats, _ = k.ShowResults(ctx, pollID)
	assert.Zero(t, stats.Results.Count("v1"))
}

func TestKeeper_Ping(t *testing.T) {
	_, k := setup()
	assert.Equal(t, "PONG", k.Ping())
}
