package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/x/poll/types"
)

func validRecord(pollID string) types.PollRecord {
	return types.PollRecord{
		Poll:    types.NewPollDefinition("alice_near", pollID, "To be or not to be?", map[string]string{"v1": "To be", "v2": "Not to be"}),
		Tallies: []types.Tally{{OptionID: "v1", Count: 2}, {OptionID: "v2", Count: 1}},
		Voters:  []string{"bob", "carol"},
	}
}

func TestGenesisState_Validate(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		assert.NoError(t, types.DefaultGenesisState().Validate())
	})

	t.Run("valid polls", func(t *testing.T) {
		assert.NoError(t, types.NewGenesisState([]types.PollRecord{validRecord("a"), validRecord("b")}).Validate())
	})

	t.Run("duplicate poll", func(t *testing.T) {
		err := types.NewGenesisState([]types.PollRecord{validRecord("a"), validRecord("a")}).Validate()
		assert.ErrorIs(t, err, types.ErrInvalidGenesis)
	})

	t.Run("invalid poll id", func(t *testing.T) {
		err := types.NewGenesisState([]types.PollRecord{validRecord("a_b")}).Validate()
		assert.ErrorIs(t, err, types.ErrInvalidGenesis)
	})

	t.Run("duplicate voter", func(t *testing.T) {
		record := validRecord("a")
		record.Voters = []string{"bob", "bob"}
		assert.ErrorIs(t, types.NewGenesisState([]types.PollRecord{record}).Validate(), types.ErrInvalidGenesis)
	})

	t.Run("duplicate tally", func(t *testing.T) {
		record := validRecord("a")
		record.Tallies = append(record.Tallies, types.Tally{OptionID: "v1", Count: 1})
		assert.ErrorIs(t, types.NewGenesisState([]types.PollRecord{record}).Validate(), types.ErrInvalidGenesis)
	})

	t.Run("zero tally", func(t *testing.T) {
		record := validRecord("a")
		record.Tallies[0].Count = 0
		assert.ErrorIs(t, types.NewGenesisState([]types.PollRecord{record}).Validate(), types.ErrInvalidGenesis)
	})
}

func TestPollRecord_Stats(t *testing.T) {
	record := validRecord("a")
	stats := record.Stats()

	assert.Equal(t, record.Poll, stats.Poll)
	assert.Equal(t, "a", stats.Results.PollID)
	assert.Equal(t, map[string]uint64{"v1": 2, "v2": 1}, stats.Results.Variants)
	assert.True(t, stats.Results.HasVoted("bob"))
	assert.True(t, stats.Results.HasVoted("carol"))

	assert.Equal(t, record, types.NewPollRecord(stats))
}
