package app_test

import (
	"bytes"
	"errors"
	"testing"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/app"
	"github.com/axelarnetwork/polls/utils/events"
	"github.com/axelarnetwork/polls/x/poll/exported"
	pollTypes "github.com/axelarnetwork/polls/x/poll/types"
	"github.com/axelarnetwork/polls/x/poll/types/testutils"
	"github.com/axelarnetwork/utils/funcs"
	"github.com/axelarnetwork/utils/test/rand"
)

const owner = "polls_near"

func newApp(t *testing.T, db dbm.DB, opts ...app.Option) *app.PollsApp {
	pollsApp, err := app.NewPollsApp(db, owner, log.TestingLogger(), opts...)
	assert.NoError(t, err)

	return pollsApp
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestPollsApp_CreateAndVote(t *testing.T) {
	pollsApp := newApp(t, dbm.NewMemDB())
	assert.EqualValues(t, 0, pollsApp.LastHeight())

	pollID, err := pollsApp.CreatePoll("alice_near", "To be or not to be?", map[string]string{"v1": "To be", "v2": "Not to be"})
	assert.NoError(t, err)
	assert.EqualValues(t, 1, pollsApp.LastHeight())

	result, err := pollsApp.Vote("bob", pollID, map[string]int32{"v1": 1})
	assert.NoError(t, err)
	assert.Equal(t, exported.VoteAccepted, result)

	result, err = pollsApp.Vote("bob", pollID, map[string]int32{"v2": 1})
	assert.NoError(t, err)
	assert.Equal(t, exported.VoteRejectedAlreadyVoted, result)

	result, err = pollsApp.Vote("bob", testutils.RandomPollID(), map[string]int32{"v2": 1})
	assert.NoError(t, err)
	assert.Equal(t, exported.VoteRejectedUnknownPoll, result)

	stats, ok := pollsApp.ShowResults(pollID)
	assert.True(t, ok)
	assert.Equal(t, map[string]uint64{"v1": 1}, stats.Results.Variants)
	assert.Equal(t, []string{"bob"}, stats.Results.Voters())

	poll, ok := pollsApp.ShowPoll(pollID)
	assert.True(t, ok)
	assert.Equal(t, "alice_near", poll.Creator)

	polls, err := pollsApp.Polls()
	assert.NoError(t, err)
	assert.Equal(t, []pollTypes.PollDefinition{poll}, polls)

	assert.Equal(t, "PONG", pollsApp.Ping())
}

func TestPollsApp_StatePersists(t *testing.T) {
	db := dbm.NewMemDB()

	pollID, err := newApp(t, db).CreatePoll("alice", "q", map[string]string{"v1": "yes"})
	assert.NoError(t, err)

	reloaded := newApp(t, db)
	assert.EqualValues(t, 1, reloaded.LastHeight())

	_, ok := reloaded.ShowPoll(pollID)
	assert.True(t, ok)
}

func TestPollsApp_DeterministicEntropy(t *testing.T) {
	seed := rand.Bytes(32)

	first := funcs.Must(newApp(t, dbm.NewMemDB(), app.WithEntropy(bytes.NewReader(seed))).CreatePoll("alice", "q", nil))
	second := funcs.Must(newApp(t, dbm.NewMemDB(), app.WithEntropy(bytes.NewReader(seed))).CreatePoll("bob", "q", nil))

	assert.Equal(t, first, second)
}

func TestPollsApp_AbortedOperationLeavesNoTrace(t *testing.T) {
	pollsApp := newApp(t, dbm.NewMemDB(), app.WithEntropy(failingReader{}))

	_, err := pollsApp.CreatePoll("alice", "q", nil)
	assert.Error(t, err)
	assert.EqualValues(t, 0, pollsApp.LastHeight())

	polls, err := pollsApp.Polls()
	assert.NoError(t, err)
	assert.Empty(t, polls)
}

func TestPollsApp_ImportIsAtomic(t *testing.T) {
	pollsApp := newApp(t, dbm.NewMemDB())
	existing := funcs.Must(pollsApp.CreatePoll("alice", "q", nil))

	genState := pollTypes.NewGenesisState([]pollTypes.PollRecord{
		{Poll: pollTypes.NewPollDefinition("bob", "fresh", "q", nil)},
		{Poll: pollTypes.NewPollDefinition("bob", existing, "q", nil)},
	})

	assert.Error(t, pollsApp.ImportAppState(genState))
	assert.EqualValues(t, 1, pollsApp.LastHeight())

	_, ok := pollsApp.ShowPoll("fresh")
	assert.False(t, ok)
}

func TestPollsApp_ExportImport(t *testing.T) {
	source := newApp(t, dbm.NewMemDB())
	for i := 0; i < 5; i++ {
		pollID := funcs.Must(source.CreatePoll(testutils.RandomIdentity(), rand.Str(10), map[string]string{"v1": "a", "v2": "b"}))
		_, err := source.Vote(testutils.RandomIdentity(), pollID, map[string]int32{"v1": 1})
		assert.NoError(t, err)
	}

	bz, err := source.ExportAppStateJSON()
	assert.NoError(t, err)

	target := newApp(t, dbm.NewMemDB())
	assert.NoError(t, target.ImportAppStateJSON(bz))

	expected := funcs.Must(source.ExportAppState())
	actual := funcs.Must(target.ExportAppState())
	assert.Equal(t, expected.AppState, actual.AppState)

	assert.Error(t, target.ImportAppStateJSON([]byte("{}")))
	assert.Error(t, target.ImportAppStateJSON([]byte("not json")))
}

func TestPollsApp_Subscribe(t *testing.T) {
	pollsApp := newApp(t, dbm.NewMemDB())

	var received []sdk.Events
	pollsApp.Subscribe(func(evts sdk.Events) { received = append(received, evts) })

	pollID := funcs.Must(pollsApp.CreatePoll("alice", "q", nil))
	funcs.Must(pollsApp.Vote("bob", pollID, nil))

	assert.Len(t, received, 2)
	assert.Equal(t, pollTypes.EventTypePollCreated, received[0][0].Type)
	assert.Equal(t, pollTypes.EventTypeVoted, received[1][0].Type)

	id, ok := events.Attribute(received[1][0], pollTypes.AttributeKeyPollID)
	assert.True(t, ok)
	assert.Equal(t, pollID, id)
}
