package exported_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/x/poll/exported"
)

func TestVoteResult(t *testing.T) {
	assert.True(t, exported.VoteAccepted.Accepted())
	assert.False(t, exported.VoteRejectedUnknownPoll.Accepted())
	assert.False(t, exported.VoteRejectedAlreadyVoted.Accepted())

	assert.Equal(t, "accepted", exported.VoteAccepted.String())
	assert.Equal(t, "unknown_poll", exported.VoteRejectedUnknownPoll.String())
	assert.Equal(t, "already_voted", exported.VoteRejectedAlreadyVoted.String())
	assert.Equal(t, "unknown", exported.VoteResult(17).String())
}
