package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/axelarnetwork/polls/x/poll/exported"
)

// module errors
var (
	ErrPoll           = errorsmod.Register(ModuleName, 2, "poll error")
	ErrPollNotFound   = errorsmod.Register(ModuleName, 3, "poll not found")
	ErrAlreadyVoted   = errorsmod.Register(ModuleName, 4, "voter already voted")
	ErrInvalidGenesis = errorsmod.Register(ModuleName, 5, "invalid genesis state")
)

// VoteError returns the error describing why a vote was rejected, nil if it was accepted
func VoteError(pollID string, voter string, result exported.VoteResult) error {
	switch result {
	case exported.VoteAccepted:
		return nil
	case exported.VoteRejectedUnknownPoll:
		return errorsmod.Wrapf(ErrPollNotFound, "no poll known for %s", pollID)
	case exported.VoteRejectedAlreadyVoted:
		return errorsmod.Wrapf(ErrAlreadyVoted, "%s already voted in %s", voter, pollID)
	default:
		return errorsmod.Wrapf(ErrPoll, "unexpected vote result %d", result)
	}
}
