package exported

//go:generate moq -out ./mock/types.go -pkg mock . Env

// Env gives an operation access to the services of the hosting environment for the duration of a single call
type Env interface {
	// Caller returns the identity that invoked the current operation
	Caller() string
	// Owner returns the identity of the account that hosts the poll store
	Owner() string
	// RandomSeed returns fresh entropy for the current call
	RandomSeed() []byte
}

// VoteResult describes the outcome of a vote
type VoteResult int

// vote results
const (
	VoteAccepted VoteResult = iota
	VoteRejectedUnknownPoll
	VoteRejectedAlreadyVoted
)

// Accepted returns true if the vote was counted
func (r VoteResult) Accepted() bool {
	return r == VoteAccepted
}

func (r VoteResult) String() string {
	switch r {
	case VoteAccepted:
		return "accepted"
	case VoteRejectedUnknownPoll:
		return "unknown_poll"
	case VoteRejectedAlreadyVoted:
		return "already_voted"
	default:
		return "unknown"
	}
}
