package types

// PollCreated is emitted whenever a new poll is created
type PollCreated struct {
	PollID  string
	Creator string
}

// Voted is emitted for every vote, whether it was counted or not
type Voted struct {
	PollID string
	Voter  string
	Result string
}

// event types and attribute keys as they appear in emitted sdk events
const (
	EventTypePollCreated = "poll_created"
	EventTypeVoted       = "voted"

	AttributeKeyPollID = "poll_id"
	AttributeKeyResult = "result"
)
