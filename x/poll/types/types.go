package types

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/axelarnetwork/polls/utils"
	"github.com/axelarnetwork/polls/utils/key"
)

// VotingOption is a single answer a voter can select
type VotingOption struct {
	OptionID string `json:"option_id" yaml:"option_id"`
	Message  string `json:"message" yaml:"message"`
}

// PollDefinition describes a poll. It never changes after the poll has been created.
type PollDefinition struct {
	// Creator is the identity that created the poll
	Creator  string         `json:"creator" yaml:"creator"`
	PollID   string         `json:"poll_id" yaml:"poll_id"`
	Question string         `json:"question" yaml:"question"`
	Variants []VotingOption `json:"variants" yaml:"variants"`
}

// NewPollDefinition returns a new poll definition. The variants are ordered by option id.
func NewPollDefinition(creator, pollID, question string, variants map[string]string) PollDefinition {
	optionIDs := maps.Keys(variants)
	slices.Sort(optionIDs)

	options := make([]VotingOption, 0, len(optionIDs))
	for _, optionID := range optionIDs {
		options = append(options, VotingOption{OptionID: optionID, Message: variants[optionID]})
	}

	return PollDefinition{
		Creator:  creator,
		PollID:   pollID,
		Question: question,
		Variants: options,
	}
}

// ValidateBasic performs a stateless check of the poll definition
func (m PollDefinition) ValidateBasic() error {
	if err := ValidatePollID(m.PollID); err != nil {
		return err
	}

	return nil
}

// ValidatePollID checks that the poll id can be used as part of a store key
func ValidatePollID(pollID string) error {
	if err := utils.ValidateString(pollID, key.DefaultDelimiter); err != nil {
		return fmt.Errorf("invalid poll id: %w", err)
	}

	return nil
}

// PollResults holds the tally of a poll and the set of identities that have voted in it
type PollResults struct {
	PollID string `json:"poll_id" yaml:"poll_id"`
	// Variants maps an option id to its number of votes. Options without votes have no entry.
	Variants map[string]uint64 `json:"variants" yaml:"variants"`
	// Voted contains every identity that has voted
	Voted map[string]struct{} `json:"voted" yaml:"voted"`
}

// NewPollResults returns empty results for the given poll
func NewPollResults(pollID string) PollResults {
	return PollResults{
		PollID:   pollID,
		Variants: make(map[string]uint64),
		Voted:    make(map[string]struct{}),
	}
}

// HasVoted returns true if the given identity has voted
func (m PollResults) HasVoted(voter string) bool {
	_, ok := m.Voted[voter]
	return ok
}

// Count returns the number of votes for the given option
func (m PollResults) Count(optionID string) uint64 {
	return m.Variants[optionID]
}

// Voters returns all identities that have voted, sorted
func (m PollResults) Voters() []string {
	voters := maps.Keys(m.Voted)
	slices.Sort(voters)

	return voters
}

// PollStats pairs a poll with its current results
type PollStats struct {
	Poll    PollDefinition `json:"poll" yaml:"poll"`
	Results PollResults    `json:"results" yaml:"results"`
}

// View returns the presentation of the stats that lists the voters instead of exposing them as a set
func (m PollStats) View() PollStatsView {
	return PollStatsView{
		Poll:    m.Poll,
		Results: m.Results.View(),
	}
}

// View returns the presentation of the results that lists the voters in sorted order
func (m PollResults) View() PollResultsView {
	return PollResultsView{
		PollID:   m.PollID,
		Variants: m.Variants,
		Voted:    m.Voters(),
	}
}

// PollResultsView is the presentation of PollResults handed out by the cli and the REST API
type PollResultsView struct {
	PollID   string            `json:"poll_id" yaml:"poll_id"`
	Variants map[string]uint64 `json:"variants" yaml:"variants"`
	Voted    []string          `json:"voted" yaml:"voted"`
}

// PollStatsView is the presentation of PollStats handed out by the cli and the REST API
type PollStatsView struct {
	Poll    PollDefinition  `json:"poll" yaml:"poll"`
	Results PollResultsView `json:"results" yaml:"results"`
}
