package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Tally is the number of votes for one option
type Tally struct {
	OptionID string `json:"option_id" yaml:"option_id"`
	Count    uint64 `json:"count" yaml:"count"`
}

// PollRecord is the exported form of a poll together with its results
type PollRecord struct {
	Poll    PollDefinition `json:"poll" yaml:"poll"`
	Tallies []Tally        `json:"tallies" yaml:"tallies"`
	Voters  []string       `json:"voters" yaml:"voters"`
}

// NewPollRecord converts the given stats into a record with deterministically ordered tallies and voters
func NewPollRecord(stats PollStats) PollRecord {
	optionIDs := maps.Keys(stats.Results.Variants)
	slices.Sort(optionIDs)

	tallies := make([]Tally, 0, len(optionIDs))
	for _, optionID := range optionIDs {
		tallies = append(tallies, Tally{OptionID: optionID, Count: stats.Results.Variants[optionID]})
	}

	return PollRecord{
		Poll:    stats.Poll,
		Tallies: tallies,
		Voters:  stats.Results.Voters(),
	}
}

// Stats converts the record back into a poll and its results
func (m PollRecord) Stats() PollStats {
	results := NewPollResults(m.Poll.PollID)
	for _, tally := range m.Tallies {
		results.Variants[tally.OptionID] = tally.Count
	}

	for _, voter := range m.Voters {
		results.Voted[voter] = struct{}{}
	}

	return PollStats{Poll: m.Poll, Results: results}
}

// ValidateBasic performs a stateless check of the record
func (m PollRecord) ValidateBasic() error {
	if err := m.Poll.ValidateBasic(); err != nil {
		return err
	}

	seenOptions := make(map[string]struct{}, len(m.Tallies))
	for _, tally := range m.Tallies {
		if _, ok := seenOptions[tally.OptionID]; ok {
			return fmt.Errorf("duplicate tally for option %s", tally.OptionID)
		}

		if tally.Count == 0 {
			return fmt.Errorf("tally for option %s must be positive", tally.OptionID)
		}

		seenOptions[tally.OptionID] = struct{}{}
	}

	seenVoters := make(map[string]struct{}, len(m.Voters))
	for _, voter := range m.Voters {
		if _, ok := seenVoters[voter]; ok {
			return fmt.Errorf("duplicate voter %s", voter)
		}

		seenVoters[voter] = struct{}{}
	}

	return nil
}

// GenesisState represents the state of the poll store at a single point in time
type GenesisState struct {
	Polls []PollRecord `json:"polls" yaml:"polls"`
}

// NewGenesisState returns a new genesis state
func NewGenesisState(polls []PollRecord) *GenesisState {
	return &GenesisState{Polls: polls}
}

// DefaultGenesisState represents the default genesis state
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(nil)
}

// Validate validates the genesis state
func (m GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(m.Polls))
	for i, record := range m.Polls {
		if err := record.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "invalid poll at index %d: %s", i, err.Error())
		}

		if _, ok := seen[record.Poll.PollID]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate poll %s", record.Poll.PollID)
		}

		seen[record.Poll.PollID] = struct{}{}
	}

	return nil
}
