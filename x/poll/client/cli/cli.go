package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/axelarnetwork/polls/x/poll/exported"
	"github.com/axelarnetwork/polls/x/poll/types"
)

// cli flags
const (
	FlagFrom   = "from"
	FlagOutput = "output"
)

// output formats
const (
	OutputJSON = "json"
	OutputText = "text"
)

// Host executes poll operations on behalf of the cli
type Host interface {
	CreatePoll(caller string, question string, variants map[string]string) (string, error)
	Vote(caller string, pollID string, votes map[string]int32) (exported.VoteResult, error)
	ShowPoll(pollID string) (types.PollDefinition, bool)
	ShowResults(pollID string) (types.PollStats, bool)
	Polls() ([]types.PollDefinition, error)
	Ping() string
}

// WithHost runs the given function with a host that is only valid for the duration of the call
type WithHost func(cmd *cobra.Command, run func(host Host) error) error

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(FlagOutput, "o", OutputText, fmt.Sprintf("output format (%s|%s)", OutputText, OutputJSON))
}

func printOutput(cmd *cobra.Command, res interface{}) error {
	bz, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString(FlagOutput)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case OutputJSON:
	case OutputText:
		if bz, err = yaml.JSONToYAML(bz); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %s", output)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(string(bz)))
	return err
}
