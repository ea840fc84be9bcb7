package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axelarnetwork/polls/x/poll/types"
)

// GetQueryCmd returns the cli query commands for the poll store
func GetQueryCmd(withHost WithHost) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	queryCmd.AddCommand(
		GetCmdPoll(withHost),
		GetCmdResults(withHost),
		GetCmdPolls(withHost),
		GetCmdPing(withHost),
	)

	return queryCmd
}

// GetCmdPoll returns the query for a poll definition
func GetCmdPoll(withHost WithHost) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poll [poll_id]",
		Short: "Returns the definition of the given poll",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHost(cmd, func(host Host) error {
				poll, ok := host.ShowPoll(args[0])
				if !ok {
					return types.ErrPollNotFound.Wrapf("no poll known for %s", args[0])
				}

				return printOutput(cmd, poll)
			})
		},
	}

	addOutputFlag(cmd)
	return cmd
}

// GetCmdResults returns the query for the results of a poll
func GetCmdResults(withHost WithHost) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results [poll_id]",
		Short: "Returns the given poll with its tally and voters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHost(cmd, func(host Host) error {
				stats, ok := host.ShowResults(args[0])
				if !ok {
					return types.ErrPollNotFound.Wrapf("no poll known for %s", args[0])
				}

				return printOutput(cmd, stats.View())
			})
		},
	}

	addOutputFlag(cmd)
	return cmd
}

// GetCmdPolls returns the query for all poll definitions
func GetCmdPolls(withHost WithHost) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "polls",
		Short: "Returns all polls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withHost(cmd, func(host Host) error {
				polls, err := host.Polls()
				if err != nil {
					return err
				}

				if polls == nil {
					polls = []types.PollDefinition{}
				}

				return printOutput(cmd, polls)
			})
		},
	}

	addOutputFlag(cmd)
	return cmd
}

// GetCmdPing returns the liveness query
func GetCmdPing(withHost WithHost) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Returns PONG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withHost(cmd, func(host Host) error {
				return printOutput(cmd, host.Ping())
			})
		},
	}

	addOutputFlag(cmd)
	return cmd
}
