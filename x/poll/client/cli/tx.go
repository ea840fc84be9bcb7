package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/axelarnetwork/polls/utils"
	"github.com/axelarnetwork/polls/x/poll/types"
)

// GetTxCmd returns the cli commands that change the poll store
func GetTxCmd(withHost WithHost) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        "tx",
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	txCmd.AddCommand(
		GetCmdCreatePoll(withHost),
		GetCmdVote(withHost),
	)

	return txCmd
}

// GetCmdCreatePoll returns the cli command to create a poll
func GetCmdCreatePoll(withHost WithHost) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-poll [question] [option_id=message]...",
		Short: "Create a new poll with the given voting options",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := getFrom(cmd)
			if err != nil {
				return err
			}

			variants, err := parseVariants(args[1:])
			if err != nil {
				return err
			}

			return withHost(cmd, func(host Host) error {
				pollID, err := host.CreatePoll(caller, args[0], variants)
				if err != nil {
					return err
				}

				return printOutput(cmd, map[string]string{"poll_id": pollID})
			})
		},
	}

	addFromFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}

// GetCmdVote returns the cli command to vote in a poll
func GetCmdVote(withHost WithHost) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote [poll_id] [option_id[=flag]]...",
		Short: "Vote for the given options of a poll. Options without a flag count as selected",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := getFrom(cmd)
			if err != nil {
				return err
			}

			votes, err := parseVotes(args[1:])
			if err != nil {
				return err
			}

			return withHost(cmd, func(host Host) error {
				result, err := host.Vote(caller, args[0], votes)
				if err != nil {
					return err
				}

				if err := printOutput(cmd, map[string]interface{}{"counted": result.Accepted(), "reason": result.String()}); err != nil {
					return err
				}

				return types.VoteError(args[0], caller, result)
			})
		},
	}

	addFromFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().String(FlagFrom, "", "identity of the caller")
}

func getFrom(cmd *cobra.Command) (string, error) {
	from, err := cmd.Flags().GetString(FlagFrom)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(from) == "" {
		return "", fmt.Errorf("flag --%s is required", FlagFrom)
	}

	if err := utils.ValidateString(from); err != nil {
		return "", fmt.Errorf("invalid --%s: %w", FlagFrom, err)
	}

	return from, nil
}

func parseVariants(args []string) (map[string]string, error) {
	variants := make(map[string]string, len(args))
	for _, arg := range args {
		optionID, message, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("voting option %s must have the form option_id=message", arg)
		}

		variants[optionID] = message
	}

	return variants, nil
}

func parseVotes(args []string) (map[string]int32, error) {
	votes := make(map[string]int32, len(args))
	for _, arg := range args {
		optionID, flag, ok := strings.Cut(arg, "=")
		if !ok {
			votes[optionID] = 1
			continue
		}

		value, err := cast.ToInt32E(flag)
		if err != nil {
			return nil, fmt.Errorf("invalid flag for option %s: %w", optionID, err)
		}

		votes[optionID] = value
	}

	return votes, nil
}
