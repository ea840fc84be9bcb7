package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/axelarnetwork/polls/config"
)

// FlagOut is the file an export is written to
const FlagOut = "out"

// InitCmd returns the command that writes the default configuration to the home directory
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the configuration file with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := GetContext(cmd)
			if err := ensureDir(config.Dir(ctx.Home)); err != nil {
				return err
			}

			v := viper.New()
			config.SetDefaults(v)
			v.Set("owner", ctx.Config.Owner)
			v.Set("db_backend", string(ctx.Config.DBBackend))
			v.Set("log_level", ctx.Config.LogLevel)
			v.Set("log_format", ctx.Config.LogFormat)

			if err := config.WriteConfig(v, ctx.Home); err != nil {
				return err
			}

			ctx.Logger.Info(fmt.Sprintf("wrote config to %s", config.Dir(ctx.Home)))
			return nil
		},
	}
}

// ExportCmd returns the command that exports all polls with their tallies and voters as JSON
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the state of the poll store to stdout or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := GetContext(cmd)

			pollsApp, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(pollsApp, ctx.Logger)

			bz, err := pollsApp.ExportAppStateJSON()
			if err != nil {
				return err
			}

			out, err := cmd.Flags().GetString(FlagOut)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
				return err
			}

			if err := ensureDir(filepath.Dir(out)); err != nil {
				return err
			}

			return errors.Wrapf(os.WriteFile(out, bz, 0o644), "failed to write %s", out)
		},
	}

	cmd.Flags().String(FlagOut, "", "file to write the export to")
	return cmd
}

// ImportCmd returns the command that imports polls from an export file
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import polls from an exported state. Nothing is imported if any poll already exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := GetContext(cmd)

			bz, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", args[0])
			}

			pollsApp, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(pollsApp, ctx.Logger)

			if err := pollsApp.ImportAppStateJSON(bz); err != nil {
				return err
			}

			ctx.Logger.Info(fmt.Sprintf("imported state from %s", args[0]), "height", pollsApp.LastHeight())
			return nil
		},
	}
}
