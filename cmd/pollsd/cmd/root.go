package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	sdklog "cosmossdk.io/log"
	"github.com/cometbft/cometbft/libs/log"
	serverlog "github.com/cosmos/cosmos-sdk/server/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/axelarnetwork/polls/app"
	"github.com/axelarnetwork/polls/config"
	"github.com/axelarnetwork/polls/x/poll/client/cli"
)

// persistent flags
const (
	FlagHome      = "home"
	FlagOwner     = "owner"
	FlagDBBackend = "db_backend"
	FlagLogLevel  = "log_level"
	FlagLogFormat = "log_format"
)

type contextKey struct{}

// Context is shared by all commands of a single invocation
type Context struct {
	Home   string
	Viper  *viper.Viper
	Config config.AppConfig
	Logger log.Logger
}

// GetContext returns the context set up by the root command
func GetContext(cmd *cobra.Command) *Context {
	if ctx, ok := cmd.Context().Value(contextKey{}).(*Context); ok {
		return ctx
	}

	panic("command context is not initialized")
}

// NewRootCmd creates a new root command for pollsd. It is called once in the main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           app.Name + "d",
		Short:         "Polls App",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			home, err := cmd.Flags().GetString(FlagHome)
			if err != nil {
				return err
			}

			v := viper.New()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.ReadConfig(v, home)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			cmd.SetContext(context.WithValue(cmd.Context(), contextKey{}, &Context{
				Home:   home,
				Viper:  v,
				Config: cfg,
				Logger: logger,
			}))

			return nil
		},
	}

	addPersistentFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		InitCmd(),
		StartCmd(),
		ExportCmd(),
		ImportCmd(),
		cli.GetTxCmd(withApp),
		cli.GetQueryCmd(withApp),
	)

	return rootCmd
}

func addPersistentFlags(flags *pflag.FlagSet) {
	defaults := config.DefaultConfig()

	flags.String(FlagHome, app.DefaultNodeHome, "directory for config and data")
	flags.String(FlagOwner, defaults.Owner, "identity of the account hosting the poll store")
	flags.String(FlagDBBackend, string(defaults.DBBackend), "database backend (goleveldb|memdb|...)")
	flags.String(FlagLogLevel, defaults.LogLevel, "log level (trace|debug|info|warn|error)")
	flags.String(FlagLogFormat, defaults.LogFormat, fmt.Sprintf("log format (%s|%s)", config.LogFormatPlain, config.LogFormatJSON))
}

func newLogger(w io.Writer, cfg config.AppConfig) (log.Logger, error) {
	var logWriter io.Writer
	if strings.ToLower(cfg.LogFormat) == config.LogFormatPlain {
		logWriter = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	} else {
		logWriter = w
	}

	logLvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", cfg.LogLevel, err)
	}

	return serverlog.CometLoggerWrapper{Logger: sdklog.NewCustomLogger(zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger())}, nil
}

// withApp opens the app for the duration of the given function
func withApp(cmd *cobra.Command, run func(host cli.Host) error) error {
	pollsApp, err := openApp(GetContext(cmd))
	if err != nil {
		return err
	}
	defer closeApp(pollsApp, GetContext(cmd).Logger)

	return run(pollsApp)
}

func openApp(ctx *Context) (*app.PollsApp, error) {
	pruning, err := ctx.Config.Store.PruningOptions()
	if err != nil {
		return nil, err
	}

	db, err := app.OpenDB(ctx.Home, ctx.Config.DBBackend)
	if err != nil {
		return nil, err
	}

	pollsApp, err := app.NewPollsApp(db, ctx.Config.Owner, ctx.Logger, app.WithPruning(pruning))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return pollsApp, nil
}

func closeApp(pollsApp *app.PollsApp, logger log.Logger) {
	if err := pollsApp.Close(); err != nil {
		logger.Error(fmt.Sprintf("failed to close database: %s", err))
	}
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
