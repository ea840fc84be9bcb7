package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/axelarnetwork/polls/app"
	"github.com/axelarnetwork/polls/x/poll/client/rest"
)

// StartCmd returns the command that serves the poll store over REST until interrupted
func StartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run the REST server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := GetContext(cmd)

			if ctx.Config.Telemetry.Enabled {
				if _, err := telemetry.New(ctx.Config.TelemetryConfig(app.Name)); err != nil {
					return err
				}
			}

			pollsApp, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(pollsApp, ctx.Logger)

			hub := rest.NewHub(pollsApp, ctx.Logger.With("module", "rest"))
			pollsApp.Subscribe(hub.Publish)

			router := rest.NewRouter(pollsApp, hub, ctx.Config.REST, prometheus.NewRegistry(), ctx.Logger.With("module", "rest"))

			signalCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gCtx := errgroup.WithContext(signalCtx)
			g.Go(func() error { return rest.Serve(gCtx, ctx.Config.REST, router, ctx.Logger) })
			g.Go(func() error {
				<-gCtx.Done()
				ctx.Logger.Info("shutting down", "height", pollsApp.LastHeight())
				return nil
			})

			return g.Wait()
		},
	}
}
