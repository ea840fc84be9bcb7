package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/axelarnetwork/polls/config"
)

const shutdownTimeout = 5 * time.Second

// NewRouter returns a router serving the poll API, the results stream and the metrics of the given gatherer
func NewRouter(host Host, hub *Hub, cfg config.RESTConfig, registry *prometheus.Registry, logger log.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID(logger), NewMetrics(registry).Middleware, NewRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.RateLimitCallers).Middleware)

	RegisterRoutes(r, host, logger)
	r.Handle(RouteStream, hub).Methods(http.MethodGet)
	r.Handle(RouteMetrics, promhttp.HandlerFor(prometheus.Gatherers{registry, prometheus.DefaultGatherer}, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}

// Serve serves the given handler until the context is canceled, then shuts the server down gracefully
func Serve(ctx context.Context, cfg config.RESTConfig, handler http.Handler, logger log.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting REST server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down REST server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
