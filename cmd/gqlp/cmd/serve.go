package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/gqlp/handler"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the parser as an HTTP/WebSocket service",
		Long: `Serve the parser over HTTP:

  POST /parse    JSON body {"schema": "..."}
  POST /upload   multipart form with schema files
  GET  /watch    WebSocket, one schema per message
  GET  /healthz  liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), a)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

// serve runs the service until the context ends or a signal arrives, then
// shuts down gracefully.
func serve(ctx context.Context, a *app) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := a.cfg.Server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.New(cfg, a.log).Routes(),
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
	}

	errc := make(chan error, 1)
	go func() {
		a.log.Info("gqlp service listening", "addr", cfg.Addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "listen on %s", cfg.Addr)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Duration)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	a.log.Info("server stopped")
	return nil
}
