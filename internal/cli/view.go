package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/deficits/internal/app"
	"github.com/epeers/deficits/internal/chart"
	"github.com/epeers/deficits/internal/handlers"
	"github.com/epeers/deficits/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// shutdownTimeout gives outstanding requests time to complete
const shutdownTimeout = 5 * time.Second

func runView(cmd *cobra.Command, opts *RootOptions) error {
	result, err := runPipeline(cmd, opts)
	if err != nil {
		return err
	}
	if err := services.FormatTable(cmd.OutOrStdout(), result.Merged); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", ":"+opts.Config.Port)
	if err != nil {
		return err
	}
	return serve(ctx, listener, result)
}

// serve blocks until ctx is done, then shuts the viewer down gracefully
func serve(ctx context.Context, listener net.Listener, result *app.Result) error {
	srv := &http.Server{
		Handler: handlers.NewRouter(result, chart.NewRenderer()),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("chart viewer on http://%s/", listener.Addr())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down chart viewer...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("chart viewer exited")
	return nil
}
