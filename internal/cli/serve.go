package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todo-list/internal/config"
	router "todo-list/internal/http"
	"todo-list/internal/http/handlers"
	"todo-list/internal/logging"
	"todo-list/internal/service"
	"todo-list/internal/store/memory"
)

func newServeCmd(v *viper.Viper, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task list over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(cfg.Logging, cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, *cfg, log)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = v.BindPFlag("http.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

// NewHandler wires the task list, service and HTTP router together.
func NewHandler(cfg config.Config, log zerolog.Logger) (http.Handler, error) {
	svc, err := service.New(memory.New(), service.WithLogger(log))
	if err != nil {
		return nil, err
	}

	handler := handlers.New(svc, log)
	return router.New(handler, cfg.HTTP, log), nil
}

func serve(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	handler, err := NewHandler(cfg, log)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error().Err(err).Msg("server failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shut down signal received...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		return err
	}

	log.Info().Msg("shut down gracefully")
	return nil
}
