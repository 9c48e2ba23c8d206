package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nunnu1028/kkutu-korea-hack/internal/api"
	"github.com/nunnu1028/kkutu-korea-hack/internal/config"
	"github.com/nunnu1028/kkutu-korea-hack/internal/game/browser"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

func newRunCmd() *cobra.Command {
	var (
		gameURL     string
		debuggerURL string
		listen      string
		mode        string
		headless    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Attach to the game page and handle every turn",
		Long: `run opens (or attaches to) the KKuTu page in Chrome and reacts to each of
your turns. In display mode the ranked candidates are printed; in input mode
the chosen word is typed into the answer box at the configured speed.

With --listen the loop can be inspected and controlled over HTTP, see
"kkutu loop". The command stops on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.LoadConfig()
			if err != nil {
				return err
			}

			if gameURL != "" {
				cfg.Browser.URL = gameURL
			}
			if debuggerURL != "" {
				cfg.Browser.DebuggerURL = debuggerURL
			}
			if listen != "" {
				cfg.API.Listen = listen
			}
			if mode != "" {
				cfg.Output.Mode = mode
			}
			if cmd.Flags().Changed("headless") {
				cfg.Browser.Headless = headless
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runLoop(ctx, cfg, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().StringVar(&gameURL, "url", "", "Game page URL (overrides config)")
	cmd.Flags().StringVar(&debuggerURL, "debugger-url", "", "Attach to a running Chrome, e.g. ws://127.0.0.1:9222")
	cmd.Flags().StringVar(&listen, "listen", "", "Serve the control API on this address, e.g. "+api.DefaultAddr)
	cmd.Flags().StringVar(&mode, "mode", "", "Output mode: display, input (overrides config)")
	cmd.Flags().BoolVar(&headless, "headless", false, "Launch Chrome without a window")

	return cmd
}

// runLoop drives the game page until ctx is cancelled or the API server fails
func runLoop(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	app, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	session, err := browser.Connect(ctx, cfg.BrowserOptions(), logger)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	loop, err := app.NewLoop(session.Collaborators(app.Clock, out), cfg.LoopOptions())
	if err != nil {
		return err
	}
	if err := loop.Init(ctx); err != nil {
		return err
	}
	if err := loop.Run(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	var server *api.Server
	if cfg.API.Listen != "" {
		serverConfig := api.DefaultServerConfig()
		serverConfig.Addr = cfg.API.Listen
		server = api.NewServer(api.NewRouter(api.RouterConfig{
			Logger: logger,
			Loop:   loop,
		}), serverConfig, logger)

		go func() {
			errCh <- server.Start()
		}()
	}

	logger.Info("watching for turns",
		slog.String("url", cfg.Browser.URL),
		slog.String("mode", cfg.Output.Mode),
		slog.Int("corpus_size", app.Corpus.WordCount()))

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			runErr = err
		}
	}

	if server != nil {
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("failed to stop control API", slog.String("error", err.Error()))
		}
	}

	// The API may already have stopped the loop
	if err := loop.Stop(); err != nil && !errors.Is(err, model.ErrNotRunning) {
		runErr = errors.Join(runErr, fmt.Errorf("stopping loop: %w", err))
	}
	loop.Wait()

	return runErr
}
