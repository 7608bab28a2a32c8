package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/sameboat/internal/app"
	"github.com/nfrund/sameboat/internal/config"
	"github.com/nfrund/sameboat/internal/logging"
	"github.com/nfrund/sameboat/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		if serveAddr != "" {
			cfg.ServerAddr = serveAddr
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

		injector := app.New(cfg)
		defer injector.Shutdown()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := app.StartSubscribers(ctx, injector); err != nil {
			return fmt.Errorf("failed to start subscribers: %w", err)
		}

		srv, err := do.Invoke[*server.Server](injector)
		if err != nil {
			return fmt.Errorf("failed to build server: %w", err)
		}
		return srv.Start(ctx, cfg.GetServerAddr())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides SERVER_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
