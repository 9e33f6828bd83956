package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/app/scan"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/app/ui"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/audit"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/config"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/server"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/suggest"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the audit HTTP server (POST /api/scan)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		runner := audit.NewRunner(nil, suggest.NewComposer(scan.Providers(cfg)...), cfg.Scan.CheckRobots)
		srv := server.New(cfg.Server, runner)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Printf("%s\n", ui.Colorize(ui.ColorWhite,
			fmt.Sprintf("Listening on %s:%d", cfg.Server.Host, cfg.Server.Port)))
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
