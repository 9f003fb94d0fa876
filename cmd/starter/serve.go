package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/starter/internal/config"
	"github.com/vango-dev/starter/internal/pages"
	"github.com/vango-dev/starter/internal/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server.

With --live-reload the server watches the static directory and any
dev.watch paths, and connected browsers refresh on change.

Examples:
  starter serve
  starter serve --port=8080
  starter serve --host=0.0.0.0 --live-reload`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(
				config.WithFlag("server.port", cmd.Flags().Lookup("port")),
				config.WithFlag("server.host", cmd.Flags().Lookup("host")),
				config.WithFlag("server.live_reload", cmd.Flags().Lookup("live-reload")),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, flags, cfg)
		},
	}

	cmd.Flags().IntP("port", "p", config.DefaultPort, "Port to listen on")
	cmd.Flags().StringP("host", "H", config.DefaultHost, "Host to bind to")
	cmd.Flags().Bool("live-reload", false, "Reload browsers when files change")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, flags *globalFlags, cfg *config.Config) error {
	logger := flags.logger(cfg, cmd.ErrOrStderr())
	if file := cfg.ConfigFile(); file != "" {
		logger.Debug("loaded config", "file", file)
	}

	srv := server.New(cfg, pages.Default(),
		server.WithLogger(logger),
		server.WithProjectDir(projectDir(cfg)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, banner)
	info(out, "http://%s", cfg.Addr())
	if cfg.Server.LiveReload {
		info(out, "live reload on")
	}
	fmt.Fprintln(out)

	return srv.Run(ctx)
}
