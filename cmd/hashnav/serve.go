package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hashnav/internal/config"
	"github.com/vango-dev/hashnav/internal/dev"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		appDir  string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a built app with live reload",
		Long: `Serve a built wasm app directory over HTTP.

The server watches the directory and reloads connected browsers on
change. CSS changes are applied in place without a full reload.

Examples:
  hashnav serve
  hashnav serve --port=8080 --app=build
  hashnav serve --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if appDir != "" {
				cfg.App = appDir
			}
			if metrics {
				cfg.Dev.Metrics = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv := dev.NewServer(dev.ServerOptions{
				Config: cfg,
				OnReload: func(clients int) {
					info("reloaded %d browser(s)", clients)
				},
			})

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			info("serving %s on http://%s", cfg.AppDir(), srv.Addr())
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from hashnav.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from hashnav.json)")
	cmd.Flags().StringVarP(&appDir, "app", "a", "", "Built app directory (default from hashnav.json)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics on /metrics")

	return cmd
}
