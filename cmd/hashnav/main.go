package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hashnav/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hashnav",
		Short: "Tooling for hash-routed Go wasm apps",
		Long: `hashnav is the companion CLI for the hashnav routing library.

It serves and ships apps that route on the URL fragment:

  • Dev server with live reload for a built wasm app directory
  • Prometheus metrics and OpenTelemetry tracing on the dev server
  • One-command deploy of the app directory to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if ce, ok := errors.AsCLIError(err); ok {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", ce.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
