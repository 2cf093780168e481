package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/grupocolon/cfdi-fuel/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for summarizing invoices.

The API provides endpoints for:
  - POST /api/v1/summarize  - Validate identity and sum fuel line items
  - POST /api/v1/validate   - Identity checks only
  - POST /api/v1/info       - Header information
  - GET  /health            - Health check

Request bodies are raw CFDI XML.

Examples:
  # Start server on default port
  cfdi-fuel serve

  # Start on custom port with a different expected provider
  cfdi-fuel serve --address :9090 --config partner.yaml

  # Start in debug mode
  cfdi-fuel serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := &server.Config{
		Address:      serverAddr,
		Identity:     identityConfig,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	printVerbose("Starting server on %s\n", cfg.Address)
	return server.NewServer(cfg).Run()
}
