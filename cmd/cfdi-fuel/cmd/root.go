package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grupocolon/cfdi-fuel/internal/config"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	configPath   string

	// Identity expectations applied by every subcommand
	identityConfig = config.Default()
	configErr      error
)

var rootCmd = &cobra.Command{
	Use:   "cfdi-fuel",
	Short: "Summarize fuel purchases from CFDI invoices",
	Long: `cfdi-fuel reads CFDI XML tax invoices from a fuel provider, checks that
they were issued by the expected provider to one of our registered RFCs,
and sums the diesel and gasoline line items.

Examples:
  # Summarize a single invoice
  cfdi-fuel summarize factura.xml

  # Summarize every invoice in a directory, one summary per file
  cfdi-fuel summarize facturas/ -f table

  # Check identity only
  cfdi-fuel validate factura.xml

  # Use a different expected provider
  cfdi-fuel summarize factura.xml --config partner.yaml`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text, json, table)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML identity config")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if configPath == "" {
		return
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		configErr = err
		return
	}
	identityConfig = cfg
	printVerbose("Loaded identity config from %s (provider: %s)\n", configPath, cfg.Provider)
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
