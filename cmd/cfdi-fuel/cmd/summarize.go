package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grupocolon/cfdi-fuel/pkg/cfdifuel"
)

var (
	outputFile string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [files...]",
	Short: "Summarize fuel purchases from invoice files",
	Long: `Validate invoice identity and sum the fuel line items of one or more
CFDI XML files.

Per invoice, the summary reports:
  - Total diesel liters and diesel amount
  - Total gasoline amount (magna and premium grades combined)
  - Invoice date (formatted) and folio

Invoices issued by an unexpected provider, or addressed to an RFC outside
the allow-list, are reported and skipped.

Examples:
  cfdi-fuel summarize factura.xml
  cfdi-fuel summarize *.xml -f table
  cfdi-fuel summarize facturas/ -o results.json -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no XML files found to summarize")
	}

	printVerbose("Found %d files to summarize\n", len(files))

	proc := cfdifuel.NewProcessor(identityConfig)
	results := make([]*FileResult, 0, len(files))

	for _, file := range files {
		printVerbose("Processing: %s\n", file)

		result := &FileResult{File: file}
		processed, err := proc.ProcessFile(file)
		if err != nil {
			result.Error = err.Error()
			printVerbose("  Error: %s\n", result.Error)
		} else {
			result.Result = processed
		}
		results = append(results, result)
	}

	return outputResults(results)
}

// collectFiles expands globs and directories into a list of XML files
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}

			if info.IsDir() {
				err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !info.IsDir() && isXMLFile(path) {
						files = append(files, path)
					}
					return nil
				})
				if err != nil {
					return nil, err
				}
			} else {
				files = append(files, arg)
			}
		} else {
			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil {
					continue
				}
				if !info.IsDir() && isXMLFile(match) {
					files = append(files, match)
				}
			}
		}
	}

	return files, nil
}

func isXMLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xml")
}

func outputResults(results []*FileResult) error {
	var writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	switch outputFormat {
	case "json":
		return outputJSON(writer, results)
	case "table":
		return outputTable(writer, results)
	case "text":
		return outputText(writer, results)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputJSON(w *os.File, results []*FileResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func outputTable(w *os.File, results []*FileResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tFOLIO\tDATE\tDIESEL L\tDIESEL $\tGASOLINE $\tSTATUS")
	fmt.Fprintln(tw, "----\t-----\t----\t--------\t--------\t----------\t------")

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\tERROR: %s\t\t\t\t\t\n", r.File, r.Error)
			continue
		}

		if !r.Result.Validation.Valid {
			fmt.Fprintf(tw, "%s\t\t\t\t\t\t%s\n", r.File, validationStatus(r.Result))
			continue
		}

		s := r.Result.Summary
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\tOK\n",
			r.File, s.Folio, s.Date, s.DieselLiters, s.DieselAmount, s.GasolineAmount)
	}

	return tw.Flush()
}

// outputText prints one labeled block per invoice
func outputText(w *os.File, results []*FileResult) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Archivo: %s\n", r.File)

		if r.Error != "" {
			fmt.Fprintf(w, "Error al procesar el archivo: %s\n", r.Error)
			continue
		}

		if !r.Result.Validation.Valid {
			fmt.Fprintf(w, "Advertencia: %s\n", validationStatus(r.Result))
			continue
		}

		s := r.Result.Summary
		fmt.Fprintf(w, "Fecha de la factura: %s\n", s.Date)
		fmt.Fprintf(w, "Folio de la factura: %s\n", s.Folio)
		fmt.Fprintf(w, "Total de litros de diésel: %s\n", s.DieselLiters)
		fmt.Fprintf(w, "Total del precio del diésel: %s\n", s.DieselAmount)
		fmt.Fprintf(w, "Total del precio de la gasolina: %s\n", s.GasolineAmount)
	}

	return nil
}

func validationStatus(result *cfdifuel.Result) string {
	parts := make([]string, 0, len(result.Validation.Issues))
	for _, issue := range result.Validation.Issues {
		parts = append(parts, fmt.Sprintf("%s (found: %s)", issue.Message, issue.Found))
	}
	return strings.Join(parts, "; ")
}

// FileResult holds the outcome of summarizing a single file
type FileResult struct {
	File   string           `json:"file"`
	Result *cfdifuel.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}
