package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grupocolon/cfdi-fuel/internal/cfdi"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show information about invoice files",
	Long: `Display header information about CFDI files without identity
enforcement or summarization.

Shows:
  - CFDI version and folio
  - Issuer name and recipient RFC as found in the document
  - Number of line items

Examples:
  cfdi-fuel info factura.xml
  cfdi-fuel info facturas/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no XML files found")
	}

	for _, file := range files {
		printFileInfo(file)
		fmt.Println()
	}

	return nil
}

func printFileInfo(filePath string) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "File:\t%s\n", filePath)

	doc, err := cfdi.Load(filePath)
	if err != nil {
		fmt.Fprintf(tw, "Error:\t%v\n", err)
		return
	}

	if comprobante := doc.Comprobante(); comprobante != nil {
		fmt.Fprintf(tw, "Version:\t%s\n", cfdi.Attr(comprobante, "Version"))
		fmt.Fprintf(tw, "Folio:\t%s\n", cfdi.Attr(comprobante, "Folio"))
		fmt.Fprintf(tw, "Fecha:\t%s\n", cfdi.Attr(comprobante, "Fecha"))
	} else {
		fmt.Fprintf(tw, "Comprobante:\t(not found)\n")
	}

	fmt.Fprintf(tw, "Emisor:\t%s\n", cfdi.Attr(doc.Emisor(), "Nombre"))
	fmt.Fprintf(tw, "Receptor RFC:\t%s\n", cfdi.Attr(doc.Receptor(), "Rfc"))
	fmt.Fprintf(tw, "Conceptos:\t%d\n", len(doc.Conceptos()))
}
