package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grupocolon/cfdi-fuel/internal/cfdi"
	"github.com/grupocolon/cfdi-fuel/internal/identity"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate invoice identity",
	Long: `Check that one or more CFDI invoices were issued by the expected
provider to one of our registered RFCs, without summarizing them.

Checks performed:
  - Emisor Nombre matches the configured provider name
  - Receptor Rfc is in the configured allow-list

Examples:
  cfdi-fuel validate factura.xml
  cfdi-fuel validate *.xml -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no XML files found to validate")
	}

	validator := identity.NewValidator(identityConfig)
	results := make([]*ValidateResult, 0, len(files))
	allValid := true

	for _, file := range files {
		result := validateFile(validator, file)
		results = append(results, result)

		if !result.Valid {
			allValid = false
		}
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", r.File)
			} else {
				fmt.Printf("✗ %s: INVALID\n", r.File)
				for _, e := range r.Errors {
					fmt.Printf("  - %s\n", e)
				}
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}

	return nil
}

func validateFile(validator *identity.Validator, filePath string) *ValidateResult {
	result := &ValidateResult{
		File:   filePath,
		Valid:  true,
		Errors: []string{},
	}

	doc, err := cfdi.Load(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	validation, err := validator.Validate(doc)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if !validation.Valid {
		result.Valid = false
		for _, issue := range validation.Issues {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s (found: %s)", issue.Message, issue.Found))
		}
	}

	return result
}

// ValidateResult holds the result of validating a single file
type ValidateResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}
