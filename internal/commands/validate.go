package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdftools/rdfconvert/internal/formats"
	"github.com/rdftools/rdfconvert/internal/validation"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate [FILE...]",
	Short: "Check that RDF files parse without converting them",
	Long: `Parse each file and report whether it is well-formed.

JSON-LD documents are additionally checked for a usable structure and
for expandability.

Examples:
  rdfconvert validate ontology.ttl
  rdfconvert validate --format jsonld data.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "", "serialization format of the files (default: detect per file)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	var format *formats.Format
	if validateFormat != "" {
		f, err := formats.Parse(validateFormat)
		if err != nil {
			return err
		}
		format = &f
	}

	validator := validation.New()
	failed := 0

	for _, path := range args {
		result, err := validator.ValidateFile(cmd.Context(), path, format)
		if err != nil {
			return fmt.Errorf("validation error for %s: %w", path, err)
		}

		if result.Valid {
			fmt.Printf("✓ %s: %d statements\n", path, result.Statements)
			continue
		}

		failed++
		fmt.Printf("✗ %s:\n", path)
		for _, e := range result.Errors {
			fmt.Printf("  - %s: %s\n", e.Field, e.Message)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
