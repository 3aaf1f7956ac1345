package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdftools/rdfconvert/internal/converter"
	"github.com/rdftools/rdfconvert/internal/formats"
)

var (
	// Convert flags
	convertFrom      string
	convertFromExts  []string
	convertTo        string
	convertToExt     string
	convertOutputDir string
	convertRecursive bool
	convertNoTree    bool
	convertForce     bool
	convertSimulate  bool
	convertContext   string
)

var convertCmd = &cobra.Command{
	Use:   "convert [INPUT...]",
	Short: "Convert RDF files or directory trees to another serialization",
	Long: `Convert one or more RDF files to another serialization format.

Files named on the command line are converted regardless of their
extension. For directories, files matching the input format's default
extensions (or the --from-ext overrides) are collected, one level deep
unless -R is given.

Without -o the converted output is printed to stdout. With -o DIR the
output files are written under DIR, mirroring the input directory
structure unless -n is given. DIR must already exist.

Examples:
  rdfconvert convert --from ttl --to xml ontology.ttl
  rdfconvert convert --to jsonld -o out/ data.ttl
  rdfconvert convert --from xml --to ttl -R -o converted/ ontologies/
  rdfconvert convert --from nt --to ttl -f -s -o out/ dump.nt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "input serialization format (default: detect per file)")
	convertCmd.Flags().StringSliceVar(&convertFromExts, "from-ext", nil, "file extensions to match when browsing input directories (e.g. .owl,.rdf)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "output serialization format (required)")
	convertCmd.Flags().StringVar(&convertToExt, "to-ext", "", "extension of the output files, including the dot")
	convertCmd.Flags().StringVarP(&convertOutputDir, "output", "o", "", "directory to write output files (omit to print to stdout)")
	convertCmd.Flags().BoolVarP(&convertRecursive, "recursive", "R", false, "browse input directories recursively")
	convertCmd.Flags().BoolVarP(&convertNoTree, "no-tree", "n", false, "write all output files into a flat directory")
	convertCmd.Flags().BoolVarP(&convertForce, "force", "f", false, "always overwrite existing output files instead of prompting")
	convertCmd.Flags().BoolVarP(&convertSimulate, "simulate", "s", false, "print what would be written without writing anything")
	convertCmd.Flags().StringVar(&convertContext, "jsonld-context", "", "compact JSON-LD output against this context document")

	_ = convertCmd.MarkFlagRequired("to") //nolint:errcheck
}

// buildConvertOptions merges convert flags with configuration defaults.
// A flag set on the command line always wins, even when it repeats the
// flag's own default (e.g. --force=false against a config-enabled force).
func buildConvertOptions(cmd *cobra.Command) (converter.Options, error) {
	to, err := formats.Parse(convertTo)
	if err != nil {
		return converter.Options{}, err
	}

	opts := converter.Options{
		FromExts:      convertFromExts,
		To:            to,
		ToExt:         convertToExt,
		OutputDir:     convertOutputDir,
		Recursive:     cfg.Convert.Recursive,
		NoTree:        cfg.Convert.NoTree,
		Force:         cfg.Convert.Force,
		Simulate:      convertSimulate,
		JSONLDContext: convertContext,
	}

	if cmd.Flags().Changed("recursive") {
		opts.Recursive = convertRecursive
	}
	if cmd.Flags().Changed("no-tree") {
		opts.NoTree = convertNoTree
	}
	if cmd.Flags().Changed("force") {
		opts.Force = convertForce
	}

	if convertFrom != "" {
		from, err := formats.Parse(convertFrom)
		if err != nil {
			return converter.Options{}, err
		}
		opts.From = &from
	}

	return opts, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := buildConvertOptions(cmd)
	if err != nil {
		return err
	}

	conv := converter.New(opts)
	conv.Log = trace

	report, err := conv.Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	if convertOutputDir != "" {
		fmt.Printf("✓ %d converted, %d skipped, %d simulated\n",
			report.Converted, report.Skipped, report.Simulated)
	}
	return nil
}
