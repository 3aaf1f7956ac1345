// Package commands wires the rdfconvert command-line interface.
package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdftools/rdfconvert/internal/config"
	"github.com/rdftools/rdfconvert/internal/version"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config

	// trace receives verbose output; silent unless -v is given.
	trace = log.New(io.Discard, "", 0)
)

var rootCmd = &cobra.Command{
	Use:   "rdfconvert",
	Short: "Convert RDF data between serialization formats",
	Long: `rdfconvert converts files and whole directory trees from one RDF
serialization into another.

Parsing and serialization are delegated to an RDF toolkit; rdfconvert
maps format names, collects input files, and plans output paths. Run
"rdfconvert formats" to see the supported formats and their default
file extensions.`,
	Version: version.Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rdfconvert.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbosely print processing details")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "%s" .Version}}
`)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if verbose || cfg.Logging.Level == "debug" {
		trace = log.New(os.Stderr, "", 0)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Println(info.String())

		if verbose {
			fmt.Printf("\nDetails:\n")
			fmt.Printf("  Version:    %s\n", info.Version)
			fmt.Printf("  Git Commit: %s\n", info.GitCommit)
			fmt.Printf("  Built:      %s\n", info.BuildTime)
			fmt.Printf("  Go Version: %s\n", info.GoVersion)
			fmt.Printf("  Platform:   %s\n", info.Platform)
		}
	},
}
