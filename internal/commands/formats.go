package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rdftools/rdfconvert/internal/formats"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported RDF serialization formats",
	Long: `List the supported RDF serialization formats together with their
accepted aliases, the file extensions matched when browsing input
directories, and the default extension of written output files.`,
	Run: runFormats,
}

func runFormats(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FORMAT\tALIASES\tINPUT EXTENSIONS\tOUTPUT EXTENSION")
	for _, f := range formats.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			f.Name,
			strings.Join(formats.Aliases(f.Name), " "),
			strings.Join(f.InputExts, " "),
			f.OutputExt)
	}
	w.Flush()
}
