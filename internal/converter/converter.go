// Package converter implements the parse-and-reserialize pipeline.
//
// All RDF parsing and serialization is delegated to the RDF toolkit
// (github.com/geoknoesis/rdf-go); this package collects input files,
// plans output paths, and moves statements from one codec to the other.
package converter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/piprate/json-gold/ld"

	"github.com/rdftools/rdfconvert/internal/formats"
)

// Options controls a conversion run.
type Options struct {
	// From is the input format. When nil, the format of each input file
	// is detected from its extension, then from its content.
	From *formats.Format

	// FromExts overrides the extensions matched when walking input
	// directories. Defaults to the input format's extension table, or to
	// every known input extension when From is nil.
	FromExts []string

	// To is the output format.
	To formats.Format

	// ToExt overrides the extension of written output files.
	ToExt string

	// OutputDir is the directory output files are written to. When
	// empty, output goes to stdout. The directory must already exist.
	OutputDir string

	// Recursive walks input directories recursively instead of one
	// level deep.
	Recursive bool

	// NoTree writes all output files flat into OutputDir instead of
	// mirroring the input directory structure.
	NoTree bool

	// Force overwrites existing output files without prompting.
	Force bool

	// Simulate prints what would be written without writing anything.
	Simulate bool

	// JSONLDContext is a path to a JSON-LD context document. When set
	// and the output format is JSON-LD, the emitted document is
	// compacted against it.
	JSONLDContext string
}

// Report summarizes a conversion run.
type Report struct {
	Converted int
	Skipped   int
	Simulated int
}

// Converter converts RDF files between serializations.
type Converter struct {
	// Stdout receives serialized output when no output directory is
	// configured, and simulate messages.
	Stdout io.Writer

	// PromptIn and PromptOut carry the interactive overwrite prompt.
	PromptIn  io.Reader
	PromptOut io.Writer

	// Log receives verbose trace output.
	Log *log.Logger

	opts     Options
	promptRd *bufio.Reader
}

// New creates a Converter wired to the standard streams. Callers may
// replace the stream fields before Run.
func New(opts Options) *Converter {
	return &Converter{
		Stdout:    os.Stdout,
		PromptIn:  os.Stdin,
		PromptOut: os.Stderr,
		Log:       log.New(io.Discard, "", 0),
		opts:      opts,
	}
}

// Run converts every input file or directory in order.
func (c *Converter) Run(ctx context.Context, inputs []string) (*Report, error) {
	if c.opts.OutputDir != "" {
		info, err := os.Stat(c.opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("output directory %s was not found", c.opts.OutputDir)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("output path %s is not a directory", c.opts.OutputDir)
		}
	}

	report := &Report{}
	for _, input := range inputs {
		c.Log.Printf("processing input %s", input)

		info, err := os.Stat(input)
		if err != nil {
			return report, fmt.Errorf("input %s was not found", input)
		}

		if info.IsDir() {
			root, err := filepath.Abs(input)
			if err != nil {
				return report, err
			}
			files, err := c.collect(root)
			if err != nil {
				return report, err
			}
			c.Log.Printf("found %d matching files under %s", len(files), root)
			for _, file := range files {
				if err := c.convertFile(ctx, report, root, file); err != nil {
					return report, err
				}
			}
			continue
		}

		if err := c.convertFile(ctx, report, "", input); err != nil {
			return report, err
		}
	}
	return report, nil
}

// inputExts resolves the extensions used for directory browsing.
func (c *Converter) inputExts() []string {
	if len(c.opts.FromExts) > 0 {
		return c.opts.FromExts
	}
	if c.opts.From != nil {
		return c.opts.From.InputExts
	}
	var exts []string
	for _, f := range formats.All() {
		exts = append(exts, f.InputExts...)
	}
	return exts
}

// collect gathers matching files under root, one level deep unless the
// run is recursive.
func (c *Converter) collect(root string) ([]string, error) {
	exts := c.inputExts()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && !c.opts.Recursive {
				return fs.SkipDir
			}
			return nil
		}
		if formats.MatchesExt(d.Name(), exts) {
			c.Log.Printf("found %s", path)
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to browse %s: %w", root, err)
	}
	return files, nil
}

func (c *Converter) convertFile(ctx context.Context, report *Report, root, path string) error {
	from := c.opts.From
	if from == nil {
		detected, err := formats.DetectFile(path)
		if err != nil {
			return err
		}
		c.Log.Printf("detected %s as %s", path, detected.Name)
		from = &detected
	}

	stmts, err := c.parse(ctx, path, *from)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	c.Log.Printf("parsed %s: %d statements", path, len(stmts))

	if c.opts.OutputDir == "" {
		if err := c.serialize(ctx, c.Stdout, stmts); err != nil {
			return fmt.Errorf("failed to serialize %s: %w", path, err)
		}
		report.Converted++
		return nil
	}

	outExt := c.opts.ToExt
	if outExt == "" {
		outExt = c.opts.To.OutputExt
	}
	outPath, err := OutputPath(c.opts.OutputDir, root, path, outExt, c.opts.NoTree)
	if err != nil {
		return err
	}
	absIn, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if outPath == absIn {
		return fmt.Errorf("input file %s is the same as the output file", absIn)
	}

	if !c.opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			if !c.confirmOverwrite(outPath) {
				c.Log.Printf("skipping %s", outPath)
				report.Skipped++
				return nil
			}
		}
	}

	outDir := filepath.Dir(outPath)
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if c.opts.Simulate {
			fmt.Fprintf(c.Stdout, "simulate: would create directory %s\n", outDir)
		} else {
			c.Log.Printf("creating directory %s", outDir)
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", outDir, err)
			}
		}
	}

	if c.opts.Simulate {
		fmt.Fprintf(c.Stdout, "simulate: would write %s\n", outPath)
		report.Simulated++
		return nil
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	if err := c.serialize(ctx, f, stmts); err != nil {
		f.Close()
		return fmt.Errorf("failed to serialize %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	c.Log.Printf("wrote %s", outPath)
	report.Converted++
	return nil
}

// parse reads a single input file into statements via the RDF toolkit.
func (c *Converter) parse(ctx context.Context, path string, from formats.Format) ([]rdf.Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format, ok := rdf.ParseFormat(from.Name)
	if !ok {
		return nil, fmt.Errorf("unknown format %q", from.Name)
	}

	var stmts []rdf.Statement
	err = rdf.Parse(ctx, f, format, func(s rdf.Statement) error {
		stmts = append(stmts, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stmts, nil
}

// serialize writes statements in the output format via the RDF toolkit.
func (c *Converter) serialize(ctx context.Context, w io.Writer, stmts []rdf.Statement) error {
	if c.opts.To.Name == "jsonld" && c.opts.JSONLDContext != "" {
		return c.serializeCompacted(ctx, w, stmts)
	}
	return writeStatements(ctx, w, c.opts.To, stmts)
}

// writeStatements streams statements through a toolkit writer. The
// toolkit's triple encoders drop graph names, so writing named graphs to
// a non-quad format is refused here instead.
func writeStatements(ctx context.Context, w io.Writer, to formats.Format, stmts []rdf.Statement) error {
	if !to.Quads {
		for _, s := range stmts {
			if s.G != nil {
				return fmt.Errorf("format %s does not support named graphs", to.Name)
			}
		}
	}

	format, ok := rdf.ParseFormat(to.Name)
	if !ok {
		return fmt.Errorf("unknown format %q", to.Name)
	}

	wr, err := rdf.NewWriter(w, format, rdf.OptContext(ctx))
	if err != nil {
		return err
	}
	for _, s := range stmts {
		if err := wr.Write(s); err != nil {
			wr.Close()
			return err
		}
	}
	if err := wr.Flush(); err != nil {
		wr.Close()
		return err
	}
	return wr.Close()
}

// serializeCompacted emits JSON-LD and compacts it against the configured
// context document.
func (c *Converter) serializeCompacted(ctx context.Context, w io.Writer, stmts []rdf.Statement) error {
	var buf bytes.Buffer
	if err := writeStatements(ctx, &buf, c.opts.To, stmts); err != nil {
		return err
	}

	var doc interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return fmt.Errorf("failed to decode serialized JSON-LD: %w", err)
	}

	ctxData, err := os.ReadFile(c.opts.JSONLDContext)
	if err != nil {
		return fmt.Errorf("failed to read JSON-LD context: %w", err)
	}
	var ctxDoc interface{}
	if err := json.Unmarshal(ctxData, &ctxDoc); err != nil {
		return fmt.Errorf("failed to decode JSON-LD context: %w", err)
	}

	compacted, err := ld.NewJsonLdProcessor().Compact(doc, ctxDoc, ld.NewJsonLdOptions(""))
	if err != nil {
		return fmt.Errorf("failed to compact JSON-LD: %w", err)
	}

	out, err := json.MarshalIndent(compacted, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// confirmOverwrite asks the user whether an existing output file may be
// replaced. Only "y" or "yes" (case-insensitive) confirm.
func (c *Converter) confirmOverwrite(path string) bool {
	if c.promptRd == nil {
		c.promptRd = bufio.NewReader(c.PromptIn)
	}
	fmt.Fprintf(c.PromptOut, "Overwrite %s? (y/n): ", path)
	line, err := c.promptRd.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
