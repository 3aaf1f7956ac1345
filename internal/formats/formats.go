// Package formats maps user-facing format names onto the codecs of the
// underlying RDF toolkit.
//
// The tool itself owns no serialization logic. This package only decides
// which codec a name like "ttl" or "application/rdf+xml" refers to, which
// file extensions belong to each format, and which format an unlabeled
// input file is most likely in.
package formats

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format describes one RDF serialization supported by the toolkit.
type Format struct {
	// Name is the canonical format name, identical to the codec name of
	// the RDF toolkit (github.com/geoknoesis/rdf-go).
	Name string

	// InputExts are the file extensions matched when collecting files
	// from input directories.
	InputExts []string

	// OutputExt is the default extension of written output files.
	OutputExt string

	// MediaTypes are the media types accepted for this format when
	// sniffing file content.
	MediaTypes []string

	// Quads is true for formats that can carry named graphs. Writing
	// statements with a named graph to a non-quad format is an error.
	Quads bool
}

// registry holds every format the toolkit can both parse and serialize.
// Serializations the toolkit has no codec for (TriX, RDFa, RDF/JSON) are
// absent; naming one yields an unknown-format error.
var registry = map[string]Format{
	"turtle": {
		Name:       "turtle",
		InputExts:  []string{".ttl", ".n3"},
		OutputExt:  ".ttl",
		MediaTypes: []string{"text/turtle"},
	},
	"ntriples": {
		Name:       "ntriples",
		InputExts:  []string{".nt"},
		OutputExt:  ".nt",
		MediaTypes: []string{"application/n-triples"},
	},
	"nquads": {
		Name:       "nquads",
		InputExts:  []string{".nq"},
		OutputExt:  ".nq",
		MediaTypes: []string{"application/n-quads"},
		Quads:      true,
	},
	"trig": {
		Name:       "trig",
		InputExts:  []string{".trig"},
		OutputExt:  ".trig",
		MediaTypes: []string{"application/trig"},
		Quads:      true,
	},
	"rdfxml": {
		Name:       "rdfxml",
		InputExts:  []string{".rdf", ".xml", ".owl"},
		OutputExt:  ".xml",
		MediaTypes: []string{"application/rdf+xml", "application/xml", "text/xml"},
	},
	"jsonld": {
		Name:       "jsonld",
		InputExts:  []string{".jsonld", ".json-ld", ".json"},
		OutputExt:  ".jsonld",
		MediaTypes: []string{"application/ld+json", "application/json"},
	},
}

// aliases accepts the spellings in common usage.
// "n3" maps to turtle: the toolkit round-trips the shared subset.
// "pretty-xml" maps to rdfxml: the toolkit has a single RDF/XML encoder.
var aliases = map[string]string{
	"ttl":                 "turtle",
	"n3":                  "turtle",
	"text/turtle":         "turtle",
	"nt":                  "ntriples",
	"n-triples":           "ntriples",
	"nq":                  "nquads",
	"n-quads":             "nquads",
	"xml":                 "rdfxml",
	"rdf":                 "rdfxml",
	"pretty-xml":          "rdfxml",
	"rdf/xml":             "rdfxml",
	"application/rdf+xml": "rdfxml",
	"json-ld":             "jsonld",
	"json":                "jsonld",
	"application/ld+json": "jsonld",
}

// Names returns the canonical format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every supported format, sorted by canonical name.
func All() []Format {
	names := Names()
	all := make([]Format, 0, len(names))
	for _, name := range names {
		all = append(all, registry[name])
	}
	return all
}

// Aliases returns the accepted alternative spellings of a canonical
// format name, sorted.
func Aliases(name string) []string {
	var out []string
	for alias, canonical := range aliases {
		if canonical == name {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Parse resolves a user-supplied format name or alias.
func Parse(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	f, ok := registry[key]
	if !ok {
		return Format{}, fmt.Errorf("unknown format %q (supported: %s)",
			name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// DetectPath infers a format from a file extension.
func DetectPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Format{}, false
	}
	// .json-ld carries two dots; filepath.Ext sees only the last one.
	if strings.HasSuffix(strings.ToLower(path), ".json-ld") {
		return registry["jsonld"], true
	}
	for _, name := range Names() {
		f := registry[name]
		for _, known := range f.InputExts {
			if ext == known {
				return f, true
			}
		}
	}
	return Format{}, false
}

// DetectFile infers the format of an input file, first from its extension
// and then by sniffing its content. Sniffing can only distinguish the
// JSON- and XML-based serializations; plain-text formats need an extension
// or an explicit flag.
func DetectFile(path string) (Format, error) {
	if f, ok := DetectPath(path); ok {
		return f, nil
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return Format{}, fmt.Errorf("failed to detect format of %s: %w", path, err)
	}
	for _, name := range Names() {
		f := registry[name]
		for _, media := range f.MediaTypes {
			if mtype.Is(media) {
				return f, nil
			}
		}
	}
	return Format{}, fmt.Errorf("cannot detect RDF format of %s (content type %s); use --from",
		path, mtype.String())
}

// MatchesExt reports whether the file name ends with one of the given
// extensions. Matching is case-insensitive.
func MatchesExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
