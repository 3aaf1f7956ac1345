// Package rdfconvert converts RDF data between serialization formats.
//
// # Overview
//
// rdfconvert is a command-line utility that reads RDF graphs in one
// serialization and re-emits them in another. It can convert individual
// files or whole directory trees at once, with or without preserving the
// directory structure.
//
// Parsing and serialization are delegated to an RDF toolkit
// (github.com/geoknoesis/rdf-go); rdfconvert owns format-name mapping,
// input file collection, and output path planning.
//
// # Supported Formats
//
// Turtle, N-Triples, N-Quads, TriG, RDF/XML, and JSON-LD, under their
// common aliases (ttl, nt, nq, xml, json-ld, ...). Run "rdfconvert
// formats" for the extension tables.
//
// # Usage
//
//	rdfconvert convert --from ttl --to xml ontology.ttl
//	rdfconvert convert --to jsonld -o out/ data.ttl
//	rdfconvert convert --from xml --to ttl -R -o converted/ ontologies/
//	rdfconvert validate ontology.ttl
package rdfconvert
