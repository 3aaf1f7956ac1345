// Package validation provides parse-only checking of RDF documents.
//
// A document is valid when the RDF toolkit parses it to the end. JSON-LD
// documents additionally pass a structural check and a json-gold expansion
// check, which catches context errors the plain parse can miss.
package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/piprate/json-gold/ld"

	"github.com/rdftools/rdfconvert/internal/formats"
)

// Validator checks RDF documents without converting them.
type Validator struct {
	// jsonldProcessor validates JSON-LD semantic correctness.
	jsonldProcessor *ld.JsonLdProcessor
}

// ValidationError represents a single validation error.
type ValidationError struct {
	// Field names the part of the document that failed, or "document"
	// for whole-file errors.
	Field string `json:"field"`

	// Message describes why the validation failed.
	Message string `json:"message"`
}

// ValidationResult represents the complete result of validating one file.
type ValidationResult struct {
	// Valid is true if validation passed.
	Valid bool `json:"valid"`

	// Statements is the number of statements parsed.
	Statements int `json:"statements"`

	// Errors contains all validation errors found (empty if Valid).
	Errors []ValidationError `json:"errors,omitempty"`
}

// New creates a Validator ready to check files in any supported format.
func New() *Validator {
	return &Validator{
		jsonldProcessor: ld.NewJsonLdProcessor(),
	}
}

// ValidateFile parses the file in the given format and reports the result.
// When format is nil it is detected from the file.
func (v *Validator) ValidateFile(ctx context.Context, path string, format *formats.Format) (*ValidationResult, error) {
	if format == nil {
		detected, err := formats.DetectFile(path)
		if err != nil {
			return nil, err
		}
		format = &detected
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rdfFormat, ok := rdf.ParseFormat(format.Name)
	if !ok {
		return nil, fmt.Errorf("unknown format %q", format.Name)
	}

	statements := 0
	err = rdf.Parse(ctx, f, rdfFormat, func(rdf.Statement) error {
		statements++
		return nil
	})
	if err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{Field: "document", Message: err.Error()},
			},
		}, nil
	}

	result := &ValidationResult{Valid: true, Statements: statements}

	if format.Name == "jsonld" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		result.Errors = v.validateJSONLD(data)
		result.Valid = len(result.Errors) == 0
	}

	return result, nil
}

// validateJSONLD checks JSON-LD document structure and expandability.
func (v *Validator) validateJSONLD(data []byte) []ValidationError {
	var errors []ValidationError

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		errors = append(errors, ValidationError{
			Field:   "document",
			Message: fmt.Sprintf("Invalid JSON: %v", err),
		})
		return errors
	}

	if docMap, ok := doc.(map[string]interface{}); ok {
		_, hasContext := docMap["@context"]
		_, hasGraph := docMap["@graph"]
		_, hasID := docMap["@id"]
		if !hasContext && !hasGraph && !hasID {
			errors = append(errors, ValidationError{
				Field:   "@context",
				Message: "Missing @context field (required for JSON-LD)",
			})
		}
	}

	if _, err := v.jsonldProcessor.Expand(doc, ld.NewJsonLdOptions("")); err != nil {
		errors = append(errors, ValidationError{
			Field:   "document",
			Message: fmt.Sprintf("JSON-LD expansion failed: %v", err),
		})
	}

	return errors
}
