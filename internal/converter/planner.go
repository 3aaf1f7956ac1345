package converter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputPath computes where the converted form of inputFile is written.
//
// inputRoot is the directory argument the file was collected from, or ""
// when the file was named directly on the command line. Unless noTree is
// set, the file's position relative to inputRoot is mirrored under
// outputDir; with noTree (or for directly named files) everything lands
// flat in outputDir. The output file name is the input name with its
// extension replaced by outputExt.
func OutputPath(outputDir, inputRoot, inputFile, outputExt string, noTree bool) (string, error) {
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory: %w", err)
	}

	rel := ""
	if !noTree && inputRoot != "" {
		rel, err = filepath.Rel(inputRoot, filepath.Dir(inputFile))
		if err != nil {
			return "", fmt.Errorf("failed to relate %s to %s: %w", inputFile, inputRoot, err)
		}
		if rel == "." {
			rel = ""
		}
	}

	base := filepath.Base(inputFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(absOut, rel, stem+outputExt), nil
}
