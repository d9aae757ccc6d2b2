package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// InputFormat identifies the encoding of a task export.
type InputFormat string

const (
	InputJSON InputFormat = "json" // TaskWarrior `task export`
	InputYAML InputFormat = "yaml" // YAML list of tasks
	InputHCL  InputFormat = "hcl"  // HCL task blocks
)

// ParseInputFormat parses a user supplied input format name.
func ParseInputFormat(s string) (InputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return InputJSON, nil
	case "yaml", "yml":
		return InputYAML, nil
	case "hcl":
		return InputHCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInputFormat, s)
	}
}

// DetectInputFormat guesses the input format from a file name.
// Stdin ("" or "-") and unknown extensions default to JSON.
func DetectInputFormat(path string) InputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return InputYAML
	case ".hcl":
		return InputHCL
	default:
		return InputJSON
	}
}
