package status

import (
	"fmt"
)

// FileFormatter defines how file results should be rendered for the user
type FileFormatter interface {
	// FormatResult formats the outcome line for a file
	FormatResult(r FileResult) string

	// FormatProbe formats the diagnostic lines for a file left unchanged
	FormatProbe(path, name, old string, stillPresent bool) []string
}

// DefaultFileFormatter renders plain, one line per file output
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatResult formats the outcome line for a file
func (f *DefaultFileFormatter) FormatResult(r FileResult) string {
	switch r.Status {
	case StatusUpdated:
		return fmt.Sprintf("Updated %s", r.Path)
	case StatusUnchanged:
		return fmt.Sprintf("No changes for %s", r.Path)
	case StatusNotFound:
		return fmt.Sprintf("File not found: %s", r.Path)
	case StatusError:
		return fmt.Sprintf("Error processing %s: %v", r.Path, r.Err)
	default:
		return fmt.Sprintf("Skipped %s", r.Path)
	}
}

// FormatProbe formats the diagnostic lines for a file left unchanged.
// name is the human readable name of the pattern, old the literal pattern.
func (f *DefaultFileFormatter) FormatProbe(path, name, old string, stillPresent bool) []string {
	lines := []string{
		fmt.Sprintf("Checked %s, no '%s' found or already replaced.", path, name),
	}
	if stillPresent {
		lines = append(lines, fmt.Sprintf("WARNING: %s found in %s but replace failed?", old, path))
	}
	return lines
}
