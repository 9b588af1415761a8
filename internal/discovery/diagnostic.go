// SPDX-License-Identifier: MPL-2.0

package discovery

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"

	// CodeUnknownGroup marks a top-level directory that is not a known group.
	CodeUnknownGroup = "unknown_group"
	// CodeUngroupedFile marks a file directly under the tree root.
	CodeUngroupedFile = "ungrouped_file"
	// CodeEmptyGroup marks a known group without any table.
	CodeEmptyGroup = "empty_group"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// Diagnostic is a structured discovery finding that is returned to
	// callers (rather than written to stderr) for consistent rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g., "unknown_group").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the slash-separated path relative to the tree root (optional).
		Path string
	}
)
