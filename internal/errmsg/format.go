// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Collection operations
	OpCollectionLoad   Op = "load collection"
	OpRecordAdd        Op = "add record"
	OpRecordDelete     Op = "delete record"
	OpRecordUpdate     Op = "update record"
	OpVisibilityToggle Op = "toggle record visibility"

	// Import operations
	OpImportFolders Op = "import record folders"
	OpImportTags    Op = "read audio tags"

	// View state operations
	OpViewStateLoad Op = "load view state"
	OpViewStateSave Op = "save view state"
	OpPresetLoad    Op = "load view presets"
	OpPresetSave    Op = "save view preset"
	OpPresetDelete  Op = "delete view preset"

	// Listen log operations
	OpListenLog     Op = "log listen"
	OpListenResolve Op = "load listen stats"

	// Configuration
	OpConfigLoad Op = "load configuration"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
