package main

import (
	"errors"
	"os"

	htmlfmt "github.com/alnah/go-htmlfmt"
	"github.com/alnah/go-htmlfmt/internal/config"
)

// Exit codes for the htmlfmt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Formatted, or nothing to change
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied, nothing to format
	ExitFindings = 4 // --check found unformatted files, or check found unbalanced tags
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Findings (exit 4)
	if errors.Is(err, ErrUnformatted) ||
		errors.Is(err, ErrUnbalanced) {
		return ExitFindings
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoHTMLFiles) ||
		errors.Is(err, htmlfmt.ErrInputTooLarge) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, htmlfmt.ErrInvalidIndentWidth) ||
		errors.Is(err, htmlfmt.ErrInvalidDeclarationPolicy) ||
		errors.Is(err, htmlfmt.ErrNoStages) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidStages) ||
		errors.Is(err, ErrConflictingModes) ||
		errors.Is(err, ErrWriteStdin) ||
		errors.Is(err, ErrStdinWithPaths) ||
		errors.Is(err, ErrUnsupportedExtension) ||
		errors.Is(err, ErrOutputCollision) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
