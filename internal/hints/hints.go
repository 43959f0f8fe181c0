// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound suggests --config and the user-level location searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/htmlfmt.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(toSlash(p), "go-htmlfmt/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoInput explains the ways to supply input.
func ForNoInput() string {
	return format("pass a file or directory, use '-' for stdin, or set input.defaultDir")
}

// ForNoFiles lists the extensions that were searched.
func ForNoFiles(extensions []string) string {
	if len(extensions) == 0 {
		return ""
	}
	return format("searched for " + strings.Join(extensions, ", ") + "; add more with input.extensions")
}

// ForInputTooLarge suggests splitting oversized documents.
func ForInputTooLarge() string {
	return format("split the document or format fragments separately")
}

// ForOutputCollision suggests ways to keep outputs apart.
func ForOutputCollision() string {
	return format("pass the common parent directory so outputs mirror the input tree, or format the inputs separately")
}

// ForUnknownStage lists valid stage names.
func ForUnknownStage() string {
	return format("valid stages: void-tags, styles, indent, all")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// toSlash normalizes separators so the match works for Windows paths too.
func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
