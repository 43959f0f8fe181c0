package htmlfmt

import (
	"errors"

	"github.com/alnah/go-htmlfmt/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	ErrNoStages      = errors.New("at least one formatting stage must be enabled")

	// Option validation errors.
	ErrInvalidIndentWidth       = pipeline.ErrInvalidIndentWidth
	ErrInvalidDeclarationPolicy = pipeline.ErrInvalidDeclarationPolicy
)
