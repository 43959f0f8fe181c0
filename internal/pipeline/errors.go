package pipeline

import "errors"

// Sentinel errors for stage configuration.
var (
	ErrInvalidDeclarationPolicy = errors.New("invalid declaration policy")
	ErrInvalidIndentWidth       = errors.New("invalid indent width")
)
