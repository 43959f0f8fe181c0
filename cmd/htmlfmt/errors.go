package main

import "errors"

// Sentinel errors for CLI operations.
var (
	// Precondition failures: nothing is read or written.
	ErrNoInput              = errors.New("no input specified")
	ErrUnknownCommand       = errors.New("unknown command")
	ErrInvalidFlags         = errors.New("invalid flags")
	ErrInvalidWorkerCount   = errors.New("invalid worker count")
	ErrInvalidStages        = errors.New("invalid stages")
	ErrConflictingModes     = errors.New("--check and --write cannot be combined")
	ErrWriteStdin           = errors.New("--write cannot be used with standard input")
	ErrStdinWithPaths       = errors.New("'-' (stdin) cannot be combined with other paths")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrOutputCollision      = errors.New("several inputs map to the same output file")

	// Empty result: the input resolved to nothing to format.
	ErrNoHTMLFiles = errors.New("no HTML files found")

	// I/O failures.
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")

	// Findings reported by --check and the check command.
	ErrUnformatted = errors.New("files are not formatted")
	ErrUnbalanced  = errors.New("unbalanced tags found")

	// Batch summary when more than one file failed.
	ErrBatchFailed = errors.New("formatting failed")
)
