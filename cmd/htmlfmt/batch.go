package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	htmlfmt "github.com/alnah/go-htmlfmt"
	"github.com/alnah/go-htmlfmt/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// FormatResult holds the outcome of a single file.
type FormatResult struct {
	InputPath  string
	OutputPath string
	Output     string // rendered output, kept only in stdout mode
	Changed    bool   // rendered output differs from the input bytes
	Err        error
	Duration   time.Duration
}

// formatBatch formats files concurrently. Results keep the order of files.
func formatBatch(ctx context.Context, files []FileToFormat, params *formatParams, env *Environment) []FormatResult {
	results := make([]FormatResult, len(files))

	forEach(ctx, len(files), params.workers,
		func(i int) {
			results[i] = formatFile(ctx, params, files[i], env)
		},
		func(i int, err error) {
			results[i] = FormatResult{InputPath: files[i].InputPath, Err: err}
		},
	)

	return results
}

// formatFile reads one file and hands it to formatContent.
func formatFile(ctx context.Context, params *formatParams, f FileToFormat, env *Environment) FormatResult {
	start := env.Now()

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return FormatResult{
			InputPath: f.InputPath,
			Err:       fmt.Errorf("%w: %v", ErrReadInput, err),
			Duration:  env.Now().Sub(start),
		}
	}

	return formatContent(ctx, params, f, content, env)
}

// formatContent formats content and delivers it according to params.mode.
func formatContent(ctx context.Context, params *formatParams, f FileToFormat, content []byte, env *Environment) FormatResult {
	start := env.Now()
	result := FormatResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	done := func(err error) FormatResult {
		result.Err = err
		result.Duration = env.Now().Sub(start)
		return result
	}

	formatted, err := params.formatter.Format(ctx, htmlfmt.Input{HTML: string(content), Name: f.InputPath})
	if err != nil {
		return done(err)
	}

	rendered := render(formatted.HTML)
	result.Changed = rendered != string(content)

	switch params.mode {
	case modeCheck:
		return done(nil)

	case modeWrite:
		if !result.Changed {
			return done(nil)
		}
		result.OutputPath = f.InputPath
		if err := fileutil.WriteFileAtomic(f.InputPath, []byte(rendered), filePermissions); err != nil {
			return done(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		return done(nil)

	case modeOutput:
		if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
			return done(fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err))
		}
		if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(rendered), filePermissions); err != nil {
			return done(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		return done(nil)

	default:
		result.Output = rendered
		return done(nil)
	}
}
