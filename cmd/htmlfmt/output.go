package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// painter colors status markers. Each command builds its own so --no-color
// never touches the package-level color state.
type painter struct {
	failed *color.Color
	ok     *color.Color
	dim    *color.Color
}

func newPainter(noColor bool) *painter {
	p := &painter{
		failed: color.New(color.FgRed, color.Bold),
		ok:     color.New(color.FgGreen),
		dim:    color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{p.failed, p.ok, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

// ResultSummary counts outcomes across a batch.
type ResultSummary struct {
	Changed   int
	Unchanged int
	Failed    int
}

// countResults tallies changed, unchanged and failed files.
func countResults(results []FormatResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Changed:
			summary.Changed++
		default:
			summary.Unchanged++
		}
	}
	return summary
}

// reportResults prints per-file status and returns the command error.
// Batch failures always reach stderr, even with --quiet. A lone failure is
// returned as is and printed once by the caller.
func reportResults(results []FormatResult, params *formatParams, env *Environment) error {
	p := newPainter(params.noColor)
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) == 1 {
				continue
			}
			fmt.Fprintf(env.Stderr, "%s %s: %v\n", p.failed.Sprint("FAILED"), r.InputPath, r.Err)
			continue
		}

		switch params.mode {
		case modeStdout:
			_, _ = io.WriteString(env.Stdout, r.Output)
		case modeCheck:
			if r.Changed {
				fmt.Fprintln(env.Stdout, r.InputPath)
			} else if params.verbose {
				fmt.Fprintf(env.Stderr, "%s %s\n", p.dim.Sprint("ok"), r.InputPath)
			}
		default:
			printWriteStatus(env.Stdout, p, r, params)
		}
	}

	if !params.quiet && params.mode != modeStdout && params.mode != modeCheck && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\nFormatted %d file(s), %d unchanged, %d failed\n",
			summary.Changed, summary.Unchanged, summary.Failed)
	}

	switch {
	case summary.Failed == 1 && len(results) == 1:
		return results[0].Err
	case summary.Failed > 0:
		return fmt.Errorf("%w: %d of %d file(s)", ErrBatchFailed, summary.Failed, len(results))
	case params.mode == modeCheck && summary.Changed > 0:
		return fmt.Errorf("%w: %d file(s)", ErrUnformatted, summary.Changed)
	}
	return nil
}

// printWriteStatus prints the line for a file written in place or to an output path.
func printWriteStatus(w io.Writer, p *painter, r FormatResult, params *formatParams) {
	if params.quiet {
		return
	}

	target := r.OutputPath
	if target == "" {
		target = r.InputPath
	}

	switch {
	case params.mode == modeWrite && !r.Changed:
		if params.verbose {
			fmt.Fprintf(w, "%s %s\n", p.dim.Sprint("Unchanged"), r.InputPath)
		}
	case params.verbose:
		fmt.Fprintf(w, "%s %s -> %s (%v)\n", p.ok.Sprint("Formatted"), r.InputPath, target, r.Duration.Round(time.Millisecond))
	default:
		fmt.Fprintf(w, "%s %s\n", p.ok.Sprint("Formatted"), target)
	}
}
