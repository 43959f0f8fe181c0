package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	htmlfmt "github.com/alnah/go-htmlfmt"
	"github.com/alnah/go-htmlfmt/internal/config"
)

// checkResult holds balance issues for one input.
type checkResult struct {
	Path   string
	Issues []htmlfmt.Issue
	Err    error
}

// runCheck reports unbalanced tags. It never writes files.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	flags, paths, err := parseCheckFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if flags.common.help {
		printCheckUsage(env.Stdout)
		return nil
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadEffectiveConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	if flags.set["workers"] {
		cfg.Workers = flags.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	useStdin, err := splitStdin(paths)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		switch {
		case cfg.Input.DefaultDir != "":
			paths = []string{cfg.Input.DefaultDir}
		case env.StdinIsTerminal():
			return ErrNoInput
		default:
			useStdin = true
		}
	}

	var results []checkResult
	if useStdin {
		content, err := io.ReadAll(io.LimitReader(env.Stdin, htmlfmt.MaxInputSize+1))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		results = []checkResult{checkContent(stdinName, content)}
	} else {
		exts := cfg.Input.Extensions
		if len(exts) == 0 {
			exts = config.DefaultExtensions
		}
		files, err := discoverFiles(paths, exts, "")
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return &noFilesError{path: strings.Join(paths, ", "), extensions: exts}
		}
		results = checkBatch(ctx, files, resolveWorkers(cfg.Workers))
	}

	noColor := flags.common.noColor || env.Getenv("NO_COLOR") != ""
	return reportCheck(results, flags.common.verbose, newPainter(noColor), env)
}

// checkBatch checks files concurrently. Results keep the order of files.
func checkBatch(ctx context.Context, files []FileToFormat, workers int) []checkResult {
	results := make([]checkResult, len(files))

	forEach(ctx, len(files), workers,
		func(i int) {
			path := files[i].InputPath
			content, err := os.ReadFile(path) // #nosec G304 -- discovered path
			if err != nil {
				results[i] = checkResult{Path: path, Err: fmt.Errorf("%w: %v", ErrReadInput, err)}
				return
			}
			results[i] = checkContent(path, content)
		},
		func(i int, err error) {
			results[i] = checkResult{Path: files[i].InputPath, Err: err}
		},
	)

	return results
}

// checkContent runs the balance check on one input.
func checkContent(path string, content []byte) checkResult {
	if len(content) > htmlfmt.MaxInputSize {
		return checkResult{Path: path, Err: fmt.Errorf("%w: %s", htmlfmt.ErrInputTooLarge, path)}
	}
	issues, err := htmlfmt.CheckBalance(string(content))
	return checkResult{Path: path, Issues: issues, Err: err}
}

// reportCheck prints issues as "path: line N: message" and returns the command error.
func reportCheck(results []checkResult, verbose bool, p *painter, env *Environment) error {
	var failed, unbalanced int

	for _, r := range results {
		if r.Err != nil {
			failed++
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "%s %s: %v\n", p.failed.Sprint("FAILED"), r.Path, r.Err)
			}
			continue
		}
		if len(r.Issues) == 0 {
			if verbose {
				fmt.Fprintf(env.Stderr, "%s %s\n", p.dim.Sprint("ok"), r.Path)
			}
			continue
		}
		unbalanced++
		for _, issue := range r.Issues {
			fmt.Fprintf(env.Stdout, "%s: %s\n", r.Path, issue)
		}
	}

	switch {
	case failed == 1 && len(results) == 1:
		return results[0].Err
	case failed > 0:
		return fmt.Errorf("%w: %d of %d file(s)", ErrBatchFailed, failed, len(results))
	case unbalanced > 0:
		return fmt.Errorf("%w in %d file(s)", ErrUnbalanced, unbalanced)
	}
	return nil
}
