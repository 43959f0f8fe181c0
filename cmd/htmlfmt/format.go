package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	htmlfmt "github.com/alnah/go-htmlfmt"
	"github.com/alnah/go-htmlfmt/internal/config"
)

// outputMode selects where formatted HTML goes.
type outputMode int

const (
	modeStdout outputMode = iota // print to stdout
	modeOutput                   // write under an output file or directory
	modeWrite                    // rewrite inputs in place
	modeCheck                    // report differences, write nothing
)

// formatParams holds everything resolved from flags, env and config.
type formatParams struct {
	formatter *htmlfmt.Formatter
	mode      outputMode
	outputDir string
	workers   int
	exts      []string
	quiet     bool
	verbose   bool
	noColor   bool
}

// runFormat formats files, directories or stdin.
func runFormat(ctx context.Context, args []string, env *Environment) error {
	flags, paths, err := parseFormatFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if flags.common.help {
		printFormatUsage(env.Stdout)
		return nil
	}
	if flags.check && flags.write {
		return ErrConflictingModes
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadEffectiveConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeFormatFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	params, err := buildFormatParams(flags, cfg, env)
	if err != nil {
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

	if useStdin {
		if params.mode == modeWrite {
			return ErrWriteStdin
		}
		// Only an explicit -o redirects stdin; a configured output
		// directory is meant for batches.
		if !flags.set["output"] && params.mode == modeOutput {
			params.mode = modeStdout
			params.outputDir = ""
		}
		return formatStdin(ctx, params, env)
	}

	files, err := discoverFiles(paths, params.exts, params.outputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return &noFilesError{path: strings.Join(paths, ", "), extensions: params.exts}
	}

	results := formatBatch(ctx, files, params, env)
	return reportResults(results, params, env)
}

// mergeFormatFlags overrides config values with flags given explicitly.
func mergeFormatFlags(f *formatFlags, cfg *config.Config) {
	if f.set["indent"] {
		cfg.Format.IndentWidth = f.layout.indent
	}
	if f.set["declarations"] {
		cfg.Format.Declarations = f.layout.declarations
	}
	if f.set["stages"] {
		cfg.Format.Stages = f.layout.stages
	}
	if f.set["workers"] {
		cfg.Workers = f.workers
	}
	if f.set["output"] {
		cfg.Output.DefaultDir = f.output
	}
}

// buildFormatParams turns the merged config into a Formatter and an output mode.
func buildFormatParams(f *formatFlags, cfg *config.Config, env *Environment) (*formatParams, error) {
	stages, err := htmlfmt.ParseStages(cfg.Format.Stages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStages, err)
	}
	policy, err := htmlfmt.ParseDeclarationPolicy(cfg.Format.Declarations)
	if err != nil {
		return nil, err
	}

	formatter, err := htmlfmt.NewFormatter(
		htmlfmt.WithIndentWidth(cfg.Format.IndentWidth),
		htmlfmt.WithDeclarationPolicy(policy),
		htmlfmt.WithStages(stages),
	)
	if err != nil {
		return nil, err
	}

	params := &formatParams{
		formatter: formatter,
		workers:   resolveWorkers(cfg.Workers),
		exts:      cfg.Input.Extensions,
		quiet:     f.common.quiet,
		verbose:   f.common.verbose,
		noColor:   f.common.noColor || env.Getenv("NO_COLOR") != "",
	}
	if len(params.exts) == 0 {
		params.exts = config.DefaultExtensions
	}

	switch {
	case f.check:
		params.mode = modeCheck
	case f.write:
		params.mode = modeWrite
	case cfg.Output.DefaultDir != "":
		params.mode = modeOutput
		params.outputDir = cfg.Output.DefaultDir
	default:
		params.mode = modeStdout
	}

	return params, nil
}

// formatStdin formats standard input. With -o the result goes to that file.
func formatStdin(ctx context.Context, params *formatParams, env *Environment) error {
	content, err := io.ReadAll(io.LimitReader(env.Stdin, htmlfmt.MaxInputSize+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	result := formatContent(ctx, params, FileToFormat{InputPath: stdinName, OutputPath: params.outputDir}, content, env)
	return reportResults([]FormatResult{result}, params, env)
}

// render returns file content for formatted output. Non-empty output
// ends with a newline so files stay POSIX text files.
func render(formatted string) string {
	if formatted == "" {
		return ""
	}
	return formatted + "\n"
}
