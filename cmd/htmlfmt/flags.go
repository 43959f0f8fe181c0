package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	noColor bool
	help    bool
}

// layoutFlags holds formatting pipeline flags.
type layoutFlags struct {
	indent       int
	declarations string
	stages       string
}

// formatFlags holds all flags for the format command.
type formatFlags struct {
	common  commonFlags
	layout  layoutFlags
	output  string
	write   bool
	check   bool
	workers int

	// set records which flags were given explicitly, so zero values
	// such as --indent 0 still override the config.
	set map[string]bool
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common  commonFlags
	workers int
	set     map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file status and timing")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// addLayoutFlags adds formatting pipeline flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.IntVarP(&f.indent, "indent", "i", 0, "spaces per nesting level (0-16, default 4)")
	fs.StringVar(&f.declarations, "declarations", "", "style declarations without ':': keep, drop")
	fs.StringVar(&f.stages, "stages", "", "stages to run: void-tags,styles,indent or all")
}

// collectSet returns the names of flags explicitly set on the command line.
func collectSet(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// newFormatFlagSet registers format command flags into f.
// Shared by parsing and completion so both see the same flags.
func newFormatFlagSet(f *formatFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVarP(&f.write, "write", "w", false, "rewrite files in place")
	fs.BoolVarP(&f.check, "check", "l", false, "list files whose formatting differs, write nothing")
	fs.IntVarP(&f.workers, "workers", "j", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)

	return fs
}

// newCheckFlagSet registers check command flags into f.
func newCheckFlagSet(f *checkFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.IntVarP(&f.workers, "workers", "j", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	return fs
}

// newConfigFlagSet registers config command flags into f.
// Output flags do not apply: config only prints YAML.
func newConfigFlagSet(f *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	return fs
}

// parseFormatFlags parses format command flags and returns positional args.
func parseFormatFlags(args []string, usageOut io.Writer) (*formatFlags, []string, error) {
	f := &formatFlags{}
	fs := newFormatFlagSet(f)
	fs.SetOutput(usageOut)
	fs.Usage = func() { printFormatUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.set = collectSet(fs)
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, usageOut io.Writer) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newCheckFlagSet(f)
	fs.SetOutput(usageOut)
	fs.Usage = func() { printCheckUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.set = collectSet(fs)
	return f, fs.Args(), nil
}

// parseConfigFlags parses flags for the config command.
func parseConfigFlags(args []string, usageOut io.Writer) (*commonFlags, []string, error) {
	f := &commonFlags{}
	fs := newConfigFlagSet(f)
	fs.SetOutput(usageOut)
	fs.Usage = func() { printConfigUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
