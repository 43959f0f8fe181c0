package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlfmt [command] [flags] [path ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  format      Format HTML files or stdin (default)")
	fmt.Fprintln(w, "  check       Report unclosed and unmatched tags")
	fmt.Fprintln(w, "  config      Print default or effective configuration")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'htmlfmt help <command>' for details on a specific command.")
}

// printFormatUsage prints usage for the format command.
func printFormatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlfmt [format] [flags] [path ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format HTML: close void tags, normalize style attributes, re-indent.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path     File or directory; '-' or no path reads stdin")
	fmt.Fprintln(w, "           (no path uses input.defaultDir when configured)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (default: stdout)")
	fmt.Fprintln(w, "  -w, --write               Rewrite files in place")
	fmt.Fprintln(w, "  -l, --check               List files whose formatting differs (exit 4)")
	fmt.Fprintln(w, "  -j, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formatting:")
	fmt.Fprintln(w, "  -i, --indent <n>          Spaces per nesting level (0-16, default 4)")
	fmt.Fprintln(w, "      --declarations <s>    Style declarations without ':': keep, drop")
	fmt.Fprintln(w, "      --stages <list>       void-tags,styles,indent or all")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file status and timing")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTMLFMT_CONFIG, HTMLFMT_INDENT, HTMLFMT_DECLARATIONS, HTMLFMT_STAGES,")
	fmt.Fprintln(w, "  HTMLFMT_WORKERS, HTMLFMT_INPUT_DIR, HTMLFMT_OUTPUT_DIR")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlfmt check [flags] [path ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report unclosed and unmatched tags using a full HTML tokenizer.")
	fmt.Fprintln(w, "Files are never modified. Exits 4 when problems are found.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -j, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Also list files without problems")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlfmt config <init|show> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  init     Print the default configuration as YAML")
	fmt.Fprintln(w, "  show     Print the effective configuration (file + environment)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "format":
		printFormatUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: htmlfmt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: htmlfmt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
