package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-htmlfmt/internal/config"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// supportedShells lists shells in the order they are documented.
var supportedShells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file matching a glob
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string // empty if none
	Type     flagType
	Desc     string
	Values   []string // enum values
	FileGlob string   // comma-separated globs for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed positional words, such as config subcommands
	TakesFiles  bool
	FilePattern string // comma-separated globs for file arguments
}

// completionMeta holds what a FlagSet cannot express: enum values, globs and
// directory-only flags. Names, types and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"declarations": {Values: []string{"keep", "drop"}},
	"stages":       {Values: []string{"all", "void-tags", "styles", "indent"}},
	"config":       {FileGlob: "*.yaml,*.yml"},
	"output":       {IsDir: true},
}

// extractFlags converts a FlagSet into completion definitions.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// htmlFilePattern turns the default extensions into a glob list.
func htmlFilePattern() string {
	globs := make([]string, len(config.DefaultExtensions))
	for i, ext := range config.DefaultExtensions {
		globs[i] = "*" + ext
	}
	return strings.Join(globs, ",")
}

// getCommands returns the command registry for completion.
// Flags come from the same FlagSets the parsers use.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "format",
			Desc:        "Format HTML files or stdin (default)",
			Flags:       extractFlags(newFormatFlagSet(&formatFlags{})),
			TakesFiles:  true,
			FilePattern: htmlFilePattern(),
		},
		{
			Name:        "check",
			Desc:        "Report unclosed and unmatched tags",
			Flags:       extractFlags(newCheckFlagSet(&checkFlags{})),
			TakesFiles:  true,
			FilePattern: htmlFilePattern(),
		},
		{
			Name:  "config",
			Desc:  "Print default or effective configuration",
			Flags: extractFlags(newConfigFlagSet(&commonFlags{})),
			Args:  []string{"init", "show"},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"format", "check", "config", "version", "completion"},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: supportedShells,
		},
	}
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	commands := getCommands()

	switch shell {
	case ShellBash:
		return writeScript(w, bashScript(commands))
	case ShellZsh:
		return writeScript(w, zshScript(commands))
	case ShellFish:
		return writeScript(w, fishScript(commands))
	case ShellPowerShell:
		return writeScript(w, powerShellScript(commands))
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

func writeScript(w io.Writer, script string) error {
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlfmt completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(htmlfmt completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(htmlfmt completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    htmlfmt completion fish > ~/.config/fish/completions/htmlfmt.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    htmlfmt completion powershell | Out-String | Invoke-Expression")
}
