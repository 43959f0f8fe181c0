package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - getCommands: we test that the definitions follow the parser FlagSets, so a
//   flag added to the parser shows up in every script.
// These are acceptable gaps: we test observable behavior, not runtime shell behavior.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// findCommand returns the named command definition or fails the test.
func findCommand(t *testing.T, name string) commandDef {
	t.Helper()
	for _, c := range getCommands() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("command %q not found", name)
	return commandDef{}
}

// findFlag returns the named flag of cmd or fails the test.
func findFlag(t *testing.T, cmd commandDef, long string) flagDef {
	t.Helper()
	for _, f := range cmd.Flags {
		if f.Long == long {
			return f
		}
	}
	t.Fatalf("command %q has no --%s flag", cmd.Name, long)
	return flagDef{}
}

// generate returns the script for shell or fails the test.
func generate(t *testing.T, shell Shell) string {
	t.Helper()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, shell); err != nil {
		t.Fatalf("GenerateCompletion(%q) returned error: %v", shell, err)
	}
	return buf.String()
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash generates valid script",
			shell: ShellBash,
			wantContains: []string{
				"_htmlfmt_completions",
				"complete -F _htmlfmt_completions htmlfmt",
				"compgen",
				"check",
				"--output",
				"--declarations",
				"-o|--output)",
			},
		},
		{
			name:  "zsh generates valid script",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef htmlfmt",
				"_htmlfmt",
				"_arguments",
				"_describe",
				"compdef _htmlfmt htmlfmt",
				"'(-o --output)'{-o,--output}",
				`_files -g "*.(html|htm)"`,
				`_files -g "*.(yaml|yml)"`,
				"_files -/",
			},
		},
		{
			name:  "fish generates valid script",
			shell: ShellFish,
			wantContains: []string{
				"complete -c htmlfmt",
				"__fish_htmlfmt_needs_command",
				"__fish_htmlfmt_using_command",
				"-s o -l output",
				"-l output", // fish uses -l for long flags
				"__fish_complete_directories",
				"not __fish_seen_subcommand_from check config version help completion",
			},
		},
		{
			name:  "powershell generates valid script",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName htmlfmt",
				"CompletionResult",
				"'--output'",
				"'--stages' = @('all', 'void-tags', 'styles', 'indent')",
				"'config' = @('init', 'show')",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			output := generate(t, tt.shell)
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing expected content %q", want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_UnsupportedShell - Error handling for unknown shells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shell Shell
	}{
		{name: "empty shell", shell: ""},
		{name: "unknown shell", shell: "unknown"},
		{name: "sh is not supported", shell: "sh"},
		{name: "case matters", shell: "Bash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := GenerateCompletion(&buf, tt.shell)

			if !errors.Is(err, ErrUnsupportedShell) {
				t.Fatalf("GenerateCompletion(%q) error = %v, want ErrUnsupportedShell", tt.shell, err)
			}
			if buf.Len() != 0 {
				t.Errorf("unsupported shell wrote output: %q", buf.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_AllCommands - Every command reaches every script
// ---------------------------------------------------------------------------

func TestGenerateCompletion_AllCommands(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell} {
		t.Run(string(shell), func(t *testing.T) {
			t.Parallel()

			output := generate(t, shell)
			for _, cmd := range getCommands() {
				if !strings.Contains(output, cmd.Name) {
					t.Errorf("%s completion missing command %q", shell, cmd.Name)
				}
				for _, f := range cmd.Flags {
					if !strings.Contains(output, f.Long) {
						t.Errorf("%s completion missing flag --%s of %s", shell, f.Long, cmd.Name)
					}
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_EnumValues - Enum value completion
// ---------------------------------------------------------------------------

func TestGenerateCompletion_EnumValues(t *testing.T) {
	t.Parallel()

	enumValues := []string{"keep", "drop", "void-tags", "styles", "indent"}

	for _, shell := range []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell} {
		t.Run(string(shell), func(t *testing.T) {
			t.Parallel()

			output := generate(t, shell)
			for _, v := range enumValues {
				if !strings.Contains(output, v) {
					t.Errorf("%s completion missing enum value %q", shell, v)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_QuotesDescriptions - Quotes inside flag descriptions
// ---------------------------------------------------------------------------

func TestGenerateCompletion_QuotesDescriptions(t *testing.T) {
	t.Parallel()

	// --declarations is described as "style declarations without ':': keep, drop".
	tests := []struct {
		shell Shell
		want  string
	}{
		{ShellZsh, `without '\'':'\'': keep, drop`},
		{ShellFish, `without \':\': keep, drop`},
		{ShellPowerShell, "'--declarations' = @('keep', 'drop')"},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			output := generate(t, tt.shell)
			if !strings.Contains(output, tt.want) {
				t.Errorf("%s completion missing %q", tt.shell, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion - Command entry point
// ---------------------------------------------------------------------------

func TestRunCompletion_NoArgs(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("", true, nil)

	if err := runCompletion(nil, env); err != nil {
		t.Fatalf("runCompletion with no args returned error: %v", err)
	}

	output := stdout.String()
	for _, want := range []string{"Usage: htmlfmt completion", "bash", "zsh"} {
		if !strings.Contains(output, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestRunCompletion_ValidShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell        string
		wantContains string
	}{
		{"bash", "_htmlfmt_completions"},
		{"zsh", "#compdef htmlfmt"},
		{"fish", "complete -c htmlfmt"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv("", true, nil)

			if err := runCompletion([]string{tt.shell}, env); err != nil {
				t.Fatalf("runCompletion(%q) returned error: %v", tt.shell, err)
			}
			if !strings.Contains(stdout.String(), tt.wantContains) {
				t.Errorf("output missing expected %q", tt.wantContains)
			}
		})
	}
}

func TestRunCompletion_InvalidShell(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv("", true, nil)

	err := runCompletion([]string{"invalid"}, env)
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("runCompletion(invalid) error = %v, want ErrUnsupportedShell", err)
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command definitions
// ---------------------------------------------------------------------------

func TestGetCommands_ReturnsExpectedCommands(t *testing.T) {
	t.Parallel()

	commands := getCommands()

	want := []string{"format", "check", "config", "version", "help", "completion"}
	if len(commands) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(commands))
	}
	for i, name := range want {
		if commands[i].Name != name {
			t.Errorf("commands[%d] = %q, want %q", i, commands[i].Name, name)
		}
		if !isCommand(name) {
			t.Errorf("%q completes but is not dispatched as a command", name)
		}
	}
}

func TestGetCommands_FlagTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command   string
		long      string
		wantShort string
		wantType  flagType
	}{
		{"format", "output", "o", flagDir},
		{"format", "write", "w", flagBool},
		{"format", "check", "l", flagBool},
		{"format", "workers", "j", flagInt},
		{"format", "indent", "i", flagInt},
		{"format", "declarations", "", flagEnum},
		{"format", "stages", "", flagEnum},
		{"format", "config", "c", flagFile},
		{"format", "quiet", "q", flagBool},
		{"format", "no-color", "", flagBool},
		{"check", "workers", "j", flagInt},
		{"check", "config", "c", flagFile},
		{"config", "config", "c", flagFile},
	}

	for _, tt := range tests {
		t.Run(tt.command+" --"+tt.long, func(t *testing.T) {
			t.Parallel()

			f := findFlag(t, findCommand(t, tt.command), tt.long)
			if f.Short != tt.wantShort {
				t.Errorf("Short = %q, want %q", f.Short, tt.wantShort)
			}
			if f.Type != tt.wantType {
				t.Errorf("Type = %d, want %d", f.Type, tt.wantType)
			}
			if f.Desc == "" {
				t.Error("flag has no description")
			}
		})
	}
}

func TestGetCommands_Metadata(t *testing.T) {
	t.Parallel()

	format := findCommand(t, "format")
	if !format.TakesFiles || format.FilePattern != "*.html,*.htm" {
		t.Errorf("format TakesFiles=%v FilePattern=%q", format.TakesFiles, format.FilePattern)
	}

	stages := findFlag(t, format, "stages")
	if got := strings.Join(stages.Values, ","); got != "all,void-tags,styles,indent" {
		t.Errorf("stages values = %q", got)
	}

	if cfg := findFlag(t, format, "config"); cfg.FileGlob != "*.yaml,*.yml" {
		t.Errorf("config glob = %q", cfg.FileGlob)
	}

	if got := strings.Join(findCommand(t, "config").Args, ","); got != "init,show" {
		t.Errorf("config args = %q", got)
	}

	if got := strings.Join(findCommand(t, "completion").Args, ","); got != "bash,zsh,fish,powershell" {
		t.Errorf("completion args = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestZshGlob - Glob list conversion
// ---------------------------------------------------------------------------

func TestZshGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"*.yaml", "*.yaml"},
		{"*.html,*.htm", "*.(html|htm)"},
		{"*.yaml,*.yml", "*.(yaml|yml)"},
	}

	for _, tt := range tests {
		if got := zshGlob(tt.in); got != tt.want {
			t.Errorf("zshGlob(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestShellConstants - Shell type constants
// ---------------------------------------------------------------------------

func TestShellConstants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell Shell
		want  string
	}{
		{ShellBash, "bash"},
		{ShellZsh, "zsh"},
		{ShellFish, "fish"},
		{ShellPowerShell, "powershell"},
	}

	for _, tt := range tests {
		if string(tt.shell) != tt.want {
			t.Errorf("Shell constant %v = %q, want %q", tt.shell, string(tt.shell), tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintCompletionUsage - Completion usage help output
// ---------------------------------------------------------------------------

func TestPrintCompletionUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printCompletionUsage(&buf)
	output := buf.String()

	for _, want := range []string{"Usage: htmlfmt completion", "bash", "zsh", "fish", "powershell", "Installation"} {
		if !strings.Contains(output, want) {
			t.Errorf("completion usage missing %q", want)
		}
	}
}
