package main

import (
	"fmt"
	"strings"
)

// commandNames returns the names of commands in registry order.
func commandNames(commands []commandDef) []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return names
}

// flagSpellings returns "-s" (when present) and "--long".
func flagSpellings(f flagDef) []string {
	if f.Short == "" {
		return []string{"--" + f.Long}
	}
	return []string{"-" + f.Short, "--" + f.Long}
}

// allSpellings returns every spelling of every flag, long forms first.
func allSpellings(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
	}
	for _, f := range flags {
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashScript(commands []commandDef) string {
	var b strings.Builder
	names := commandNames(commands)

	b.WriteString("# bash completion for htmlfmt\n\n")
	b.WriteString("_htmlfmt_completions() {\n")
	b.WriteString("    local cur prev cmd i\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    cmd=format\n")
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	fmt.Fprintf(&b, "            %s)\n", strings.Join(names, "|"))
	b.WriteString("                cmd=\"${COMP_WORDS[i]}\"\n")
	b.WriteString("                break\n")
	b.WriteString("                ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	b.WriteString("    if [[ $COMP_CWORD -eq 1 && \"$cur\" != -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(names, " "))
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range commands {
		bashCommandCase(&b, c)
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _htmlfmt_completions htmlfmt\n")

	return b.String()
}

func bashCommandCase(b *strings.Builder, c commandDef) {
	fmt.Fprintf(b, "        %s)\n", c.Name)

	var valued []flagDef
	for _, f := range c.Flags {
		if f.Type != flagBool {
			valued = append(valued, f)
		}
	}
	if len(valued) > 0 {
		b.WriteString("            case \"$prev\" in\n")
		for _, f := range valued {
			fmt.Fprintf(b, "                %s)\n", strings.Join(flagSpellings(f), "|"))
			if action := bashValueAction(f); action != "" {
				fmt.Fprintf(b, "                    COMPREPLY+=(%s)\n", action)
			}
			b.WriteString("                    return\n")
			b.WriteString("                    ;;\n")
		}
		b.WriteString("            esac\n")
	}

	if len(c.Flags) > 0 {
		b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(b, "                COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(allSpellings(c.Flags), " "))
		b.WriteString("                return\n")
		b.WriteString("            fi\n")
	}

	switch {
	case len(c.Args) > 0:
		fmt.Fprintf(b, "            COMPREPLY+=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
	case c.TakesFiles:
		b.WriteString("            COMPREPLY+=($(compgen -f -- \"$cur\"))\n")
	}
	b.WriteString("            ;;\n")
}

// bashValueAction completes a flag value. Numbers get no suggestions.
func bashValueAction(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf("$(compgen -W \"%s\" -- \"$cur\")", strings.Join(f.Values, " "))
	case flagDir:
		return "$(compgen -d -- \"$cur\")"
	case flagFile, flagString:
		return "$(compgen -f -- \"$cur\")"
	default:
		return ""
	}
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func zshScript(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef htmlfmt\n\n")
	b.WriteString("_htmlfmt() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshQuote(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    local cmd=format\n")
	b.WriteString("    if (( CURRENT > 2 )); then\n")
	b.WriteString("        case ${words[2]} in\n")
	fmt.Fprintf(&b, "            %s)\n", strings.Join(commandNames(commands), "|"))
	b.WriteString("                cmd=${words[2]}\n")
	b.WriteString("                shift words\n")
	b.WriteString("                (( CURRENT-- ))\n")
	b.WriteString("                ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    else\n")
	b.WriteString("        _describe -t commands 'htmlfmt command' commands\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case $cmd in\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		specs := zshSpecs(c)
		if len(specs) > 0 {
			b.WriteString("            _arguments -s \\\n")
			for i, spec := range specs {
				b.WriteString("                " + spec)
				if i < len(specs)-1 {
					b.WriteString(" \\")
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("if [[ $funcstack[1] = _htmlfmt ]]; then\n")
	b.WriteString("    _htmlfmt \"$@\"\n")
	b.WriteString("else\n")
	b.WriteString("    compdef _htmlfmt htmlfmt\n")
	b.WriteString("fi\n")

	return b.String()
}

// zshSpecs returns the _arguments specs for a command.
func zshSpecs(c commandDef) []string {
	var specs []string
	for _, f := range c.Flags {
		desc := "[" + zshQuote(zshBrackets(f.Desc)) + "]" + zshAction(f)
		if f.Short == "" {
			specs = append(specs, "'--"+f.Long+desc+"'")
			continue
		}
		specs = append(specs, fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s'", f.Short, f.Long, f.Short, f.Long, desc))
	}

	switch {
	case len(c.Args) > 0:
		specs = append(specs, "'1:argument:("+strings.Join(c.Args, " ")+")'")
	case c.TakesFiles:
		specs = append(specs, "'*:file:_files -g \""+zshGlob(c.FilePattern)+"\"'")
	}
	return specs
}

func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagDir:
		return ":directory:_files -/"
	case flagFile:
		return ":file:_files -g \"" + zshGlob(f.FileGlob) + "\""
	case flagInt:
		return ":number:"
	default:
		return ":value:"
	}
}

// zshGlob turns "*.html,*.htm" into "*.(html|htm)".
func zshGlob(pattern string) string {
	globs := strings.Split(pattern, ",")
	if len(globs) == 1 {
		return globs[0]
	}
	exts := make([]string, len(globs))
	for i, g := range globs {
		exts[i] = strings.TrimPrefix(g, "*.")
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

func zshBrackets(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`).Replace(s)
}

// zshQuote escapes s for use inside single quotes.
func zshQuote(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func fishScript(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for htmlfmt\n\n")
	b.WriteString("function __fish_htmlfmt_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_htmlfmt_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$cmd[2]\" = \"$argv[1]\"\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c htmlfmt -f\n\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c htmlfmt -n __fish_htmlfmt_needs_command -a %s -d '%s'\n", c.Name, fishQuote(c.Desc))
	}

	var others []string
	for _, c := range commands {
		if c.Name != "format" {
			others = append(others, c.Name)
		}
	}

	for _, c := range commands {
		// format is the default command, so its flags apply until another command appears.
		cond := "'__fish_htmlfmt_using_command " + c.Name + "'"
		if c.Name == "format" {
			cond = "'not __fish_seen_subcommand_from " + strings.Join(others, " ") + "'"
		}

		b.WriteString("\n")
		for _, f := range c.Flags {
			line := "complete -c htmlfmt -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long + fishValueArgs(f)
			line += " -d '" + fishQuote(f.Desc) + "'"
			b.WriteString(line + "\n")
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c htmlfmt -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(&b, "complete -c htmlfmt -n %s -F\n", cond)
		}
	}

	return b.String()
}

func fishValueArgs(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return " -x -a '" + strings.Join(f.Values, " ") + "'"
	case flagDir:
		return " -x -a '(__fish_complete_directories)'"
	case flagInt:
		return " -x"
	default:
		return " -r -F"
	}
}

// fishQuote escapes s for use inside fish single quotes.
func fishQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func powerShellScript(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("# powershell completion for htmlfmt\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName htmlfmt -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, psQuote(c.Desc))
	}
	b.WriteString("    }\n")

	b.WriteString("    $flags = @{\n")
	for _, c := range commands {
		if len(c.Flags) > 0 {
			fmt.Fprintf(&b, "        '%s' = %s\n", c.Name, psArray(allSpellings(c.Flags)))
		}
	}
	b.WriteString("    }\n")

	b.WriteString("    $values = @{\n")
	seen := make(map[string]bool)
	for _, c := range commands {
		for _, f := range c.Flags {
			if f.Type != flagEnum {
				continue
			}
			for _, spelling := range flagSpellings(f) {
				if !seen[spelling] {
					seen[spelling] = true
					fmt.Fprintf(&b, "        '%s' = %s\n", spelling, psArray(f.Values))
				}
			}
		}
	}
	b.WriteString("    }\n")

	b.WriteString("    $positional = @{\n")
	for _, c := range commands {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        '%s' = %s\n", c.Name, psArray(c.Args))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString(`    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })
    $cmd = 'format'
    if ($elements.Count -gt 1 -and $commands.Contains($elements[1]) -and ($elements.Count -gt 2 -or -not $wordToComplete)) {
        $cmd = $elements[1]
    }
    $prev = if ($wordToComplete) { $elements[-2] } else { $elements[-1] }

    $complete = {
        param($items, $kind)
        $items | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, $kind, $_)
        }
    }

    if ($values.ContainsKey($prev)) {
        & $complete $values[$prev] 'ParameterValue'
        return
    }
    if ($wordToComplete -like '-*') {
        if ($flags.ContainsKey($cmd)) {
            & $complete $flags[$cmd] 'ParameterName'
        }
        return
    }
    if ($elements.Count -le 2) {
        & $complete @($commands.Keys) 'Command'
    }
    if ($positional.ContainsKey($cmd)) {
        & $complete $positional[$cmd] 'ParameterValue'
    }
}
`)

	return b.String()
}

func psArray(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + psQuote(s) + "'"
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

// psQuote escapes s for use inside PowerShell single quotes.
func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
