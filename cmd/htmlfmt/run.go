package main

import (
	"context"
	"errors"
	"fmt"

	htmlfmt "github.com/alnah/go-htmlfmt"
	"github.com/alnah/go-htmlfmt/internal/config"
	"github.com/alnah/go-htmlfmt/internal/fileutil"
	"github.com/alnah/go-htmlfmt/internal/hints"
	"github.com/alnah/go-htmlfmt/internal/yamlutil"
)

// commands lists subcommand names. Anything else is treated as a format argument.
var commands = map[string]bool{
	"format":     true,
	"check":      true,
	"config":     true,
	"version":    true,
	"help":       true,
	"completion": true,
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return commands[arg]
}

// runMain dispatches the command line and returns the process exit code.
// Errors are printed to env.Stderr with an actionable hint when one applies.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := dispatch(ctx, args[1:], env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "htmlfmt: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// dispatch routes to the subcommand. A bare invocation formats.
func dispatch(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 || !isCommand(args[0]) {
		return runFormat(ctx, args, env)
	}

	switch args[0] {
	case "format":
		return runFormat(ctx, args[1:], env)
	case "check":
		return runCheck(ctx, args[1:], env)
	case "config":
		return runConfig(args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "htmlfmt %s\n", Version)
		return nil
	case "completion":
		return runCompletion(args[1:], env)
	default:
		return runHelp(args[1:], env)
	}
}

// hintFor returns a hint line for errors that have one.
func hintFor(err error) string {
	var (
		lookup  *configLookupError
		noFiles *noFilesError
	)

	switch {
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	case errors.Is(err, ErrInvalidStages):
		return hints.ForUnknownStage()
	case errors.Is(err, ErrOutputCollision):
		return hints.ForOutputCollision()
	case errors.Is(err, htmlfmt.ErrInputTooLarge):
		return hints.ForInputTooLarge()
	case errors.As(err, &noFiles):
		return hints.ForNoFiles(noFiles.extensions)
	case errors.Is(err, config.ErrConfigNotFound):
		if errors.As(err, &lookup) && !fileutil.IsFilePath(lookup.name) {
			return hints.ForConfigNotFound(config.SearchPaths(lookup.name))
		}
		return hints.ForConfigNotFound(nil)
	}
	return ""
}

// configLookupError remembers the name passed to --config for hinting.
type configLookupError struct {
	name string
	err  error
}

func (e *configLookupError) Error() string { return e.err.Error() }
func (e *configLookupError) Unwrap() error { return e.err }

// noFilesError carries the searched extensions for hinting.
type noFilesError struct {
	path       string
	extensions []string
}

func (e *noFilesError) Error() string {
	return fmt.Sprintf("%v in %s", ErrNoHTMLFiles, e.path)
}

func (e *noFilesError) Unwrap() error { return ErrNoHTMLFiles }

// loadEffectiveConfig loads the config file named by the flag or
// HTMLFMT_CONFIG, then applies environment overrides.
func loadEffectiveConfig(flagConfig string, env *Environment) (*config.Config, error) {
	envCfg, warnings := loadEnvConfig(env.Getenv)
	warnEnv(env.Stderr, warnings, env.Environ())

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", &configLookupError{name: name, err: err})
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// runConfig prints the default or effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	flags, rest, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if flags.help || len(rest) == 0 {
		printConfigUsage(env.Stdout)
		return nil
	}

	var cfg *config.Config
	switch rest[0] {
	case "init":
		cfg = config.DefaultConfig()
	case "show":
		cfg, err = loadEffectiveConfig(flags.config, env)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	default:
		printConfigUsage(env.Stderr)
		return fmt.Errorf("%w: config %s", ErrUnknownCommand, rest[0])
	}

	out, err := yamlutil.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
