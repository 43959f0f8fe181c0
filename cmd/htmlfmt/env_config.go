package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-htmlfmt/internal/config"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "HTMLFMT_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // HTMLFMT_CONFIG: config file name or path
	IndentWidth  *int   // HTMLFMT_INDENT: spaces per level
	Declarations string // HTMLFMT_DECLARATIONS: keep or drop
	Stages       string // HTMLFMT_STAGES: stage list
	Workers      int    // HTMLFMT_WORKERS: parallel workers
	InputDir     string // HTMLFMT_INPUT_DIR: default input directory
	OutputDir    string // HTMLFMT_OUTPUT_DIR: default output directory
}

// knownEnvVars lists valid HTMLFMT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"HTMLFMT_CONFIG":       true,
	"HTMLFMT_INDENT":       true,
	"HTMLFMT_DECLARATIONS": true,
	"HTMLFMT_STAGES":       true,
	"HTMLFMT_WORKERS":      true,
	"HTMLFMT_INPUT_DIR":    true,
	"HTMLFMT_OUTPUT_DIR":   true,
}

// loadEnvConfig reads HTMLFMT_* variables through getenv.
// Unparseable numbers are skipped and reported in warnings.
func loadEnvConfig(getenv func(string) string) (*envConfig, []string) {
	cfg := &envConfig{
		ConfigPath:   getenv("HTMLFMT_CONFIG"),
		Declarations: getenv("HTMLFMT_DECLARATIONS"),
		Stages:       getenv("HTMLFMT_STAGES"),
		InputDir:     getenv("HTMLFMT_INPUT_DIR"),
		OutputDir:    getenv("HTMLFMT_OUTPUT_DIR"),
	}
	var warnings []string

	if v := getenv("HTMLFMT_INDENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.IndentWidth = &n
		} else {
			warnings = append(warnings, fmt.Sprintf("ignoring HTMLFMT_INDENT=%q (not a non-negative integer)", v))
		}
	}

	if v := getenv("HTMLFMT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		} else {
			warnings = append(warnings, fmt.Sprintf("ignoring HTMLFMT_WORKERS=%q (not a positive integer)", v))
		}
	}

	return cfg, warnings
}

// unknownEnvVars returns unrecognized HTMLFMT_* names, sorted.
// Helps catch typos like HTMLFMT_INDENTS.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// warnEnv prints env warnings and unknown variable notices to w.
func warnEnv(w io.Writer, warnings []string, environ []string) {
	for _, msg := range warnings {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
	for _, name := range unknownEnvVars(environ) {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config values with the variables that are set.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFormatFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.IndentWidth != nil {
		cfg.Format.IndentWidth = *env.IndentWidth
	}
	if env.Declarations != "" {
		cfg.Format.Declarations = env.Declarations
	}
	if env.Stages != "" {
		cfg.Format.Stages = env.Stages
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
