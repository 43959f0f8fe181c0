package main

// Notes:
// - loadEnvConfig: we test parsing and warnings for malformed numbers.
// - unknownEnvVars: we test typo detection and ordering.
// - applyEnvConfig: we test that only set variables override the config.

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/alnah/go-htmlfmt/internal/config"
)

func mapGetenv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Variable parsing
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	cfg, warnings := loadEnvConfig(mapGetenv(map[string]string{
		"HTMLFMT_CONFIG":       "team",
		"HTMLFMT_INDENT":       "0",
		"HTMLFMT_DECLARATIONS": "drop",
		"HTMLFMT_STAGES":       "indent",
		"HTMLFMT_WORKERS":      "3",
		"HTMLFMT_INPUT_DIR":    "site",
		"HTMLFMT_OUTPUT_DIR":   "dist",
	}))

	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if cfg.ConfigPath != "team" {
		t.Errorf("ConfigPath = %q, want team", cfg.ConfigPath)
	}
	if cfg.IndentWidth == nil || *cfg.IndentWidth != 0 {
		t.Errorf("IndentWidth = %v, want pointer to 0", cfg.IndentWidth)
	}
	if cfg.Declarations != "drop" || cfg.Stages != "indent" {
		t.Errorf("Declarations, Stages = %q, %q", cfg.Declarations, cfg.Stages)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.InputDir != "site" || cfg.OutputDir != "dist" {
		t.Errorf("InputDir, OutputDir = %q, %q", cfg.InputDir, cfg.OutputDir)
	}
}

func TestLoadEnvConfig_InvalidNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"indent not a number", "HTMLFMT_INDENT", "wide"},
		{"negative indent", "HTMLFMT_INDENT", "-2"},
		{"zero workers", "HTMLFMT_WORKERS", "0"},
		{"workers not a number", "HTMLFMT_WORKERS", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, warnings := loadEnvConfig(mapGetenv(map[string]string{tt.key: tt.value}))

			if len(warnings) != 1 || !strings.Contains(warnings[0], tt.key) {
				t.Errorf("warnings = %v, want one mentioning %s", warnings, tt.key)
			}
			if cfg.IndentWidth != nil || cfg.Workers != 0 {
				t.Errorf("invalid value should be ignored, got %+v", cfg)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestUnknownEnvVars(t *testing.T) {
	t.Parallel()

	got := unknownEnvVars([]string{
		"PATH=/bin",
		"HTMLFMT_INDENT=2",
		"HTMLFMT_WORKER=2",
		"HTMLFMT_INDENTS=2",
		"XHTMLFMT_FOO=1",
	})
	want := []string{"HTMLFMT_INDENTS", "HTMLFMT_WORKER"}

	if !slices.Equal(got, want) {
		t.Errorf("unknownEnvVars() = %v, want %v", got, want)
	}
}

func TestWarnEnv(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnEnv(&buf, []string{"ignoring X"}, []string{"HTMLFMT_TYPO=1"})

	want := "warning: ignoring X\nwarning: unknown environment variable HTMLFMT_TYPO (typo?)\n"
	if buf.String() != want {
		t.Errorf("warnEnv() wrote %q, want %q", buf.String(), want)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Override precedence
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Format.IndentWidth = 2
		cfg.Output.DefaultDir = "out"

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Format.IndentWidth != 2 || cfg.Output.DefaultDir != "out" {
			t.Errorf("config changed: %+v", cfg)
		}
	})

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		zero := 0
		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{
			IndentWidth:  &zero,
			Declarations: "drop",
			Stages:       "styles",
			Workers:      5,
			InputDir:     "in",
			OutputDir:    "out",
		}, cfg)

		if cfg.Format.IndentWidth != 0 {
			t.Errorf("IndentWidth = %d, want 0", cfg.Format.IndentWidth)
		}
		if cfg.Format.Declarations != "drop" || cfg.Format.Stages != "styles" {
			t.Errorf("Format = %+v", cfg.Format)
		}
		if cfg.Workers != 5 || cfg.Input.DefaultDir != "in" || cfg.Output.DefaultDir != "out" {
			t.Errorf("config = %+v", cfg)
		}
	})
}
