package main

// Notes:
// - reportResults: we test per-mode output, quiet/verbose levels and the
//   returned error. Colors are disabled so output can be compared exactly.
// - formatContent: we test write mode skipping unchanged files and the
//   input size limit.

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	htmlfmt "github.com/alnah/go-htmlfmt"
)

func testParams(t *testing.T, mode outputMode) *formatParams {
	t.Helper()
	f, err := htmlfmt.NewFormatter()
	if err != nil {
		t.Fatal(err)
	}
	return &formatParams{formatter: f, mode: mode, workers: 2, noColor: true}
}

// ---------------------------------------------------------------------------
// TestCountResults - Summary tally
// ---------------------------------------------------------------------------

func TestCountResults(t *testing.T) {
	t.Parallel()

	got := countResults([]FormatResult{
		{Changed: true},
		{Changed: true},
		{},
		{Err: errors.New("x"), Changed: true},
	})
	want := ResultSummary{Changed: 2, Unchanged: 1, Failed: 1}

	if got != want {
		t.Errorf("countResults() = %+v, want %+v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestReportResults - Status lines and returned error
// ---------------------------------------------------------------------------

func TestReportResults(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name       string
		mode       outputMode
		quiet      bool
		verbose    bool
		results    []FormatResult
		wantOut    string
		wantStderr string
		wantErr    error
	}{
		{
			name:    "stdout concatenates outputs",
			mode:    modeStdout,
			results: []FormatResult{{Output: "<a>\n"}, {Output: "<b>\n"}},
			wantOut: "<a>\n<b>\n",
		},
		{
			name:    "check lists changed paths",
			mode:    modeCheck,
			results: []FormatResult{{InputPath: "a.html", Changed: true}, {InputPath: "b.html"}},
			wantOut: "a.html\n",
			wantErr: ErrUnformatted,
		},
		{
			name:    "write single file",
			mode:    modeWrite,
			results: []FormatResult{{InputPath: "a.html", OutputPath: "a.html", Changed: true}},
			wantOut: "Formatted a.html\n",
		},
		{
			name:    "write unchanged is silent",
			mode:    modeWrite,
			results: []FormatResult{{InputPath: "a.html"}},
			wantOut: "",
		},
		{
			name:    "write unchanged verbose",
			mode:    modeWrite,
			verbose: true,
			results: []FormatResult{{InputPath: "a.html"}},
			wantOut: "Unchanged a.html\n",
		},
		{
			name:    "output verbose shows timing",
			mode:    modeOutput,
			verbose: true,
			results: []FormatResult{{InputPath: "a.html", OutputPath: "out/a.html", Changed: true, Duration: 3 * time.Millisecond}},
			wantOut: "Formatted a.html -> out/a.html (3ms)\n",
		},
		{
			name:    "quiet",
			mode:    modeOutput,
			quiet:   true,
			results: []FormatResult{{InputPath: "a.html", OutputPath: "o/a.html"}, {InputPath: "b.html", OutputPath: "o/b.html"}},
			wantOut: "",
		},
		{
			name:    "summary",
			mode:    modeOutput,
			results: []FormatResult{{InputPath: "a.html", OutputPath: "o/a.html", Changed: true}, {InputPath: "b.html", OutputPath: "o/b.html"}},
			wantOut: "Formatted o/a.html\nFormatted o/b.html\n\nFormatted 1 file(s), 1 unchanged, 0 failed\n",
		},
		{
			name:    "lone failure is returned, not printed",
			mode:    modeStdout,
			results: []FormatResult{{InputPath: "a.html", Err: boom}},
			wantErr: boom,
		},
		{
			name:       "batch failure",
			mode:       modeWrite,
			quiet:      true,
			results:    []FormatResult{{InputPath: "a.html"}, {InputPath: "b.html", Err: boom}},
			wantStderr: "FAILED b.html: boom\n",
			wantErr:    ErrBatchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := testParams(t, tt.mode)
			params.quiet = tt.quiet
			params.verbose = tt.verbose
			env, stdout, stderr := testEnv("", true, nil)

			err := reportResults(tt.results, params, env)

			if tt.wantErr == nil && err != nil {
				t.Errorf("reportResults() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("reportResults() = %v, want %v", err, tt.wantErr)
			}
			if stdout.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantOut)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormatContent - Per-mode delivery
// ---------------------------------------------------------------------------

func TestFormatContent_WriteSkipsUnchanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.html")
	writeFile(t, path, formattedHTML)
	env, _, _ := testEnv("", true, nil)

	r := formatContent(context.Background(), testParams(t, modeWrite), FileToFormat{InputPath: path}, []byte(formattedHTML), env)

	if r.Err != nil || r.Changed {
		t.Errorf("result = %+v, want unchanged without error", r)
	}
	if r.OutputPath != "" {
		t.Errorf("OutputPath = %q, want empty for an unchanged file", r.OutputPath)
	}
}

func TestFormatContent_TooLarge(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv("", true, nil)
	big := []byte(strings.Repeat("a", htmlfmt.MaxInputSize+1))

	r := formatContent(context.Background(), testParams(t, modeStdout), FileToFormat{InputPath: "big.html"}, big, env)

	if !errors.Is(r.Err, htmlfmt.ErrInputTooLarge) {
		t.Errorf("Err = %v, want ErrInputTooLarge", r.Err)
	}
	if r.Output != "" {
		t.Error("no output expected for rejected input")
	}
}

func TestFormatContent_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	env, _, _ := testEnv("", true, nil)

	r := formatContent(ctx, testParams(t, modeStdout), FileToFormat{InputPath: "a.html"}, []byte("<p>"), env)

	if !errors.Is(r.Err, context.Canceled) {
		t.Errorf("Err = %v, want context.Canceled", r.Err)
	}
}

func TestFormatBatch_Order(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var files []FileToFormat
	for _, name := range []string{"a.html", "b.html", "c.html", "d.html"} {
		path := filepath.Join(dir, name)
		writeFile(t, path, "<p>"+name+"</p>")
		files = append(files, FileToFormat{InputPath: path})
	}
	env, _, _ := testEnv("", true, nil)

	results := formatBatch(context.Background(), files, testParams(t, modeStdout), env)

	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("results[%d].Err = %v", i, r.Err)
		}
		name := filepath.Base(files[i].InputPath)
		if want := "<p>\n    " + name + "\n</p>\n"; r.Output != want {
			t.Errorf("results[%d].Output = %q, want %q", i, r.Output, want)
		}
	}
}
