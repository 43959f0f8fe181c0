package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htmlfmt/internal/fileutil"
)

// stdinPath is the argument that selects standard input.
const stdinPath = "-"

// stdinName labels standard input in messages.
const stdinName = "<stdin>"

// FileToFormat represents a single file to process.
type FileToFormat struct {
	InputPath  string
	OutputPath string // empty unless writing to a file
}

// discoverFiles expands paths into the files to format.
// Explicit files must carry one of exts. Directories are walked recursively,
// skipping hidden directories, and keep only matching files. A file reached
// twice is formatted once.
// When outputDir is set, output paths mirror the input layout under it, and two
// inputs mapping to the same output path are rejected with ErrOutputCollision.
func discoverFiles(paths, exts []string, outputDir string) ([]FileToFormat, error) {
	var files []FileToFormat
	seen := make(map[string]bool)
	add := func(f FileToFormat) {
		key := filepath.Clean(f.InputPath)
		if seen[key] {
			return
		}
		seen[key] = true
		files = append(files, f)
	}

	for _, inputPath := range paths {
		info, err := os.Stat(inputPath)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !fileutil.HasExtension(inputPath, exts) {
				return nil, fmt.Errorf("%w: %s (expected %s)", ErrUnsupportedExtension, inputPath, strings.Join(exts, ", "))
			}
			outPath := resolveOutputPath(inputPath, outputDir, "", len(paths) == 1, exts)
			add(FileToFormat{InputPath: inputPath, OutputPath: outPath})
			continue
		}

		err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				if path != inputPath && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !fileutil.HasExtension(path, exts) {
				return nil
			}
			outPath := resolveOutputPath(path, outputDir, inputPath, false, exts)
			add(FileToFormat{InputPath: path, OutputPath: outPath})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if err := checkOutputCollisions(files); err != nil {
		return nil, err
	}
	return files, nil
}

// checkOutputCollisions fails when two inputs would be written to the same file.
func checkOutputCollisions(files []FileToFormat) error {
	owners := make(map[string]string, len(files))
	for _, f := range files {
		if f.OutputPath == "" {
			continue
		}
		key := filepath.Clean(f.OutputPath)
		if first, ok := owners[key]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrOutputCollision, first, f.InputPath, f.OutputPath)
		}
		owners[key] = f.InputPath
	}
	return nil
}

// resolveOutputPath determines where a formatted file is written.
// An empty outputDir yields an empty path (stdout or in place, decided by the caller).
// A sole input file with an outputDir that itself looks like an HTML file name
// is written to that exact path.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, soleFile bool, exts []string) string {
	if outputDir == "" {
		return ""
	}

	if soleFile && fileutil.HasExtension(outputDir, exts) {
		return outputDir
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, relPath)
		}
	}

	return filepath.Join(outputDir, filepath.Base(inputPath))
}

// splitStdin separates the stdin marker from file paths.
// The marker must be the only argument.
func splitStdin(paths []string) (useStdin bool, err error) {
	for _, p := range paths {
		if p == stdinPath {
			useStdin = true
		}
	}
	if useStdin && len(paths) > 1 {
		return false, ErrStdinWithPaths
	}
	return useStdin, nil
}
