package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htmlfmt/internal/fileutil"
	"github.com/alnah/go-htmlfmt/internal/pipeline"
	"github.com/alnah/go-htmlfmt/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Limits for config values.
const (
	MaxPathLength      = 4096
	MaxExtensionLength = 16
	MaxExtensions      = 32
	MaxWorkers         = 32
	MaxStagesLength    = 64
)

// AppDirName is the directory under the user config dir searched for named configs.
const AppDirName = "go-htmlfmt"

// DefaultExtensions are the file extensions picked up when formatting a directory.
var DefaultExtensions = []string{".html", ".htm"}

// Config holds all configuration for the htmlfmt CLI.
type Config struct {
	Format  FormatConfig `yaml:"format"`
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// FormatConfig controls the formatting pipeline.
type FormatConfig struct {
	IndentWidth  int    `yaml:"indentWidth"`  // spaces per level, 0-16
	Declarations string `yaml:"declarations"` // "keep" or "drop" for style declarations without ':'
	Stages       string `yaml:"stages"`       // "all" or a list such as "void-tags,indent"
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // used when no path argument is given
	Extensions []string `yaml:"extensions"` // matched case-insensitively during directory walks
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = stdout for single inputs, in place with --write
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			IndentWidth:  pipeline.DefaultIndentWidth,
			Declarations: pipeline.DeclPassThrough.String(),
			Stages:       "all",
		},
		Input: InputConfig{
			Extensions: append([]string(nil), DefaultExtensions...),
		},
	}
}

// Validate checks ranges and lengths. Stage names are checked by the caller
// that turns them into a stage mask.
func (c *Config) Validate() error {
	if err := pipeline.ValidateIndentWidth(c.Format.IndentWidth); err != nil {
		return fmt.Errorf("format.indentWidth: %w", err)
	}
	if _, err := pipeline.ParseDeclarationPolicy(c.Format.Declarations); err != nil {
		return fmt.Errorf("format.declarations: %w", err)
	}
	if err := validateFieldLength("format.stages", c.Format.Stages, MaxStagesLength); err != nil {
		return err
	}

	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if len(c.Input.Extensions) > MaxExtensions {
		return fmt.Errorf("%w: input.extensions has %d entries (max %d)", ErrInvalidValue, len(c.Input.Extensions), MaxExtensions)
	}
	for i, ext := range c.Input.Extensions {
		field := fmt.Sprintf("input.extensions[%d]", i)
		if err := validateFieldLength(field, ext, MaxExtensionLength); err != nil {
			return err
		}
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: %s: %q must start with '.'", ErrInvalidValue, field, ext)
		}
		if err := fileutil.ValidateExtension(ext[1:]); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
		}
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as <name>.yaml / <name>.yml in the current directory,
// then in the user config directory. Fields absent from the file keep their
// DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate paths tried for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
