// Package config loads and validates the YAML configuration of nbreport.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-nbreport/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxConfigSize limits config input (1MB).
const MaxConfigSize = 1 << 20

// Field length limits.
const (
	MaxTitleLength  = 200
	MaxFooterLength = 500
	MaxDateLength   = 60
	MaxNameLength   = 64
	MaxTagLength    = 64
	MaxPathLength   = 4096
	MaxWorkers      = 64
)

// Defaults applied by DefaultConfig.
const (
	DefaultTitle      = "Notebook Report"
	DefaultStyle      = "default"
	DefaultCaptionTag = "caption"
	DefaultChartTag   = "chart"
	DefaultOutputPath = "report.html"
	DefaultPDFTimeout = 30 * time.Second
)

// appDirName is the directory under the user config dir searched by name.
const appDirName = "go-nbreport"

// Config holds all configuration for report generation.
type Config struct {
	Report ReportConfig `yaml:"report"`
	Style  StyleConfig  `yaml:"style"`
	Assets AssetsConfig `yaml:"assets"`
	Tags   TagsConfig   `yaml:"tags"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	PDF    PDFConfig    `yaml:"pdf"`
}

// ReportConfig defines the report shell content.
type ReportConfig struct {
	Title  string `yaml:"title"`
	Date   string `yaml:"date"`   // "auto", "auto:FORMAT" or literal; empty = none
	Footer string `yaml:"footer"` // Free-form footer text
}

// StyleConfig defines report styling.
type StyleConfig struct {
	Name      string `yaml:"name"`      // Style in assets/styles (without .css)
	Highlight string `yaml:"highlight"` // Chroma style for code blocks
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded assets only
}

// TagsConfig names the cell tags that select report cells.
type TagsConfig struct {
	Caption string `yaml:"caption"`
	Chart   string `yaml:"chart"`
}

// OutputConfig defines where the report is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// RenderConfig tunes caption rendering.
type RenderConfig struct {
	Workers int `yaml:"workers"` // 0 = one per CPU, 1 = sequential
}

// PDFConfig defines the optional PDF export.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`    // Empty = output path with .pdf extension
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// TimeoutDuration returns the parsed PDF timeout or DefaultPDFTimeout.
// Validate guarantees the value parses.
func (p PDFConfig) TimeoutDuration() time.Duration {
	if p.Timeout == "" {
		return DefaultPDFTimeout
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return DefaultPDFTimeout
	}
	return d
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{Title: DefaultTitle},
		Style:  StyleConfig{Name: DefaultStyle},
		Tags:   TagsConfig{Caption: DefaultCaptionTag, Chart: DefaultChartTag},
		Output: OutputConfig{Path: DefaultOutputPath},
		Render: RenderConfig{Workers: 1},
	}
}

// Validate checks field lengths and value ranges.
// Called by LoadConfig; also usable on configs built in code.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"report.title", c.Report.Title, MaxTitleLength},
		{"report.date", c.Report.Date, MaxDateLength},
		{"report.footer", c.Report.Footer, MaxFooterLength},
		{"style.name", c.Style.Name, MaxNameLength},
		{"style.highlight", c.Style.Highlight, MaxNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"tags.caption", c.Tags.Caption, MaxTagLength},
		{"tags.chart", c.Tags.Chart, MaxTagLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"pdf.path", c.PDF.Path, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.Tags.Caption) == "" {
		return fmt.Errorf("%w: tags.caption cannot be empty", ErrInvalidValue)
	}
	if strings.TrimSpace(c.Tags.Chart) == "" {
		return fmt.Errorf("%w: tags.chart cannot be empty", ErrInvalidValue)
	}
	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: render.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Render.Workers)
	}
	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil {
			return fmt.Errorf("%w: pdf.timeout: %v", ErrInvalidValue, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: pdf.timeout must be positive, got %s", ErrInvalidValue, c.PDF.Timeout)
		}
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
// A value containing a path separator is read as a path; otherwise it is
// searched as NAME.yaml / NAME.yml in the current directory, then in the
// user config directory. Keys absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config data over the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrConfigParse, MaxConfigSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the files tried, in order, when a config is given by
// name: NAME.yaml and NAME.yml in the current directory, then in the user
// config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
