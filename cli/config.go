package cli

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/modeline"
	"github.com/shibukawa/modeline/vimoption"
)

// Configuration errors
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrNegativeVimVersion is returned for a negative vim_version value.
	ErrNegativeVimVersion = errors.New("vim_version must not be negative")
	// ErrNegativeModelines is returned for a negative modelines value.
	ErrNegativeModelines = errors.New("modelines must not be negative")
)

// Context represents the global context for commands.
type Context struct {
	Config     string
	Verbose    bool
	Quiet      bool
	Permissive bool
	VimVersion *int
	Modelines  *int
	Table      string
}

// Config represents the modeline CLI configuration.
type Config struct {
	// VimVersion is the emulated vim version; 0 keeps the parser default.
	VimVersion int `yaml:"vim_version"`
	// Modelines is the buffer window size. A pointer distinguishes unset
	// (parser default) from an explicit 0 (buffer scanning disabled).
	Modelines *int `yaml:"modelines"`
	// Permissive disables option-table validation.
	Permissive bool `yaml:"permissive"`
	// Table is a path to a custom option table document.
	Table string `yaml:"table"`
}

// LoadConfig loads configuration from the specified file. A missing file
// yields the default configuration. .env files are loaded first and ${VAR}
// references in path values are expanded.
func LoadConfig(configPath string) (*Config, error) {
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := &Config{}
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	expandConfigEnvVars(&config)

	return &config, nil
}

// NewParser builds a modeline parser from the configuration.
func (c *Config) NewParser() (*modeline.Parser, error) {
	var options []modeline.ParserOption

	if c.Table != "" {
		table, err := vimoption.Load(c.Table)
		if err != nil {
			return nil, fmt.Errorf("failed to load option table: %w", err)
		}

		options = append(options, modeline.WithTable(table))
	}

	if c.VimVersion > 0 {
		options = append(options, modeline.WithVimVersion(c.VimVersion))
	}

	if c.Modelines != nil {
		options = append(options, modeline.WithModelines(*c.Modelines))
	}

	if c.Permissive {
		options = append(options, modeline.WithPermissive(true))
	}

	return modeline.NewParser(options...), nil
}

// buildParser merges command-line overrides into the file configuration and
// constructs the parser. Flags win over file values.
func buildParser(ctx *Context) (*modeline.Parser, error) {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if ctx.VimVersion != nil {
		config.VimVersion = *ctx.VimVersion
	}

	if ctx.Modelines != nil {
		config.Modelines = ctx.Modelines
	}

	if ctx.Table != "" {
		config.Table = ctx.Table
	}

	if ctx.Permissive {
		config.Permissive = true
	}

	return config.NewParser()
}

func validateConfig(config *Config) error {
	if config.VimVersion < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeVimVersion, config.VimVersion)
	}

	if config.Modelines != nil && *config.Modelines < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeModelines, *config.Modelines)
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	envBraceRe = regexp.MustCompile(`\$\{([^}]+)\}`)
	envPlainRe = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	s = envBraceRe.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	// Pattern for $VAR format
	s = envPlainRe.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})

	return s
}

// expandConfigEnvVars expands environment variables in path values
func expandConfigEnvVars(config *Config) {
	config.Table = expandEnvVars(config.Table)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
