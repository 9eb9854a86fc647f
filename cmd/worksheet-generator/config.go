package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianandrews/worksheet-generator/internal/fileutil"
	"github.com/julianandrews/worksheet-generator/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds file-based configuration for worksheet generation.
// Relative paths in the config are resolved against the config file's
// directory, not the working directory.
type Config struct {
	Pages      []string `yaml:"pages"`      // Markdown files, one per worksheet page
	Stylesheet string   `yaml:"stylesheet"` // CSS file inlined into the document (optional)
	Output     string   `yaml:"output"`     // Output file (optional)
	Format     string   `yaml:"format"`     // "pdf" or "html" (optional, default pdf)
	Printer    string   `yaml:"printer"`    // lp destination to print to (optional)
	Engine     string   `yaml:"engine"`     // "weasyprint" or "chrome" (optional)
	Sections   *bool    `yaml:"sections"`   // Wrap heading sections (optional, default true)
}

// DefaultConfig returns an empty configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns the parsed config and the path it was loaded from.
func LoadConfig(nameOrPath string) (*Config, string, error) {
	if nameOrPath == "" {
		return nil, "", ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, "", err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, "", fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, configPath, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/worksheet-generator/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "worksheet-generator", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
