// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/depgraph/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localPath     string // Path to the local config file (e.g., ./.depgraph.toml)
	globalConfDir string // Path to global config directory (e.g., ~/.config/depgraph)
}

// NewLoader creates a new Loader for the given working directory.
func NewLoader(dir string) *Loader {
	return &Loader{
		localPath:     domain.LocalConfigPath(dir),
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithPaths creates a new Loader with explicit paths.
// This is useful for testing and for --config.
func NewLoaderWithPaths(localPath, globalConfDir string) *Loader {
	return &Loader{
		localPath:     localPath,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (default <- global <- local).
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the local configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	if l.localPath == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(l.localPath)
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, local *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreLocal {
		local, err = l.LoadLocal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	return base, nil
}

// loadFile loads a configuration from a file.
// Unknown keys do not fail loading; they are reported as warnings.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	var warnings []string

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if !errors.As(err, &strict) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for i := range strict.Errors {
			key := strings.Join(strict.Errors[i].Key(), ".")
			warnings = append(warnings, fmt.Sprintf("unknown key in %s: %s", filepath.Base(path), key))
		}
		cfg = domain.Config{}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	for name := range cfg.Styles {
		if !domain.Status(name).IsValid() {
			warnings = append(warnings, fmt.Sprintf("unknown status in [styles.%s]", name))
		}
	}

	cfg.Warnings = warnings
	return &cfg, nil
}

// mergeConfigs overlays the non-empty values of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Graph:    base.Graph,
		Render:   base.Render,
		Log:      base.Log,
		Project:  base.Project.Merge(override.Project),
		Styles:   make(map[string]domain.NodeStyle, len(base.Styles)),
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Graph.Name != "" {
		result.Graph.Name = override.Graph.Name
	}
	if override.Graph.RankDir != "" {
		result.Graph.RankDir = override.Graph.RankDir
	}
	if override.Graph.Format != "" {
		result.Graph.Format = override.Graph.Format
	}
	if override.Graph.LabelWidth != 0 {
		result.Graph.LabelWidth = override.Graph.LabelWidth
	}
	if override.Render.DotPath != "" {
		result.Render.DotPath = override.Render.DotPath
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}

	// Merge styles: override individual fields, not the entire style
	for name, style := range base.Styles {
		result.Styles[name] = style
	}
	for name, style := range override.Styles {
		result.Styles[name] = result.Styles[name].Merge(style)
	}

	return result
}
