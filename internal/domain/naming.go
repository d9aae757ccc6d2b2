package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Directory and file names for depgraph.
const (
	AppDirName          = "depgraph"       // Directory name under the config home
	ConfigFileName      = "config.toml"    // Global config file name
	LocalConfigFileName = ".depgraph.toml" // Config file name in the working directory
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the local config path for a working directory.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// ClusterName returns the subgraph name for a project.
// Graphviz only draws subgraphs whose name starts with "cluster" as boxes.
// Letters and digits are kept; every other rune is written as _<hex>_ so that
// distinct project names never share a cluster.
func ClusterName(project string) string {
	var b strings.Builder
	b.WriteString("cluster_")
	for _, r := range project {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, "_%x_", r)
	}
	return b.String()
}

// Truncate shortens s to at most width runes, appending an ellipsis.
// A width of 0 or less disables truncation.
func Truncate(s string, width int) string {
	s = strings.TrimSpace(s)
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
