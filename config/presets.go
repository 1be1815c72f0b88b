package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ErrUnknownPreset is returned by Preset for a name with no embedded file.
var ErrUnknownPreset = errors.New("config: unknown preset")

//go:embed presets/*.yaml
var presetFS embed.FS

// Presets returns the names of the embedded configurations, sorted.
func Presets() []string {
	entries, _ := fs.ReadDir(presetFS, "presets")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

// Preset parses the embedded configuration called name.
func Preset(name string) (*Config, error) {
	data, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: preset %s: %w", name, err)
	}

	return cfg, nil
}
