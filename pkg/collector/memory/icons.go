package memory

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultIcon marks processes without an entry in the icon table.
const DefaultIcon = "*"

// IconTable maps resolved process names to Nerd Font glyphs.
type IconTable map[string]string

// DefaultIcons returns a fresh copy of the built-in icon table.
func DefaultIcons() IconTable {
	return IconTable{
		"firefox":       "\uf269",
		"firefox-bin":   "\uf269",
		"webstorm":      "\uf121",
		"clion":         "\uf121",
		"Rider.Backend": "\uf121",
		"systemd":       "\uf4fe",
		"sddm":          "\uf390",
		"sddm-helper":   "\uf390",
		"Hyprland":      "\uf009",
		"waybar":        "\uf2d1",
		"bash":          "\uf120",
		"sh":            "\uf120",
		"kitty":         "\uf6be",
	}
}

// Lookup returns the icon for an exact name match or DefaultIcon.
func (t IconTable) Lookup(name string) string {
	if icon, ok := t[name]; ok {
		return icon
	}
	return DefaultIcon
}

// LoadIcons reads a YAML mapping of process name to icon from path and
// layers it over the built-in table. An empty value removes a built-in entry.
func LoadIcons(path string) (IconTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading icon table: %w", err)
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing icon table %s: %w", path, err)
	}

	table := DefaultIcons()
	maps.Copy(table, overrides)
	for name, icon := range overrides {
		if icon == "" {
			delete(table, name)
		}
	}
	return table, nil
}
