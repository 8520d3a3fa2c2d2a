// Package theme holds the persisted color preference applied to the TUI.
package theme

import (
	"fmt"
	"strings"
)

// Theme names a color scheme.
type Theme struct {
	Name string `json:"name"`
	// Accent and Muted are lipgloss-compatible color values.
	Accent string `json:"accent"`
	Muted  string `json:"muted"`
}

var themes = []Theme{
	{Name: "default", Accent: "12", Muted: "8"},
	{Name: "forest", Accent: "10", Muted: "22"},
	{Name: "rose", Accent: "13", Muted: "95"},
	{Name: "mono", Accent: "15", Muted: "7"},
}

// Default is used when no preference is stored.
func Default() Theme {
	return themes[0]
}

// Names lists the available theme names.
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Lookup resolves a theme by name.
func Lookup(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("theme: unknown theme %q, have %s", name, strings.Join(Names(), ", "))
}
