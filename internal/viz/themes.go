package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the page color scheme
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Art       lipgloss.Color
	Inverse   lipgloss.Color
	Error     lipgloss.Color
}

// Available themes
var (
	ThemeDark = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#a1a1aa"), // zinc-400
		Accent:    lipgloss.Color("#22d3ee"),
		Text:      lipgloss.Color("#e4e4e7"),
		Muted:     lipgloss.Color("#71717a"),
		Border:    lipgloss.Color("#27272a"),
		Art:       lipgloss.Color("#52525b"), // zinc-600
		Inverse:   lipgloss.Color("#000000"),
		Error:     lipgloss.Color("#f87171"),
	}

	ThemeLight = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#000000"),
		Secondary: lipgloss.Color("#52525b"),
		Accent:    lipgloss.Color("#0891b2"),
		Text:      lipgloss.Color("#27272a"),
		Muted:     lipgloss.Color("#71717a"),
		Border:    lipgloss.Color("#e4e4e7"),
		Art:       lipgloss.Color("#a1a1aa"),
		Inverse:   lipgloss.Color("#ffffff"),
		Error:     lipgloss.Color("#dc2626"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Border:    lipgloss.Color("#003300"),
		Art:       lipgloss.Color("#00aa00"),
		Inverse:   lipgloss.Color("#001100"),
		Error:     lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{
		ThemeDark,
		ThemeLight,
		ThemeRetro,
	}
)

// GetTheme returns a theme by name, falling back to dark
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// NextTheme returns the theme after name, wrapping around
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
