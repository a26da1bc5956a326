package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the view
type Theme struct {
	Name    string
	Alive   lipgloss.Color
	Dead    lipgloss.Color
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:    "retro",
		Alive:   lipgloss.Color("#00ff00"), // Green phosphor
		Dead:    lipgloss.Color("#004400"),
		Primary: lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#005500"),
		Accent:  lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Alive:   lipgloss.Color("#ffffff"),
		Dead:    lipgloss.Color("#444444"),
		Primary: lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#888888"),
		Accent:  lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Alive:   lipgloss.Color("#00a8cc"),
		Dead:    lipgloss.Color("#0b2f4a"),
		Primary: lipgloss.Color("#0077be"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Accent:  lipgloss.Color("#ffd700"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Alive:   lipgloss.Color("#feca57"),
		Dead:    lipgloss.Color("#4a2b3e"),
		Primary: lipgloss.Color("#ff6b6b"), // Coral
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Accent:  lipgloss.Color("#ff9ff3"),
	}
)

var themes = []Theme{ThemeMinimal, ThemeRetroGreen, ThemeOcean, ThemeSunset}

// CurrentTheme is the active theme
var CurrentTheme = ThemeMinimal

// SetTheme changes the current theme by name
func SetTheme(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			CurrentTheme = t
			return true
		}
	}
	return false
}

// ThemeNames returns all available theme names
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}
