package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds every style the page uses, derived from one Theme.
type Styles struct {
	Title       lipgloss.Style
	Bio         lipgloss.Style
	Link        lipgloss.Style
	Art         lipgloss.Style
	Heading     lipgloss.Style
	Category    lipgloss.Style
	CategoryOn  lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Description lipgloss.Style
	Topic       lipgloss.Style
	Muted       lipgloss.Style
	PageOn      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Graph       lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Foreground(t.Secondary).MarginBottom(1),
		Bio:         lipgloss.NewStyle().Foreground(t.Muted).Width(48).MarginBottom(1),
		Link:        lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true),
		Art:         lipgloss.NewStyle().Foreground(t.Art),
		Heading:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1),
		Category:    lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1),
		CategoryOn:  lipgloss.NewStyle().Foreground(t.Inverse).Background(t.Primary).Bold(true).Padding(0, 1),
		Card:        lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1).Width(72),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Description: lipgloss.NewStyle().Foreground(t.Secondary).Width(68),
		Topic:       lipgloss.NewStyle().Foreground(t.Text).Border(lipgloss.NormalBorder(), false, true).BorderForeground(t.Border).Padding(0, 1),
		Muted:       lipgloss.NewStyle().Foreground(t.Muted),
		PageOn:      lipgloss.NewStyle().Foreground(t.Inverse).Background(t.Primary).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(t.Error),
		Help:        lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Graph:       lipgloss.NewStyle().Foreground(t.Accent),
	}
}

var languageColors = map[string]lipgloss.Color{
	"JavaScript": lipgloss.Color("#eab308"),
	"TypeScript": lipgloss.Color("#2563eb"),
	"Python":     lipgloss.Color("#3b82f6"),
	"Java":       lipgloss.Color("#dc2626"),
	"HTML":       lipgloss.Color("#ea580c"),
	"CSS":        lipgloss.Color("#9333ea"),
	"Go":         lipgloss.Color("#0891b2"),
	"Rust":       lipgloss.Color("#c2410c"),
	"PHP":        lipgloss.Color("#4f46e5"),
	"Ruby":       lipgloss.Color("#b91c1c"),
	"C":          lipgloss.Color("#374151"),
	"C++":        lipgloss.Color("#db2777"),
	"C#":         lipgloss.Color("#15803d"),
}

const fallbackLanguageColor = lipgloss.Color("#71717a")

func LanguageColor(lang string) lipgloss.Color {
	if c, ok := languageColors[lang]; ok {
		return c
	}
	return fallbackLanguageColor
}

// LanguageBadge renders a language name on its color.
func LanguageBadge(lang string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(LanguageColor(lang)).
		Padding(0, 1).
		Render(lang)
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color, bold bool) string {
	if len(text) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	runes := []rune(text)
	n := len(runes)

	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b))).Bold(bold)
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// Separator draws a section divider
func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return style.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = max(0, min(v, 255))
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
