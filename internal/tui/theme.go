package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/anuvad/internal/prefs"
	"github.com/jask/anuvad/internal/widget"
)

// ---------------------------------------------------------------------------
// Catppuccin palettes, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

// Palette is the subset of a Catppuccin flavour the widget draws with.
type Palette struct {
	Pink     lipgloss.Color
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color
	Lavender lipgloss.Color

	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Overlay1 lipgloss.Color
	Overlay0 lipgloss.Color
	Surface1 lipgloss.Color
	Surface0 lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color
}

// Latte is the light flavour.
var Latte = Palette{
	Pink:     "#ea76cb",
	Mauve:    "#8839ef",
	Red:      "#d20f39",
	Peach:    "#fe640b",
	Yellow:   "#df8e1d",
	Green:    "#40a02b",
	Teal:     "#179299",
	Blue:     "#1e66f5",
	Lavender: "#7287fd",
	Text:     "#4c4f69",
	Subtext0: "#6c6f85",
	Overlay1: "#8c8fa1",
	Overlay0: "#9ca0b0",
	Surface1: "#bcc0cc",
	Surface0: "#ccd0da",
	Base:     "#eff1f5",
	Mantle:   "#e6e9ef",
}

// Mocha is the dark flavour.
var Mocha = Palette{
	Pink:     "#f5c2e7",
	Mauve:    "#cba6f7",
	Red:      "#f38ba8",
	Peach:    "#fab387",
	Yellow:   "#f9e2af",
	Green:    "#a6e3a1",
	Teal:     "#94e2d5",
	Blue:     "#89b4fa",
	Lavender: "#b4befe",
	Text:     "#cdd6f4",
	Subtext0: "#a6adc8",
	Overlay1: "#7f849c",
	Overlay0: "#6c7086",
	Surface1: "#45475a",
	Surface0: "#313244",
	Base:     "#1e1e2e",
	Mantle:   "#181825",
}

// PaletteFor maps a theme preference to its flavour.
func PaletteFor(t prefs.Theme) Palette {
	if t == prefs.ThemeDark {
		return Mocha
	}
	return Latte
}

// AllColors lists every color in p, for validation.
func (p Palette) AllColors() []lipgloss.Color {
	return []lipgloss.Color{
		p.Pink, p.Mauve, p.Red, p.Peach, p.Yellow, p.Green, p.Teal, p.Blue, p.Lavender,
		p.Text, p.Subtext0, p.Overlay1, p.Overlay0, p.Surface1, p.Surface0, p.Base, p.Mantle,
	}
}

// Styles are the rendered looks for one theme.
type Styles struct {
	App            lipgloss.Style
	Title          lipgloss.Style
	ThemeBadge     lipgloss.Style
	Pane           lipgloss.Style
	PaneTitle      lipgloss.Style
	Output         lipgloss.Style
	Placeholder    lipgloss.Style
	Counter        lipgloss.Style
	Elapsed        lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Note           lipgloss.Style
	Help           lipgloss.Style

	notify map[widget.Severity]lipgloss.Style
}

// NewStyles builds the styles for theme t.
func NewStyles(t prefs.Theme) Styles {
	p := PaletteFor(t)
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface1).
		Padding(0, 1)
	badge := lipgloss.NewStyle().Padding(0, 1).Foreground(p.Base)

	return Styles{
		App:            lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1),
		Title:          lipgloss.NewStyle().Bold(true).Foreground(p.Mauve),
		ThemeBadge:     badge.Background(p.Lavender),
		Pane:           pane,
		PaneTitle:      lipgloss.NewStyle().Bold(true).Foreground(p.Blue),
		Output:         lipgloss.NewStyle().Foreground(p.Text),
		Placeholder:    lipgloss.NewStyle().Italic(true).Foreground(p.Overlay1),
		Counter:        lipgloss.NewStyle().Foreground(p.Subtext0),
		Elapsed:        lipgloss.NewStyle().Foreground(p.Teal),
		Button:         lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(p.Base).Background(p.Mauve),
		ButtonDisabled: lipgloss.NewStyle().Padding(0, 2).Foreground(p.Overlay0).Background(p.Surface0),
		Note:           lipgloss.NewStyle().Italic(true).Foreground(p.Peach),
		Help:           lipgloss.NewStyle().Foreground(p.Overlay1),
		notify: map[widget.Severity]lipgloss.Style{
			widget.SeverityInfo:    badge.Background(p.Teal),
			widget.SeveritySuccess: badge.Background(p.Green),
			widget.SeverityWarning: badge.Background(p.Yellow),
			widget.SeverityError:   badge.Background(p.Red),
		},
	}
}

// Notification returns the style for a severity, info for unknown ones.
func (s Styles) Notification(sev widget.Severity) lipgloss.Style {
	if st, ok := s.notify[sev]; ok {
		return st
	}
	return s.notify[widget.SeverityInfo]
}
