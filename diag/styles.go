package diag

import "github.com/charmbracelet/lipgloss"

// Styles controls how reports are coloured.
type Styles struct {
	Header  lipgloss.Style
	Gutter  lipgloss.Style
	Caret   lipgloss.Style
	Label   lipgloss.Style
	Palette []lipgloss.Style
	enabled bool
}

// Plain returns styles that leave text untouched.
func Plain() Styles {
	return Styles{}
}

// Color returns coloured styles bound to r. A nil renderer uses the
// lipgloss default renderer.
func Color(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	palette := make([]lipgloss.Style, 0, 7)
	for _, c := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		palette = append(palette, r.NewStyle().Bold(true).Foreground(lipgloss.Color(c)))
	}

	return Styles{
		Header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")),
		Gutter: r.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		Caret: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")),
		Palette: palette,
		enabled: true,
	}
}

// Enabled reports whether s applies any styling.
func (s Styles) Enabled() bool {
	return s.enabled
}

func (s Styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

// paint colours text with the palette entry for index i.
func (s Styles) paint(i int, text string) string {
	if !s.enabled || len(s.Palette) == 0 {
		return text
	}
	return s.Palette[i%len(s.Palette)].Render(text)
}
