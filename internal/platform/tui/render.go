package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette holds the ANSI color for each core.Color. ColorDefault has no
// entry and renders unstyled.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// ScreenRenderer turns a core.Screen into styled terminal output. Styles are
// bound to one lipgloss renderer so SSH sessions get the client's color
// profile instead of the server's.
type ScreenRenderer struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
	footer lipgloss.Style
}

// NewScreenRenderer builds styles for r. A nil r uses the default renderer
// bound to stdout.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(palette)),
		footer: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for c, ansi := range palette {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(ansi))
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	return sr.plain
}

// Render converts a Screen buffer to a styled string. Adjacent cells with the
// same color share one escape sequence.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(sr.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// Footer styles the help line under the playfield.
func (sr *ScreenRenderer) Footer(text string) string {
	return sr.footer.Render(text)
}
