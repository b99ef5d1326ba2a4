package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// palette holds the ANSI code of each core.Color, indexed by the color.
var palette = [...]string{
	core.ColorDefault:      "",
	core.ColorRed:          "1",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for i, code := range palette {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns the screen into a styled string. Cells are written in
// runs of one color; blank runs go out unstyled since most of the playfield
// is empty sky.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			first := s.GetCell(x, y)
			blank := first.Rune == ' '
			run = run[:0]
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if blank {
					if cell.Rune != ' ' {
						break
					}
				} else if cell.Rune == ' ' || cell.Color != first.Color {
					break
				}
				run = append(run, cell.Rune)
			}
			if blank {
				sb.WriteString(string(run))
				continue
			}
			sb.WriteString(styleFor(first.Color).Render(string(run)))
		}
	}
	return sb.String()
}
