package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/tetrad/tetris"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBanner = lipgloss.NewStyle().Bold(true).Foreground(colorRed).Padding(0, 1)
	styleBoard  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
)

// Cell glyphs; every cell is two columns wide so the board looks square.
const (
	glyphSolid = "■ "
	glyphGhost = "□ "
)

func rgb(c tetris.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func renderCell(c tetris.Cell) string {
	style := lipgloss.NewStyle().Foreground(rgb(c.Color))
	switch c.Glyph {
	case tetris.GlyphGhost:
		return style.Render(glyphGhost)
	case tetris.GlyphActive:
		return style.Bold(true).Render(glyphSolid)
	default:
		return style.Render(glyphSolid)
	}
}

// renderMini draws variant v in its spawn orientation inside a 2×4 box.
func renderMini(v tetris.Variant) string {
	var grid [2][4]bool
	for _, p := range tetris.Offsets(v, tetris.RotationSpawn) {
		// The I spawn state sits on the second row of its box.
		row := p.Row
		if v == tetris.I {
			row--
		}
		grid[row][p.Col] = true
	}

	style := lipgloss.NewStyle().Foreground(rgb(v.Color()))
	var out string
	for row := range grid {
		if row > 0 {
			out += "\n"
		}
		for _, on := range grid[row] {
			if on {
				out += style.Render(glyphSolid)
			} else {
				out += "  "
			}
		}
	}
	return out
}
