package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/plus3/tetrad/tetris"
)

func (m Model) View() string {
	snap := m.session.Snapshot()

	board := styleBoard.Render(renderBoard(snap))
	side := lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render("tetrad"),
		"",
		renderScore(snap),
		"",
		styleHeader.Render("Hold"),
		renderHold(snap),
		"",
		styleHeader.Render("Next"),
		renderPreview(snap),
	)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", side))
	b.WriteString("\n")
	if status := m.status(snap); status != "" {
		b.WriteString(styleBanner.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(styleDim.Render(m.help()))
	b.WriteString("\n")
	return b.String()
}

func renderBoard(snap tetris.Snapshot) string {
	var b strings.Builder
	for row, cells := range snap.Rows() {
		if row > 0 {
			b.WriteString("\n")
		}
		for _, c := range cells {
			b.WriteString(renderCell(c))
		}
	}
	return b.String()
}

func renderScore(snap tetris.Snapshot) string {
	rows := [][]string{
		{"Score", strconv.Itoa(snap.Score)},
		{"Lines", strconv.Itoa(snap.Lines)},
		{"Level", strconv.Itoa(snap.Level)},
		{"Pieces", strconv.Itoa(snap.Stats.Pieces())},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHeader
			}
			return styleValue.Align(lipgloss.Right)
		})
	return t.Render()
}

func renderHold(snap tetris.Snapshot) string {
	if !snap.HasHeld {
		return styleDim.Render("-")
	}
	mini := renderMini(snap.Held)
	if !snap.CanHold {
		return styleDim.Render(mini)
	}
	return mini
}

func renderPreview(snap tetris.Snapshot) string {
	if len(snap.Preview) == 0 {
		return styleDim.Render("-")
	}
	parts := make([]string, len(snap.Preview))
	for i, v := range snap.Preview {
		parts[i] = renderMini(v)
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) status(snap tetris.Snapshot) string {
	switch {
	case snap.State == tetris.StateGameOver && snap.Quitted:
		return fmt.Sprintf("QUIT  score %d", snap.Score)
	case snap.State == tetris.StateGameOver:
		return fmt.Sprintf("GAME OVER  score %d", snap.Score)
	case m.Paused():
		return "PAUSED"
	case m.player != nil:
		return "DEMO"
	}
	return ""
}

// helpLabels orders the intents shown in the help line.
var helpLabels = []struct {
	intent tetris.Intent
	label  string
}{
	{tetris.IntentMoveLeft, "left"},
	{tetris.IntentMoveRight, "right"},
	{tetris.IntentRotateCW, "cw"},
	{tetris.IntentRotateCCW, "ccw"},
	{tetris.IntentSoftDrop, "soft"},
	{tetris.IntentHardDrop, "drop"},
	{tetris.IntentHold, "hold"},
}

// help lists the shortest key bound to each intent.
func (m Model) help() string {
	var parts []string
	if m.player == nil {
		for _, h := range helpLabels {
			if keys := m.keys.Keys(h.intent); len(keys) > 0 {
				parts = append(parts, keyName(keys[0])+" "+h.label)
			}
		}
	}
	parts = append(parts, "p pause")
	if keys := m.keys.Keys(tetris.IntentQuit); len(keys) > 0 {
		parts = append(parts, keyName(keys[0])+" quit")
	}
	return strings.Join(parts, "  ")
}

func keyName(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
