package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"suah.dev/chipflow/flow"
)

const defaultTermWidth = 80

var (
	chipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	chipErrorStyle = chipStyle.Background(lipgloss.Color("#FF6B6B"))
)

func termWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}

// printChips wraps rendered chips to width cells with spacing cells
// between them. Rows are written one per line.
func printChips(out io.Writer, chips []Chip, failed bool, width, spacing int) error {
	style := chipStyle
	if failed {
		style = chipErrorStyle
	}

	rendered := make(map[string]string, len(chips))
	sizes := make(map[string]fyne.Size, len(chips))
	ids := make([]string, 0, len(chips))
	for _, c := range chips {
		r := style.Render(c.Label)
		rendered[c.ID] = r
		sizes[c.ID] = fyne.NewSize(float32(lipgloss.Width(r)), float32(lipgloss.Height(r)))
		ids = append(ids, c.ID)
	}

	gap := strings.Repeat(" ", spacing)
	for _, row := range flow.ComputeRows(float32(width), ids, sizes, float32(spacing)) {
		parts := make([]string, 0, len(row))
		for _, id := range row {
			parts = append(parts, rendered[id])
		}
		if _, err := fmt.Fprintln(out, strings.Join(parts, gap)); err != nil {
			return err
		}
	}
	return nil
}
