package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))

// table lays out left-aligned columns separated by two spaces.
type table struct {
	header  []string
	rows    [][]string
	maxCell int // 0 keeps cells whole
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer, styled bool) error {
	widths := make([]int, len(t.header))
	measure := func(cells []string) {
		for i, c := range cells {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(t.cell(c)))
			}
		}
	}
	measure(t.header)
	for _, r := range t.rows {
		measure(r)
	}

	var sb strings.Builder
	line := func(cells []string, header bool) {
		var lb strings.Builder
		for i, c := range cells {
			if i >= len(widths) {
				break
			}
			c = t.cell(c)
			if i < len(cells)-1 {
				c = runewidth.FillRight(c, widths[i]) + "  "
			}
			lb.WriteString(c)
		}
		text := strings.TrimRight(lb.String(), " ")
		if header && styled {
			text = headerStyle.Render(text)
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	line(t.header, true)
	for _, r := range t.rows {
		line(r, false)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *table) cell(value string) string {
	return truncate(value, t.maxCell)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
