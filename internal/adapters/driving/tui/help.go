package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const keyColumn = 10

type helpSection struct {
	title string
	rows  [][2]string
}

var helpSections = []helpSection{
	{"Search", [][2]string{
		{"(type)", `Coordinates "x, z", a pin name, a structure or a biome`},
		{"tab", "Complete a structure or biome name"},
		{"↑/↓", "Recall previous queries"},
		{"enter", "Submit search"},
	}},
	{"Results", [][2]string{
		{"j/k, ↑/↓", "Navigate results"},
		{"g", "Go to the selected result"},
		{"enter", "Actions (go here, save as pin)"},
		{"n", "New search"},
	}},
	{"Pins", [][2]string{
		{"g, enter", "Go to pin"},
		{"t", "Cycle tag filter"},
		{"d", "Remove pin"},
	}},
	{"Recent locations", [][2]string{
		{"g, enter", "Go to location"},
		{"d", "Remove location"},
	}},
	{"Everywhere", [][2]string{
		{"esc", "Back to menu"},
		{"ctrl+c", "Quit"},
	}},
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, section := range helpSections {
		b.WriteString(a.styles.Section.Render(section.title + ":"))
		b.WriteByte('\n')
		for _, row := range section.rows {
			pad := max(keyColumn-lipgloss.Width(row[0]), 0)
			fmt.Fprintf(&b, "  %s%s  %s\n", row[0], strings.Repeat(" ", pad), row[1])
		}
		b.WriteByte('\n')
	}
	b.WriteString(a.styles.Muted.Render("[esc] back to menu"))
	return b.String()
}
