// Package list provides the sectioned, navigable row list used by every TUI view.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/tui/styles"
)

// ResultList draws titled sections of rows. One cursor runs across all
// sections; only the views move it.
type ResultList struct {
	sections []Section
	rows     []Row // every section's rows, in display order
	selected int
	empty    string
	styles   *styles.Styles

	width, height int
}

func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &ResultList{empty: "No results", styles: s, width: 80, height: 10}
}

// window returns the half-open range of rows that fits, keeping the
// selection on screen. Each section header costs two lines.
func (r *ResultList) window() (start, end int) {
	visible := max(r.height-2*len(r.sections), 1)
	start = max(r.selected-visible+1, 0)
	return start, min(start+visible, len(r.rows))
}

func (r *ResultList) View() string {
	if len(r.rows) == 0 {
		return r.styles.Muted.Render(r.empty)
	}
	start, end := r.window()

	var lines []string
	index := 0
	for _, section := range r.sections {
		headed := false
		for _, row := range section.Rows {
			if index >= start && index < end {
				if !headed {
					if len(lines) > 0 {
						lines = append(lines, "")
					}
					lines = append(lines, r.styles.Section.Render(fmt.Sprintf("%s (%d)", section.Title, len(section.Rows))))
					headed = true
				}
				lines = append(lines, r.renderRow(index, row))
			}
			index++
		}
	}
	return strings.Join(lines, "\n")
}

func (r *ResultList) labelWidth() int {
	return max(r.width-40, 10)
}

func (r *ResultList) renderRow(index int, row Row) string {
	cursor, style := "  ", r.styles.Normal
	if index == r.selected {
		cursor, style = "> ", r.styles.Selected
	}
	marker := " "
	if row.Color != "" {
		marker = r.styles.Marker(row.Color)
	}

	width := r.labelWidth()
	label := ansi.Truncate(row.Label, width, "…")
	label += strings.Repeat(" ", max(width-ansi.StringWidth(label), 0))

	// Coordinate rows are labelled with their own readout.
	readout := row.Point.Readout()
	if readout == row.Label {
		readout = ""
	}

	line := cursor + marker + " " + style.Render(label+"  "+readout)
	if row.Detail != "" {
		line += "  " + r.styles.Muted.Render(row.Detail)
	}
	return line
}

// SetSections replaces the list content and resets the selection.
func (r *ResultList) SetSections(sections []Section) {
	r.sections = sections
	r.rows = nil
	for _, s := range sections {
		r.rows = append(r.rows, s.Rows...)
	}
	r.selected = 0
}

func (r *ResultList) Sections() []Section { return r.sections }
func (r *ResultList) Selected() int       { return r.selected }
func (r *ResultList) Width() int          { return r.width }
func (r *ResultList) Height() int         { return r.height }
func (r *ResultList) Count() int          { return len(r.rows) }
func (r *ResultList) IsEmpty() bool       { return len(r.rows) == 0 }

// SetEmptyText replaces the "No results" placeholder.
func (r *ResultList) SetEmptyText(text string) { r.empty = text }

// SetSelected ignores indices outside the list.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.rows) {
		r.selected = index
	}
}

// SelectedRow returns nil for an empty list.
func (r *ResultList) SelectedRow() *Row {
	if r.selected < 0 || r.selected >= len(r.rows) {
		return nil
	}
	return &r.rows[r.selected]
}

func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

func (r *ResultList) MoveDown() {
	if r.selected < len(r.rows)-1 {
		r.selected++
	}
}

func (r *ResultList) SetDimensions(width, height int) {
	r.width, r.height = width, height
}
