package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/lists/internal/model"
	"github.com/idilsaglam/lists/internal/store"
	"github.com/idilsaglam/lists/internal/ui"
)

const (
	defaultWidth = 80
	minColumn    = 24
)

func (m Model) View() string {
	t := ui.Current()
	m.syncKeys()

	var b strings.Builder
	b.WriteString(t.Title.Render("List Creation"))
	b.WriteString("\n\n")

	switch m.store.Mode() {
	case store.ModeLoading:
		b.WriteString(m.spinner.View() + " Loading lists…")
	case store.ModeError:
		b.WriteString(m.failureView())
	default:
		b.WriteString(m.listsView())
		b.WriteString("\n")
		b.WriteString(m.statusLine())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) failureView() string {
	t := ui.Current()
	lines := []string{t.Error.Render("Something went wrong")}
	if err := m.store.Err(); err != nil {
		lines = append(lines, t.Muted.Render(ui.Truncate(err.Error(), m.viewWidth()-4)))
	}
	lines = append(lines, "", "Press r to retry.")
	return strings.Join(lines, "\n")
}

func (m Model) statusLine() string {
	t := ui.Current()
	if m.alert != "" {
		return t.Error.Render(t.SymFail + " " + m.alert)
	}
	var hint string
	if m.store.Mode() == store.ModeCreating {
		hint = fmt.Sprintf("Building List %d: %d item(s). u to update, esc to cancel.",
			m.store.NextListNumber(), len(m.store.Staged()))
	} else {
		hint = fmt.Sprintf("%d of 2 lists selected. Press c to create a new list.", m.store.SelectedCount())
	}
	if d := m.store.Dropped(); d > 0 {
		hint += fmt.Sprintf(" (%d item(s) outside lists 1 and 2 skipped)", d)
	}
	return t.Muted.Render(hint)
}

func (m Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// listsView lays the columns out left to right, wrapping onto further rows
// when the terminal is too narrow for all of them.
func (m Model) listsView() string {
	creating := m.store.Mode() == store.ModeCreating
	var cols []string
	for i, l := range m.store.Lists() {
		cols = append(cols, m.listColumn(i, l, creating))
	}
	if creating {
		cols = append(cols, m.stagingColumn())
	}

	perRow := m.perRow()
	var rows []string
	for start := 0; start < len(cols); start += perRow {
		end := min(start+perRow, len(cols))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) perRow() int {
	return max(1, min(m.columns(), m.viewWidth()/minColumn))
}

func (m Model) columnWidth() int {
	// border takes two cells
	return max(minColumn, m.viewWidth()/m.perRow()) - 2
}

// itemRows is how many items a column shows at once so the whole view fits
// in the window. Zero means no limit (size not known yet).
func (m Model) itemRows() int {
	if m.height <= 0 {
		return 0
	}
	// title + blank, status line, blank + help
	chrome := 2 + 1 + 1 + lipgloss.Height(m.help.View(m.keys))
	rows := (m.columns() + m.perRow() - 1) / m.perRow()
	// border (2), header + blank (2)
	per := (m.height-chrome)/max(1, rows) - 4
	return max(1, per)
}

// window returns the [start, end) slice of n items to draw so that cursor
// stays visible.
func window(n, cursor, size int) (int, int) {
	if size <= 0 || n <= size {
		return 0, n
	}
	start := 0
	if cursor >= size {
		start = cursor - size + 1
	}
	return start, min(n, start+size)
}

func (m Model) listColumn(i int, l store.List, creating bool) string {
	t := ui.Current()
	box := t.BoxUnchecked
	header := fmt.Sprintf("List %d", i+1)
	selected := m.store.Selected(i)
	if selected {
		box = t.BoxChecked
		header = t.Selected.Render(header)
	}
	arrow := ""
	if selected && creating {
		arrow = t.ArrowRight
	}
	return m.column(box+" "+header, l.Items, m.cursors[l.ID], m.focus == i, arrow)
}

func (m Model) stagingColumn() string {
	t := ui.Current()
	header := t.Accent.Render(fmt.Sprintf("List %d", m.store.NextListNumber())) + t.Muted.Render(" (new)")
	return m.column(header, m.store.Staged(), m.stagedCursor, m.onStaging(), t.ArrowLeft)
}

func (m Model) column(header string, items []model.Item, cursor int, focused bool, arrow string) string {
	t := ui.Current()
	width := m.columnWidth()
	// padding, cursor prefix, arrow suffix
	labelWidth := width - 2 - 2
	if arrow != "" {
		labelWidth -= ansi.StringWidth(arrow) + 1
	}

	start, end := window(len(items), cursor, m.itemRows())
	if start > 0 || end < len(items) {
		header += t.Muted.Render(fmt.Sprintf(" %d-%d/%d", start+1, end, len(items)))
	}
	lines := []string{ui.Truncate(header, width-2), ""}
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render("(empty)"))
	}
	for i := start; i < end; i++ {
		label := ui.Truncate(items[i].Label(), labelWidth)
		line := "  " + label
		if focused && i == cursor {
			line = t.Cursor.Render("> " + label)
		}
		if arrow != "" {
			line += " " + t.Muted.Render(arrow)
		}
		lines = append(lines, line)
	}

	border := t.BorderColor
	if focused {
		border = t.FocusColor
	}
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
