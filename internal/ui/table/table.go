package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/signup/internal/ui/styles"
)

// Model holds table rendering state.
type Model struct {
	config Config
	rows   []any
	width  int
	offset int
}

// New creates a table with the given configuration.
// Panics if the configuration is invalid.
func New(cfg Config) Model {
	if err := ValidateConfig(cfg); err != nil {
		panic(err)
	}
	return Model{config: cfg}
}

// SetRows replaces the row data and keeps the newest rows reachable.
func (m Model) SetRows(rows []any) Model {
	m.rows = rows
	m.offset = m.clamp(m.offset)
	return m
}

// SetWidth sets the available width in cells.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// RowCount returns the number of rows in the table.
func (m Model) RowCount() int {
	return len(m.rows)
}

// Offset returns the index of the first visible row.
func (m Model) Offset() int {
	return m.offset
}

var (
	scrollUp   = key.NewBinding(key.WithKeys("pgup"))
	scrollDown = key.NewBinding(key.WithKeys("pgdown"))
)

// Update scrolls the table with page up and page down.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.config.MaxRows <= 0 {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scrollUp):
			m.offset = m.clamp(m.offset - m.config.MaxRows)
		case key.Matches(msg, scrollDown):
			m.offset = m.clamp(m.offset + m.config.MaxRows)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.offset = m.clamp(m.offset - 1)
		case tea.MouseButtonWheelDown:
			m.offset = m.clamp(m.offset + 1)
		}
	}
	return m, nil
}

func (m Model) clamp(offset int) int {
	if m.config.MaxRows <= 0 {
		return 0
	}
	maxOffset := max(len(m.rows)-m.config.MaxRows, 0)
	return min(max(offset, 0), maxOffset)
}

// View renders the header, a rule and the visible rows.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	if len(m.rows) == 0 {
		if m.config.EmptyMessage == "" {
			return ""
		}
		return styles.HintStyle.Render(styles.TruncateString(m.config.EmptyMessage, m.width))
	}

	widths := columnWidths(m.config.Columns, m.rows, m.width)

	var lines []string
	if m.config.ShowHeader {
		lines = append(lines, renderHeader(m.config.Columns, widths), renderRule(widths))
	}

	end := len(m.rows)
	if m.config.MaxRows > 0 {
		end = min(m.offset+m.config.MaxRows, len(m.rows))
	}
	for _, row := range m.rows[m.offset:end] {
		lines = append(lines, renderRow(row, m.config.Columns, widths))
	}

	if end-m.offset < len(m.rows) {
		lines = append(lines, styles.HintStyle.Render(
			fmt.Sprintf("rows %d-%d of %d (pgup/pgdown)", m.offset+1, end, len(m.rows))))
	}

	return strings.Join(lines, "\n")
}
