// Package table renders the accepted registrations as a fixed-column table.
//
// The table is a pure render component: callers own the rows and pass them
// in with SetRows. Each column supplies a Render callback that extracts and
// formats its cell; the table handles widths, truncation and alignment.
package table

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ColumnConfig defines a single table column.
//
// Width configuration:
//   - Width: fixed width in cells (0 = flex)
//   - MinWidth: minimum width for flex columns
//   - MaxWidth: maximum width for flex columns (0 = no limit)
//   - Priority: flex columns with higher priority grow to fit their content first
type ColumnConfig struct {
	Key      string
	Header   string
	Width    int
	MinWidth int
	MaxWidth int
	Priority int
	Align    lipgloss.Position

	// Render returns the cell text for row. The result is truncated to width.
	Render func(row any, key string, width int) string
}

// Config defines the complete table configuration.
type Config struct {
	Columns      []ColumnConfig
	ShowHeader   bool
	EmptyMessage string // Rendered when there are no rows; empty renders nothing
	MaxRows      int    // Rows shown before scrolling (0 = unlimited)
}

// ValidateConfig returns an error if there are no columns or a column has no Render callback.
func ValidateConfig(cfg Config) error {
	if len(cfg.Columns) == 0 {
		return errors.New("table config: at least one column is required")
	}
	for i, col := range cfg.Columns {
		if col.Render == nil {
			if col.Key != "" {
				return fmt.Errorf("table config: column %q has nil Render callback", col.Key)
			}
			return fmt.Errorf("table config: column %d has nil Render callback", i)
		}
	}
	return nil
}
