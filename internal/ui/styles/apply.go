package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme mirrors config.ThemeConfig to keep styles free of the config package.
type Theme struct {
	Highlight string
	Subtle    string
	Error     string
	Success   string
}

// ApplyTheme overrides colors from a theme and rebuilds all styles.
// Empty fields keep the built-in color. Nothing changes if any field is invalid.
func ApplyTheme(t Theme) error {
	for name, value := range map[string]string{
		"highlight": t.Highlight,
		"subtle":    t.Subtle,
		"error":     t.Error,
		"success":   t.Success,
	} {
		if value != "" && !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", name, value)
		}
	}

	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	if t.Highlight != "" {
		BorderHighlightColor = makeColor(t.Highlight)
		ButtonPrimaryFocusBgColor = makeColor(t.Highlight)
	}
	if t.Subtle != "" {
		TextMutedColor = makeColor(t.Subtle)
		BorderDefaultColor = makeColor(t.Subtle)
	}
	if t.Error != "" {
		StatusErrorColor = makeColor(t.Error)
	}
	if t.Success != "" {
		StatusSuccessColor = makeColor(t.Success)
	}

	rebuildStyles()
	return nil
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
