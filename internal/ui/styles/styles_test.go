package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
)

func TestApplyTheme_Overrides(t *testing.T) {
	snapshot := saveColors()
	t.Cleanup(func() { restoreColors(snapshot) })

	err := ApplyTheme(Theme{Highlight: "#00FF00", Error: "#F00"})
	require.NoError(t, err)
	require.Equal(t, "#00FF00", BorderHighlightColor.Dark)
	require.Equal(t, "#F00", StatusErrorColor.Dark)
	require.Equal(t, snapshot.muted, TextMutedColor, "empty fields keep defaults")
}

func TestApplyTheme_InvalidLeavesColorsAlone(t *testing.T) {
	snapshot := saveColors()
	t.Cleanup(func() { restoreColors(snapshot) })

	err := ApplyTheme(Theme{Highlight: "#00FF00", Success: "green"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "success")
	require.Equal(t, snapshot.highlight, BorderHighlightColor)
}

func TestIsValidHexColor(t *testing.T) {
	require.True(t, isValidHexColor("#abc"))
	require.True(t, isValidHexColor("#A1B2C3"))
	require.False(t, isValidHexColor("A1B2C3"))
	require.False(t, isValidHexColor("#12345"))
	require.False(t, isValidHexColor("#GGGGGG"))
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "smith", 10, "smith"},
		{"exact", "smith", 5, "smith"},
		{"cut", "technion", 5, "tech…"},
		{"zero width", "smith", 0, ""},
		{"one cell", "smith", 1, "…"},
		{"wide runes", "日本語テキスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.width)
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, runewidth.StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestPadRight(t *testing.T) {
	require.Equal(t, "ab   ", PadRight("ab", 5))
	require.Equal(t, "abcd…", PadRight("abcdefgh", 5))
}

func TestRenderSection(t *testing.T) {
	out := ansi.Strip(RenderSection([]string{"First Name", "Email"}, "Step 1 of 2", 20))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "╭─ Step 1 of 2 "))
	require.True(t, strings.HasSuffix(lines[0], "╮"))
	require.Equal(t, "│First Name        │", lines[1])
	require.Equal(t, "╰──────────────────╯", lines[3])
	for _, l := range lines {
		require.Equal(t, 20, ansi.StringWidth(l))
	}
}

type colorSnapshot struct {
	highlight, muted, border, errColor, success, focusBg lipgloss.AdaptiveColor
}

func saveColors() colorSnapshot {
	return colorSnapshot{
		highlight: BorderHighlightColor,
		muted:     TextMutedColor,
		border:    BorderDefaultColor,
		errColor:  StatusErrorColor,
		success:   StatusSuccessColor,
		focusBg:   ButtonPrimaryFocusBgColor,
	}
}

func restoreColors(s colorSnapshot) {
	BorderHighlightColor = s.highlight
	TextMutedColor = s.muted
	BorderDefaultColor = s.border
	StatusErrorColor = s.errColor
	StatusSuccessColor = s.success
	ButtonPrimaryFocusBgColor = s.focusBg
	rebuildStyles()
}
