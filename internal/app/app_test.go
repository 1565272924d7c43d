package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return testNow }

func newTestModel(t *testing.T) Model {
	t.Helper()
	w := registration.NewWizard(registration.NewStore(language.English), registration.WithClock(fixedClock{}))
	return New(w, config.Defaults(), "")
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update must return app.Model")
	return out
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

func fillStep1(t *testing.T, m Model, first, last, email string) Model {
	t.Helper()
	m = typeText(t, m, first)
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, last)
	m = press(t, m, tea.KeyTab)
	return typeText(t, m, email)
}

// fillStep2 types the password fields, date of birth, gender (by pressing
// right genderSteps times) and comments.
func fillStep2(t *testing.T, m Model, password, confirm, dob string, genderSteps int, comments string) Model {
	t.Helper()
	m = typeText(t, m, password)
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, confirm)
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, dob)
	m = press(t, m, tea.KeyTab)
	for range genderSteps {
		m = press(t, m, tea.KeyRight)
	}
	m = press(t, m, tea.KeyTab)
	return typeText(t, m, comments)
}

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestModel_StartsOnStep1(t *testing.T) {
	m := newTestModel(t)

	require.Equal(t, registration.Step1, m.Step())
	require.Equal(t, itemFirstName, m.focus)

	view := plainView(m)
	require.Contains(t, view, "Step 1 of 2")
	require.Contains(t, view, "First Name")
	require.Contains(t, view, "Last Name")
	require.Contains(t, view, "Email")
	require.Contains(t, view, "Next")
	require.NotContains(t, view, "Password")
	require.NotContains(t, view, "Last Name │", "no table before the first commit")
}

func TestModel_NextWithInvalidFieldsShowsErrors(t *testing.T) {
	m := newTestModel(t)
	m = fillStep1(t, m, "John", "smith", "john@gmail.com")

	m = press(t, m, tea.KeyCtrlN)

	require.Equal(t, registration.Step1, m.Step())
	require.Equal(t, []string{
		"Input " + registration.MsgName,
		"Input " + registration.MsgEmail,
	}, m.Errors())
	require.True(t, m.invalid[registration.FieldFirstName])
	require.False(t, m.invalid[registration.FieldLastName])
	require.Contains(t, plainView(m), "Input Name is mandatory")
}

func TestModel_ErrorsReplacedOnEverySubmission(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlN)
	require.Len(t, m.Errors(), 3)

	m = fillStep1(t, m, "john", "smith", "bad")
	m = press(t, m, tea.KeyCtrlN)
	require.Equal(t, []string{"Input " + registration.MsgEmail}, m.Errors())
}

func TestModel_FullRegistration(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	m = fillStep1(t, m, "john", "smith", "john@cs.technion.ac.il")

	m = press(t, m, tea.KeyCtrlN)
	require.Equal(t, registration.Step2, m.Step())
	require.Empty(t, m.Errors())
	require.Equal(t, itemPassword, m.focus)

	view := plainView(m)
	require.Contains(t, view, "Step 2 of 2")
	require.Contains(t, view, "Confirm Password")
	require.Contains(t, view, "Please select")
	require.Contains(t, view, "Save")

	m = fillStep2(t, m, "Abcdefg1", "Abcdefg1", "1999-06-15", 1, "hello")
	require.NotContains(t, plainView(m), "Abcdefg1", "passwords are masked while typing")

	m = press(t, m, tea.KeyCtrlS)

	require.Equal(t, registration.Step1, m.Step())
	require.Empty(t, m.Errors())
	require.Equal(t, itemFirstName, m.focus)
	require.Equal(t, 1, m.Wizard().Store().Len())

	got := m.Wizard().Store().List()[0]
	require.Equal(t, "smith", got.LastName)
	require.Equal(t, registration.GenderMale, got.Gender)
	require.Equal(t, "hello", got.Comments)

	for _, it := range []item{itemFirstName, itemLastName, itemEmail, itemPassword, itemConfirm, itemDOB, itemComments} {
		require.Empty(t, m.inputs[it].Value(), "input %d should be cleared", it)
	}
	require.Equal(t, registration.GenderUnset, m.gender)

	view = plainView(m)
	require.Contains(t, view, "Registration saved.")
	require.Contains(t, view, "Date of Birth")
	require.Contains(t, view, "john@cs.technion.ac.il")
	require.Contains(t, view, "Abcdefg1", "the table shows the stored password")
}

func TestModel_SaveFailureStaysOnStep2(t *testing.T) {
	m := newTestModel(t)
	m = fillStep1(t, m, "john", "smith", "john@cs.technion.ac.il")
	m = press(t, m, tea.KeyCtrlN)

	m = fillStep2(t, m, "Abcdefg1", "Abcdefg2", "2015-01-01", 0, "")
	m = press(t, m, tea.KeyCtrlS)

	require.Equal(t, registration.Step2, m.Step())
	require.Equal(t, []string{
		"Input " + registration.MsgPasswordMatch,
		"Input " + registration.MsgDateOfBirth,
		"Input " + registration.MsgGenderRequired,
	}, m.Errors())
	require.Equal(t, 0, m.Wizard().Store().Len())
	require.Contains(t, plainView(m), "Input Passwords do not match")
	require.Equal(t, "Abcdefg1", m.inputs[itemPassword].Value(), "inputs survive a failed save")
}

func TestModel_BackReturnsToStep1(t *testing.T) {
	m := newTestModel(t)
	m = fillStep1(t, m, "john", "smith", "john@cs.technion.ac.il")
	m = press(t, m, tea.KeyCtrlN)
	m = press(t, m, tea.KeyCtrlS)
	require.NotEmpty(t, m.Errors())

	m = press(t, m, tea.KeyEsc)

	require.Equal(t, registration.Step1, m.Step())
	require.Empty(t, m.Errors())
	require.Equal(t, itemFirstName, m.focus)
	require.Equal(t, registration.Draft{}, m.Wizard().Draft())
	require.Equal(t, "john", m.inputs[itemFirstName].Value(), "typed values stay in the form")
}

func TestModel_StepScopedKeys(t *testing.T) {
	m := newTestModel(t)

	// Save and Back do nothing on step 1.
	m = press(t, m, tea.KeyCtrlS)
	require.Empty(t, m.Errors())
	m = press(t, m, tea.KeyEsc)
	require.Equal(t, registration.Step1, m.Step())

	m = fillStep1(t, m, "john", "smith", "john@cs.technion.ac.il")
	m = press(t, m, tea.KeyCtrlN)

	// Next is disabled on step 2.
	m = press(t, m, tea.KeyCtrlN)
	require.Equal(t, registration.Step2, m.Step())
	require.Empty(t, m.Errors())
}

func TestModel_EnterOnButtons(t *testing.T) {
	m := newTestModel(t)
	m = fillStep1(t, m, "john", "smith", "john@cs.technion.ac.il")

	m = press(t, m, tea.KeyEnter)
	require.Equal(t, itemNext, m.focus, "enter in the last input moves to Next")

	m = press(t, m, tea.KeyEnter)
	require.Equal(t, registration.Step2, m.Step())

	m = press(t, m, tea.KeyShiftTab)
	require.Equal(t, itemBack, m.focus, "focus wraps backwards")

	m = press(t, m, tea.KeyEnter)
	require.Equal(t, registration.Step1, m.Step())
}

func TestModel_FocusCycle(t *testing.T) {
	m := newTestModel(t)

	for _, want := range []item{itemLastName, itemEmail, itemNext, itemFirstName} {
		m = press(t, m, tea.KeyTab)
		require.Equal(t, want, m.focus)
	}

	m = press(t, m, tea.KeyShiftTab)
	require.Equal(t, itemNext, m.focus)
	require.False(t, m.inputs[itemEmail].Focused())
}

func TestModel_GenderCycles(t *testing.T) {
	require.Equal(t, registration.GenderMale, cycleGender(registration.GenderUnset, 1))
	require.Equal(t, registration.GenderFemale, cycleGender(registration.GenderMale, 1))
	require.Equal(t, registration.GenderUnset, cycleGender(registration.GenderFemale, 1))
	require.Equal(t, registration.GenderFemale, cycleGender(registration.GenderUnset, -1))
}

func TestModel_ArrowKeysOnlyCycleGenderWhenFocused(t *testing.T) {
	m := newTestModel(t)
	m = fillStep1(t, m, "john", "smith", "john@cs.technion.ac.il")
	m = press(t, m, tea.KeyCtrlN)

	m = press(t, m, tea.KeyRight)
	require.Equal(t, registration.GenderUnset, m.gender, "focus is on the password input")

	for range 3 {
		m = press(t, m, tea.KeyTab)
	}
	require.Equal(t, itemGender, m.focus)
	m = press(t, m, tea.KeyLeft)
	require.Equal(t, registration.GenderFemale, m.gender)
	require.Contains(t, plainView(m), "‹ Female ›")
}

func TestModel_CommentsCharLimit(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, config.DefaultCommentsMaxLength, m.inputs[itemComments].CharLimit)

	m = fillStep1(t, m, "john", "smith", "john@cs.technion.ac.il")
	m = press(t, m, tea.KeyCtrlN)
	m = fillStep2(t, m, "Abcdefg1", "Abcdefg1", "1999-06-15", 2, strings.Repeat("a", 150))

	require.Len(t, m.inputs[itemComments].Value(), config.DefaultCommentsMaxLength)
}

func TestModel_TableHiddenWhenDisabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.UI.ShowTable = false
	w := registration.NewWizard(registration.NewStore(language.English), registration.WithClock(fixedClock{}))
	m := New(w, cfg, "")

	m = fillStep1(t, m, "john", "smith", "john@cs.technion.ac.il")
	m = press(t, m, tea.KeyCtrlN)
	m = fillStep2(t, m, "Abcdefg1", "Abcdefg1", "1999-06-15", 1, "")
	m = press(t, m, tea.KeyCtrlS)

	require.Equal(t, 1, m.Wizard().Store().Len())
	require.NotContains(t, plainView(m), "Date of Birth")
}

func TestModel_TableSortedByLastName(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})

	for _, last := range []string{"smith", "adams"} {
		m = fillStep1(t, m, "john", last, "john@cs.technion.ac.il")
		m = press(t, m, tea.KeyCtrlN)
		m = fillStep2(t, m, "Abcdefg1", "Abcdefg1", "1999-06-15", 1, "")
		m = press(t, m, tea.KeyCtrlS)
		require.Empty(t, m.Errors())
	}

	view := plainView(m)
	adams := strings.Index(view, "adams")
	smith := strings.Index(view, "smith")
	require.Positive(t, adams)
	require.Less(t, adams, smith)
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)
	require.False(t, m.help.ShowAll)
	m = press(t, m, tea.KeyF1)
	require.True(t, m.help.ShowAll)
	require.Contains(t, plainView(m), "next field")
}

func TestModel_QuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ConfigReloadedAppliesTheme(t *testing.T) {
	before := styles.StatusErrorColor
	t.Cleanup(func() {
		require.NoError(t, styles.ApplyTheme(styles.Theme{Error: before.Dark}))
	})

	m := newTestModel(t)
	m = update(t, m, ConfigReloadedMsg{Theme: config.ThemeConfig{Error: "#123456"}})
	require.Equal(t, "#123456", styles.StatusErrorColor.Dark)

	// A failed reload keeps the current theme.
	m = update(t, m, ConfigReloadedMsg{Err: os.ErrNotExist})
	require.Equal(t, "#123456", styles.StatusErrorColor.Dark)
	require.Equal(t, registration.Step1, m.Step())
}

func TestWatchConfig_LoadsThemeOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  success: \"#00AA00\"\n"), 0o600))

	changes := make(chan struct{}, 1)
	changes <- struct{}{}

	msg := watchConfig(path, changes)()
	reloaded, ok := msg.(ConfigReloadedMsg)
	require.True(t, ok)
	require.NoError(t, reloaded.Err)
	require.Equal(t, "#00AA00", reloaded.Theme.Success)
}

func TestWatchConfig_InvalidThemeIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  error: red\n"), 0o600))

	changes := make(chan struct{}, 1)
	changes <- struct{}{}

	reloaded, ok := watchConfig(path, changes)().(ConfigReloadedMsg)
	require.True(t, ok)
	require.Error(t, reloaded.Err)
}

func TestWatchConfig_ClosedChannelStops(t *testing.T) {
	changes := make(chan struct{})
	close(changes)
	require.Nil(t, watchConfig("unused", changes)())
}

func TestModel_WatchesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(path))

	w := registration.NewWizard(registration.NewStore(language.English))
	m := New(w, config.Defaults(), path)
	t.Cleanup(func() { _ = m.Close() })

	require.NotNil(t, m.watcherHandle)
	require.NotNil(t, m.Init())
	require.NoError(t, m.Close())
	require.Nil(t, m.watcherHandle)
	require.NoError(t, m.Close(), "Close is idempotent")
}
