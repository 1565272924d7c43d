package app

import (
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// item is one focusable element of the form.
type item int

const (
	itemFirstName item = iota
	itemLastName
	itemEmail
	itemNext
	itemPassword
	itemConfirm
	itemDOB
	itemGender
	itemComments
	itemSave
	itemBack
	itemCount
)

var (
	step1Items = []item{itemFirstName, itemLastName, itemEmail, itemNext}
	step2Items = []item{itemPassword, itemConfirm, itemDOB, itemGender, itemComments, itemSave, itemBack}
)

// itemFields maps form items to the wizard field they edit.
var itemFields = map[item]registration.Field{
	itemFirstName: registration.FieldFirstName,
	itemLastName:  registration.FieldLastName,
	itemEmail:     registration.FieldEmail,
	itemPassword:  registration.FieldPassword,
	itemConfirm:   registration.FieldConfirmPassword,
	itemDOB:       registration.FieldDateOfBirth,
	itemGender:    registration.FieldGender,
	itemComments:  registration.FieldComments,
}

func (i item) isButton() bool {
	return i == itemNext || i == itemSave || i == itemBack
}

func (i item) isText() bool {
	return !i.isButton() && i != itemGender && i != itemCount
}

func newInputs(commentsLimit int) []textinput.Model {
	inputs := make([]textinput.Model, itemCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		inputs[i] = ti
	}

	inputs[itemEmail].Placeholder = "name@university.ac.il"

	for _, i := range []item{itemPassword, itemConfirm} {
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '•'
	}

	inputs[itemDOB].Placeholder = dobPlaceholder
	inputs[itemDOB].CharLimit = len(registration.DateOfBirthLayout)

	inputs[itemComments].CharLimit = commentsLimit

	applyInputStyles(inputs)
	return inputs
}

func applyInputStyles(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(styles.BorderHighlightColor)
	}
}

func (m *Model) restyleInputs() {
	applyInputStyles(m.inputs)
}

func (m Model) currentItems() []item {
	if m.wizard.Step() == registration.Step2 {
		return step2Items
	}
	return step1Items
}

func (m *Model) setFocus(target item) {
	if m.focus.isText() {
		m.inputs[m.focus].Blur()
	}
	m.focus = target
	if target.isText() {
		m.inputs[target].Focus()
	}
}

// moveFocus cycles through the current step's items, wrapping at both ends.
func (m *Model) moveFocus(delta int) {
	items := m.currentItems()
	idx := slices.Index(items, m.focus)
	if idx < 0 {
		m.setFocus(items[0])
		return
	}
	n := len(items)
	m.setFocus(items[((idx+delta)%n+n)%n])
}

func (m *Model) clearInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.gender = registration.GenderUnset
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.focus.isText() {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func cycleGender(g registration.Gender, delta int) registration.Gender {
	opts := registration.GenderOptions
	idx := max(slices.Index(opts, g), 0)
	n := len(opts)
	return opts[((idx+delta)%n+n)%n]
}

func themeFromConfig(t config.ThemeConfig) styles.Theme {
	return styles.Theme{
		Highlight: t.Highlight,
		Subtle:    t.Subtle,
		Error:     t.Error,
		Success:   t.Success,
	}
}
