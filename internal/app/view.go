package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const (
	zoneNext = "signup-next"
	zoneSave = "signup-save"
	zoneBack = "signup-back"
)

func fieldZoneID(i item) string {
	return fmt.Sprintf("signup-field-%d", i)
}

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{m.renderForm()}

	if block := m.renderMessages(); block != "" {
		sections = append(sections, block)
	}

	if m.showTable && m.wizard.Store().Len() > 0 {
		sections = append(sections, m.records.View())
	}

	sections = append(sections, m.help.View(m.keys))

	return zone.Scan(strings.Join(sections, "\n\n"))
}

func (m Model) renderForm() string {
	var lines []string
	title := "Step 1 of 2"

	if m.wizard.Step() == registration.Step2 {
		title = "Step 2 of 2"
		for _, i := range []item{itemPassword, itemConfirm, itemDOB} {
			lines = append(lines, m.renderInput(i)...)
		}
		lines = append(lines, m.renderGender()...)
		lines = append(lines, m.renderInput(itemComments)...)
		lines = append(lines, "", " "+m.renderButton(itemSave, "Save", true)+"  "+m.renderButton(itemBack, "Back", false))
	} else {
		for _, i := range []item{itemFirstName, itemLastName, itemEmail} {
			lines = append(lines, m.renderInput(i)...)
		}
		lines = append(lines, "", " "+m.renderButton(itemNext, "Next", true))
	}

	return styles.RenderSection(lines, title, m.formWidth())
}

func (m Model) renderLabel(i item) string {
	field := itemFields[i]
	style := styles.LabelStyle
	switch {
	case m.invalid[field]:
		style = styles.ErrorStyle
	case m.focus == i:
		style = styles.LabelFocusedStyle
	}
	return " " + style.Render(field.Label())
}

func (m Model) renderInput(i item) []string {
	marker := "  "
	if m.focus == i {
		marker = lipgloss.NewStyle().Foreground(styles.BorderHighlightColor).Render("> ")
	}
	return []string{
		m.renderLabel(i),
		zone.Mark(fieldZoneID(i), " "+marker+m.inputs[i].View()),
	}
}

func (m Model) renderGender() []string {
	value := m.gender.Label()
	valueStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	if m.gender == registration.GenderUnset {
		valueStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
	}

	marker := "  "
	line := valueStyle.Render(value)
	if m.focus == itemGender {
		marker = lipgloss.NewStyle().Foreground(styles.BorderHighlightColor).Render("> ")
		line = styles.HintStyle.Render("‹ ") + line + styles.HintStyle.Render(" ›")
	}

	return []string{
		m.renderLabel(itemGender),
		zone.Mark(fieldZoneID(itemGender), " "+marker+line),
	}
}

func (m Model) renderButton(i item, label string, primary bool) string {
	style := styles.SecondaryButtonStyle
	switch {
	case primary && m.focus == i:
		style = styles.PrimaryButtonFocusedStyle
	case primary:
		style = styles.PrimaryButtonStyle
	case m.focus == i:
		style = styles.SecondaryButtonFocusedStyle
	}

	return zone.Mark(buttonZoneID(i), style.Render(label))
}

// renderMessages renders the error block, or the status line after a commit.
func (m Model) renderMessages() string {
	if len(m.errors) == 0 {
		if m.status == "" {
			return ""
		}
		return styles.SuccessStyle.Render(m.status)
	}

	wrap := m.formWidth()
	lines := make([]string, len(m.errors))
	for i, e := range m.errors {
		lines[i] = styles.ErrorStyle.Render(wordwrap.String(e, wrap))
	}
	return strings.Join(lines, "\n")
}
