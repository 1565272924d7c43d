// Package app contains the root application model: a Bubble Tea front end
// driving a registration.Wizard.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
	"github.com/zjrosen/signup/internal/ui/table"
	"github.com/zjrosen/signup/internal/watcher"
)

const (
	defaultWidth   = 80
	maxFormWidth   = 72
	tableMaxRows   = 10
	dobPlaceholder = "YYYY-MM-DD"
)

// Model is the root application state.
type Model struct {
	wizard *registration.Wizard

	inputs  []textinput.Model // indexed by item; only text items are used
	gender  registration.Gender
	focus   item
	invalid map[registration.Field]bool

	errors []string
	status string

	records   table.Model
	showTable bool

	keys keys.KeyMap
	help help.Model

	width int

	configPath    string
	watcherHandle *watcher.Watcher
	changes       <-chan struct{}
}

// New creates the application model for w.
// When configPath is set the file is watched and theme edits are applied live.
func New(w *registration.Wizard, cfg config.Config, configPath string) Model {
	m := Model{
		wizard:     w,
		inputs:     newInputs(cfg.UI.CommentsMaxLength),
		invalid:    map[registration.Field]bool{},
		records:    table.NewRecords(tableMaxRows),
		showTable:  cfg.UI.ShowTable,
		keys:       keys.DefaultKeyMap().ForStep1(),
		help:       help.New(),
		configPath: configPath,
	}
	m.setWidth(defaultWidth)
	m.refreshRecords()
	m.setFocus(itemFirstName)

	if configPath != "" {
		wt, err := watcher.New(watcher.DefaultConfig(configPath))
		if err != nil {
			log.ErrorErr(log.CatWatcher, "creating config watcher", err)
			return m
		}
		changes, err := wt.Start()
		if err != nil {
			log.ErrorErr(log.CatWatcher, "starting config watcher", err, "path", configPath)
			_ = wt.Stop()
			return m
		}
		m.watcherHandle = wt
		m.changes = changes
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.changes != nil {
		cmds = append(cmds, watchConfig(m.configPath, m.changes))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWidth(msg.Width)
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m.next(), nil
	case key.Matches(msg, m.keys.Save):
		return m.save(), nil
	case key.Matches(msg, m.keys.Back):
		return m.back(), nil
	case key.Matches(msg, m.keys.NextField):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Press):
		return m.press(), nil
	case m.focus == itemGender && key.Matches(msg, m.keys.OptionLeft):
		m.gender = cycleGender(m.gender, -1)
		return m, nil
	case m.focus == itemGender && key.Matches(msg, m.keys.OptionRight):
		m.gender = cycleGender(m.gender, 1)
		return m, nil
	case msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown:
		var cmd tea.Cmd
		m.records, cmd = m.records.Update(msg)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

// press activates the focused button, or moves on from an input.
func (m Model) press() Model {
	switch m.focus {
	case itemNext:
		return m.next()
	case itemSave:
		return m.save()
	case itemBack:
		return m.back()
	default:
		m.moveFocus(1)
		return m
	}
}

func (m Model) next() Model {
	res := m.wizard.SubmitStep1(
		m.inputs[itemFirstName].Value(),
		m.inputs[itemLastName].Value(),
		m.inputs[itemEmail].Value(),
	)
	m.applyResult(res)
	if res.OK() {
		m.keys = m.keys.ForStep2()
		m.setFocus(itemPassword)
	}
	return m
}

func (m Model) save() Model {
	wasStep2 := m.wizard.Step() == registration.Step2

	d := m.wizard.Draft()
	d.Password = m.inputs[itemPassword].Value()
	d.ConfirmPassword = m.inputs[itemConfirm].Value()
	d.DateOfBirth = m.inputs[itemDOB].Value()
	d.Gender = m.gender
	d.Comments = m.inputs[itemComments].Value()

	res := m.wizard.SubmitStep2(d)
	if !wasStep2 {
		return m
	}
	m.applyResult(res)

	if res.Committed {
		m.clearInputs()
		m.refreshRecords()
		m.keys = m.keys.ForStep1()
		m.setFocus(itemFirstName)
		m.status = "Registration saved."
		log.Debug(log.CatUI, "form reset after commit", "records", m.wizard.Store().Len())
	}
	return m
}

func (m Model) back() Model {
	m.wizard.GoBack()
	m.errors = nil
	m.status = ""
	clear(m.invalid)
	m.keys = m.keys.ForStep1()
	m.setFocus(itemFirstName)
	return m
}

// applyResult replaces the error block with the outcome of a submission.
func (m *Model) applyResult(res registration.Result) {
	m.errors = res.Errors
	m.status = ""
	clear(m.invalid)
	for _, fe := range res.FieldErrors {
		m.invalid[fe.Field] = true
	}
}

func (m *Model) refreshRecords() {
	m.records = m.records.SetRows(table.RecordRows(m.wizard.Store().List()))
}

func (m *Model) setWidth(width int) {
	m.width = width
	m.help.Width = width
	m.records = m.records.SetWidth(width)
	inputWidth := max(m.formWidth()-6, 10)
	for i := range m.inputs {
		m.inputs[i].Width = inputWidth
	}
}

func (m Model) formWidth() int {
	return min(max(m.width, 30), maxFormWidth)
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", msg.Err, "path", m.configPath)
	} else if err := styles.ApplyTheme(themeFromConfig(msg.Theme)); err != nil {
		log.ErrorErr(log.CatConfig, "applying reloaded theme", err)
	} else {
		m.restyleInputs()
		log.Info(log.CatConfig, "theme reloaded", "path", m.configPath)
	}

	if m.changes == nil {
		return m, nil
	}
	return m, watchConfig(m.configPath, m.changes)
}

// Step returns the wizard's current step.
func (m Model) Step() registration.Step { return m.wizard.Step() }

// Errors returns the messages from the last submission.
func (m Model) Errors() []string { return m.errors }

// Wizard returns the wizard driven by this model.
func (m Model) Wizard() *registration.Wizard { return m.wizard }

// Close stops the config watcher.
func (m *Model) Close() error {
	if m.watcherHandle == nil {
		return nil
	}
	err := m.watcherHandle.Stop()
	m.watcherHandle = nil
	return err
}
