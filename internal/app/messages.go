package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/signup/internal/config"
)

// ConfigReloadedMsg carries the theme read after the config file changed.
type ConfigReloadedMsg struct {
	Theme config.ThemeConfig
	Err   error
}

// watchConfig waits for the next change notification and reloads path.
// A closed channel ends the watch.
func watchConfig(path string, changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}

		cfg, err := config.Load(path)
		if err != nil {
			return ConfigReloadedMsg{Err: err}
		}
		if err := config.ValidateTheme(cfg.Theme); err != nil {
			return ConfigReloadedMsg{Err: err}
		}
		return ConfigReloadedMsg{Theme: cfg.Theme}
	}
}
