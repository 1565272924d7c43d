package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.records, cmd = m.records.Update(msg)
		return m, cmd
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	for _, i := range m.currentItems() {
		id := fieldZoneID(i)
		if i.isButton() {
			id = buttonZoneID(i)
		}
		z := zone.Get(id)
		if z == nil || !z.InBounds(msg) {
			continue
		}

		m.setFocus(i)
		if i.isButton() {
			return m.press(), nil
		}
		return m, nil
	}

	return m, nil
}

func buttonZoneID(i item) string {
	switch i {
	case itemSave:
		return zoneSave
	case itemBack:
		return zoneBack
	default:
		return zoneNext
	}
}
