package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/lurk-sh/lurk/internal/ui"
)

// handleMouse routes pointer events: border drags to the resize trackers,
// clicks outside the open panel to the outside detector, sidebar clicks to
// row selection, and wheel events to the center viewport.
func (m *Model) handleMouse(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		m.handleClick(msg.X, msg.Y)

	case tea.MouseMotionMsg:
		if m.sidebarResize.Dragging() {
			m.sidebarResize.Move(msg.X)
			m.syncViews()
		}
		if m.panelResize.Dragging() {
			m.panelResize.Move(msg.X)
			m.syncViews()
		}

	case tea.MouseReleaseMsg:
		m.sidebarResize.End()
		m.panelResize.End()

	case tea.MouseWheelMsg:
		if msg.X >= m.sidebarWidth() {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) handleClick(x, y int) {
	// Border drags win over everything else.
	if m.panelWidth() > 0 && x == m.width-m.panelWidth() {
		m.panelResize.Start(x)
		return
	}
	if m.sidebarWidth() > 0 && x == m.sidebarWidth()-1 {
		m.sidebarResize.Start(x)
		return
	}

	// A press outside the open panel closes it.
	if m.outside.Hit(x, y) {
		m.syncViews()
	}

	// Sidebar row selection.
	if x < m.sidebarWidth() {
		line := y - ui.HeaderHeight - 1 // top border
		if entry, ok := m.sidebar.EntryAt(line); ok {
			m.focus = FocusSidebar
			m.sidebar.SetFocused(true)
			m.rightPanel.SetFocused(false)
			if entry.Header {
				m.nav.ToggleSection(entry.Kind)
			} else {
				m.states.SelectItem(entry.Kind, entry.ID)
			}
			m.syncViews()
		}
	}
}
