package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lurk-sh/lurk/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string, for tests.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var panes []string
	if m.sidebarWidth() > 0 {
		panes = append(panes, m.sidebar.View())
	}

	centerStyle := ui.PaneStyle
	if m.focus == FocusCenter {
		centerStyle = ui.PaneFocusedStyle
	}
	centerWidth := m.width - m.sidebarWidth() - m.panelWidth()
	panes = append(panes, centerStyle.
		Width(centerWidth-2).
		Height(m.contentHeight()-2).
		Render(m.viewport.View()))

	if m.panelWidth() > 0 {
		panes = append(panes, m.rightPanel.View())
	}

	middle := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		middle,
		m.footer.View(),
	)
}
