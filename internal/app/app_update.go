package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/lurk-sh/lurk/internal/clipboard"
	"github.com/lurk-sh/lurk/internal/keys"
	"github.com/lurk-sh/lurk/internal/logger"
	"github.com/lurk-sh/lurk/internal/state"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		m.syncViews()

	case snapshotLoadedMsg:
		m.entities.Publish()
		m.syncViews()

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	editing := m.rightPanel.Searching()

	// Global hotkeys first; while editing only Escape passes through.
	if m.hotkeys.Handle(key, editing) {
		m.syncViews()
		return m, nil
	}

	if editing {
		cmd := m.rightPanel.Update(msg)
		return m, cmd
	}

	switch key {
	case "q", keys.CtrlC:
		return m, tea.Quit

	case "b":
		m.states.ToggleLeftSidebar()
		m.syncViews()

	case keys.Tab:
		m.cycleFocus()

	case keys.Up, "k":
		m.moveCursor(-1)

	case keys.Down, "j":
		m.moveCursor(1)

	case keys.Enter, keys.Space:
		if m.focus == FocusSidebar {
			m.activateSidebarEntry(key)
		}

	case keys.PgUp, keys.PgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case "y":
		m.copySelection()
	}

	return m, nil
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case FocusSidebar:
		m.focus = FocusCenter
	case FocusCenter:
		if m.states.Current().RightPanelOpen {
			m.focus = FocusPanel
		} else {
			m.focus = FocusSidebar
		}
	default:
		m.focus = FocusSidebar
	}
	m.sidebar.SetFocused(m.focus == FocusSidebar)
	m.rightPanel.SetFocused(m.focus == FocusPanel)
}

func (m *Model) moveCursor(delta int) {
	if m.focus == FocusSidebar {
		if delta < 0 {
			m.sidebar.MoveUp()
		} else {
			m.sidebar.MoveDown()
		}
		return
	}

	switch m.states.Current().ActiveItemType {
	case state.ItemChat:
		if delta < 0 {
			m.chatView.MoveUp()
		} else {
			m.chatView.MoveDown()
		}
	case state.ItemFeed:
		if delta < 0 {
			m.feedView.MoveUp()
		} else {
			m.feedView.MoveDown()
		}
	}
	m.updateViewport()
}

// activateSidebarEntry selects the row under the cursor, or toggles the
// section when the cursor is on a header.
func (m *Model) activateSidebarEntry(key string) {
	entry, ok := m.sidebar.Selected()
	if !ok {
		return
	}
	if entry.Header {
		m.nav.ToggleSection(entry.Kind)
	} else if key != keys.Space {
		m.states.SelectItem(entry.Kind, entry.ID)
	}
	m.syncViews()
}

func (m *Model) copySelection() {
	var content string
	var ok bool
	switch m.states.Current().ActiveItemType {
	case state.ItemChat:
		content, ok = m.chatView.SelectedContent()
	case state.ItemFeed:
		content, ok = m.feedView.SelectedContent()
	}
	if !ok || content == "" {
		return
	}
	if err := clipboard.WriteText(content); err != nil {
		logger.Warn("App: clipboard copy failed: %v", err)
	}
}
