// Package app wires the stores, composers, dispatchers, and UI components
// into the Bubble Tea event loop.
package app

import (
	"context"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/lurk-sh/lurk/internal/compose"
	"github.com/lurk-sh/lurk/internal/config"
	"github.com/lurk-sh/lurk/internal/input"
	"github.com/lurk-sh/lurk/internal/logger"
	"github.com/lurk-sh/lurk/internal/state"
	"github.com/lurk-sh/lurk/internal/store"
	"github.com/lurk-sh/lurk/internal/stream"
	"github.com/lurk-sh/lurk/internal/ui"
)

// Focus identifies which pane receives navigation keys.
type Focus int

// Focus targets
const (
	FocusSidebar Focus = iota
	FocusCenter
	FocusPanel
)

// snapshotLoadedMsg signals that the blocking snapshot load finished. The
// result itself is cached inside the entity store; the handler publishes it
// on the event loop.
type snapshotLoadedMsg struct{}

// Model is the top-level Bubble Tea model.
type Model struct {
	width  int
	height int
	focus  Focus

	settings *config.Settings
	entities *store.Store
	states   *state.Store

	nav      *compose.Nav
	chatVM   *stream.Derived[compose.ChatView]
	feedVM   *stream.Derived[compose.FeedView]
	folderVM *stream.Derived[compose.FolderView]
	panelVM  *stream.Derived[compose.PanelView]

	hotkeys       *input.Hotkeys
	outside       *input.OutsideDetector
	sidebarResize *input.ResizeTracker
	panelResize   *input.ResizeTracker

	header     *ui.Header
	footer     *ui.Footer
	sidebar    *ui.Sidebar
	chatView   *ui.ChatView
	feedView   *ui.FeedView
	folderView *ui.FolderView
	rightPanel *ui.RightPanel
	viewport   viewport.Model
}

// NewModel builds the application model around a data source.
func NewModel(settings *config.Settings, source store.Source) *Model {
	entities := store.New(source)
	states := state.NewStore(settings)

	m := &Model{
		settings: settings,
		entities: entities,
		states:   states,

		nav:      compose.NewNav(settings, states, entities),
		chatVM:   compose.ChatComposer(states, entities),
		feedVM:   compose.FeedComposer(states, entities),
		folderVM: compose.FolderComposer(states, entities),
		panelVM:  compose.PanelComposer(states, entities),

		hotkeys: input.NewHotkeys(),
		sidebarResize: input.NewResizeTracker(settings, config.KeyLeftSidebar,
			ui.SidebarMinWidth, ui.SidebarMaxWidth, ui.SidebarDefaultWidth, false),
		panelResize: input.NewResizeTracker(settings, config.KeyRightPanel,
			ui.PanelMinWidth, ui.PanelMaxWidth, ui.PanelDefaultWidth, true),

		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		sidebar:    ui.NewSidebar(),
		chatView:   ui.NewChatView(),
		feedView:   ui.NewFeedView(),
		folderView: ui.NewFolderView(),
		rightPanel: ui.NewRightPanel(),
		viewport:   viewport.New(),
	}

	m.hotkeys.Init(states)
	m.outside = input.NewOutsideDetector(states.CloseRightPanel)

	return m
}

// Init kicks off the snapshot load. Load blocks through the retry budget in
// a command goroutine; the loop stays responsive and publishes on completion.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		m.entities.Load(context.Background())
		return snapshotLoadedMsg{}
	}
}

// sidebarWidth returns the sidebar's current column width, zero when hidden.
func (m *Model) sidebarWidth() int {
	if !m.states.Current().LeftSidebarOpen {
		return 0
	}
	return m.sidebarResize.Width()
}

// panelWidth returns the right panel's current column width, zero when closed.
func (m *Model) panelWidth() int {
	if !m.states.Current().RightPanelOpen {
		return 0
	}
	return m.panelResize.Width()
}

func (m *Model) contentHeight() int {
	return m.height - ui.HeaderHeight - ui.FooterHeight
}

// updateSizes recalculates component dimensions from the terminal size and
// the divider positions.
func (m *Model) updateSizes() {
	width, height := m.width, m.height
	if width < ui.MinTerminalWidth {
		width = ui.MinTerminalWidth
	}
	if height < ui.MinTerminalHeight {
		height = ui.MinTerminalHeight
	}
	m.width, m.height = width, height

	contentHeight := m.contentHeight()
	centerWidth := width - m.sidebarWidth() - m.panelWidth()

	m.header.SetWidth(width)
	m.footer.SetWidth(width)
	m.sidebar.SetSize(m.sidebarWidth(), contentHeight)
	m.rightPanel.SetSize(m.panelWidth(), contentHeight)
	m.viewport.SetWidth(centerWidth - 2)
	m.viewport.SetHeight(contentHeight - 2)

	wrap := centerWidth - 4
	if wrap < 20 {
		wrap = 20
	}
	m.chatView.SetWidth(wrap)
	m.feedView.SetWidth(wrap)
	m.folderView.SetWidth(wrap)

	logger.ComponentLogger("app").Debug("Sizes updated",
		"width", width, "height", height,
		"sidebar", m.sidebarWidth(), "panel", m.panelWidth())
}

// syncViews pushes the latest composer projections into the UI components
// and rearms the outside-interaction detector for the panel bounds.
func (m *Model) syncViews() {
	st := m.states.Current()

	m.sidebar.SetView(m.nav.View().Get())
	m.chatView.SetView(m.chatVM.Get())
	m.feedView.SetView(m.feedVM.Get())
	m.folderView.SetView(m.folderVM.Get())
	m.rightPanel.SetView(m.panelVM.Get())
	m.footer.SetSearching(m.rightPanel.Searching())

	title := ""
	switch st.ActiveItemType {
	case state.ItemChat:
		title = m.chatVM.Get().Name
	case state.ItemFeed:
		title = m.feedVM.Get().Name
	case state.ItemFolder:
		title = m.folderVM.Get().Name
	}
	m.header.SetTitle(title)

	if st.RightPanelOpen {
		m.outside.Track(input.Bounds{
			X:      m.width - m.panelWidth(),
			Y:      ui.HeaderHeight,
			Width:  m.panelWidth(),
			Height: m.contentHeight(),
		})
	} else {
		m.outside.Stop()
		if m.focus == FocusPanel {
			m.focus = FocusSidebar
		}
	}

	m.updateSizes()
	m.updateViewport()
}

// updateViewport re-renders the center pane into the viewport.
func (m *Model) updateViewport() {
	var content string
	atBottom := m.viewport.AtBottom()

	switch m.states.Current().ActiveItemType {
	case state.ItemChat:
		content = m.chatView.Render()
	case state.ItemFeed:
		content = m.feedView.Render()
	case state.ItemFolder:
		content = m.folderView.Render()
	default:
		content = m.chatView.Render() // inactive placeholder
	}

	m.viewport.SetContent(content)
	if m.states.Current().ActiveItemType == state.ItemChat && atBottom {
		m.viewport.GotoBottom()
	}
}
