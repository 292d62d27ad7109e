package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lurk-sh/lurk/internal/config"
	"github.com/lurk-sh/lurk/internal/model"
	"github.com/lurk-sh/lurk/internal/state"
)

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Authors: []model.Author{{ID: "a1", Nick: "nova", Status: model.StatusOnline}},
		Chats: []model.Chat{
			{ID: "c1", Name: "general", Members: []string{"a1"}},
		},
		Messages: []model.Message{
			{ID: "m1", Chat: "c1", Author: "a1", Content: "hello there", Pinned: true},
		},
		Feeds:   []model.Feed{{ID: "f1", Name: "announce"}},
		Posts:   []model.Post{{ID: "p1", Feed: "f1", Author: "a1", Title: "hi", Content: "body"}},
		Folders: []model.Folder{{ID: "fld1", Name: "docs"}},
		Files:   []model.File{{ID: "file1", Folder: "fld1", Name: "readme.txt", Size: 512}},
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	settings := config.LoadFrom(filepath.Join(t.TempDir(), "settings.json"))
	m := NewModel(settings, func(ctx context.Context) (*model.Snapshot, error) {
		return testSnapshot(), nil
	})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.entities.Load(context.Background())
	m.Update(snapshotLoadedMsg{})
	return m
}

func press(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)

	cmd := press(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q must quit")
	}

	cmd = press(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c must quit")
	}
}

func TestHotkeys_RouteThroughDispatcher(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl})
	if st := m.states.Current(); !st.RightPanelOpen || st.RightPanelTab != state.TabSearch {
		t.Fatalf("ctrl+f must open the search tab, got %+v", st)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if st := m.states.Current(); st.RightPanelOpen || st.RightPanelTab != state.TabNone {
		t.Errorf("Escape must close the panel, got %+v", st)
	}

	press(m, tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	if st := m.states.Current(); st.RightPanelTab != state.TabPins {
		t.Errorf("ctrl+p must open the pins tab, got %+v", st)
	}
}

func TestSearchInput_CapturesKeys(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl})
	if !m.rightPanel.Searching() {
		t.Fatal("The search tab must focus the input")
	}

	// While editing, 'q' types instead of quitting.
	if cmd := press(m, tea.KeyPressMsg{Code: 'q', Text: "q"}); cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("q must not quit while the search input has focus")
		}
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.rightPanel.Searching() {
		t.Error("Escape must leave search mode")
	}
}

func TestSidebarSelection(t *testing.T) {
	m := newTestModel(t)

	// Cursor starts on the CHATS header; the first row below is c1.
	press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	st := m.states.Current()
	if st.ActiveItemType != state.ItemChat || st.ActiveItemID != "c1" {
		t.Fatalf("Enter on a chat row must select it, got %+v", st)
	}

	if got := m.RenderToString(); !strings.Contains(got, "hello there") {
		t.Error("The center pane must render the selected chat's timeline")
	}
}

func TestSectionToggleOnHeader(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyPressMsg{Code: tea.KeySpace})

	if !m.nav.Collapsed(state.ItemChat) {
		t.Error("Space on the CHATS header must collapse the section")
	}
	if st := m.states.Current(); st.ActiveItemType != state.ItemNone {
		t.Error("Toggling a section must not change the selection")
	}
}

func TestToggleSidebarKey(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyPressMsg{Code: 'b', Text: "b"})
	if m.states.Current().LeftSidebarOpen {
		t.Fatal("b must close the sidebar")
	}
	if m.sidebarWidth() != 0 {
		t.Error("A closed sidebar must take no width")
	}

	press(m, tea.KeyPressMsg{Code: 'b', Text: "b"})
	if !m.states.Current().LeftSidebarOpen {
		t.Error("b must reopen the sidebar")
	}
}

func TestClickOutsidePanelClosesIt(t *testing.T) {
	m := newTestModel(t)
	m.states.OpenRightPanel(state.TabMembers)
	m.syncViews()

	// Click well inside the center pane, left of the panel.
	m.Update(tea.MouseClickMsg{X: m.sidebarWidth() + 5, Y: 5})

	if m.states.Current().RightPanelOpen {
		t.Error("A click outside the panel must close it")
	}
}

func TestClickInsidePanelKeepsItOpen(t *testing.T) {
	m := newTestModel(t)
	m.states.OpenRightPanel(state.TabMembers)
	m.syncViews()

	m.Update(tea.MouseClickMsg{X: m.width - 2, Y: 5})

	if !m.states.Current().RightPanelOpen {
		t.Error("A click inside the panel must not close it")
	}
}

func TestSidebarClickSelectsRow(t *testing.T) {
	m := newTestModel(t)

	// Line 0 inside the sidebar content is the CHATS header, line 1 is c1.
	m.Update(tea.MouseClickMsg{X: 2, Y: 2})

	st := m.states.Current()
	if st.ActiveItemType != state.ItemChat || st.ActiveItemID != "c1" {
		t.Errorf("Clicking the chat row must select it, got %+v", st)
	}
}

func TestBorderDragResizesSidebar(t *testing.T) {
	m := newTestModel(t)
	startWidth := m.sidebarWidth()

	border := startWidth - 1
	m.Update(tea.MouseClickMsg{X: border, Y: 5})
	m.Update(tea.MouseMotionMsg{X: border + 4, Y: 5})
	m.Update(tea.MouseReleaseMsg{X: border + 4, Y: 5})

	if got := m.sidebarWidth(); got != startWidth+4 {
		t.Errorf("Expected sidebar width %d after drag, got %d", startWidth+4, got)
	}
}

func TestViewRendersChrome(t *testing.T) {
	m := newTestModel(t)

	got := m.RenderToString()
	if !strings.Contains(got, "lurk") {
		t.Error("The header must carry the app name")
	}
	if !strings.Contains(got, "CHATS") || !strings.Contains(got, "FEEDS") {
		t.Error("The sidebar must list its sections")
	}
	if !strings.Contains(got, "quit") {
		t.Error("The footer must list bindings")
	}
}

func TestEmptyStateBeforeSelection(t *testing.T) {
	m := newTestModel(t)

	if got := m.RenderToString(); !strings.Contains(got, "Select a chat.") {
		t.Error("With no selection the center shows an empty state")
	}
}
