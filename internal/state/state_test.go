package state

import (
	"path/filepath"
	"testing"

	"github.com/lurk-sh/lurk/internal/config"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(config.LoadFrom(filepath.Join(t.TempDir(), "settings.json")))
}

func TestNewStore_Defaults(t *testing.T) {
	s := testStore(t)
	st := s.Current()

	if !st.LeftSidebarOpen {
		t.Error("Left sidebar must default to open")
	}
	if st.ActiveItemType != ItemNone || st.ActiveItemID != "" {
		t.Error("Expected no active selection initially")
	}
	if st.RightPanelOpen || st.RightPanelTab != TabNone {
		t.Error("Expected the right panel closed initially")
	}
}

func TestSelectItem_LeavesPanelAlone(t *testing.T) {
	s := testStore(t)
	s.OpenRightPanel(TabMembers)

	s.SelectItem(ItemChat, "c1")

	st := s.Current()
	if st.ActiveItemType != ItemChat || st.ActiveItemID != "c1" {
		t.Errorf("Unexpected selection: %+v", st)
	}
	if !st.RightPanelOpen || st.RightPanelTab != TabMembers {
		t.Error("SelectItem must not touch the panel fields")
	}
}

func TestOpenThenClose_ClearsTab(t *testing.T) {
	s := testStore(t)

	for _, tab := range []PanelTab{TabMembers, TabPins, TabSearch, TabFiles} {
		s.OpenRightPanel(tab)
		s.CloseRightPanel()

		st := s.Current()
		if st.RightPanelOpen {
			t.Errorf("Panel still open after close (opened %s)", tab)
		}
		if st.RightPanelTab != TabNone {
			t.Errorf("Tab not cleared after close (opened %s): %q", tab, st.RightPanelTab)
		}
	}
}

func TestCloseRightPanel_Idempotent(t *testing.T) {
	s := testStore(t)
	s.OpenRightPanel(TabPins)

	var seen []State
	s.States().OnChange(func() {
		seen = append(seen, s.Current())
	})

	s.CloseRightPanel()
	s.CloseRightPanel()

	if len(seen) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(seen))
	}
	for i, st := range seen {
		if st.RightPanelOpen || st.RightPanelTab != TabNone {
			t.Errorf("Notification %d does not describe the closed state: %+v", i, st)
		}
	}
	if seen[0] != seen[1] {
		t.Error("A second close must re-notify with the identical state")
	}
}

func TestNotification_SynchronousAndInOrder(t *testing.T) {
	s := testStore(t)

	var order []string
	s.States().OnChange(func() { order = append(order, "first") })
	s.States().OnChange(func() { order = append(order, "second") })

	s.SelectItem(ItemFeed, "f1")

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Observers must run in order before the operation returns: %v", order)
	}
}

func TestToggleLeftSidebar_PersistsAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := NewStore(config.LoadFrom(path))
	s.ToggleLeftSidebar()
	if s.Current().LeftSidebarOpen {
		t.Fatal("Toggle from the default should close the sidebar")
	}

	fresh := NewStore(config.LoadFrom(path))
	if fresh.Current().LeftSidebarOpen {
		t.Error("A fresh store must read the persisted sidebar flag")
	}
}

func TestSetLeftSidebarOpen_UpdatesMemoryWhenPersistFails(t *testing.T) {
	// An unwritable settings path drops the write but keeps the state.
	s := NewStore(config.LoadFrom("/proc/no-such-dir/settings.json"))

	s.SetLeftSidebarOpen(false)

	if s.Current().LeftSidebarOpen {
		t.Error("State must update even when persistence fails")
	}
}

func TestParseItemType(t *testing.T) {
	cases := []struct {
		in   string
		want ItemType
	}{
		{"chat", ItemChat},
		{"feed", ItemFeed},
		{"folder", ItemFolder},
		{"", ItemNone},
		{"bogus", ItemNone},
	}
	for _, c := range cases {
		if got := ParseItemType(c.in); got != c.want {
			t.Errorf("ParseItemType(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
