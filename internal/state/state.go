// Package state holds the selection and panel state for the session: which
// item is active, whether the sidebar and right panel are open, and which
// panel tab is showing. The state is an immutable snapshot mutated only
// through the named operations, each of which notifies observers
// synchronously before returning.
package state

import (
	"github.com/lurk-sh/lurk/internal/config"
	"github.com/lurk-sh/lurk/internal/stream"
)

// ItemType identifies the kind of entity a selection points at.
type ItemType string

const (
	ItemNone   ItemType = ""
	ItemChat   ItemType = "chat"
	ItemFeed   ItemType = "feed"
	ItemFolder ItemType = "folder"
)

// ParseItemType maps an arbitrary type string to a known ItemType. Unknown
// strings mean no active selection, not an error.
func ParseItemType(s string) ItemType {
	switch ItemType(s) {
	case ItemChat, ItemFeed, ItemFolder:
		return ItemType(s)
	default:
		return ItemNone
	}
}

// PanelTab identifies which tab the right panel shows.
type PanelTab string

const (
	TabNone    PanelTab = ""
	TabMembers PanelTab = "members"
	TabPins    PanelTab = "pins"
	TabSearch  PanelTab = "search"
	TabFiles   PanelTab = "files"
)

// State is one immutable snapshot of the selection/panel state.
type State struct {
	ActiveItemType  ItemType
	ActiveItemID    string
	LeftSidebarOpen bool
	RightPanelOpen  bool
	RightPanelTab   PanelTab
}

// Store owns the state for the process lifetime. Operations never fail; a
// persistence failure keeps the in-memory state and is only logged by the
// config layer.
type Store struct {
	settings *config.Settings
	states   *stream.Source[State]
}

// NewStore creates the state store, seeding the left-sidebar flag from the
// persisted settings (default open on first run or read failure).
func NewStore(settings *config.Settings) *Store {
	initial := State{
		LeftSidebarOpen: settings.Bool(config.KeyLeftSidebarOpen, true),
	}
	return &Store{
		settings: settings,
		states:   stream.NewSource(initial),
	}
}

// States exposes the observable state stream.
func (s *Store) States() *stream.Source[State] {
	return s.states
}

// Current returns the latest state snapshot.
func (s *Store) Current() State {
	return s.states.Get()
}

// SelectItem sets the active selection. Panel fields are left untouched.
func (s *Store) SelectItem(itemType ItemType, id string) {
	st := s.Current()
	st.ActiveItemType = itemType
	st.ActiveItemID = id
	s.states.Set(st)
}

// OpenRightPanel opens the right panel on the given tab. Callers pass a
// concrete tab, never TabNone.
func (s *Store) OpenRightPanel(tab PanelTab) {
	st := s.Current()
	st.RightPanelOpen = true
	st.RightPanelTab = tab
	s.states.Set(st)
}

// CloseRightPanel closes the right panel and clears the tab.
func (s *Store) CloseRightPanel() {
	st := s.Current()
	st.RightPanelOpen = false
	st.RightPanelTab = TabNone
	s.states.Set(st)
}

// ToggleLeftSidebar flips the sidebar flag and persists it.
func (s *Store) ToggleLeftSidebar() {
	s.SetLeftSidebarOpen(!s.Current().LeftSidebarOpen)
}

// SetLeftSidebarOpen sets the sidebar flag and persists it.
func (s *Store) SetLeftSidebarOpen(open bool) {
	st := s.Current()
	st.LeftSidebarOpen = open
	s.states.Set(st)
	s.settings.SetBool(config.KeyLeftSidebarOpen, open)
}
