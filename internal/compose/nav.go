package compose

import (
	"github.com/lurk-sh/lurk/internal/config"
	"github.com/lurk-sh/lurk/internal/state"
	"github.com/lurk-sh/lurk/internal/store"
	"github.com/lurk-sh/lurk/internal/stream"
)

// NavRow is one selectable sidebar entry.
type NavRow struct {
	ID     string
	Name   string
	Icon   string
	Active bool
}

// NavSection is one collapsible sidebar section.
type NavSection struct {
	Title     string
	Kind      state.ItemType
	Collapsed bool
	Rows      []NavRow
}

// NavView is the sidebar's projection: the three sections in fixed order.
type NavView struct {
	Sections []NavSection
}

// Nav composes the sidebar view and owns the per-section collapse flags,
// each persisted under its own settings key.
type Nav struct {
	settings *config.Settings
	chats    *stream.Source[bool]
	feeds    *stream.Source[bool]
	folders  *stream.Source[bool]

	view *stream.Derived[NavView]
}

// NewNav creates the sidebar composer, seeding the collapse flags from the
// persisted settings (sections default to expanded).
func NewNav(settings *config.Settings, states *state.Store, entities *store.Store) *Nav {
	n := &Nav{
		settings: settings,
		chats:    stream.NewSource(settings.Bool(config.KeySidebarChats, false)),
		feeds:    stream.NewSource(settings.Bool(config.KeySidebarFeeds, false)),
		folders:  stream.NewSource(settings.Bool(config.KeySidebarFolders, false)),
	}

	compute := func() NavView {
		st := states.Current()

		chatRows := []NavRow{}
		for _, c := range entities.Chats() {
			chatRows = append(chatRows, NavRow{
				ID:     c.ID,
				Name:   c.Name,
				Icon:   c.Icon,
				Active: st.ActiveItemType == state.ItemChat && st.ActiveItemID == c.ID,
			})
		}
		feedRows := []NavRow{}
		for _, f := range entities.Feeds() {
			feedRows = append(feedRows, NavRow{
				ID:     f.ID,
				Name:   f.Name,
				Icon:   f.Icon,
				Active: st.ActiveItemType == state.ItemFeed && st.ActiveItemID == f.ID,
			})
		}
		folderRows := []NavRow{}
		for _, f := range entities.Folders() {
			folderRows = append(folderRows, NavRow{
				ID:     f.ID,
				Name:   f.Name,
				Icon:   f.Icon,
				Active: st.ActiveItemType == state.ItemFolder && st.ActiveItemID == f.ID,
			})
		}

		return NavView{Sections: []NavSection{
			{Title: "CHATS", Kind: state.ItemChat, Collapsed: n.chats.Get(), Rows: chatRows},
			{Title: "FEEDS", Kind: state.ItemFeed, Collapsed: n.feeds.Get(), Rows: feedRows},
			{Title: "FOLDERS", Kind: state.ItemFolder, Collapsed: n.folders.Get(), Rows: folderRows},
		}}
	}

	n.view = stream.Derive(compute,
		states.States(), entities.Snapshots(), n.chats, n.feeds, n.folders)
	return n
}

// View exposes the derived sidebar projection.
func (n *Nav) View() *stream.Derived[NavView] {
	return n.view
}

// Collapsed reports the collapse flag for a section kind.
func (n *Nav) Collapsed(kind state.ItemType) bool {
	if src := n.sectionSource(kind); src != nil {
		return src.Get()
	}
	return false
}

// ToggleSection flips a section's collapse flag and persists it.
func (n *Nav) ToggleSection(kind state.ItemType) {
	src := n.sectionSource(kind)
	if src == nil {
		return
	}
	collapsed := !src.Get()
	src.Set(collapsed)
	n.settings.SetBool(n.sectionKey(kind), collapsed)
}

func (n *Nav) sectionSource(kind state.ItemType) *stream.Source[bool] {
	switch kind {
	case state.ItemChat:
		return n.chats
	case state.ItemFeed:
		return n.feeds
	case state.ItemFolder:
		return n.folders
	default:
		return nil
	}
}

func (n *Nav) sectionKey(kind state.ItemType) string {
	switch kind {
	case state.ItemChat:
		return config.KeySidebarChats
	case state.ItemFeed:
		return config.KeySidebarFeeds
	default:
		return config.KeySidebarFolders
	}
}

// Close tears the derived view down.
func (n *Nav) Close() {
	n.view.Close()
}
