package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lurk-sh/lurk/internal/compose"
	"github.com/lurk-sh/lurk/internal/state"
)

// SidebarEntry is one selectable line: a section header or an item row.
type SidebarEntry struct {
	Header bool
	Kind   state.ItemType
	ID     string
	Name   string
	Icon   string
	Active bool
}

// Sidebar renders the navigation view with a movable cursor. Collapsed
// sections contribute only their header line.
type Sidebar struct {
	entries      []SidebarEntry
	selectedIdx  int
	width        int
	height       int
	focused      bool
	scrollOffset int
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// SetView rebuilds the entry list from a navigation projection, keeping the
// cursor on the same entry where possible.
func (s *Sidebar) SetView(view compose.NavView) {
	var prev *SidebarEntry
	if s.selectedIdx < len(s.entries) {
		e := s.entries[s.selectedIdx]
		prev = &e
	}

	s.entries = s.entries[:0]
	for _, section := range view.Sections {
		s.entries = append(s.entries, SidebarEntry{
			Header: true,
			Kind:   section.Kind,
			Name:   section.Title,
			Active: !section.Collapsed, // headers reuse Active as the expanded flag
		})
		if section.Collapsed {
			continue
		}
		for _, row := range section.Rows {
			s.entries = append(s.entries, SidebarEntry{
				Kind:   section.Kind,
				ID:     row.ID,
				Name:   row.Name,
				Icon:   row.Icon,
				Active: row.Active,
			})
		}
	}

	s.selectedIdx = 0
	if prev != nil {
		for i, e := range s.entries {
			if e.Header == prev.Header && e.Kind == prev.Kind && e.ID == prev.ID {
				s.selectedIdx = i
				break
			}
		}
	}
	s.clampScroll()
}

// Selected returns the entry under the cursor.
func (s *Sidebar) Selected() (SidebarEntry, bool) {
	if s.selectedIdx >= len(s.entries) {
		return SidebarEntry{}, false
	}
	return s.entries[s.selectedIdx], true
}

// MoveUp moves the cursor up one entry
func (s *Sidebar) MoveUp() {
	if s.selectedIdx > 0 {
		s.selectedIdx--
		s.clampScroll()
	}
}

// MoveDown moves the cursor down one entry
func (s *Sidebar) MoveDown() {
	if s.selectedIdx < len(s.entries)-1 {
		s.selectedIdx++
		s.clampScroll()
	}
}

// EntryAt maps a line offset within the sidebar's content to an entry, for
// mouse clicks. Moves the cursor on a hit.
func (s *Sidebar) EntryAt(line int) (SidebarEntry, bool) {
	idx := line + s.scrollOffset
	if idx < 0 || idx >= len(s.entries) {
		return SidebarEntry{}, false
	}
	s.selectedIdx = idx
	return s.entries[idx], true
}

func (s *Sidebar) clampScroll() {
	visible := s.visibleLines()
	if visible <= 0 {
		return
	}
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	}
	if s.selectedIdx >= s.scrollOffset+visible {
		s.scrollOffset = s.selectedIdx - visible + 1
	}
}

func (s *Sidebar) visibleLines() int {
	return s.height - 2 // border
}

func sectionIconFallback(kind state.ItemType) string {
	switch kind {
	case state.ItemFeed:
		return FeedIconFallback
	case state.ItemFolder:
		return FolderIconFallback
	default:
		return ChatIconFallback
	}
}

// View renders the sidebar
func (s *Sidebar) View() string {
	innerWidth := s.width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	visible := s.visibleLines()
	end := s.scrollOffset + visible
	if end > len(s.entries) {
		end = len(s.entries)
	}

	for i := s.scrollOffset; i < end; i++ {
		e := s.entries[i]
		var line string
		if e.Header {
			chevron := "▸"
			if e.Active {
				chevron = "▾"
			}
			line = SectionHeaderStyle.Render(truncate(chevron+" "+e.Name, innerWidth-2))
		} else {
			icon := e.Icon
			if icon == "" {
				icon = sectionIconFallback(e.Kind)
			}
			text := truncate(icon+" "+e.Name, innerWidth-2)
			style := SidebarItemStyle
			if i == s.selectedIdx && s.focused {
				style = SidebarCursorStyle
			} else if e.Active {
				style = SidebarActiveStyle
			}
			line = style.Render(text)
		}
		lines = append(lines, line)
	}

	pane := PaneStyle
	if s.focused {
		pane = PaneFocusedStyle
	}
	return pane.Width(innerWidth).Height(s.height - 2).Render(strings.Join(lines, "\n"))
}

// truncate shortens a string to a display width, appending an ellipsis.
func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
