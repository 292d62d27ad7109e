package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/lurk-sh/lurk/internal/compose"
	"github.com/lurk-sh/lurk/internal/state"
)

// RightPanel renders the tabbed side panel. The search tab owns a text
// input; while that tab is showing the input has focus and captures keys.
type RightPanel struct {
	view    compose.PanelView
	width   int
	height  int
	focused bool

	searchInput textinput.Model
}

// NewRightPanel creates a new right panel
func NewRightPanel() *RightPanel {
	ti := textinput.New()
	ti.Placeholder = "search placeholder"
	ti.CharLimit = SearchInputCharLimit

	return &RightPanel{searchInput: ti}
}

// SetSize sets the panel dimensions
func (p *RightPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.searchInput.SetWidth(width - 6)
}

// SetFocused sets the focus state
func (p *RightPanel) SetFocused(focused bool) {
	p.focused = focused
}

// SetView installs a new projection, moving input focus with the tab.
func (p *RightPanel) SetView(view compose.PanelView) {
	wasSearch := p.view.Open && p.view.Tab == state.TabSearch
	isSearch := view.Open && view.Tab == state.TabSearch
	p.view = view

	if isSearch && !wasSearch {
		p.searchInput.Focus()
	}
	if !isSearch && wasSearch {
		p.searchInput.Blur()
		p.searchInput.SetValue("")
	}
}

// Searching reports whether the search input currently has focus.
func (p *RightPanel) Searching() bool {
	return p.view.Open && p.view.Tab == state.TabSearch
}

// Update forwards messages to the search input while it has focus.
func (p *RightPanel) Update(msg tea.Msg) tea.Cmd {
	if !p.Searching() {
		return nil
	}
	var cmd tea.Cmd
	p.searchInput, cmd = p.searchInput.Update(msg)
	return cmd
}

// View renders the panel
func (p *RightPanel) View() string {
	innerWidth := p.width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	var b strings.Builder
	title := PaneTitleStyle.Render(p.view.Title)
	closeMark := MutedStyle.Render("✕")
	pad := innerWidth - len(p.view.Title) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(title + strings.Repeat(" ", pad) + closeMark)
	b.WriteString("\n\n")

	switch p.view.Tab {
	case state.TabMembers:
		if len(p.view.Members) == 0 {
			b.WriteString(PlaceholderStyle.Render("No members."))
		}
		for _, m := range p.view.Members {
			b.WriteString(fmt.Sprintf(" %s %s\n", m.Glyph, truncate(m.Nick, innerWidth-4)))
		}
	case state.TabPins:
		if len(p.view.Pins) == 0 {
			b.WriteString(PlaceholderStyle.Render("No pinned messages."))
		}
		for _, pin := range p.view.Pins {
			header := NickStyle.Render(pin.Nick)
			if pin.Time != "" {
				header += " " + TimeStyle.Render(pin.Time)
			}
			b.WriteString(" " + header + "\n")
			b.WriteString(" " + truncate(pin.Content, innerWidth-2) + "\n")
		}
	case state.TabFiles:
		if len(p.view.Files) == 0 {
			b.WriteString(PlaceholderStyle.Render("No file attachments in this chat."))
		}
		for _, f := range p.view.Files {
			b.WriteString(" " + truncate(f.Name, innerWidth-2) + "\n")
			b.WriteString(" " + MutedStyle.Render(truncate(f.Mime+"  "+f.Size, innerWidth-2)) + "\n")
		}
	case state.TabSearch:
		b.WriteString(" > " + p.searchInput.View())
	}

	pane := PaneStyle
	if p.focused {
		pane = PaneFocusedStyle
	}
	return pane.Width(innerWidth).Height(p.height - 2).Render(strings.TrimRight(b.String(), "\n"))
}
