package ui

import "strings"

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width     int
	searching bool // search input focused; most bindings are inactive
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetSearching marks whether the search input has focus
func (f *Footer) SetSearching(searching bool) {
	f.searching = searching
}

// View renders the footer
func (f *Footer) View() string {
	bindings := []KeyBinding{
		{Key: "↑/↓", Desc: "navigate"},
		{Key: "enter", Desc: "select"},
		{Key: "b", Desc: "sidebar"},
		{Key: "ctrl+f", Desc: "search"},
		{Key: "ctrl+p", Desc: "pins"},
		{Key: "y", Desc: "copy"},
		{Key: "q", Desc: "quit"},
	}
	if f.searching {
		bindings = []KeyBinding{
			{Key: "esc", Desc: "close search"},
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}

	return FooterStyle.Width(f.width).Render(strings.Join(parts, "  "))
}
