package ui

import "strings"

// Header represents the top header bar
type Header struct {
	width int
	title string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the active item name shown on the right
func (h *Header) SetTitle(title string) {
	h.title = title
}

// View renders the header
func (h *Header) View() string {
	left := "lurk"
	right := h.title

	padding := h.width - len(left) - len(right) - 2 // style padding
	if padding < 1 {
		padding = 1
	}

	return HeaderStyle.Render(left + strings.Repeat(" ", padding) + right)
}
