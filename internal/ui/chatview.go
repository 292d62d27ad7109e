package ui

import (
	"fmt"
	"strings"

	"github.com/lurk-sh/lurk/internal/compose"
)

// ChatView renders a chat timeline projection. It tracks a highlighted row
// so the copy binding has a target.
type ChatView struct {
	view        compose.ChatView
	width       int
	selectedIdx int
}

// NewChatView creates a new chat view
func NewChatView() *ChatView {
	return &ChatView{width: DefaultWrapWidth}
}

// SetWidth sets the wrap width
func (c *ChatView) SetWidth(width int) {
	c.width = width
}

// SetView installs a new projection, clamping the highlight.
func (c *ChatView) SetView(view compose.ChatView) {
	c.view = view
	if c.selectedIdx >= len(view.Rows) {
		c.selectedIdx = len(view.Rows) - 1
	}
	if c.selectedIdx < 0 {
		c.selectedIdx = 0
	}
}

// MoveUp moves the highlight up one message
func (c *ChatView) MoveUp() {
	if c.selectedIdx > 0 {
		c.selectedIdx--
	}
}

// MoveDown moves the highlight down one message
func (c *ChatView) MoveDown() {
	if c.selectedIdx < len(c.view.Rows)-1 {
		c.selectedIdx++
	}
}

// SelectedContent returns the highlighted message body for copying.
func (c *ChatView) SelectedContent() (string, bool) {
	if c.selectedIdx >= len(c.view.Rows) {
		return "", false
	}
	return c.view.Rows[c.selectedIdx].Content, true
}

func renderChips(chips []compose.ReactionChip) string {
	if len(chips) == 0 {
		return ""
	}
	parts := make([]string, 0, len(chips))
	for _, chip := range chips {
		parts = append(parts, fmt.Sprintf("%s %d", chip.Symbol, chip.Count))
	}
	return ReactionStyle.Render(strings.Join(parts, "  "))
}

// Render renders the timeline content for the center viewport.
func (c *ChatView) Render() string {
	if !c.view.Active {
		return PlaceholderStyle.Render("Select a chat.")
	}

	icon := c.view.Icon
	if icon == "" {
		icon = ChatIconFallback
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(icon + " " + c.view.Name))
	b.WriteString("\n")
	if c.view.Description != "" {
		b.WriteString(SubtitleStyle.Render(c.view.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(c.view.Rows) == 0 {
		b.WriteString(PlaceholderStyle.Render("No messages yet."))
		return b.String()
	}

	for i, row := range c.view.Rows {
		header := NickStyle.Render(row.AuthorNick)
		if row.Time != "" {
			header += " " + TimeStyle.Render(row.Time)
		}
		if row.Pinned {
			header += " " + BadgeStyle.Render("[pinned]")
		}
		if i == c.selectedIdx {
			header = "▌" + header
		}
		b.WriteString(header)
		b.WriteString("\n")

		if row.ReplyToNick != "" {
			b.WriteString(ReplyStyle.Render("↳ " + row.ReplyToNick))
			b.WriteString("\n")
		}

		b.WriteString(RenderContent(row.Content, c.width))
		b.WriteString("\n")

		if chips := renderChips(row.Reactions); chips != "" {
			b.WriteString(chips)
			b.WriteString("\n")
		}
		if len(row.Attachments) > 0 {
			b.WriteString(MutedStyle.Render(fmt.Sprintf("📎 %d attachment(s)", len(row.Attachments))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
