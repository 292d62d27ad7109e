package ui

import (
	"strings"

	"github.com/lurk-sh/lurk/internal/compose"
)

// FeedView renders a feed projection as a list of post cards.
type FeedView struct {
	view        compose.FeedView
	width       int
	selectedIdx int
}

// NewFeedView creates a new feed view
func NewFeedView() *FeedView {
	return &FeedView{width: DefaultWrapWidth}
}

// SetWidth sets the wrap width
func (f *FeedView) SetWidth(width int) {
	f.width = width
}

// SetView installs a new projection, clamping the highlight.
func (f *FeedView) SetView(view compose.FeedView) {
	f.view = view
	if f.selectedIdx >= len(view.Rows) {
		f.selectedIdx = len(view.Rows) - 1
	}
	if f.selectedIdx < 0 {
		f.selectedIdx = 0
	}
}

// MoveUp moves the highlight up one post
func (f *FeedView) MoveUp() {
	if f.selectedIdx > 0 {
		f.selectedIdx--
	}
}

// MoveDown moves the highlight down one post
func (f *FeedView) MoveDown() {
	if f.selectedIdx < len(f.view.Rows)-1 {
		f.selectedIdx++
	}
}

// SelectedContent returns the highlighted post snippet for copying.
func (f *FeedView) SelectedContent() (string, bool) {
	if f.selectedIdx >= len(f.view.Rows) {
		return "", false
	}
	return f.view.Rows[f.selectedIdx].Snippet, true
}

// Render renders the post cards for the center viewport.
func (f *FeedView) Render() string {
	if !f.view.Active {
		return PlaceholderStyle.Render("Select a feed.")
	}

	icon := f.view.Icon
	if icon == "" {
		icon = FeedIconFallback
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(icon + " " + f.view.Name))
	b.WriteString("\n")
	if f.view.Description != "" {
		b.WriteString(SubtitleStyle.Render(f.view.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(f.view.Rows) == 0 {
		b.WriteString(PlaceholderStyle.Render("No posts yet."))
		return b.String()
	}

	for i, row := range f.view.Rows {
		title := TitleStyle.Render(row.Title)
		if row.Draft {
			title += " " + BadgeStyle.Render("[draft]")
		}
		if row.Pinned {
			title += " " + BadgeStyle.Render("[pinned]")
		}
		if i == f.selectedIdx {
			title = "▌" + title
		}
		b.WriteString(title)
		b.WriteString("\n")

		if row.Subtitle != "" {
			b.WriteString(SubtitleStyle.Render(row.Subtitle))
			b.WriteString("\n")
		}

		byline := NickStyle.Render(row.AuthorNick)
		if row.DateLabel != "" {
			byline += " " + TimeStyle.Render(row.DateLabel)
		}
		b.WriteString(byline)
		b.WriteString("\n")

		b.WriteString(wrapText(row.Snippet, f.width))
		b.WriteString("\n")

		if chips := renderChips(row.Reactions); chips != "" {
			b.WriteString(chips)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
