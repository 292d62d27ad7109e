package ui

import (
	"fmt"
	"strings"

	"github.com/lurk-sh/lurk/internal/compose"
)

// FolderView renders a folder projection as a file table.
type FolderView struct {
	view  compose.FolderView
	width int
}

// NewFolderView creates a new folder view
func NewFolderView() *FolderView {
	return &FolderView{width: DefaultWrapWidth}
}

// SetWidth sets the render width
func (f *FolderView) SetWidth(width int) {
	f.width = width
}

// SetView installs a new projection
func (f *FolderView) SetView(view compose.FolderView) {
	f.view = view
}

// Render renders the file listing for the center viewport.
func (f *FolderView) Render() string {
	if !f.view.Active {
		return PlaceholderStyle.Render("Select a folder.")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(FolderIconFallback + " " + f.view.Name))
	b.WriteString("\n\n")

	if len(f.view.Rows) == 0 {
		b.WriteString(PlaceholderStyle.Render("No files in this folder."))
		return b.String()
	}

	nameWidth := f.width - 40
	if nameWidth < 12 {
		nameWidth = 12
	}

	b.WriteString(MutedStyle.Render(fmt.Sprintf("%-*s %-16s %9s %13s", nameWidth, "name", "type", "size", "modified")))
	b.WriteString("\n")
	for _, row := range f.view.Rows {
		b.WriteString(fmt.Sprintf("%-*s %-16s %9s %13s",
			nameWidth, truncate(row.Name, nameWidth),
			truncate(row.Type, 16), row.Size, row.Modified))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
