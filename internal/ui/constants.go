// Package ui renders the composed view-models. It reads projections and
// forwards gestures; it never reaches past the composition layer into raw
// entities.
package ui

// Layout constants for pane sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// MinTerminalWidth is the smallest width layout calculations accept
	MinTerminalWidth = 40

	// MinTerminalHeight is the smallest height layout calculations accept
	MinTerminalHeight = 10

	// DefaultWrapWidth is the wrap width used before the first size message
	DefaultWrapWidth = 80
)

// Divider widths, in terminal columns. The persisted values predate the
// terminal port and are stored at 10x (pixel budgets); the config layer
// stores columns directly and these are the clamped column ranges.
const (
	SidebarMinWidth     = 20
	SidebarMaxWidth     = 36
	SidebarDefaultWidth = 26

	PanelMinWidth     = 28
	PanelMaxWidth     = 48
	PanelDefaultWidth = 32
)

// SearchInputCharLimit caps the search tab's input length.
const SearchInputCharLimit = 128

// Icon fallbacks per entity kind
const (
	ChatIconFallback   = "#"
	FeedIconFallback   = "!"
	FolderIconFallback = "▤"
)
