package ui

import "charm.land/lipgloss/v2"

// Color palette - Purple + Cyan/Teal theme
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber for badges
	ColorError       = lipgloss.Color("#EF4444") // Red
	ColorSuccess     = lipgloss.Color("#10B981") // Green for presence
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Pane styles
var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PaneFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PaneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// Sidebar styles
var (
	SectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTextMuted).
				Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	SidebarCursorStyle = lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(ColorText).
				Bold(true).
				Padding(0, 1)

	SidebarActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true).
				Padding(0, 1)
)

// Timeline styles
var (
	NickStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	TimeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ReplyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ReactionStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Markdown styles
var (
	MarkdownHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	MarkdownBoldStyle = lipgloss.NewStyle().Bold(true)
)
