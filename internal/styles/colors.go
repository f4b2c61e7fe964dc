package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors, danger
	Orange  = "#FC9867" // Warnings
	Yellow  = "#FFD866" // Highlights, section headings
	Green   = "#A9DC76" // Success
	Cyan    = "#78DCE8" // Info, math
	Blue    = "#AB9DF2" // Links, images
	Magenta = "#FF6188" // Titles, emphasis
	Gold    = "#D4AF37" // Code accents, list markers

	// UI colors
	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, separators
	Slate   = "#CBD5E1" // Subsection headings, italics
	Steel   = "#94A3B8" // Subsubsection headings
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	SpinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Magenta))
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))

	// Table/list styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Magenta))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(Border))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Yellow))

	NormalTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground))
)

// Lesson styles
var (
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Yellow)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(Border)).
			MarginTop(1)

	SubsectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Slate)).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color(Border)).
			PaddingLeft(1).
			MarginTop(1)

	SubsubsectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Steel)).
				MarginTop(1)

	MathStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	BoldStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Yellow))
	ItalicStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(Slate))
	InlineCodeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Gold))
	ListMarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Gold))
	ImageStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Blue)).Italic(true)

	CodeBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color(Gold)).
			PaddingLeft(1)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Gold)).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(Border)).
			Padding(0, 1)

	LineNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))

	PlaceholderStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(Comment))
)
