// Package styles provides Lipgloss styles for the TUI using the Ciapre colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Ciapre (warm, earthy) theme from Gogh
const (
	// DeepPurple is the main background colour (Ciapre background)
	DeepPurple = lipgloss.Color("#191C27")
	// DarkPurple is a secondary dark background (Ciapre ANSI 0 black)
	DarkPurple = lipgloss.Color("#181818")
	// Purple is the border/dim accent colour (Ciapre ANSI 6 brown)
	Purple = lipgloss.Color("#5C4F4B")
	// BrightPurple is used for highlights and focus states (Ciapre ANSI 5 magenta)
	BrightPurple = lipgloss.Color("#724D7C")
	// Lavender is a secondary text colour (Ciapre foreground)
	Lavender = lipgloss.Color("#AEA47A")
	// LightLavender is the primary text colour (Ciapre ANSI 14 cream)
	LightLavender = lipgloss.Color("#F3DBB2")
	// Pink is an accent colour for headers and special elements (Ciapre ANSI 13 bright magenta)
	Pink = lipgloss.Color("#D33061")
	// Cyan is an accent colour for information and interactive elements (Ciapre ANSI 12 bright blue)
	Cyan = lipgloss.Color("#3097C6")
	// Amber is a warm accent for sub-headers and the ball
	Amber = lipgloss.Color("#CC8B3F")
	// Red is used for warnings, errors and the defense
	Red = lipgloss.Color("#AC3835")
	// Green is used for success messages (Ciapre ANSI 2)
	Green = lipgloss.Color("#A6A75D")
)

// Court colours. The hardwood is drawn as the default background of the court
// box so markings and players only set a foreground.
const (
	// Floor is the court background
	Floor = lipgloss.Color("#2A2118")
	// CourtLine is the colour of the painted markings
	CourtLine = lipgloss.Color("#6E5E4A")
)

// Highlight is the style for selected/highlighted items
var Highlight = lipgloss.NewStyle().
	Background(BrightPurple).
	Foreground(LightLavender).
	Bold(true)

// Disabled is the style for controls that exist but cannot be used
var Disabled = lipgloss.NewStyle().
	Foreground(Purple).
	Strikethrough(true)

// Offense is the style for offensive player tokens
var Offense = lipgloss.NewStyle().
	Foreground(Cyan).
	Bold(true)

// Defense is the style for defensive player tokens
var Defense = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// BallHolder marks the player with possession
var BallHolder = lipgloss.NewStyle().
	Background(Amber).
	Foreground(DarkPurple).
	Bold(true)

// Warning is the style for warning messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)
