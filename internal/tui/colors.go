package tui

// Color constants for the pomo countdown theme
const (
	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (tomato theme)
	ColorAccentMain   = "#E0493E" // Countdown digits, bar start
	ColorAccentBright = "#F97316" // Bar end, highlights

	// State Colors
	ColorSuccess = "#22C55E" // Completion message
	ColorWarning = "#F59E0B" // Interruption hints
)
