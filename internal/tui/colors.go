package tui

// Color constants for the pomostudy TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#45333A" // Warm grey-brown

	// Text Colors
	ColorPrimaryText   = "#F2ECE6" // Primary text (labels, user input, titles)
	ColorSecondaryText = "#C8B6AD" // Secondary text - warm muted grey
	ColorDisabledText  = "#837067" // Disabled/muted text
	ColorPlaceholder   = "#C8B6AD" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Tomato theme)
	ColorAccentMain   = "#E2574C" // Accent elements, active borders
	ColorAccentBright = "#F2978F" // Highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
