// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the viewer screen.
const (
	// BorderHeight is the vertical space consumed by the plot frame.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by the plot frame.
	BorderWidth = 2

	// StatusLineHeight is the space for the status line below the plot.
	StatusLineHeight = 1

	// HelpLineHeight is the space for the one line key summary.
	HelpLineHeight = 1

	// ScreenOverhead is the vertical space around the plot.
	ScreenOverhead = BorderHeight + StatusLineHeight + HelpLineHeight
)
