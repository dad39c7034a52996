// Package ui provides shared UI constants and component plumbing.
package ui

// Layout constants shared across components.
const (
	// ScrollMargin is the number of rows kept visible above and below
	// the cursor while scrolling.
	ScrollMargin = 5

	// BorderHeight is the vertical space a panel border consumes.
	BorderHeight = 2

	// HeaderHeight is the space for a panel's header line and
	// separator.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead of a bordered
	// panel with a header.
	PanelOverhead = BorderHeight + HeaderHeight
)
