// Package ui holds layout constants and the Base embedded by components.
package ui

const (
	// ScrollMargin is the number of rows kept visible above and below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space taken by a panel border.
	BorderHeight = 2

	// HeaderHeight covers a panel's title row and its separator.
	HeaderHeight = 2

	// PanelOverhead is subtracted from a panel's height to get its list height.
	PanelOverhead = BorderHeight + HeaderHeight
)
