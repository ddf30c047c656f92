package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PanelBarHeight is the height of the category tab bar at the bottom of
	// the screen.
	PanelBarHeight = 44
	// PanelHeight is the height of an open prefab panel above the tab bar.
	PanelHeight = 120
)
