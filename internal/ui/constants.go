package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconLanguage = "🌐"
)

// Trending card geometry
const (
	CardWidth          float32 = 208
	CardHeight         float32 = 288
	CardGap            float32 = 20
	CardVerticalMargin float32 = 20
	CardCornerRadius   float32 = 33
	PlayIconSize       float32 = 48

	// Empty space before the first and after the last card so that both
	// ends of the list can be scrolled to the centre
	CarouselPadding float32 = 170

	MobileCardWidth  float32 = 160
	MobileCardHeight float32 = 220
)

// Search input sizing
const (
	SearchInputHeight float32 = 64
	SearchIconSize    float32 = 20
)

// Tab bar
const (
	TabBarHeight float32 = 64
)

// Route prefixes understood by the navigator
const (
	RouteHome   = "/home"
	RouteSearch = "/search"
)

// Debounce durations
const (
	VisibilityDebounce = 100 * time.Millisecond
)

// Toast notification behavior
const (
	ToastAutoHide = 3 * time.Second
)
