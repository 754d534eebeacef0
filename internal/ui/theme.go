package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette
var (
	ColorActiveTint    = color.NRGBA{R: 0xFF, G: 0xA0, B: 0x01, A: 0xFF} // #FFA001
	ColorInactiveTint  = color.NRGBA{R: 0xCD, G: 0xCD, B: 0xE0, A: 0xFF} // #CDCDE0
	ColorBackground    = color.NRGBA{R: 0x16, G: 0x16, B: 0x22, A: 0xFF} // #161622
	ColorSurface       = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x2D, A: 0xFF} // #1E1E2D
	ColorSurfaceBorder = color.NRGBA{R: 0x23, G: 0x25, B: 0x33, A: 0xFF} // #232533
	ColorCardShade     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x1A} // white/10
)

// ReelTheme is the dark theme of the app. The variant requested by the OS is
// ignored.
type ReelTheme struct{}

// NewReelTheme creates the app theme
func NewReelTheme() fyne.Theme {
	return &ReelTheme{}
}

// Color returns theme colors
func (t *ReelTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHyperlink:
		return ColorActiveTint
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return ColorBackground
	case theme.ColorNameInputBackground, theme.ColorNameButton:
		return ColorSurface
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return ColorSurfaceBorder
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorInactiveTint
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameForegroundOnPrimary:
		return ColorBackground
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *ReelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ReelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ReelTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 16 // rounded search box
	case theme.SizeNameSelectionRadius:
		return 8
	case theme.SizeNameInputBorder:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
