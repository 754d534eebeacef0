package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "reelfeed.png"
)

// LoadLogoResource loads the logo from the working directory, falling back
// to the media icon of the theme
func LoadLogoResource() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.MediaVideoIcon()
	}
	return res
}
