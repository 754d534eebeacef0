package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// BookmarkScreen is the Bookmark tab
type BookmarkScreen struct {
	localization *Localization
	heading      *widget.Label
	empty        *widget.Label
}

// NewBookmarkScreen creates the Bookmark tab
func NewBookmarkScreen(localization *Localization) *BookmarkScreen {
	s := &BookmarkScreen{
		localization: localization,
		heading:      widget.NewLabel(""),
		empty:        widget.NewLabel(""),
	}
	s.heading.TextStyle = fyne.TextStyle{Bold: true}
	s.empty.Alignment = fyne.TextAlignCenter
	s.empty.Importance = widget.LowImportance
	s.RefreshTexts()
	return s
}

// RefreshTexts reapplies localized texts
func (s *BookmarkScreen) RefreshTexts() {
	s.heading.SetText(s.localization.GetText(KeySavedVideos))
	s.empty.SetText(s.localization.GetText(KeyNoSavedVideos))
}

// Content returns the tab content
func (s *BookmarkScreen) Content() fyne.CanvasObject {
	return container.NewBorder(s.heading, nil, nil, nil, container.NewCenter(s.empty))
}

// ProfileScreen is the Profile tab: feed statistics and app actions
type ProfileScreen struct {
	localization *Localization
	count        int

	stats     *widget.Label
	reloadBtn *widget.Button
	settings  *widget.Button
}

// NewProfileScreen creates the Profile tab
func NewProfileScreen(localization *Localization, onReload, onSettings func()) *ProfileScreen {
	s := &ProfileScreen{
		localization: localization,
		stats:        widget.NewLabel(""),
		reloadBtn:    widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), onReload),
		settings:     widget.NewButtonWithIcon("", theme.SettingsIcon(), onSettings),
	}
	s.stats.Alignment = fyne.TextAlignCenter
	s.RefreshTexts()
	return s
}

// SetVideoCount updates the statistics
func (s *ProfileScreen) SetVideoCount(n int) {
	s.count = n
	s.stats.SetText(s.localization.Format(KeyFeedStats, n))
}

// RefreshTexts reapplies localized texts
func (s *ProfileScreen) RefreshTexts() {
	s.stats.SetText(s.localization.Format(KeyFeedStats, s.count))
	s.reloadBtn.SetText(s.localization.GetText(KeyReloadFeed))
	s.settings.SetText(s.localization.GetText(KeySettings))
}

// Content returns the tab content
func (s *ProfileScreen) Content() fyne.CanvasObject {
	avatar := canvas.NewImageFromResource(theme.AccountIcon())
	avatar.FillMode = canvas.ImageFillContain
	avatar.SetMinSize(fyne.NewSquareSize(64))
	return container.NewCenter(container.NewVBox(avatar, s.stats, s.reloadBtn, s.settings))
}
