package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/reelfeed/internal/config"
	"github.com/ytget/reelfeed/internal/model"
	"github.com/ytget/reelfeed/internal/platform"
)

// Feed loading constants
const (
	FeedLoadTimeout = 2 * time.Minute
)

// ErrDuplicateVideo is returned when a created video is already in the feed
var ErrDuplicateVideo = errors.New("video already in feed")

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	resolver     *platform.ThumbnailResolver
	navigator    *StackNavigator

	records []model.VideoRecord
	created []model.VideoRecord

	tabs     *container.AppTabs
	home     *HomeScreen
	bookmark *BookmarkScreen
	create   *CreateScreen
	profile  *ProfileScreen

	homeTab     *container.TabItem
	bookmarkTab *container.TabItem
	createTab   *container.TabItem
	profileTab  *container.TabItem

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationTimer     *time.Timer

	loadCancel context.CancelFunc
	loadGen    int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		resolver:     platform.NewThumbnailResolver(nil),
		navigator:    NewStackNavigator(RouteHome),
		records:      []model.VideoRecord{},
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(ui.Shutdown)

	ui.setupUI()
	return ui
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.home = NewHomeScreen(ui.navigator, ui.localization, ui.newTrendingView(), ui.showAlert)
	ui.bookmark = NewBookmarkScreen(ui.localization)
	ui.create = NewCreateScreen(ui.window, ui.localization, ui.AddVideo)
	ui.profile = NewProfileScreen(ui.localization, ui.LoadFeed, ui.onShowSettings)

	ui.homeTab = container.NewTabItemWithIcon("", theme.HomeIcon(), ui.home.Content())
	ui.bookmarkTab = container.NewTabItemWithIcon("", theme.DocumentSaveIcon(), ui.bookmark.Content())
	ui.createTab = container.NewTabItemWithIcon("", theme.ContentAddIcon(), ui.create.Content())
	ui.profileTab = container.NewTabItemWithIcon("", theme.AccountIcon(), ui.profile.Content())

	ui.tabs = container.NewAppTabs(ui.homeTab, ui.bookmarkTab, ui.createTab, ui.profileTab)
	ui.tabs.SetTabLocation(container.TabLocationBottom)

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	ui.refreshUITexts()
	ui.window.SetContent(container.NewBorder(ui.notificationContainer, nil, nil, nil, ui.tabs))

	log.Printf("UI setup completed successfully")
}

// newTrendingView builds a carousel view from the current settings
func (ui *RootUI) newTrendingView() *TrendingView {
	duration := ui.settings.GetTransitionDuration()
	if duration == 0 {
		duration = -1
	}
	player := platform.NewExternalPlayer(ui.settings.GetPlayerCommand(), fyne.Do)

	return NewTrendingView(TrendingOptions{
		Records:            ui.records,
		Provider:           player,
		Threshold:          ui.settings.GetVisibilityFraction(),
		TransitionDuration: duration,
		CardSize:           ui.mobile.CardSize(),
		Padding:            ui.mobile.CarouselPadding(),
		Localization:       ui.localization,
		OnError:            ui.onPlaybackError,
	})
}

// Home returns the Home tab
func (ui *RootUI) Home() *HomeScreen {
	return ui.home
}

// Records returns the current feed
func (ui *RootUI) Records() []model.VideoRecord {
	return ui.records
}

// SetRecords replaces the feed on every screen
func (ui *RootUI) SetRecords(records []model.VideoRecord) {
	ui.home.SetRecords(records)
	ui.records = ui.home.Trending().Carousel().Records()
	ui.profile.SetVideoCount(len(ui.records))
}

// LoadFeed loads the configured feed sources in the background. Videos
// created in this session are kept after the loaded ones.
func (ui *RootUI) LoadFeed() {
	sources := ui.feedSources()

	if ui.loadCancel != nil {
		ui.loadCancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), FeedLoadTimeout)
	ui.loadCancel = cancel
	ui.loadGen++
	gen := ui.loadGen

	ui.showNotification(ui.localization.GetText(KeyLoadingFeed), true)
	go func() {
		defer cancel()
		records, err := platform.LoadFeeds(ctx, sources...)
		fyne.Do(func() {
			if gen != ui.loadGen {
				log.Printf("Dropping superseded feed load %d", gen)
				return
			}
			if err != nil {
				log.Printf("Feed loading failed: %v", err)
				ui.showNotification(ui.localization.GetText(KeyFeedLoadFailed)+": "+err.Error(), false)
				return
			}
			ui.SetRecords(append(records, ui.created...))
			ui.showNotification(ui.localization.Format(KeyFeedLoaded, len(ui.records)), false)
		})
	}()
}

func (ui *RootUI) feedSources() []platform.FeedSource {
	var sources []platform.FeedSource
	if path := ui.settings.GetFeedFile(); path != "" {
		sources = append(sources, platform.NewFileSource(path, ui.resolver))
	}
	if id := ui.settings.GetPlaylistID(); id != "" {
		src, err := platform.NewPlaylistSource(id)
		if err != nil {
			log.Printf("Ignoring playlist setting: %v", err)
		} else {
			sources = append(sources, src)
		}
	}
	return sources
}

// AddVideo appends a record created by the user. A missing thumbnail is
// resolved before the record is published.
func (ui *RootUI) AddVideo(rec model.VideoRecord) error {
	if rec.ID == "" {
		rec.ID = model.DeriveID(rec.VideoSource)
	}
	for _, existing := range ui.records {
		if existing.ID == rec.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateVideo, rec.GetDisplayTitle())
		}
	}

	if rec.HasThumbnail() {
		ui.publish(rec)
		return nil
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), platform.DefaultThumbnailTimeout)
		defer cancel()
		thumb, err := ui.resolver.Resolve(ctx, rec.VideoSource)
		if err != nil {
			log.Printf("No thumbnail for %s: %v", rec.VideoSource, err)
		}
		fyne.Do(func() {
			rec.ThumbnailSource = thumb
			ui.publish(rec)
		})
	}()
	return nil
}

func (ui *RootUI) publish(rec model.VideoRecord) {
	ui.created = append(ui.created, rec)

	records := make([]model.VideoRecord, 0, len(ui.records)+1)
	records = append(records, ui.records...)
	records = append(records, rec)
	ui.SetRecords(records)
	ui.showNotification(ui.localization.GetText(KeyVideoAdded), false)
	log.Printf("Published %s as %s", rec.GetDisplayTitle(), rec.ID)
}

// Shutdown stops background work and releases all video surfaces
func (ui *RootUI) Shutdown() {
	if ui.loadCancel != nil {
		ui.loadCancel()
	}
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.home.Trending().Unmount()
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReloadFeed), ui.LoadFeed)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.homeTab.Text = ui.localization.GetText(KeyTabHome)
	ui.bookmarkTab.Text = ui.localization.GetText(KeyTabBookmark)
	ui.createTab.Text = ui.localization.GetText(KeyTabCreate)
	ui.profileTab.Text = ui.localization.GetText(KeyTabProfile)
	ui.tabs.Refresh()

	ui.home.RefreshTexts()
	ui.bookmark.RefreshTexts()
	ui.create.RefreshTexts()
	ui.profile.RefreshTexts()
}

// showNotification displays a message in the notification panel above the
// tabs. When spinning is true, a spinner is shown to indicate background
// activity; otherwise the panel hides itself after a while.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}

	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
		ui.notificationTimer = time.AfterFunc(ToastAutoHide, func() {
			fyne.Do(ui.hideNotification)
		})
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

func (ui *RootUI) showAlert(title, message string) {
	dialog.ShowInformation(title, message, ui.window)
}

func (ui *RootUI) onPlaybackError(err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyPlaybackFailed), err), ui.window)
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()

		ui.home.SetTrending(ui.newTrendingView())
		ui.LoadFeed()
	})
}
