package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/reelfeed/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 500
	SettingsDialogHeight = 460
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	thresholdEntry  *widget.Entry
	durationEntry   *widget.Entry
	playerEntry     *widget.Entry
	feedFileEntry   *widget.Entry
	playlistEntry   *widget.Entry
	languageSelect  *widget.Select
	languageOptions map[string]string
}

// ShowSettingsDialog opens the settings dialog. onSaved runs after the
// values were stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder("1-100")
	sd.thresholdEntry.Validator = intRange(config.MinVisibilityThreshold, config.MaxVisibilityThreshold)

	sd.durationEntry = widget.NewEntry()
	sd.durationEntry.SetPlaceHolder("0-5000")
	sd.durationEntry.Validator = intRange(0, config.MaxTransitionDuration)

	sd.playerEntry = widget.NewEntry()
	sd.playerEntry.SetPlaceHolder(config.DefaultPlayerCommand)

	sd.feedFileEntry = widget.NewEntry()
	browseBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseFeed)
	feedRow := container.NewBorder(nil, nil, nil, browseBtn, sd.feedFileEntry)

	sd.playlistEntry = widget.NewEntry()
	sd.playlistEntry.SetPlaceHolder("https://www.youtube.com/playlist?list=...")

	sd.languageOptions = sd.settings.GetLanguageOptions()
	labels := make([]string, 0, len(sd.languageOptions))
	for _, label := range sd.languageOptions {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyVisibilityThreshold)),
		sd.thresholdEntry,
		widget.NewLabel(t(KeyTransitionDuration)),
		sd.durationEntry,
		widget.NewLabel(t(KeyPlayerCommand)),
		sd.playerEntry,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyFeedFile)),
		feedRow,
		widget.NewLabel(t(KeyPlaylist)),
		sd.playlistEntry,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.thresholdEntry.SetText(strconv.Itoa(sd.settings.GetVisibilityThreshold()))
	sd.durationEntry.SetText(strconv.Itoa(int(sd.settings.GetTransitionDuration() / time.Millisecond)))
	sd.playerEntry.SetText(sd.settings.GetPlayerCommand())
	sd.feedFileEntry.SetText(sd.settings.GetFeedFile())
	sd.playlistEntry.SetText(sd.settings.GetPlaylistID())
	sd.languageSelect.SetSelected(sd.languageOptions[sd.settings.GetLanguage()])
}

func (sd *SettingsDialog) onBrowseFeed() {
	dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer r.Close()
		sd.feedFileEntry.SetText(r.URI().Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the entered values. Invalid numbers keep the stored value.
func (sd *SettingsDialog) apply() {
	if v, err := strconv.Atoi(sd.thresholdEntry.Text); err == nil {
		sd.settings.SetVisibilityThreshold(v)
	}
	if v, err := strconv.Atoi(sd.durationEntry.Text); err == nil {
		sd.settings.SetTransitionDuration(time.Duration(v) * time.Millisecond)
	}

	sd.settings.SetPlayerCommand(sd.playerEntry.Text)
	if sd.feedFileEntry.Text != "" {
		sd.settings.SetFeedFile(sd.feedFileEntry.Text)
	}
	sd.settings.SetPlaylistID(sd.playlistEntry.Text)

	for code, label := range sd.languageOptions {
		if label == sd.languageSelect.Selected {
			sd.settings.SetLanguage(code)
			break
		}
	}
}

func intRange(lo, hi int) fyne.StringValidator {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if v < lo || v > hi {
			return strconv.ErrRange
		}
		return nil
	}
}
