package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/reelfeed/internal/config"
)

func TestSettingsDialog_LoadAndApply(t *testing.T) {
	app := test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))
	settings := config.NewSettings(app)

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved++ })
	sd.loadCurrentSettings()

	if sd.thresholdEntry.Text != "70" {
		t.Errorf("threshold entry = %q, expected 70", sd.thresholdEntry.Text)
	}
	if sd.durationEntry.Text != "500" {
		t.Errorf("duration entry = %q, expected 500", sd.durationEntry.Text)
	}
	if sd.playerEntry.Text != config.DefaultPlayerCommand {
		t.Errorf("player entry = %q", sd.playerEntry.Text)
	}

	sd.thresholdEntry.SetText("55")
	sd.durationEntry.SetText("not a number")
	sd.playerEntry.SetText("mpv")
	sd.playlistEntry.SetText("PL123")
	sd.languageSelect.SetSelected("Português")
	sd.onSave(true)

	if settings.GetVisibilityThreshold() != 55 {
		t.Errorf("threshold = %d, expected 55", settings.GetVisibilityThreshold())
	}
	if settings.GetTransitionDuration() != 500*time.Millisecond {
		t.Errorf("invalid duration should keep the stored value, got %v", settings.GetTransitionDuration())
	}
	if settings.GetPlayerCommand() != "mpv" {
		t.Errorf("player = %s, expected mpv", settings.GetPlayerCommand())
	}
	if settings.GetPlaylistID() != "PL123" {
		t.Errorf("playlist = %s, expected PL123", settings.GetPlaylistID())
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("language = %s, expected pt", settings.GetLanguage())
	}
	if saved != 1 {
		t.Errorf("onSaved called %d times, expected 1", saved)
	}

	sd.onSave(false)
	if saved != 1 {
		t.Error("cancel must not call onSaved")
	}
}

func TestIntRange(t *testing.T) {
	validate := intRange(1, 100)

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"1", false},
		{"100", false},
		{"0", true},
		{"101", true},
		{"abc", true},
	}

	for _, tt := range tests {
		if err := validate(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("intRange(1,100)(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
