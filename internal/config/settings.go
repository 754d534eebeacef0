package config

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/ytget/reelfeed/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyVisibilityThreshold = "visibility_threshold_percent"
	KeyTransitionDuration  = "transition_duration_ms"
	KeyPlayerCommand       = "player_command"
	KeyFeedFile            = "feed_file"
	KeyPlaylistID          = "playlist_id"
	KeyLanguage            = "app_language"
)

// Default values
const (
	DefaultVisibilityThreshold = 70
	DefaultTransitionDuration  = 500
	DefaultPlayerCommand       = platform.DefaultPlayerCommand
	DefaultLanguage            = "system"
)

// Bounds
const (
	MinVisibilityThreshold = 1
	MaxVisibilityThreshold = 100
	MaxTransitionDuration  = 5000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetVisibilityThreshold returns the percent of a card that must be on screen
// for the card to count as visible
func (s *Settings) GetVisibilityThreshold() int {
	value := s.app.Preferences().Int(KeyVisibilityThreshold)
	if value <= 0 {
		s.SetVisibilityThreshold(DefaultVisibilityThreshold)
		return DefaultVisibilityThreshold
	}
	return value
}

// SetVisibilityThreshold sets the visibility threshold percent
func (s *Settings) SetVisibilityThreshold(percent int) {
	if percent < MinVisibilityThreshold {
		percent = MinVisibilityThreshold
	}
	if percent > MaxVisibilityThreshold {
		percent = MaxVisibilityThreshold
	}
	s.app.Preferences().SetInt(KeyVisibilityThreshold, percent)
}

// GetVisibilityFraction returns the threshold as a fraction in (0,1]
func (s *Settings) GetVisibilityFraction() float32 {
	return float32(s.GetVisibilityThreshold()) / 100
}

// GetTransitionDuration returns the card zoom duration
func (s *Settings) GetTransitionDuration() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyTransitionDuration, DefaultTransitionDuration)
	return time.Duration(ms) * time.Millisecond
}

// SetTransitionDuration sets the card zoom duration
func (s *Settings) SetTransitionDuration(d time.Duration) {
	ms := int(d / time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	if ms > MaxTransitionDuration {
		ms = MaxTransitionDuration
	}
	s.app.Preferences().SetInt(KeyTransitionDuration, ms)
}

// GetPlayerCommand returns the external player executable
func (s *Settings) GetPlayerCommand() string {
	cmd := s.app.Preferences().String(KeyPlayerCommand)
	if cmd == "" {
		s.SetPlayerCommand(DefaultPlayerCommand)
		return DefaultPlayerCommand
	}
	return cmd
}

// SetPlayerCommand sets the external player executable
func (s *Settings) SetPlayerCommand(cmd string) {
	if cmd == "" {
		cmd = DefaultPlayerCommand
	}
	s.app.Preferences().SetString(KeyPlayerCommand, cmd)
}

// GetFeedFile returns the YAML feed path, defaulting to the user config dir
func (s *Settings) GetFeedFile() string {
	path := s.app.Preferences().String(KeyFeedFile)
	if path == "" {
		defaultPath, err := platform.DefaultFeedFile()
		if err != nil {
			return ""
		}
		return defaultPath
	}
	return path
}

// SetFeedFile sets the YAML feed path
func (s *Settings) SetFeedFile(path string) {
	s.app.Preferences().SetString(KeyFeedFile, path)
}

// GetPlaylistID returns the YouTube playlist used as trending feed
func (s *Settings) GetPlaylistID() string {
	return s.app.Preferences().String(KeyPlaylistID)
}

// SetPlaylistID sets the YouTube playlist used as trending feed
func (s *Settings) SetPlaylistID(id string) {
	s.app.Preferences().SetString(KeyPlaylistID, id)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
