package config

import (
	"fyne.io/fyne/v2"

	"github.com/swipedeck/swipe-deck/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeySaveDir          = "save_directory"
	KeyAutoRevealOnSave = "auto_reveal_on_save"
	KeyProfileURL       = "profile_url"
)

// Default values
const (
	DefaultAutoRevealOnSave = false
	DefaultProfileURL       = "https://github.com/swipedeck"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSaveDirectory returns the directory downloaded images are saved into
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets the image save directory
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDir, dir)
}

// GetAutoRevealOnSave returns whether to reveal saved images in the file manager
func (s *Settings) GetAutoRevealOnSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealOnSave, DefaultAutoRevealOnSave)
}

// SetAutoRevealOnSave sets whether to reveal saved images in the file manager
func (s *Settings) SetAutoRevealOnSave(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealOnSave, autoReveal)
}

// GetProfileURL returns the external profile link opened by the profile button
func (s *Settings) GetProfileURL() string {
	url := s.app.Preferences().String(KeyProfileURL)
	if url == "" {
		s.SetProfileURL(DefaultProfileURL)
		return DefaultProfileURL
	}
	return url
}

// SetProfileURL sets the external profile link
func (s *Settings) SetProfileURL(url string) {
	if url == "" {
		url = DefaultProfileURL
	}
	s.app.Preferences().SetString(KeyProfileURL, url)
}
