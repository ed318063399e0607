package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyHistory         = "history"
	KeyProfile         = "profile"
	KeySave            = "save"
	KeySaveAll         = "save_all"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyClose           = "close"
	KeySaveDirectory   = "save_directory"
	KeyAutoReveal      = "auto_reveal"
	KeyProfileURL      = "profile_url"
	KeySettingsSaved   = "settings_saved"
	KeyEmptyHistory    = "empty_history"
	KeyAddedFavorite   = "added_favorite"
	KeyRemovedFavorite = "removed_favorite"
	KeySaveStarted     = "save_started"
	KeySaveCompleted   = "save_completed"
	KeySaveFailed      = "save_failed"
	KeySaveAllStarted  = "save_all_started"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Swipe Deck",
		KeySettings:        "Settings",
		KeyHistory:         "Favorites",
		KeyProfile:         "Profile",
		KeySave:            "Save",
		KeySaveAll:         "Save All",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyClose:           "Close",
		KeySaveDirectory:   "Save Directory",
		KeyAutoReveal:      "Reveal saved images in file manager",
		KeyProfileURL:      "Profile Link",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyEmptyHistory:    "No favorites yet — tap the heart on an image",
		KeyAddedFavorite:   "Added to favorites",
		KeyRemovedFavorite: "Removed from favorites",
		KeySaveStarted:     "Saving image...",
		KeySaveCompleted:   "Image saved",
		KeySaveFailed:      "Image save failed",
		KeySaveAllStarted:  "Saving all images...",
	}
}
