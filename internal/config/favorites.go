package config

import (
	"encoding/json"
	"log"

	"fyne.io/fyne/v2"

	"github.com/swipedeck/swipe-deck/internal/model"
)

// KeyFavorites is the preferences key holding the persisted favorite ids,
// stored as a JSON-encoded array of integers.
const KeyFavorites = "favorite_image_ids"

// FavoritesStore persists the favorite-id set through Fyne preferences.
// The persisted set is always derived fresh from the catalog at save time,
// so it matches the in-memory flags after every toggle.
type FavoritesStore struct {
	prefs fyne.Preferences
}

// NewFavoritesStore creates a favorites store backed by the app preferences
func NewFavoritesStore(app fyne.App) *FavoritesStore {
	return &FavoritesStore{prefs: app.Preferences()}
}

// Load reads the persisted id set and applies it to the catalog.
// A missing or malformed value is treated as an empty set, never an error.
func (fs *FavoritesStore) Load(catalog *model.Catalog) {
	raw := fs.prefs.String(KeyFavorites)
	if raw == "" {
		catalog.ApplyFavorites(nil)
		return
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("Ignoring malformed favorites value: %v", err)
		catalog.ApplyFavorites(nil)
		return
	}

	catalog.ApplyFavorites(ids)
}

// Save derives the favorite ids fresh from the catalog and persists them
func (fs *FavoritesStore) Save(catalog *model.Catalog) {
	ids := catalog.FavoriteIDs()

	raw, err := json.Marshal(ids)
	if err != nil {
		log.Printf("Failed to encode favorites: %v", err)
		return
	}

	fs.prefs.SetString(KeyFavorites, string(raw))
}
