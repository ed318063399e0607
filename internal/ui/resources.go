package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "swipe-deck.png"
)

// LoadLogoResource loads the app logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
