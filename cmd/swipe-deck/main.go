package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/swipedeck/swipe-deck/internal/config"
	"github.com/swipedeck/swipe-deck/internal/download"
	"github.com/swipedeck/swipe-deck/internal/model"
	"github.com/swipedeck/swipe-deck/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.swipedeck.swipe-deck")
	myWindow := myApp.NewWindow("Swipe Deck")
	myWindow.Resize(fyne.NewSize(720, 640))

	// Initialize services
	settings := config.NewSettings(myApp)
	favorites := config.NewFavoritesStore(myApp)
	downloadSvc := download.NewService(settings.GetSaveDirectory(), 3)

	// Create and setup UI
	rootUI := ui.NewRootUI(myApp, myWindow, model.DefaultCatalog(), settings, favorites, downloadSvc)
	rootUI.Show()
}
