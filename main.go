package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/swipedeck/swipe-deck/internal/config"
	"github.com/swipedeck/swipe-deck/internal/download"
	"github.com/swipedeck/swipe-deck/internal/model"
	"github.com/swipedeck/swipe-deck/internal/platform"
	"github.com/swipedeck/swipe-deck/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.swipedeck.swipe-deck"
	AppName = "Swipe Deck"

	WindowWidth  = 720
	WindowHeight = 640

	DefaultMaxParallelSaves = 3
)

func main() {
	// Log version information
	fmt.Printf("Swipe Deck v%s starting...\n", version)

	// Optional .env next to the binary; absence is not an error
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment overrides from .env")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	if logo, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(logo)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	applyEnvOverrides(settings)

	saveDir := settings.GetSaveDirectory()
	if err := platform.CreateDirectoryIfNotExists(saveDir); err != nil {
		fmt.Printf("failed to ensure save dir: %v\n", err)
	}

	favorites := config.NewFavoritesStore(myApp)
	catalog := model.DefaultCatalog()
	downloadSvc := download.NewService(saveDir, maxParallelSaves())

	// Create and setup UI
	rootUI := ui.NewRootUI(myApp, myWindow, catalog, settings, favorites, downloadSvc)
	rootUI.Show()
}

// applyEnvOverrides lets the environment win over stored preferences
func applyEnvOverrides(settings *config.Settings) {
	if dir := os.Getenv("SWIPEDECK_SAVE_DIR"); dir != "" {
		settings.SetSaveDirectory(dir)
	}
	if profileURL := os.Getenv("SWIPEDECK_PROFILE_URL"); profileURL != "" {
		settings.SetProfileURL(profileURL)
	}
}

func maxParallelSaves() int {
	raw := os.Getenv("SWIPEDECK_MAX_PARALLEL")
	if raw == "" {
		return DefaultMaxParallelSaves
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("Ignoring invalid SWIPEDECK_MAX_PARALLEL=%q", raw)
		return DefaultMaxParallelSaves
	}
	return n
}
