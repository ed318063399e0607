package ui

import (
	"fmt"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/swipedeck/swipe-deck/internal/config"
	"github.com/swipedeck/swipe-deck/internal/download"
	"github.com/swipedeck/swipe-deck/internal/model"
	"github.com/swipedeck/swipe-deck/internal/platform"
)

// RootUI is the main application controller. It owns the nav state and
// wires the stack, lightbox, history grid, progress bar, and save service
// together.
type RootUI struct {
	app    fyne.App
	window fyne.Window

	catalog *model.Catalog
	nav     *model.NavState

	settings   *config.Settings
	favorites  *config.FavoritesStore
	downloader download.Downloader
	loc        *Localization

	stack     *StackView
	lightbox  *Lightbox
	history   *HistoryView
	progress  *ProgressBar
	seenLabel *widget.Label
}

// NewRootUI creates the root controller and builds the window content
func NewRootUI(app fyne.App, window fyne.Window, catalog *model.Catalog,
	settings *config.Settings, favorites *config.FavoritesStore, downloader download.Downloader) *RootUI {

	ui := &RootUI{
		app:        app,
		window:     window,
		catalog:    catalog,
		nav:        model.NewNavState(),
		settings:   settings,
		favorites:  favorites,
		downloader: downloader,
		loc:        NewLocalization(),
	}

	favorites.Load(catalog)
	downloader.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	ui.setupKeyboard()
	return ui
}

// setupUI assembles the window content
func (ui *RootUI) setupUI() {
	ui.stack = NewStackView(ui.catalog, ui.nav)
	ui.stack.SetCallbacks(ui.onStackAdvance, ui.onTapFront, ui.onToggleFavorite, ui.onSave)

	ui.lightbox = NewLightbox(ui.window, ui.catalog, ui.nav)
	ui.lightbox.SetOnToggleFavorite(ui.onToggleFavorite)

	ui.history = NewHistoryView(ui.window, ui.catalog, ui.loc)
	ui.history.SetCallbacks(ui.onToggleFavorite, ui.onSave)

	ui.progress = NewProgressBar()
	ui.seenLabel = widget.NewLabel("")
	ui.seenLabel.Alignment = fyne.TextAlignCenter

	title := widget.NewLabel(ui.loc.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	profileButton := widget.NewButton(IconProfile, ui.openProfile)
	historyButton := widget.NewButton(ui.loc.GetText(KeyHistory), ui.history.Show)
	saveAllButton := widget.NewButton(ui.loc.GetText(KeySaveAll), ui.onSaveAll)
	settingsButton := widget.NewButton(IconSettings, ui.showSettingsDialog)

	toolbar := container.NewBorder(nil, nil, title,
		container.NewHBox(profileButton, historyButton, saveAllButton, settingsButton))

	footer := container.NewVBox(ui.progress, ui.seenLabel)

	ui.window.SetContent(container.NewBorder(
		toolbar, footer, nil, nil,
		container.NewCenter(ui.stack.Content()),
	))

	ui.stack.Render()
	ui.refreshProgress()
}

// setupKeyboard installs the window-level key handler. Escape closes the
// topmost modal; arrow keys step the lightbox and only fire while it is
// open.
func (ui *RootUI) setupKeyboard() {
	ui.window.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		switch e.Name {
		case fyne.KeyEscape:
			if ui.lightbox.IsOpen() {
				ui.lightbox.Close()
			} else if ui.history.IsOpen() {
				ui.history.Hide()
			}
		case fyne.KeyLeft:
			if ui.lightbox.IsOpen() {
				ui.lightbox.Prev()
			}
		case fyne.KeyRight:
			if ui.lightbox.IsOpen() {
				ui.lightbox.Next()
			}
		}
	})
}

// onStackAdvance runs after every committed swipe
func (ui *RootUI) onStackAdvance() {
	ui.refreshProgress()
}

// onTapFront opens the lightbox on the front card
func (ui *RootUI) onTapFront(_ int) {
	ui.lightbox.Open(ui.nav.CurrentIndex)
}

// onToggleFavorite flips the favorite flag, persists the new set, and
// refreshes every surface that shows a heart
func (ui *RootUI) onToggleFavorite(id int) {
	nowFav, ok := ui.catalog.ToggleFavorite(id)
	if !ok {
		log.Printf("Favorite toggle for unknown image id %d", id)
		return
	}
	ui.favorites.Save(ui.catalog)

	ui.stack.RefreshFavorites()
	ui.lightbox.RefreshFavorite()

	if nowFav {
		ShowToast(ui.window.Canvas(), ui.loc.GetText(KeyAddedFavorite))
	} else {
		ShowToast(ui.window.Canvas(), ui.loc.GetText(KeyRemovedFavorite))
	}
}

// onSave queues a save for the given image
func (ui *RootUI) onSave(id int) {
	rec := ui.catalog.ByID(id)
	if rec == nil {
		log.Printf("Save requested for unknown image id %d", id)
		return
	}
	if _, err := ui.downloader.SaveImage(rec); err != nil {
		log.Printf("Failed to queue save for image %d: %v", id, err)
		ShowToast(ui.window.Canvas(), ui.loc.GetText(KeySaveFailed))
		return
	}
	ShowToast(ui.window.Canvas(), ui.loc.GetText(KeySaveStarted))
}

// onSaveAll queues saves for the whole catalog
func (ui *RootUI) onSaveAll() {
	ui.downloader.SaveAll(ui.catalog)
	ShowToast(ui.window.Canvas(), ui.loc.GetText(KeySaveAllStarted))
}

// onTaskUpdate receives save-task status changes from the service's
// worker goroutines and reflects them on the UI thread
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	switch task.Status {
	case model.TaskStatusCompleted:
		fyne.Do(func() {
			ShowToast(ui.window.Canvas(), ui.loc.GetText(KeySaveCompleted)+": "+task.GetDisplayTitle())
		})
		if ui.settings.GetAutoRevealOnSave() && task.OutputPath != "" {
			if err := platform.OpenFileInManager(task.OutputPath); err != nil {
				log.Printf("Failed to reveal %s: %v", task.OutputPath, err)
			}
		}
	case model.TaskStatusError:
		fyne.Do(func() {
			ShowToast(ui.window.Canvas(), ui.loc.GetText(KeySaveFailed)+": "+task.GetDisplayTitle())
		})
	}
}

// openProfile opens the configured external profile link in the browser
func (ui *RootUI) openProfile() {
	raw := ui.settings.GetProfileURL()
	u, err := url.Parse(raw)
	if err != nil {
		log.Printf("Invalid profile URL %q: %v", raw, err)
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		log.Printf("Failed to open profile URL: %v", err)
	}
}

// refreshProgress updates the progress bar and seen caption from nav state
func (ui *RootUI) refreshProgress() {
	n := ui.catalog.Len()
	ui.progress.SetPercent(ui.nav.ProgressPercent(n))
	ui.seenLabel.SetText(fmt.Sprintf(SeenCounterFormat, ui.nav.SeenCount(n), n))
}

// Show displays the main window and runs the app
func (ui *RootUI) Show() {
	ui.window.ShowAndRun()
}
