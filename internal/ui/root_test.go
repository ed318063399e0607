package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/swipedeck/swipe-deck/internal/config"
	"github.com/swipedeck/swipe-deck/internal/download"
	"github.com/swipedeck/swipe-deck/internal/model"
)

func newTestRootUI(t *testing.T) (*RootUI, fyne.App) {
	t.Helper()

	a := test.NewApp()
	window := test.NewWindow(widget.NewLabel("loading"))
	t.Cleanup(window.Close)

	catalog := model.DefaultCatalog()
	settings := config.NewSettings(a)
	settings.SetSaveDirectory(t.TempDir())
	favorites := config.NewFavoritesStore(a)
	downloader := download.NewService(settings.GetSaveDirectory(), 1)

	return NewRootUI(a, window, catalog, settings, favorites, downloader), a
}

func TestRootUIInitialProgress(t *testing.T) {
	ui, _ := newTestRootUI(t)

	if got := ui.progress.Percent(); got != 12.5 {
		t.Errorf("initial progress = %v, want 12.5", got)
	}
	if got := ui.seenLabel.Text; got != "1 / 8" {
		t.Errorf("seen caption = %q, want %q", got, "1 / 8")
	}
}

func TestRootUIAdvanceUpdatesProgress(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.stack.advance()
	if got := ui.progress.Percent(); got != 25 {
		t.Errorf("progress after one swipe = %v, want 25", got)
	}
	if got := ui.seenLabel.Text; got != "2 / 8" {
		t.Errorf("seen caption = %q, want %q", got, "2 / 8")
	}
}

func TestRootUIToggleFavoritePersists(t *testing.T) {
	ui, a := newTestRootUI(t)

	ui.onToggleFavorite(3)
	if !ui.catalog.ByID(3).IsFav {
		t.Fatal("record 3 not flagged after toggle")
	}
	if got := a.Preferences().String(config.KeyFavorites); got != "[3]" {
		t.Errorf("persisted favorites = %q, want %q", got, "[3]")
	}

	ui.onToggleFavorite(3)
	if got := a.Preferences().String(config.KeyFavorites); got != "[]" {
		t.Errorf("persisted favorites after untoggle = %q, want %q", got, "[]")
	}
}

func TestRootUIToggleFavoriteStaleIDIsNoOp(t *testing.T) {
	ui, a := newTestRootUI(t)

	ui.onToggleFavorite(999)
	if got := a.Preferences().String(config.KeyFavorites); got != "" {
		t.Errorf("stale toggle persisted favorites %q", got)
	}
}

func TestRootUIEscapeClosesLightbox(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.lightbox.Open(0)
	if !ui.lightbox.IsOpen() {
		t.Fatal("lightbox not open")
	}

	ui.window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if ui.lightbox.IsOpen() {
		t.Error("Escape did not close the lightbox")
	}
}

func TestRootUIArrowKeysOnlyStepOpenLightbox(t *testing.T) {
	ui, _ := newTestRootUI(t)
	typed := ui.window.Canvas().OnTypedKey()

	// Closed lightbox: arrows are ignored
	typed(&fyne.KeyEvent{Name: fyne.KeyRight})
	if got := ui.nav.LightboxIndex; got != 0 {
		t.Errorf("arrow moved closed lightbox cursor to %d", got)
	}

	ui.lightbox.Open(0)
	typed(&fyne.KeyEvent{Name: fyne.KeyRight})
	if got := ui.nav.LightboxIndex; got != 1 {
		t.Errorf("LightboxIndex after Right = %d, want 1", got)
	}
	typed(&fyne.KeyEvent{Name: fyne.KeyLeft})
	typed(&fyne.KeyEvent{Name: fyne.KeyLeft})
	if got := ui.nav.LightboxIndex; got != ui.catalog.Len()-1 {
		t.Errorf("LightboxIndex after wrapping Left = %d, want %d", got, ui.catalog.Len()-1)
	}
}
