package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/swipedeck/swipe-deck/internal/model"
)

// Lightbox is the modal full-size viewer. It keeps its own cursor in the
// nav state, independent of the stack, and wraps in both directions when
// stepping between images.
type Lightbox struct {
	window  fyne.Window
	catalog *model.Catalog
	nav     *model.NavState

	popup        *widget.PopUp
	image        *canvas.Image
	titleLabel   *widget.Label
	counterLabel *widget.Label
	favButton    *widget.Button

	open    bool
	closing bool

	onToggleFavorite func(id int)
}

// NewLightbox creates a lightbox bound to the given window
func NewLightbox(window fyne.Window, catalog *model.Catalog, nav *model.NavState) *Lightbox {
	return &Lightbox{
		window:  window,
		catalog: catalog,
		nav:     nav,
	}
}

// SetOnToggleFavorite wires the favorite toggle handler
func (lb *Lightbox) SetOnToggleFavorite(fn func(id int)) {
	lb.onToggleFavorite = fn
}

// IsOpen reports whether the lightbox is showing
func (lb *Lightbox) IsOpen() bool {
	return lb.open
}

// CurrentRecord returns the record under the lightbox cursor, or nil for
// an empty catalog
func (lb *Lightbox) CurrentRecord() *model.ImageRecord {
	return lb.catalog.At(lb.nav.LightboxIndex)
}

// Open shows the lightbox positioned on the given catalog index
func (lb *Lightbox) Open(index int) {
	n := lb.catalog.Len()
	if n == 0 {
		return
	}
	lb.nav.OpenLightbox(index, n)

	if lb.popup == nil {
		lb.build()
	}

	lb.image.Translucency = 0
	lb.applyCurrent()
	lb.popup.Resize(fyne.NewSize(LightboxWidth, LightboxHeight))
	lb.popup.Show()
	lb.open = true
	lb.closing = false
}

// Close fades the viewer out and hides the popup after the close delay.
// Input is ignored while the close is in flight.
func (lb *Lightbox) Close() {
	if !lb.open || lb.closing {
		return
	}
	lb.open = false
	lb.closing = true

	lb.image.Translucency = 1
	lb.image.Refresh()

	go func() {
		time.Sleep(LightboxHideDelay)
		fyne.Do(func() {
			lb.closing = false
			if lb.popup != nil {
				lb.popup.Hide()
			}
		})
	}()
}

// Next steps the cursor forward, wrapping past the last image
func (lb *Lightbox) Next() {
	lb.step(1)
}

// Prev steps the cursor backward, wrapping past the first image
func (lb *Lightbox) Prev() {
	lb.step(-1)
}

// ToggleFavorite flips the favorite flag of the image under the cursor
func (lb *Lightbox) ToggleFavorite() {
	rec := lb.CurrentRecord()
	if rec == nil || lb.onToggleFavorite == nil {
		return
	}
	lb.onToggleFavorite(rec.ID)
}

// RefreshFavorite updates the heart button to match the current record
func (lb *Lightbox) RefreshFavorite() {
	rec := lb.CurrentRecord()
	if rec == nil || lb.favButton == nil {
		return
	}
	if rec.IsFav {
		lb.favButton.SetText(IconHeart)
		lb.favButton.Importance = widget.HighImportance
	} else {
		lb.favButton.SetText(IconHeartOutline)
		lb.favButton.Importance = widget.MediumImportance
	}
	lb.favButton.Refresh()
}

// step fades the current image out, moves the cursor, and fades the next
// image in
func (lb *Lightbox) step(delta int) {
	if !lb.open || lb.closing {
		return
	}
	lb.nav.StepLightbox(delta, lb.catalog.Len())

	lb.image.Translucency = 1
	lb.image.Refresh()

	go func() {
		time.Sleep(LightboxFadeSwap)
		fyne.Do(func() {
			lb.image.Translucency = 0
			lb.applyCurrent()
		})
	}()
}

// applyCurrent points the viewer at the record under the cursor
func (lb *Lightbox) applyCurrent() {
	rec := lb.CurrentRecord()
	if rec == nil {
		return
	}
	lb.titleLabel.SetText(rec.Title)
	lb.counterLabel.SetText(fmt.Sprintf(SeenCounterFormat, lb.nav.LightboxIndex+1, lb.catalog.Len()))
	loadImageAsync(lb.image, rec.URL)
	lb.RefreshFavorite()
}

func (lb *Lightbox) build() {
	lb.image = canvas.NewImageFromResource(nil)
	lb.image.FillMode = canvas.ImageFillContain

	lb.titleLabel = widget.NewLabel("")
	lb.titleLabel.Alignment = fyne.TextAlignCenter
	lb.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	lb.counterLabel = widget.NewLabel("")
	lb.counterLabel.Alignment = fyne.TextAlignCenter

	lb.favButton = widget.NewButton(IconHeartOutline, lb.ToggleFavorite)
	prevButton := widget.NewButton(IconPrev, lb.Prev)
	nextButton := widget.NewButton(IconNext, lb.Next)
	closeButton := widget.NewButton(IconClose, lb.Close)

	header := container.NewBorder(nil, nil, lb.favButton, closeButton, lb.titleLabel)
	footer := container.NewBorder(nil, nil, prevButton, nextButton, lb.counterLabel)

	content := container.NewBorder(header, footer, nil, nil, lb.image)
	lb.popup = widget.NewModalPopUp(content, lb.window.Canvas())
}
