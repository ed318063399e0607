package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/swipedeck/swipe-deck/internal/model"
)

// HistoryView is the modal favorites grid. It is rebuilt from the catalog
// on every open, so it always reflects the current favorite flags.
type HistoryView struct {
	window  fyne.Window
	catalog *model.Catalog
	loc     *Localization

	popup   *widget.PopUp
	content *fyne.Container

	onToggleFavorite func(id int)
	onSave           func(id int)
}

// NewHistoryView creates a history view bound to the given window
func NewHistoryView(window fyne.Window, catalog *model.Catalog, loc *Localization) *HistoryView {
	return &HistoryView{
		window:  window,
		catalog: catalog,
		loc:     loc,
	}
}

// SetCallbacks wires the per-entry handlers
func (h *HistoryView) SetCallbacks(onToggleFavorite, onSave func(id int)) {
	h.onToggleFavorite = onToggleFavorite
	h.onSave = onSave
}

// IsOpen reports whether the history popup is showing
func (h *HistoryView) IsOpen() bool {
	return h.popup != nil && h.popup.Visible()
}

// Show opens the favorites grid
func (h *HistoryView) Show() {
	if h.popup == nil {
		h.build()
	}
	h.Reload()
	h.popup.Resize(fyne.NewSize(HistoryWidth, HistoryHeight))
	h.popup.Show()
}

// Hide closes the favorites grid
func (h *HistoryView) Hide() {
	if h.popup != nil {
		h.popup.Hide()
	}
}

// Reload rebuilds the grid from the catalog's current favorites
func (h *HistoryView) Reload() {
	if h.content == nil {
		return
	}
	h.content.RemoveAll()

	favs := h.catalog.Favorites()
	if len(favs) == 0 {
		empty := widget.NewLabel(h.loc.GetText(KeyEmptyHistory))
		empty.Alignment = fyne.TextAlignCenter
		h.content.Add(container.NewCenter(empty))
		h.content.Refresh()
		return
	}

	grid := container.NewGridWrap(fyne.NewSize(HistoryCellWidth, HistoryCellHeight))
	for _, rec := range favs {
		grid.Add(h.buildCell(rec))
	}
	h.content.Add(container.NewVScroll(grid))
	h.content.Refresh()
}

func (h *HistoryView) buildCell(rec *model.ImageRecord) fyne.CanvasObject {
	img := canvas.NewImageFromResource(nil)
	img.FillMode = canvas.ImageFillContain
	loadImageAsync(img, rec.URL)

	title := widget.NewLabel(rec.Title)
	title.Alignment = fyne.TextAlignCenter
	title.Truncation = fyne.TextTruncateEllipsis

	id := rec.ID
	unfavButton := widget.NewButton(IconHeart, func() {
		if h.onToggleFavorite != nil {
			h.onToggleFavorite(id)
		}
		h.Reload()
	})
	saveButton := widget.NewButton(IconDownload, func() {
		if h.onSave != nil {
			h.onSave(id)
		}
	})

	actions := container.NewGridWithColumns(2, unfavButton, saveButton)
	return container.NewBorder(nil, container.NewVBox(title, actions), nil, nil, img)
}

func (h *HistoryView) build() {
	h.content = container.NewStack()

	titleLabel := widget.NewLabel(h.loc.GetText(KeyHistory))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	closeButton := widget.NewButton(h.loc.GetText(KeyClose), h.Hide)
	header := container.NewBorder(nil, nil, titleLabel, closeButton)

	h.popup = widget.NewModalPopUp(
		container.NewBorder(header, nil, nil, nil, h.content),
		h.window.Canvas(),
	)
}
