package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShowToast displays a transient message anchored to the bottom of the
// canvas. The popup dismisses itself after ToastAutoHide.
func ShowToast(canvas fyne.Canvas, message string) {
	label := widget.NewLabel(message)
	label.Alignment = fyne.TextAlignCenter

	popup := widget.NewPopUp(container.NewPadded(label), canvas)

	canvasSize := canvas.Size()
	popupSize := popup.MinSize()
	popup.ShowAtPosition(fyne.NewPos(
		(canvasSize.Width-popupSize.Width)/2,
		canvasSize.Height-popupSize.Height-ToastMargin,
	))

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(popup.Hide)
	}()
}
