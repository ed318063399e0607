package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// loadImageAsync fetches the image bytes in the background and applies them
// to the canvas image on the UI thread. Fetch failures leave the current
// content untouched.
func loadImageAsync(img *canvas.Image, rawURL string) {
	go func() {
		res, err := fyne.LoadResourceFromURLString(rawURL)
		if err != nil {
			log.Printf("Failed to load image %s: %v", rawURL, err)
			return
		}
		fyne.Do(func() {
			img.Resource = res
			img.Refresh()
		})
	}()
}
