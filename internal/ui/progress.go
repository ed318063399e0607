package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ProgressBar is a thin horizontal bar showing how far through the catalog
// the stack has advanced. The fill switches to the success color at exactly
// 100 percent.
type ProgressBar struct {
	widget.BaseWidget

	percent float64
}

// NewProgressBar creates an empty progress bar
func NewProgressBar() *ProgressBar {
	p := &ProgressBar{}
	p.ExtendBaseWidget(p)
	return p
}

// SetPercent updates the fill level, clamped into [0, 100]
func (p *ProgressBar) SetPercent(percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	p.percent = percent
	p.Refresh()
}

// Percent returns the current fill level
func (p *ProgressBar) Percent() float64 {
	return p.percent
}

// Complete reports whether the bar shows the finished state
func (p *ProgressBar) Complete() bool {
	return p.percent == 100
}

// CreateRenderer builds the track and fill rectangles
func (p *ProgressBar) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	track.CornerRadius = 4
	fill := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	fill.CornerRadius = 4

	return &progressBarRenderer{bar: p, track: track, fill: fill}
}

type progressBarRenderer struct {
	bar   *ProgressBar
	track *canvas.Rectangle
	fill  *canvas.Rectangle
}

func (r *progressBarRenderer) Layout(size fyne.Size) {
	r.track.Resize(size)
	r.fill.Resize(fyne.NewSize(size.Width*float32(r.bar.percent/100), size.Height))
}

func (r *progressBarRenderer) MinSize() fyne.Size {
	return fyne.NewSize(120, 8)
}

func (r *progressBarRenderer) Refresh() {
	if r.bar.Complete() {
		r.fill.FillColor = theme.Color(theme.ColorNameSuccess)
	} else {
		r.fill.FillColor = theme.Color(theme.ColorNamePrimary)
	}
	r.Layout(r.bar.Size())
	canvas.Refresh(r.bar)
}

func (r *progressBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track, r.fill}
}

func (r *progressBarRenderer) Destroy() {}
