package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/swipedeck/swipe-deck/internal/gesture"
	"github.com/swipedeck/swipe-deck/internal/model"
)

// SwipeCard is a single catalog image rendered as a draggable card. The
// front card of the stack is interactive; back cards are display-only.
// Pointer events feed the gesture tracker, which decides whether a release
// is a tap, a swipe commit, or a snap-back.
type SwipeCard struct {
	widget.BaseWidget

	record  *model.ImageRecord
	tracker *gesture.Tracker

	// Virtual pointer position accumulated from drag deltas. The card moves
	// under the pointer during a drag, so event positions are not stable;
	// summing deltas gives drag-relative coordinates the tracker can use.
	vx, vy float32

	homePos   fyne.Position
	exitWidth float32
	front     bool

	image      *canvas.Image
	dimOverlay *canvas.Rectangle
	favButton  *widget.Button
	saveButton *widget.Button

	onTap            func()
	onCommit         func(direction int)
	onToggleFavorite func(id int)
	onSave           func(id int)
}

// NewSwipeCard creates a card for the given record and starts loading its
// image in the background
func NewSwipeCard(record *model.ImageRecord) *SwipeCard {
	c := &SwipeCard{
		record:    record,
		tracker:   gesture.NewTracker(),
		exitWidth: CardWidth,
	}
	c.ExtendBaseWidget(c)

	c.image = canvas.NewImageFromResource(theme.FileImageIcon())
	c.image.FillMode = canvas.ImageFillContain
	loadImageAsync(c.image, record.URL)

	c.dimOverlay = canvas.NewRectangle(color.NRGBA{A: BackCardDimAlpha})
	c.dimOverlay.Hide()

	c.favButton = widget.NewButton(IconHeartOutline, func() {
		if c.onToggleFavorite != nil {
			c.onToggleFavorite(c.record.ID)
		}
	})
	c.saveButton = widget.NewButton(IconDownload, func() {
		if c.onSave != nil {
			c.onSave(c.record.ID)
		}
	})

	c.RefreshFavorite()
	return c
}

// SetCallbacks wires the card's interaction handlers
func (c *SwipeCard) SetCallbacks(onTap func(), onCommit func(direction int), onToggleFavorite, onSave func(id int)) {
	c.onTap = onTap
	c.onCommit = onCommit
	c.onToggleFavorite = onToggleFavorite
	c.onSave = onSave
}

// Record returns the catalog record this card displays
func (c *SwipeCard) Record() *model.ImageRecord {
	return c.record
}

// SetHomePosition stores the card's resting position in the stack and
// moves it there
func (c *SwipeCard) SetHomePosition(pos fyne.Position) {
	c.homePos = pos
	c.Move(pos)
}

// SetExitWidth sets the horizontal distance used for the fling target.
// The stack passes its own width so committed cards clear the viewport.
func (c *SwipeCard) SetExitWidth(w float32) {
	if w > 0 {
		c.exitWidth = w
	}
}

// SetDepth configures the card for its position in the stack. Depth 0 is
// the interactive front card; deeper cards are dimmed and ignore input.
func (c *SwipeCard) SetDepth(depth int) {
	c.front = depth == 0

	switch {
	case depth <= 0:
		c.image.Translucency = 0
		c.dimOverlay.Hide()
	case depth == 1:
		c.image.Translucency = float64(1 - BackCardNearOpacity)
		c.dimOverlay.Show()
	default:
		c.image.Translucency = float64(1 - BackCardFarOpacity)
		c.dimOverlay.Show()
	}

	if c.front {
		c.favButton.Show()
		c.saveButton.Show()
	} else {
		c.favButton.Hide()
		c.saveButton.Hide()
	}
	c.Refresh()
}

// RefreshFavorite updates the heart button to match the record's flag
func (c *SwipeCard) RefreshFavorite() {
	if c.record.IsFav {
		c.favButton.SetText(IconHeart)
		c.favButton.Importance = widget.HighImportance
	} else {
		c.favButton.SetText(IconHeartOutline)
		c.favButton.Importance = widget.MediumImportance
	}
	c.favButton.Refresh()
}

// Tapped opens the lightbox for the front card
func (c *SwipeCard) Tapped(_ *fyne.PointEvent) {
	if !c.front || c.tracker.Locked() {
		return
	}
	if c.onTap != nil {
		c.onTap()
	}
}

// Dragged feeds pointer movement into the gesture tracker and applies the
// resulting offset to the card
func (c *SwipeCard) Dragged(e *fyne.DragEvent) {
	if !c.front {
		return
	}
	if !c.tracker.Dragging() {
		if !c.tracker.Begin(0, 0) {
			return
		}
		c.vx, c.vy = 0, 0
	}

	c.vx += e.Dragged.DX
	c.vy += e.Dragged.DY

	tf, ok := c.tracker.Move(c.vx, c.vy)
	if !ok {
		return
	}
	c.Move(c.homePos.Add(fyne.NewPos(tf.DX, tf.DY)))
}

// DragEnd classifies the finished drag and runs the matching animation
func (c *SwipeCard) DragEnd() {
	res := c.tracker.End()

	switch res.Outcome {
	case gesture.OutcomeTap:
		c.Move(c.homePos)
		if c.onTap != nil {
			c.onTap()
		}

	case gesture.OutcomeCommit:
		c.animateExit(res)

	case gesture.OutcomeSnapBack:
		c.animateSnapBack()
	}
}

// animateExit flings the card off-screen, then advances the stack once the
// settle delay has passed. The tracker stays locked until then so a second
// swipe cannot start mid-transition.
func (c *SwipeCard) animateExit(res gesture.Result) {
	exit := res.ExitTransform(c.exitWidth)
	target := c.homePos.Add(fyne.NewPos(exit.DX, exit.DY))

	anim := canvas.NewPositionAnimation(c.Position(), target, gesture.FlingDuration, c.Move)
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()

	time.AfterFunc(gesture.FlingDuration+gesture.SettleDelay, func() {
		fyne.Do(func() {
			c.tracker.Unlock()
			if c.onCommit != nil {
				c.onCommit(res.Direction)
			}
		})
	})
}

func (c *SwipeCard) animateSnapBack() {
	anim := canvas.NewPositionAnimation(c.Position(), c.homePos, CardSnapBackDuration, c.Move)
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
}

// CreateRenderer builds the card's visual tree
func (c *SwipeCard) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.CornerRadius = 8
	background.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	background.StrokeWidth = 1

	title := widget.NewLabel(c.record.Title)
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	actions := container.NewGridWithColumns(2, c.favButton, c.saveButton)
	bottom := container.NewVBox(title, actions)

	content := container.NewStack(
		background,
		container.NewBorder(nil, bottom, nil, nil,
			container.NewStack(c.image, c.dimOverlay)),
	)
	return widget.NewSimpleRenderer(content)
}
