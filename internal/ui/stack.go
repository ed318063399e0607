package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/swipedeck/swipe-deck/internal/model"
)

// StackView renders the rotating card window. At most StackRenderLimit
// cards are on screen: card i of the window shows catalog position
// CurrentIndex+i, drawn back to front so the front card sits on top.
type StackView struct {
	catalog *model.Catalog
	nav     *model.NavState

	layer *fyne.Container
	root  *fyne.Container
	cards []*SwipeCard

	onAdvance        func()
	onTapFront       func(id int)
	onToggleFavorite func(id int)
	onSave           func(id int)
}

// NewStackView creates a stack view over the given catalog and nav state
func NewStackView(catalog *model.Catalog, nav *model.NavState) *StackView {
	s := &StackView{
		catalog: catalog,
		nav:     nav,
		layer:   container.NewWithoutLayout(),
	}

	// Transparent rectangle reserves room for the widest fanned-out stack;
	// the without-layout layer itself reports no minimum size.
	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(
		CardWidth+float32(StackRenderLimit-1)*StackDepthOffsetX,
		CardHeight,
	))
	s.root = container.NewStack(sizer, s.layer)

	return s
}

// SetCallbacks wires the stack's interaction handlers
func (s *StackView) SetCallbacks(onAdvance func(), onTapFront, onToggleFavorite, onSave func(id int)) {
	s.onAdvance = onAdvance
	s.onTapFront = onTapFront
	s.onToggleFavorite = onToggleFavorite
	s.onSave = onSave
}

// Content returns the stack's root container
func (s *StackView) Content() fyne.CanvasObject {
	return s.root
}

// Render rebuilds the visible card window from the current nav state.
// Called once at startup and again after every committed swipe.
func (s *StackView) Render() {
	s.layer.RemoveAll()
	s.cards = nil

	n := s.catalog.Len()
	if n == 0 {
		s.layer.Refresh()
		return
	}

	visible := StackRenderLimit
	if n < visible {
		visible = n
	}

	// Back to front: deepest card first so later objects draw on top
	for depth := visible - 1; depth >= 0; depth-- {
		rec := s.catalog.At(s.nav.CurrentIndex + depth)
		card := s.buildCard(rec, depth)
		s.layer.Add(card)
		s.cards = append(s.cards, card)
	}
	s.layer.Refresh()
}

// RefreshFavorites updates heart buttons on all visible cards
func (s *StackView) RefreshFavorites() {
	for _, card := range s.cards {
		card.RefreshFavorite()
	}
}

// FrontRecord returns the record of the front card, or nil for an empty
// catalog
func (s *StackView) FrontRecord() *model.ImageRecord {
	return s.catalog.At(s.nav.CurrentIndex)
}

func (s *StackView) buildCard(rec *model.ImageRecord, depth int) *SwipeCard {
	card := NewSwipeCard(rec)

	scale := 1 - float32(depth)*StackDepthScaleStep
	w := CardWidth * scale
	h := CardHeight * scale
	card.Resize(fyne.NewSize(w, h))

	// Deeper cards peek out to the right, vertically centered
	x := float32(depth) * StackDepthOffsetX
	y := (CardHeight - h) / 2
	card.SetHomePosition(fyne.NewPos(x, y))
	card.SetExitWidth(s.root.Size().Width + CardWidth)
	card.SetDepth(depth)

	id := rec.ID
	card.SetCallbacks(
		func() {
			if s.onTapFront != nil {
				s.onTapFront(id)
			}
		},
		func(direction int) { s.advance() },
		func(id int) {
			if s.onToggleFavorite != nil {
				s.onToggleFavorite(id)
			}
		},
		func(id int) {
			if s.onSave != nil {
				s.onSave(id)
			}
		},
	)
	return card
}

func (s *StackView) advance() {
	s.nav.AdvanceStack(s.catalog.Len())
	s.Render()
	if s.onAdvance != nil {
		s.onAdvance()
	}
}
