package model

// NavState holds the gallery's navigation cursors. It is created once at
// startup and owned by the root UI controller; renderers read it but only
// the stack (CurrentIndex) and lightbox (LightboxIndex) controllers mutate
// it. All logic runs on the Fyne event loop, so no locking is needed.
type NavState struct {
	// CurrentIndex is the front card of the stack, 0..N-1, wraps.
	CurrentIndex int
	// MaxIndexReached is a monotonically non-decreasing high-water mark of
	// CurrentIndex, surfaced as the "seen m of N" caption.
	MaxIndexReached int
	// LightboxIndex is the modal viewer's cursor, independent of the stack.
	LightboxIndex int
}

// NewNavState creates navigation state positioned at the first image
func NewNavState() *NavState {
	return &NavState{}
}

// AdvanceStack moves the stack forward by one card, wrapping modulo n,
// and bumps the high-water mark. Returns the new current index.
func (ns *NavState) AdvanceStack(n int) int {
	if n <= 0 {
		return ns.CurrentIndex
	}
	ns.CurrentIndex = (ns.CurrentIndex + 1) % n
	if ns.CurrentIndex > ns.MaxIndexReached {
		ns.MaxIndexReached = ns.CurrentIndex
	}
	return ns.CurrentIndex
}

// OpenLightbox positions the lightbox cursor, clamped into [0, n)
func (ns *NavState) OpenLightbox(index, n int) {
	if n <= 0 {
		ns.LightboxIndex = 0
		return
	}
	index %= n
	if index < 0 {
		index += n
	}
	ns.LightboxIndex = index
}

// StepLightbox moves the lightbox cursor by delta, wrapping modulo n.
// Returns the new index.
func (ns *NavState) StepLightbox(delta, n int) int {
	if n <= 0 {
		return ns.LightboxIndex
	}
	ns.LightboxIndex = ((ns.LightboxIndex+delta)%n + n) % n
	return ns.LightboxIndex
}

// ProgressPercent returns stack progress as a percentage in (0, 100].
// It is a pure function of CurrentIndex: (CurrentIndex+1)/n*100, capped at 100.
func (ns *NavState) ProgressPercent(n int) float64 {
	if n <= 0 {
		return 0
	}
	percent := float64(ns.CurrentIndex+1) / float64(n) * 100
	if percent > 100 {
		percent = 100
	}
	return percent
}

// SeenCount returns how many distinct stack positions have been visited
func (ns *NavState) SeenCount(n int) int {
	seen := ns.MaxIndexReached + 1
	if n > 0 && seen > n {
		seen = n
	}
	return seen
}
