package gesture

import "time"

// Gesture thresholds and animation timing
const (
	// TapSlop is the maximum pointer travel, per axis, for a release to
	// count as a tap.
	TapSlop float32 = 5

	// SwipeThreshold is the minimum horizontal travel for a release to
	// commit a swipe.
	SwipeThreshold float32 = 100

	// RotationFactor converts horizontal drag distance into card tilt, in
	// degrees per pixel.
	RotationFactor float32 = 0.05

	// ExitRotationDeg is the fixed tilt applied while a committed card
	// flings off-screen.
	ExitRotationDeg float32 = 30

	// ExitVerticalBump is added to the release dy for the fling target.
	ExitVerticalBump float32 = 100

	// FlingDuration is how long the off-screen fling animation runs.
	FlingDuration = 500 * time.Millisecond

	// SettleDelay is the pause after the fling starts before the stack
	// advances. Input stays locked until the settle callback fires.
	SettleDelay = 300 * time.Millisecond
)

// Outcome classifies a finished drag
type Outcome int

const (
	// OutcomeNone means there was no active drag to finish
	OutcomeNone Outcome = iota
	// OutcomeTap means the pointer barely moved; treated as a click
	OutcomeTap
	// OutcomeCommit means the card was flung past the swipe threshold
	OutcomeCommit
	// OutcomeSnapBack means the drag ended short of the threshold
	OutcomeSnapBack
)

// String returns a human readable outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeTap:
		return "tap"
	case OutcomeCommit:
		return "commit"
	case OutcomeSnapBack:
		return "snap-back"
	default:
		return "none"
	}
}

// Transform is the visual offset and tilt applied to the card under drag
type Transform struct {
	DX       float32
	DY       float32
	Rotation float32 // degrees, positive clockwise
}

// Result describes how a drag finished
type Result struct {
	Outcome   Outcome
	Transform Transform // transform at the moment of release
	Direction int       // -1 or +1 for commits, 0 otherwise
}

// ExitTransform returns the fling target for a committed swipe: far
// off-screen in the swipe direction, bumped down, at the fixed exit tilt.
func (r Result) ExitTransform(screenWidth float32) Transform {
	dir := float32(r.Direction)
	return Transform{
		DX:       dir * screenWidth * 1.5,
		DY:       r.Transform.DY + ExitVerticalBump,
		Rotation: ExitRotationDeg * dir,
	}
}

// Tracker is the per-card drag state machine. It tracks a single pointer
// (mouse or touch) and classifies the release as tap, swipe commit, or
// snap-back. It has no notion of time or rendering; callers drive it from
// pointer events and apply the returned transforms.
//
// A committed swipe locks the tracker so a second commit cannot start
// before the caller's settle callback unlocks it.
type Tracker struct {
	dragging bool
	locked   bool

	startX, startY float32
	lastX, lastY   float32
}

// NewTracker creates an idle tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin starts a drag at the given pointer position. Returns false if a
// drag is already active or the tracker is locked waiting for a settle.
func (t *Tracker) Begin(x, y float32) bool {
	if t.dragging || t.locked {
		return false
	}
	t.dragging = true
	t.startX, t.startY = x, y
	t.lastX, t.lastY = x, y
	return true
}

// Move updates the drag with a new pointer position and returns the
// transform to apply to the card. Without an active drag it reports false
// and a zero transform.
func (t *Tracker) Move(x, y float32) (Transform, bool) {
	if !t.dragging {
		return Transform{}, false
	}
	t.lastX, t.lastY = x, y
	return t.transform(), true
}

// End finishes the drag and classifies it. Outcomes are mutually exclusive
// and evaluated in order: tap, commit, snap-back. A release without a
// matching Begin is a no-op. Commits lock the tracker; call Unlock from
// the settle callback to accept input again.
func (t *Tracker) End() Result {
	if !t.dragging {
		return Result{Outcome: OutcomeNone}
	}
	t.dragging = false

	tf := t.transform()
	dx, dy := tf.DX, tf.DY

	if abs(dx) < TapSlop && abs(dy) < TapSlop {
		return Result{Outcome: OutcomeTap, Transform: tf}
	}

	if abs(dx) > SwipeThreshold {
		dir := 1
		if dx < 0 {
			dir = -1
		}
		t.locked = true
		return Result{Outcome: OutcomeCommit, Transform: tf, Direction: dir}
	}

	return Result{Outcome: OutcomeSnapBack, Transform: tf}
}

// Cancel aborts any active drag without classifying it
func (t *Tracker) Cancel() {
	t.dragging = false
}

// Unlock re-enables input after a commit has settled
func (t *Tracker) Unlock() {
	t.locked = false
}

// Locked reports whether the tracker is waiting for a settle callback
func (t *Tracker) Locked() bool {
	return t.locked
}

// Dragging reports whether a drag is active
func (t *Tracker) Dragging() bool {
	return t.dragging
}

func (t *Tracker) transform() Transform {
	dx := t.lastX - t.startX
	dy := t.lastY - t.startY
	return Transform{DX: dx, DY: dy, Rotation: dx * RotationFactor}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
