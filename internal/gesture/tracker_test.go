package gesture

import "testing"

func TestTap_SmallMovement(t *testing.T) {
	tr := NewTracker()

	if !tr.Begin(100, 100) {
		t.Fatal("Begin should succeed on an idle tracker")
	}
	tr.Move(103, 102)

	res := tr.End()
	if res.Outcome != OutcomeTap {
		t.Errorf("Expected tap, got %s", res.Outcome)
	}
	if res.Direction != 0 {
		t.Errorf("Tap must not carry a direction, got %d", res.Direction)
	}
	if tr.Locked() {
		t.Error("Tap must not lock the tracker")
	}
}

func TestTap_BoundaryIsExclusive(t *testing.T) {
	// |dx| and |dy| must both be strictly under the slop for a tap.
	tests := []struct {
		dx, dy   float32
		expected Outcome
	}{
		{4.9, 4.9, OutcomeTap},
		{5, 0, OutcomeSnapBack},
		{0, 5, OutcomeSnapBack},
		{-4, 4, OutcomeTap},
		{0, -60, OutcomeSnapBack},
	}

	for _, test := range tests {
		tr := NewTracker()
		tr.Begin(0, 0)
		tr.Move(test.dx, test.dy)
		res := tr.End()
		if res.Outcome != test.expected {
			t.Errorf("dx=%v dy=%v: expected %s, got %s", test.dx, test.dy, test.expected, res.Outcome)
		}
	}
}

func TestCommit_PastThreshold(t *testing.T) {
	tests := []struct {
		dx, dy    float32
		direction int
	}{
		{150, 0, 1},
		{-150, 0, -1},
		{101, 300, 1},  // vertical travel is irrelevant to the commit decision
		{-120, -80, -1},
	}

	for _, test := range tests {
		tr := NewTracker()
		tr.Begin(200, 200)
		tr.Move(200+test.dx, 200+test.dy)
		res := tr.End()
		if res.Outcome != OutcomeCommit {
			t.Fatalf("dx=%v: expected commit, got %s", test.dx, res.Outcome)
		}
		if res.Direction != test.direction {
			t.Errorf("dx=%v: expected direction %d, got %d", test.dx, test.direction, res.Direction)
		}
		if !tr.Locked() {
			t.Error("Commit must lock the tracker until the settle callback fires")
		}
	}
}

func TestCommit_ThresholdIsExclusive(t *testing.T) {
	tr := NewTracker()
	tr.Begin(0, 0)
	tr.Move(100, 0)

	res := tr.End()
	if res.Outcome != OutcomeSnapBack {
		t.Errorf("dx=100 must snap back, got %s", res.Outcome)
	}
}

func TestMove_RotationProportionalToDX(t *testing.T) {
	tr := NewTracker()
	tr.Begin(50, 50)

	tf, ok := tr.Move(130, 70)
	if !ok {
		t.Fatal("Move during a drag should report active")
	}
	if tf.DX != 80 || tf.DY != 20 {
		t.Errorf("Expected transform (80, 20), got (%v, %v)", tf.DX, tf.DY)
	}
	if tf.Rotation != 80*RotationFactor {
		t.Errorf("Expected rotation %v, got %v", 80*RotationFactor, tf.Rotation)
	}
}

func TestStrayEventsAreNoOps(t *testing.T) {
	tr := NewTracker()

	// Up without down
	if res := tr.End(); res.Outcome != OutcomeNone {
		t.Errorf("End without Begin must be a no-op, got %s", res.Outcome)
	}

	// Move without down
	if _, ok := tr.Move(500, 500); ok {
		t.Error("Move without Begin must report inactive")
	}
}

func TestLockedTrackerRejectsNewDrags(t *testing.T) {
	tr := NewTracker()
	tr.Begin(0, 0)
	tr.Move(200, 0)
	res := tr.End()
	if res.Outcome != OutcomeCommit {
		t.Fatalf("Expected commit, got %s", res.Outcome)
	}

	// A drag started before the settle callback must be ignored.
	if tr.Begin(0, 0) {
		t.Error("Begin while locked must be rejected")
	}
	if res := tr.End(); res.Outcome != OutcomeNone {
		t.Errorf("End while locked must be a no-op, got %s", res.Outcome)
	}

	tr.Unlock()
	if !tr.Begin(0, 0) {
		t.Error("Begin after Unlock should succeed")
	}
}

func TestCancelAbortsDrag(t *testing.T) {
	tr := NewTracker()
	tr.Begin(0, 0)
	tr.Move(300, 0)
	tr.Cancel()

	if res := tr.End(); res.Outcome != OutcomeNone {
		t.Errorf("End after Cancel must be a no-op, got %s", res.Outcome)
	}
	if tr.Locked() {
		t.Error("Cancel must not lock the tracker")
	}
}

func TestExitTransform(t *testing.T) {
	tr := NewTracker()
	tr.Begin(0, 0)
	tr.Move(-160, 40)
	res := tr.End()

	exit := res.ExitTransform(400)
	if exit.DX >= 0 {
		t.Errorf("Left swipe must exit left, got DX=%v", exit.DX)
	}
	if exit.DY != 40+ExitVerticalBump {
		t.Errorf("Expected exit DY %v, got %v", 40+ExitVerticalBump, exit.DY)
	}
	if exit.Rotation != -ExitRotationDeg {
		t.Errorf("Expected exit rotation %v, got %v", -ExitRotationDeg, exit.Rotation)
	}
}

func TestDragStateIsReusable(t *testing.T) {
	tr := NewTracker()

	// Snap-back leaves the tracker ready for the next drag.
	tr.Begin(0, 0)
	tr.Move(50, 0)
	if res := tr.End(); res.Outcome != OutcomeSnapBack {
		t.Fatalf("Expected snap-back, got %s", res.Outcome)
	}

	if !tr.Begin(10, 10) {
		t.Error("Tracker should accept a new drag after snap-back")
	}
	tf, _ := tr.Move(20, 10)
	if tf.DX != 10 {
		t.Errorf("New drag must measure from its own start, got DX=%v", tf.DX)
	}
}
