package inkwell

import (
	"math"
	"reflect"
	"testing"
)

// recorder subscribes to every recognizer callback and records firing order
// plus the payloads the tests care about.
type recorder struct {
	events []string

	startSample SamplePoint
	endSample   SamplePoint
	movePoints  [][]SamplePoint
	predicted   [][]SamplePoint

	panStartX, panStartY float64
	panDeltas            []Vec2
	pinches              []PinchDelta
	wheels               []WheelDelta
	hoverX, hoverY       float64
	hoverRole            DeviceRole
}

func newRecorder(r *Recognizer) *recorder {
	rec := &recorder{}
	r.OnStrokeStart(func(p SamplePoint) {
		rec.events = append(rec.events, "strokeStart")
		rec.startSample = p
	})
	r.OnStrokeMove(func(points, predicted []SamplePoint) {
		rec.events = append(rec.events, "strokeMove")
		rec.movePoints = append(rec.movePoints, append([]SamplePoint(nil), points...))
		rec.predicted = append(rec.predicted, append([]SamplePoint(nil), predicted...))
	})
	r.OnStrokeEnd(func(p SamplePoint) {
		rec.events = append(rec.events, "strokeEnd")
		rec.endSample = p
	})
	r.OnStrokeCancel(func() { rec.events = append(rec.events, "strokeCancel") })
	r.OnPanStart(func(x, y float64) {
		rec.events = append(rec.events, "panStart")
		rec.panStartX, rec.panStartY = x, y
	})
	r.OnPanMove(func(dx, dy float64) {
		rec.events = append(rec.events, "panMove")
		rec.panDeltas = append(rec.panDeltas, Vec2{X: dx, Y: dy})
	})
	r.OnPanEnd(func() { rec.events = append(rec.events, "panEnd") })
	r.OnPinchMove(func(p PinchDelta) {
		rec.events = append(rec.events, "pinchMove")
		rec.pinches = append(rec.pinches, p)
	})
	r.OnPinchEnd(func() { rec.events = append(rec.events, "pinchEnd") })
	r.OnTwoFingerTap(func() { rec.events = append(rec.events, "twoFingerTap") })
	r.OnThreeFingerTap(func() { rec.events = append(rec.events, "threeFingerTap") })
	r.OnWheel(func(w WheelDelta) {
		rec.events = append(rec.events, "wheel")
		rec.wheels = append(rec.wheels, w)
	})
	r.OnWheelEnd(func() { rec.events = append(rec.events, "wheelEnd") })
	r.OnHover(func(x, y float64, role DeviceRole) {
		rec.events = append(rec.events, "hover")
		rec.hoverX, rec.hoverY, rec.hoverRole = x, y, role
	})
	r.OnHoverEnd(func() { rec.events = append(rec.events, "hoverEnd") })
	return rec
}

func (rec *recorder) want(t *testing.T, events ...string) {
	t.Helper()
	if !reflect.DeepEqual(rec.events, events) {
		t.Fatalf("events = %v, want %v", rec.events, events)
	}
}

func pen(phase PointerPhase, x, y, time float64) PointerEvent {
	return PointerEvent{ContactID: 0, Role: RolePen, Phase: phase, X: x, Y: y, Pressure: 0.5, Time: time}
}

func touch(id int, phase PointerPhase, x, y, time float64) PointerEvent {
	return PointerEvent{ContactID: id, Role: RoleTouch, Phase: phase, X: x, Y: y, Pressure: 1, Time: time}
}

// --- Drawing track ---

func TestStrokeLifecycle(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(pen(PhaseBegin, 10, 20, 0))
	r.HandleEvent(pen(PhaseMove, 12, 22, 0.01))
	r.HandleEvent(pen(PhaseEnd, 14, 24, 0.02))

	rec.want(t, "strokeStart", "strokeMove", "strokeEnd")
	if rec.startSample.X != 10 || rec.startSample.Y != 20 {
		t.Errorf("start sample = (%v, %v), want (10, 20)", rec.startSample.X, rec.startSample.Y)
	}
	if rec.endSample.X != 14 || rec.endSample.Y != 24 {
		t.Errorf("end sample = (%v, %v), want (14, 24)", rec.endSample.X, rec.endSample.Y)
	}
}

func TestStrokeCancel(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(pen(PhaseBegin, 10, 20, 0))
	r.HandleEvent(pen(PhaseCancel, 10, 20, 0.01))

	rec.want(t, "strokeStart", "strokeCancel")
}

func TestOrphanedStrokeRecovery(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	// The end event for the first contact never arrives; a fresh begin is the
	// only signal the old gesture is over.
	r.HandleEvent(pen(PhaseBegin, 0, 0, 0))
	r.HandleEvent(pen(PhaseBegin, 50, 50, 1))
	r.HandleEvent(pen(PhaseEnd, 55, 55, 1.1))

	rec.want(t, "strokeStart", "strokeCancel", "strokeStart", "strokeEnd")
}

func TestCoalescedBatchForwarded(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(pen(PhaseBegin, 0, 0, 0))
	ev := pen(PhaseMove, 3, 0, 0.01)
	ev.Coalesced = []SamplePoint{
		{X: 1, Y: 0, Time: 0.004},
		{X: 2, Y: 0, Time: 0.007},
		{X: 3, Y: 0, Time: 0.01},
	}
	ev.Predicted = []SamplePoint{
		{X: 4, Y: 0, Time: 0.013},
		{X: 5, Y: 0, Time: 0.016},
	}
	r.HandleEvent(ev)

	if len(rec.movePoints) != 1 || len(rec.movePoints[0]) != 3 {
		t.Fatalf("move batch = %v, want the 3 coalesced samples", rec.movePoints)
	}
	if rec.movePoints[0][0].X != 1 || rec.movePoints[0][2].X != 3 {
		t.Error("coalesced order not preserved")
	}
	if len(rec.predicted[0]) != 2 {
		t.Errorf("predicted batch length = %d, want 2", len(rec.predicted[0]))
	}
}

func TestMoveWithoutCoalescingIsSingleSample(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(pen(PhaseBegin, 0, 0, 0))
	r.HandleEvent(pen(PhaseMove, 7, 9, 0.01))

	if len(rec.movePoints) != 1 || len(rec.movePoints[0]) != 1 {
		t.Fatalf("move batch = %v, want one single-sample batch", rec.movePoints)
	}
	p := rec.movePoints[0][0]
	if p.X != 7 || p.Y != 9 {
		t.Errorf("sample = (%v, %v), want event position (7, 9)", p.X, p.Y)
	}
	if len(rec.predicted[0]) != 0 {
		t.Errorf("predicted = %v, want empty", rec.predicted[0])
	}
}

func TestHoverLifecycle(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(pen(PhaseHover, 30, 40, 0))
	if rec.hoverX != 30 || rec.hoverY != 40 || rec.hoverRole != RolePen {
		t.Errorf("hover payload = (%v, %v, %v)", rec.hoverX, rec.hoverY, rec.hoverRole)
	}

	// Contact start ends hover feedback before the stroke begins.
	r.HandleEvent(pen(PhaseBegin, 30, 40, 0.1))
	rec.want(t, "hover", "hoverEnd", "strokeStart")
}

func TestMouseMoveWhileIdleIsHover(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	ev := PointerEvent{ContactID: 0, Role: RoleMouse, Phase: PhaseMove, X: 5, Y: 5, Time: 0}
	r.HandleEvent(ev)
	ev.Phase = PhaseEnd
	r.HandleEvent(ev)

	rec.want(t, "hover", "hoverEnd")
}

// --- Touch track ---

func TestSingleFingerPan(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(touch(1, PhaseBegin, 10, 10, 0))
	r.HandleEvent(touch(1, PhaseMove, 15, 13, 0.05))
	r.HandleEvent(touch(1, PhaseMove, 20, 13, 0.1))
	r.HandleEvent(touch(1, PhaseEnd, 20, 13, 0.5))

	rec.want(t, "panStart", "panMove", "panMove", "panEnd")
	if rec.panStartX != 10 || rec.panStartY != 10 {
		t.Errorf("pan anchor = (%v, %v), want (10, 10)", rec.panStartX, rec.panStartY)
	}
	want := []Vec2{{X: 5, Y: 3}, {X: 5, Y: 0}}
	if !reflect.DeepEqual(rec.panDeltas, want) {
		t.Errorf("pan deltas = %v, want %v", rec.panDeltas, want)
	}
}

func TestStationaryTwoFingersAreNotAPinch(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(touch(1, PhaseBegin, -50, 0, 0))
	r.HandleEvent(touch(2, PhaseBegin, 50, 0, 0.02))
	// Drift below the threshold in both span and center.
	r.HandleEvent(touch(1, PhaseMove, -53, 0, 0.05))

	for _, e := range rec.events {
		if e == "pinchMove" {
			t.Fatal("sub-threshold drift fired a pinch step")
		}
	}
}

func TestPinchActivationAndScale(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	// Fingers 100px apart, spreading symmetrically to 150px.
	r.HandleEvent(touch(1, PhaseBegin, -50, 0, 0))
	r.HandleEvent(touch(2, PhaseBegin, 50, 0, 0.02))
	r.HandleEvent(touch(1, PhaseMove, -75, 0, 0.1))
	r.HandleEvent(touch(2, PhaseMove, 75, 0, 0.15))

	if len(rec.pinches) != 2 {
		t.Fatalf("pinch steps = %d, want 2 (activation plus one more)", len(rec.pinches))
	}
	last := rec.pinches[len(rec.pinches)-1]
	if math.Abs(last.Scale-1.5) > 1e-9 {
		t.Errorf("cumulative scale = %v, want 1.5", last.Scale)
	}
	if math.Abs(last.CenterX) > 1e-9 || math.Abs(last.CenterY) > 1e-9 {
		t.Errorf("center = (%v, %v), want the unmoved (0, 0)", last.CenterX, last.CenterY)
	}
}

func TestPinchCenterTranslationActivates(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	// Both fingers travel together: span is constant but the center moves past
	// the threshold, which also counts as intent.
	r.HandleEvent(touch(1, PhaseBegin, 0, 0, 0))
	r.HandleEvent(touch(2, PhaseBegin, 100, 0, 0.02))
	r.HandleEvent(touch(1, PhaseMove, 0, 20, 0.1))

	found := false
	for _, e := range rec.events {
		if e == "pinchMove" {
			found = true
		}
	}
	if !found {
		t.Fatal("center translation past the threshold should activate the pinch")
	}
	if s := rec.pinches[0].Scale; math.Abs(s-1.0) > 0.05 {
		t.Errorf("scale = %v, want ~1 for a translation-only gesture", s)
	}
}

func TestPinchTwoToOneResumesPanContinuously(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(touch(1, PhaseBegin, -50, 0, 0))
	r.HandleEvent(touch(2, PhaseBegin, 50, 0, 0.02))
	r.HandleEvent(touch(1, PhaseMove, -75, 0, 0.1)) // activates
	r.HandleEvent(touch(2, PhaseEnd, 50, 0, 0.2))

	last := rec.events[len(rec.events)-1]
	if last != "pinchEnd" {
		t.Fatalf("last event = %q, want pinchEnd on 2->1", last)
	}

	// The remaining finger pans from its current position: no jump delta.
	rec.panDeltas = nil
	r.HandleEvent(touch(1, PhaseMove, -68, 2, 0.3))
	want := []Vec2{{X: 7, Y: 2}}
	if !reflect.DeepEqual(rec.panDeltas, want) {
		t.Errorf("pan deltas after 2->1 = %v, want %v", rec.panDeltas, want)
	}

	// Final release: the gesture pinched at some point, so it can never be a
	// tap; it closes as a pan.
	r.HandleEvent(touch(1, PhaseEnd, -68, 2, 0.35))
	if rec.events[len(rec.events)-1] != "panEnd" {
		t.Errorf("final event = %q, want panEnd", rec.events[len(rec.events)-1])
	}
}

func TestThirdFingerRebasesPinchPair(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(touch(1, PhaseBegin, -50, 0, 0))
	r.HandleEvent(touch(2, PhaseBegin, 50, 0, 0.02))
	r.HandleEvent(touch(3, PhaseBegin, 0, 80, 0.04))
	r.HandleEvent(touch(1, PhaseMove, -75, 0, 0.1)) // span 100 -> 125, activates
	scaleBefore := rec.pinches[len(rec.pinches)-1].Scale

	// Lifting the first finger promotes finger 3 into the pair. The preserved
	// cumulative scale keeps the zoom from jumping on the next move.
	r.HandleEvent(touch(1, PhaseEnd, -75, 0, 0.2))
	r.HandleEvent(touch(2, PhaseMove, 50, 0.5, 0.3))
	scaleAfter := rec.pinches[len(rec.pinches)-1].Scale
	if math.Abs(scaleAfter-scaleBefore) > 0.05 {
		t.Errorf("scale jumped from %v to %v across the pair swap", scaleBefore, scaleAfter)
	}
}

// --- Tap reclassification ---

func TestTwoFingerTap(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(touch(1, PhaseBegin, 100, 100, 0))
	r.HandleEvent(touch(2, PhaseBegin, 130, 100, 0.02))
	r.HandleEvent(touch(1, PhaseEnd, 100, 100, 0.08))
	r.HandleEvent(touch(2, PhaseEnd, 130, 100, 0.1))

	// Retroactively a tap: no panEnd, no pinch.
	rec.want(t, "panStart", "twoFingerTap")
}

func TestThreeFingerTap(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(touch(1, PhaseBegin, 100, 100, 0))
	r.HandleEvent(touch(2, PhaseBegin, 130, 100, 0.01))
	r.HandleEvent(touch(3, PhaseBegin, 115, 130, 0.02))
	r.HandleEvent(touch(1, PhaseEnd, 100, 100, 0.08))
	r.HandleEvent(touch(2, PhaseEnd, 130, 100, 0.09))
	r.HandleEvent(touch(3, PhaseEnd, 115, 130, 0.1))

	rec.want(t, "panStart", "threeFingerTap")
}

func TestSlowReleaseIsNotATap(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(touch(1, PhaseBegin, 100, 100, 0))
	r.HandleEvent(touch(2, PhaseBegin, 130, 100, 0.02))
	r.HandleEvent(touch(1, PhaseEnd, 100, 100, 0.5))
	r.HandleEvent(touch(2, PhaseEnd, 130, 100, 0.6))

	rec.want(t, "panStart", "panEnd")
}

func TestMovedFingersAreNotATap(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)
	r.SetTapSlop(1)

	r.HandleEvent(touch(1, PhaseBegin, 100, 100, 0))
	r.HandleEvent(touch(2, PhaseBegin, 130, 100, 0.02))
	r.HandleEvent(touch(1, PhaseMove, 105, 100, 0.04)) // 5px > 1px slop
	r.HandleEvent(touch(1, PhaseEnd, 105, 100, 0.08))
	r.HandleEvent(touch(2, PhaseEnd, 130, 100, 0.1))

	rec.want(t, "panStart", "panEnd")
}

func TestSingleFingerNeverTaps(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(touch(1, PhaseBegin, 100, 100, 0))
	r.HandleEvent(touch(1, PhaseEnd, 100, 100, 0.05))

	rec.want(t, "panStart", "panEnd")
}

// --- Palm rejection ---

func TestPalmRejection(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(pen(PhaseBegin, 0, 0, 0))
	// Palm lands while the pen draws: every touch event is swallowed.
	r.HandleEvent(touch(5, PhaseBegin, 300, 400, 0.05))
	r.HandleEvent(touch(5, PhaseMove, 310, 400, 0.1))
	r.HandleEvent(touch(5, PhaseEnd, 310, 400, 0.15))
	r.HandleEvent(pen(PhaseEnd, 20, 0, 0.2))

	rec.want(t, "strokeStart", "strokeEnd")

	// Suppression lifts with the pen: the next touch pans normally.
	r.HandleEvent(touch(5, PhaseBegin, 300, 400, 0.3))
	if rec.events[len(rec.events)-1] != "panStart" {
		t.Errorf("touch after pen lift = %q, want panStart", rec.events[len(rec.events)-1])
	}
}

func TestMouseDoesNotSuppressTouch(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(PointerEvent{ContactID: 0, Role: RoleMouse, Phase: PhaseBegin, X: 0, Y: 0, Time: 0})
	r.HandleEvent(touch(1, PhaseBegin, 100, 100, 0.05))

	rec.want(t, "strokeStart", "panStart")
}

func TestPenLandingAbortsTouchGesture(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleEvent(touch(1, PhaseBegin, 100, 100, 0))
	r.HandleEvent(touch(1, PhaseMove, 120, 100, 0.05))
	r.HandleEvent(pen(PhaseBegin, 50, 50, 0.1))

	rec.want(t, "panStart", "panMove", "panEnd", "strokeStart")

	// The stale touch release arrives during suppression and must not close
	// anything twice.
	r.HandleEvent(touch(1, PhaseEnd, 120, 100, 0.15))
	rec.want(t, "panStart", "panMove", "panEnd", "strokeStart")
}

// --- Wheel ---

func TestWheelLineModeScaling(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleWheel(WheelEvent{X: 10, Y: 20, DeltaX: 1, DeltaY: 2, Mode: WheelLine, Time: 0})
	if len(rec.wheels) != 1 {
		t.Fatal("wheel step not fired")
	}
	w := rec.wheels[0]
	if w.DeltaX != defaultWheelLineStep || w.DeltaY != 2*defaultWheelLineStep {
		t.Errorf("deltas = (%v, %v), want line deltas scaled by %v", w.DeltaX, w.DeltaY, defaultWheelLineStep)
	}
	if w.X != 10 || w.Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", w.X, w.Y)
	}
}

func TestWheelPixelModePassthrough(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleWheel(WheelEvent{DeltaX: 3, DeltaY: -7, Mode: WheelPixel, ZoomModifierHeld: true, Time: 0})
	w := rec.wheels[0]
	if w.DeltaX != 3 || w.DeltaY != -7 || !w.Zoom {
		t.Errorf("wheel = %+v, want raw pixel deltas with Zoom set", w)
	}
}

func TestWheelEndDebounce(t *testing.T) {
	r := NewRecognizer()
	rec := newRecorder(r)

	r.HandleWheel(WheelEvent{DeltaY: 1, Time: 1.0})
	r.Tick(1.05)
	for _, e := range rec.events {
		if e == "wheelEnd" {
			t.Fatal("wheelEnd fired before the idle delay elapsed")
		}
	}

	// A second step inside the window restarts the countdown.
	r.HandleWheel(WheelEvent{DeltaY: 1, Time: 1.1})
	r.Tick(1.2)
	ends := 0
	for _, e := range rec.events {
		if e == "wheelEnd" {
			ends++
		}
	}
	if ends != 0 {
		t.Fatal("wheelEnd fired despite the restarted countdown")
	}

	r.Tick(1.3)
	r.Tick(2.0)
	for _, e := range rec.events {
		if e == "wheelEnd" {
			ends++
		}
	}
	if ends != 1 {
		t.Errorf("wheelEnd fired %d times, want exactly once", ends)
	}
}

// --- Registration ---

func TestCallbackHandleRemove(t *testing.T) {
	r := NewRecognizer()
	var first, second int
	h := r.OnPanMove(func(dx, dy float64) { first++ })
	r.OnPanMove(func(dx, dy float64) { second++ })

	r.HandleEvent(touch(1, PhaseBegin, 0, 0, 0))
	r.HandleEvent(touch(1, PhaseMove, 5, 0, 0.05))
	h.Remove()
	r.HandleEvent(touch(1, PhaseMove, 10, 0, 0.1))

	if first != 1 {
		t.Errorf("removed handler fired %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining handler fired %d times, want 2", second)
	}
}

func TestCallbackHandleRemoveZeroValue(t *testing.T) {
	var h CallbackHandle
	h.Remove() // must not panic
}

// --- Benchmarks ---

func BenchmarkHandleEventMove(b *testing.B) {
	r := NewRecognizer()
	r.OnStrokeMove(func(points, predicted []SamplePoint) {})
	r.HandleEvent(pen(PhaseBegin, 0, 0, 0))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.HandleEvent(pen(PhaseMove, float64(i%100), 0, float64(i)*0.001))
	}
}

func BenchmarkHandleTouchPinch(b *testing.B) {
	r := NewRecognizer()
	r.OnPinchMove(func(p PinchDelta) {})
	r.HandleEvent(touch(1, PhaseBegin, -50, 0, 0))
	r.HandleEvent(touch(2, PhaseBegin, 50, 0, 0.01))
	r.HandleEvent(touch(1, PhaseMove, -75, 0, 0.02))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.HandleEvent(touch(1, PhaseMove, -75-float64(i%10), 0, 0.03+float64(i)*0.001))
	}
}
