package inkwell

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxTouchSlots = 10 // slot 0 = mouse, 1-9 = touches

// Source polls Ebitengine input state once per frame and feeds it to a
// Recognizer as pointer and wheel events. Ebitengine exposes no pen
// pressure, tilt, or coalesced-sample data, so everything takes the
// single-sample path: the mouse reports as RoleMouse with full pressure
// while pressed, and touches report as RoleTouch.
type Source struct {
	rec   *Recognizer
	start time.Time

	mouseDown      bool
	mouseX, mouseY float64

	touchIDs   []ebiten.TouchID
	touchUsed  [maxTouchSlots]bool
	touchMap   [maxTouchSlots]ebiten.TouchID
	touchPos   [maxTouchSlots]Vec2
	prevActive [maxTouchSlots]bool
}

// NewSource creates a source feeding the given recognizer.
func NewSource(rec *Recognizer) *Source {
	return &Source{rec: rec, start: time.Now()}
}

// Now returns the source's monotonic clock in seconds.
func (s *Source) Now() float64 {
	return time.Since(s.start).Seconds()
}

// Update polls input and dispatches events. Call once per frame from the
// host game's Update.
func (s *Source) Update() {
	now := s.Now()
	s.pollMouse(now)
	s.pollTouches(now)
	s.pollWheel(now)
	s.rec.Tick(now)
}

func (s *Source) pollMouse(now float64) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	moved := x != s.mouseX || y != s.mouseY

	switch {
	case pressed && !s.mouseDown:
		s.rec.HandleEvent(PointerEvent{
			ContactID: 0, Role: RoleMouse, Phase: PhaseBegin,
			X: x, Y: y, Pressure: 1, Time: now,
		})
	case pressed && s.mouseDown:
		if moved {
			s.rec.HandleEvent(PointerEvent{
				ContactID: 0, Role: RoleMouse, Phase: PhaseMove,
				X: x, Y: y, Pressure: 1, Time: now,
			})
		}
	case !pressed && s.mouseDown:
		s.rec.HandleEvent(PointerEvent{
			ContactID: 0, Role: RoleMouse, Phase: PhaseEnd,
			X: x, Y: y, Time: now,
		})
	default:
		if moved {
			s.rec.HandleEvent(PointerEvent{
				ContactID: 0, Role: RoleMouse, Phase: PhaseHover,
				X: x, Y: y, Time: now,
			})
		}
	}

	s.mouseDown = pressed
	s.mouseX, s.mouseY = x, y
}

func (s *Source) pollTouches(now float64) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	var active [maxTouchSlots]bool
	for _, tid := range s.touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		x, y := float64(tx), float64(ty)
		if !s.prevActive[slot] {
			s.rec.HandleEvent(PointerEvent{
				ContactID: slot, Role: RoleTouch, Phase: PhaseBegin,
				X: x, Y: y, Pressure: 1, Time: now,
			})
		} else if x != s.touchPos[slot].X || y != s.touchPos[slot].Y {
			s.rec.HandleEvent(PointerEvent{
				ContactID: slot, Role: RoleTouch, Phase: PhaseMove,
				X: x, Y: y, Pressure: 1, Time: now,
			})
		}
		s.touchPos[slot] = Vec2{X: x, Y: y}
	}

	// Synthesize an end for any slot whose touch id disappeared this frame.
	for i := 1; i < maxTouchSlots; i++ {
		if s.prevActive[i] && !active[i] {
			s.rec.HandleEvent(PointerEvent{
				ContactID: i, Role: RoleTouch, Phase: PhaseEnd,
				X: s.touchPos[i].X, Y: s.touchPos[i].Y, Time: now,
			})
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
	s.prevActive = active
}

// touchSlot maps an ebiten.TouchID to a contact slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Source) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxTouchSlots; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxTouchSlots; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (s *Source) pollWheel(now float64) {
	wx, wy := ebiten.Wheel()
	if wx == 0 && wy == 0 {
		return
	}
	zoom := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	// DOM-style sign convention: positive deltaY scrolls content down.
	s.rec.HandleWheel(WheelEvent{
		X: s.mouseX, Y: s.mouseY,
		DeltaX: -wx, DeltaY: -wy,
		Mode:             WheelLine,
		ZoomModifierHeld: zoom,
		Time:             now,
	})
}
