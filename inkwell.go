package inkwell

import "math"

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Expand returns r grown by margin on all four sides. A negative margin
// shrinks the rectangle.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// DeviceRole identifies the kind of hardware device behind an input contact.
// The role decides which gesture track an event drives: pen and mouse feed
// the drawing track, touch feeds the pan/pinch track.
type DeviceRole uint8

const (
	RolePen   DeviceRole = iota // stylus tip
	RoleTouch                   // finger
	RoleMouse                   // mouse cursor
)

// PointerPhase identifies where in a contact's lifetime an event falls.
type PointerPhase uint8

const (
	PhaseBegin  PointerPhase = iota // contact started (press / touch down)
	PhaseMove                       // contact moved while active
	PhaseEnd                        // contact ended normally
	PhaseCancel                     // contact aborted by the platform or a mode switch
	PhaseHover                      // in-proximity move with no active contact
)

// PointerEvent is one hardware pointer sample delivered to the Recognizer.
// Coalesced holds the ordered batch of physical samples the device collected
// since the last delivered frame; when empty, the event's own fields are the
// single sample. Predicted holds speculative future samples that are
// forwarded as rendering hints only and never persisted into a stroke.
type PointerEvent struct {
	ContactID int
	Role      DeviceRole
	Phase     PointerPhase
	X, Y      float64
	Pressure  float64 // normalized [0, 1]
	TiltX     float64 // degrees
	TiltY     float64 // degrees
	Twist     float64 // degrees
	Time      float64 // seconds, monotonic
	Coalesced []SamplePoint
	Predicted []SamplePoint
}

// sample returns the event's own fields as a single SamplePoint.
func (ev PointerEvent) sample() SamplePoint {
	return SamplePoint{
		X:        ev.X,
		Y:        ev.Y,
		Pressure: ev.Pressure,
		TiltX:    ev.TiltX,
		TiltY:    ev.TiltY,
		Twist:    ev.Twist,
		Time:     ev.Time,
	}
}

// WheelMode selects the unit of a wheel event's deltas.
type WheelMode uint8

const (
	WheelPixel WheelMode = iota // deltas are pixels
	WheelLine                   // deltas are lines, scaled by the per-line step
)

// WheelEvent is one wheel/scroll sample.
type WheelEvent struct {
	X, Y             float64
	DeltaX, DeltaY   float64
	Mode             WheelMode
	ZoomModifierHeld bool
	Time             float64 // seconds, monotonic
}

// TiltFromSpherical converts an altitude/azimuth pair (radians, as reported
// by some stylus platforms) to the tiltX/tiltY degree pair used by
// SamplePoint. A vertical pen (altitude pi/2) yields zero tilt.
func TiltFromSpherical(altitude, azimuth float64) (tiltX, tiltY float64) {
	if altitude >= math.Pi/2 {
		return 0, 0
	}
	tan := math.Tan(altitude)
	if tan == 0 {
		// Pen lying flat: tilt saturates along the azimuth direction.
		return 90 * math.Cos(azimuth), 90 * math.Sin(azimuth)
	}
	rad := 180 / math.Pi
	tiltX = math.Atan(math.Cos(azimuth)/tan) * rad
	tiltY = math.Atan(math.Sin(azimuth)/tan) * rad
	return tiltX, tiltY
}
