package inkwell

import "github.com/google/uuid"

// SamplePoint is one sampled pointer position. Immutable once produced.
type SamplePoint struct {
	X, Y     float64
	Pressure float64 // normalized [0, 1]
	TiltX    float64 // degrees
	TiltY    float64 // degrees
	Twist    float64 // degrees
	Time     float64 // seconds, monotonic
}

// Stroke is a finalized, persisted sequence of sampled points from one
// continuous contact, rendered as a single mark. Content is immutable after
// creation; an undo restores a previously removed stroke verbatim.
type Stroke struct {
	ID     uuid.UUID
	Points []SamplePoint
	Bounds Rect
}

// NewStroke creates a stroke from an owned point slice, assigning a fresh
// identity and deriving the bounding box. Returns nil for fewer than two
// points — a contact that never moved is not a mark.
func NewStroke(points []SamplePoint) *Stroke {
	if len(points) < 2 {
		return nil
	}
	return &Stroke{
		ID:     uuid.New(),
		Points: points,
		Bounds: boundsOf(points),
	}
}

// boundsOf computes the axis-aligned bounding box of a point sequence.
// An empty sequence yields the zero Rect.
func boundsOf(points []SamplePoint) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// StrokeBuilder accumulates sample points for one in-progress drawing
// contact. An optional SignalFilter smooths the pressure channel as points
// arrive; positions are stored as sampled.
type StrokeBuilder struct {
	points   []SamplePoint
	pressure SignalFilter
}

// NewStrokeBuilder creates a builder. pressureFilter may be nil to record
// raw pressure.
func NewStrokeBuilder(pressureFilter SignalFilter) *StrokeBuilder {
	return &StrokeBuilder{pressure: pressureFilter}
}

// Add appends one sample, smoothing its pressure if a filter is set.
func (b *StrokeBuilder) Add(p SamplePoint) {
	if b.pressure != nil {
		p.Pressure = b.pressure.Filter(p.Pressure, p.Time)
	}
	b.points = append(b.points, p)
}

// AddBatch appends an ordered batch of samples (e.g. a coalesced batch).
func (b *StrokeBuilder) AddBatch(batch []SamplePoint) {
	for _, p := range batch {
		b.Add(p)
	}
}

// Len returns the number of accumulated points.
func (b *StrokeBuilder) Len() int { return len(b.points) }

// Points returns the accumulated points for preview rendering. The slice is
// owned by the builder and valid until the next Add or Finish.
func (b *StrokeBuilder) Points() []SamplePoint { return b.points }

// Finish converts the accumulated points into a Stroke, or returns nil if
// fewer than two points were collected. The builder is reset either way.
func (b *StrokeBuilder) Finish() *Stroke {
	points := b.points
	b.points = nil
	if b.pressure != nil {
		b.pressure.Reset()
	}
	return NewStroke(points)
}

// Cancel discards the accumulated points and resets the builder.
func (b *StrokeBuilder) Cancel() {
	b.points = nil
	if b.pressure != nil {
		b.pressure.Reset()
	}
}
