package inkwell

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestNewStrokeRequiresTwoPoints(t *testing.T) {
	if s := NewStroke(nil); s != nil {
		t.Error("NewStroke(nil) should return nil")
	}
	if s := NewStroke([]SamplePoint{{X: 1, Y: 1}}); s != nil {
		t.Error("NewStroke with one point should return nil")
	}
	s := NewStroke([]SamplePoint{{X: 1, Y: 1}, {X: 2, Y: 2}})
	if s == nil {
		t.Fatal("NewStroke with two points should succeed")
	}
	if s.ID == uuid.Nil {
		t.Error("stroke should get a fresh identity")
	}
}

func TestStrokeBounds(t *testing.T) {
	s := NewStroke([]SamplePoint{
		{X: 10, Y: -5},
		{X: -2, Y: 8},
		{X: 4, Y: 0},
	})
	want := Rect{X: -2, Y: -5, Width: 12, Height: 13}
	if s.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", s.Bounds, want)
	}
}

func TestBoundsOfEmpty(t *testing.T) {
	if got := boundsOf(nil); got != (Rect{}) {
		t.Errorf("boundsOf(nil) = %+v, want zero Rect", got)
	}
}

func TestStrokeBuilderSmoothsPressure(t *testing.T) {
	b := NewStrokeBuilder(NewLowPassFilter(0.3))
	b.Add(SamplePoint{X: 0, Y: 0, Pressure: 1.0, Time: 0})
	b.Add(SamplePoint{X: 1, Y: 0, Pressure: 0.0, Time: 0.01})

	pts := b.Points()
	if pts[0].Pressure != 1.0 {
		t.Errorf("first pressure = %v, want 1.0 unfiltered", pts[0].Pressure)
	}
	if math.Abs(pts[1].Pressure-0.7) > 1e-12 {
		t.Errorf("second pressure = %v, want 0.7 smoothed", pts[1].Pressure)
	}
}

func TestStrokeBuilderNilFilter(t *testing.T) {
	b := NewStrokeBuilder(nil)
	b.Add(SamplePoint{Pressure: 0.42})
	if got := b.Points()[0].Pressure; got != 0.42 {
		t.Errorf("pressure = %v, want raw 0.42", got)
	}
}

func TestStrokeBuilderAddBatch(t *testing.T) {
	b := NewStrokeBuilder(nil)
	b.AddBatch([]SamplePoint{{X: 0}, {X: 1}, {X: 2}})
	if b.Len() != 3 {
		t.Errorf("Len = %d, want 3", b.Len())
	}
	if b.Points()[2].X != 2 {
		t.Error("batch order not preserved")
	}
}

func TestStrokeBuilderFinishResets(t *testing.T) {
	filter := NewLowPassFilter(0.3)
	b := NewStrokeBuilder(filter)
	b.Add(SamplePoint{X: 0, Pressure: 1, Time: 0})
	b.Add(SamplePoint{X: 5, Pressure: 1, Time: 0.01})

	s := b.Finish()
	if s == nil || len(s.Points) != 2 {
		t.Fatal("Finish should produce a two-point stroke")
	}
	if b.Len() != 0 {
		t.Error("builder should be empty after Finish")
	}
	// Filter was reset with the builder: next sample passes unfiltered.
	b.Add(SamplePoint{X: 0, Pressure: 0.25, Time: 1})
	if got := b.Points()[0].Pressure; got != 0.25 {
		t.Errorf("pressure after reset = %v, want 0.25 unfiltered", got)
	}
}

func TestStrokeBuilderFinishTooShort(t *testing.T) {
	b := NewStrokeBuilder(nil)
	b.Add(SamplePoint{X: 1})
	if s := b.Finish(); s != nil {
		t.Error("Finish with one point should return nil")
	}
	if b.Len() != 0 {
		t.Error("builder should still reset")
	}
}

func TestStrokeBuilderCancel(t *testing.T) {
	b := NewStrokeBuilder(nil)
	b.Add(SamplePoint{X: 1})
	b.Add(SamplePoint{X: 2})
	b.Cancel()
	if b.Len() != 0 {
		t.Error("Cancel should discard accumulated points")
	}
}

func TestTiltFromSpherical(t *testing.T) {
	tests := []struct {
		name               string
		altitude, azimuth  float64
		wantX, wantY, tolr float64
	}{
		{"vertical pen", math.Pi / 2, 0, 0, 0, 0},
		{"45 degrees toward +x", math.Pi / 4, 0, 45, 0, 1e-9},
		{"45 degrees toward +y", math.Pi / 4, math.Pi / 2, 0, 45, 1e-9},
		{"flat along +y", 0, math.Pi / 2, 0, 90, 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := TiltFromSpherical(tt.altitude, tt.azimuth)
			if math.Abs(gx-tt.wantX) > tt.tolr || math.Abs(gy-tt.wantY) > tt.tolr {
				t.Errorf("TiltFromSpherical = (%v, %v), want (%v, %v)", gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRectOps(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(0, 0) || !r.Contains(10, 10) || r.Contains(10.01, 5) {
		t.Error("Contains edge handling wrong")
	}
	if !r.Intersects(Rect{X: 10, Y: 10, Width: 5, Height: 5}) {
		t.Error("adjacent rects should intersect")
	}
	if r.Intersects(Rect{X: 11, Y: 0, Width: 5, Height: 5}) {
		t.Error("separated rects should not intersect")
	}
	e := r.Expand(2)
	if e.X != -2 || e.Y != -2 || e.Width != 14 || e.Height != 14 {
		t.Errorf("Expand = %+v", e)
	}
}
