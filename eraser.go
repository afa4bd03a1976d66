package inkwell

import "github.com/google/uuid"

// FindHitStrokes returns the indices (ascending) of strokes touched by an
// eraser circle of the given radius centered at (x, y).
//
// With an index available the broad phase is a grid query and the exact
// narrow-phase test runs only on the candidates. With index nil the broad
// phase degrades to a margin-expanded bounding-box reject over the whole
// sequence. Both paths return identical results for the same input.
func FindHitStrokes(x, y, radius float64, strokes []*Stroke, index *SpatialIndex) []int {
	rSq := radius * radius
	var hits []int

	if index != nil {
		candidates := index.QueryPoint(x, y, radius)
		if len(candidates) == 0 {
			return nil
		}
		set := make(map[uuid.UUID]struct{}, len(candidates))
		for _, id := range candidates {
			set[id] = struct{}{}
		}
		for i, s := range strokes {
			if _, ok := set[s.ID]; !ok {
				continue
			}
			if strokeWithin(s, x, y, rSq) {
				hits = append(hits, i)
			}
		}
		return hits
	}

	for i, s := range strokes {
		if !s.Bounds.Expand(radius).Contains(x, y) {
			continue
		}
		if strokeWithin(s, x, y, rSq) {
			hits = append(hits, i)
		}
	}
	return hits
}

// strokeWithin reports whether any segment of the stroke's polyline passes
// within the squared radius of (x, y). A single-point stroke is tested as a
// point.
func strokeWithin(s *Stroke, x, y, rSq float64) bool {
	pts := s.Points
	if len(pts) == 0 {
		return false
	}
	if len(pts) == 1 {
		dx := x - pts[0].X
		dy := y - pts[0].Y
		return dx*dx+dy*dy <= rSq
	}
	for i := 0; i+1 < len(pts); i++ {
		if pointSegmentDistSq(x, y, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y) <= rSq {
			return true
		}
	}
	return false
}

// pointSegmentDistSq returns the squared distance from (px, py) to the
// segment (ax, ay)-(bx, by). The projection parameter is clamped to [0, 1];
// zero-length segments fall back to point distance. Squared form throughout,
// so a radius comparison needs no square root.
func pointSegmentDistSq(px, py, ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		ex := px - ax
		ey := py - ay
		return ex*ex + ey*ey
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	ex := px - (ax + t*dx)
	ey := py - (ay + t*dy)
	return ex*ex + ey*ey
}
