package inkwell

import (
	"math"

	"github.com/google/uuid"
)

// defaultCellSize is the side length of one grid cell in world units.
// Strokes span a handful of cells; a point query touches the few cells the
// eraser circle overlaps.
const defaultCellSize = 256.0

type cellKey struct {
	x, y int
}

type indexEntry struct {
	bounds                     Rect
	minCX, minCY, maxCX, maxCY int
}

// SpatialIndex maps stroke identity to bounding box over a uniform grid,
// keeping eraser broad-phase queries sub-linear in stroke count. The entry
// set is maintained in 1:1 correspondence with the owning document's stroke
// set.
type SpatialIndex struct {
	cellSize float64
	cells    map[cellKey][]uuid.UUID
	entries  map[uuid.UUID]indexEntry
}

// NewSpatialIndex creates an empty index with the default cell size.
func NewSpatialIndex() *SpatialIndex {
	return NewSpatialIndexSize(defaultCellSize)
}

// NewSpatialIndexSize creates an empty index with the given cell size in
// world units. Non-positive sizes fall back to the default.
func NewSpatialIndexSize(cellSize float64) *SpatialIndex {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &SpatialIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]uuid.UUID),
		entries:  make(map[uuid.UUID]indexEntry),
	}
}

// Len returns the number of indexed strokes.
func (si *SpatialIndex) Len() int { return len(si.entries) }

// Insert adds a stroke's bounding box under its identity. Inserting an id
// that is already present replaces its previous bounds.
func (si *SpatialIndex) Insert(id uuid.UUID, bounds Rect) {
	if _, ok := si.entries[id]; ok {
		si.Remove(id)
	}
	e := indexEntry{bounds: bounds}
	e.minCX, e.minCY = si.cellOf(bounds.X, bounds.Y)
	e.maxCX, e.maxCY = si.cellOf(bounds.X+bounds.Width, bounds.Y+bounds.Height)
	for cy := e.minCY; cy <= e.maxCY; cy++ {
		for cx := e.minCX; cx <= e.maxCX; cx++ {
			key := cellKey{cx, cy}
			si.cells[key] = append(si.cells[key], id)
		}
	}
	si.entries[id] = e
}

// Remove deletes a stroke's entry. Unknown ids are ignored.
func (si *SpatialIndex) Remove(id uuid.UUID) {
	e, ok := si.entries[id]
	if !ok {
		return
	}
	for cy := e.minCY; cy <= e.maxCY; cy++ {
		for cx := e.minCX; cx <= e.maxCX; cx++ {
			key := cellKey{cx, cy}
			ids := si.cells[key]
			for i := range ids {
				if ids[i] == id {
					ids[i] = ids[len(ids)-1]
					ids = ids[:len(ids)-1]
					break
				}
			}
			if len(ids) == 0 {
				delete(si.cells, key)
			} else {
				si.cells[key] = ids
			}
		}
	}
	delete(si.entries, id)
}

// QueryPoint returns the ids of strokes whose bounding box lies within
// radius of (x, y). Order is unspecified; callers needing determinism (the
// eraser narrow phase) resolve candidates against the stroke sequence.
func (si *SpatialIndex) QueryPoint(x, y, radius float64) []uuid.UUID {
	minCX, minCY := si.cellOf(x-radius, y-radius)
	maxCX, maxCY := si.cellOf(x+radius, y+radius)

	var out []uuid.UUID
	var seen map[uuid.UUID]struct{}
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			for _, id := range si.cells[cellKey{cx, cy}] {
				if seen != nil {
					if _, dup := seen[id]; dup {
						continue
					}
				}
				e := si.entries[id]
				if !e.bounds.Expand(radius).Contains(x, y) {
					continue
				}
				if seen == nil {
					seen = make(map[uuid.UUID]struct{}, 8)
				}
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out
}

// Clear resets the index to empty.
func (si *SpatialIndex) Clear() {
	si.cells = make(map[cellKey][]uuid.UUID)
	si.entries = make(map[uuid.UUID]indexEntry)
}

// BuildFromStrokes rebuilds the index from a full stroke set, discarding any
// previous contents. Used after bulk structural edits that renumber the
// sequence.
func (si *SpatialIndex) BuildFromStrokes(strokes []*Stroke) {
	si.Clear()
	for _, s := range strokes {
		si.Insert(s.ID, s.Bounds)
	}
}

func (si *SpatialIndex) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / si.cellSize)), int(math.Floor(y / si.cellSize))
}
