package inkwell

import (
	"sort"

	"github.com/google/uuid"
)

// Document owns the committed stroke sequence, the spatial index kept in 1:1
// correspondence with it, and the undo history. All mutation goes through
// Document so the invariant cannot drift. Single-threaded, like the rest of
// the core.
type Document struct {
	strokes []*Stroke
	index   *SpatialIndex
	history *History

	// Finalized strokes waiting for the next frame tick. Deferring the
	// commit keeps the end-of-gesture handler cheap, so a new contact start
	// is never blocked behind per-stroke finalization work.
	pending []*Stroke
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		index:   NewSpatialIndex(),
		history: NewHistory(),
	}
}

// Strokes returns the live stroke sequence. The slice is owned by the
// document; treat it as read-only.
func (d *Document) Strokes() []*Stroke { return d.strokes }

// Len returns the number of committed strokes.
func (d *Document) Len() int { return len(d.strokes) }

// Index returns the document's spatial index.
func (d *Document) Index() *SpatialIndex { return d.index }

// History returns the document's undo history.
func (d *Document) History() *History { return d.history }

// CanUndo reports whether an undo step is available.
func (d *Document) CanUndo() bool { return d.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (d *Document) CanRedo() bool { return d.history.CanRedo() }

// AddStroke commits a stroke immediately: appends it, indexes it, and
// records the undoable delta. Nil strokes are ignored.
func (d *Document) AddStroke(s *Stroke) {
	if s == nil {
		return
	}
	d.commit(s)
}

// QueueStroke finalizes a builder and schedules the resulting stroke for
// commit on the next Tick. Builders with fewer than two points finalize to
// nothing and are dropped silently.
func (d *Document) QueueStroke(b *StrokeBuilder) {
	s := b.Finish()
	if s != nil {
		d.pending = append(d.pending, s)
	}
}

// Tick commits all strokes queued since the last frame, in arrival order.
// Call once per render frame.
func (d *Document) Tick() {
	if len(d.pending) == 0 {
		return
	}
	for _, s := range d.pending {
		d.commit(s)
	}
	d.pending = nil
}

func (d *Document) commit(s *Stroke) {
	d.strokes = append(d.strokes, s)
	d.index.Insert(s.ID, s.Bounds)
	d.history.PushAddStroke(s)
}

// EraseAt removes every stroke touched by an eraser circle at (x, y) and
// records the whole batch as one undoable step, matching the user's single
// gesture. Returns the number of strokes removed.
func (d *Document) EraseAt(x, y, radius float64) int {
	hits := FindHitStrokes(x, y, radius, d.strokes, d.index)
	if len(hits) == 0 {
		return 0
	}
	removed := make([]RemovedStroke, len(hits))
	for i, idx := range hits {
		removed[i] = RemovedStroke{Stroke: d.strokes[idx], Index: idx}
	}
	// Remove in descending index order so earlier removals do not shift the
	// later targets.
	for i := len(hits) - 1; i >= 0; i-- {
		d.removeAt(hits[i])
	}
	d.history.PushRemoveStrokes(removed)
	return len(hits)
}

// RemoveStrokeAt removes a single stroke by position, recording an undoable
// delta. Reports whether the index was valid.
func (d *Document) RemoveStrokeAt(i int) bool {
	if i < 0 || i >= len(d.strokes) {
		return false
	}
	s := d.strokes[i]
	d.removeAt(i)
	d.history.PushRemoveStroke(s, i)
	return true
}

// Undo reverses the most recent structural edit. Reports whether anything
// was undone.
func (d *Document) Undo() bool {
	delta, ok := d.history.Undo()
	if !ok {
		return false
	}
	switch dd := delta.(type) {
	case AddStroke:
		if i := d.indexOf(dd.Stroke.ID); i >= 0 {
			d.removeAt(i)
		}
	case RemoveStroke:
		d.insertAt(dd.Index, dd.Stroke)
	case RemoveStrokes:
		// Ascending index order: earlier reinsertions must not shift the
		// targets of later ones.
		pairs := make([]RemovedStroke, len(dd.Strokes))
		copy(pairs, dd.Strokes)
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].Index < pairs[b].Index })
		for _, p := range pairs {
			d.insertAt(p.Index, p.Stroke)
		}
	}
	return true
}

// Redo re-applies the most recently undone edit. Reports whether anything
// was redone.
func (d *Document) Redo() bool {
	delta, ok := d.history.Redo()
	if !ok {
		return false
	}
	switch dd := delta.(type) {
	case AddStroke:
		d.strokes = append(d.strokes, dd.Stroke)
		d.index.Insert(dd.Stroke.ID, dd.Stroke.Bounds)
	case RemoveStroke:
		if i := d.indexOf(dd.Stroke.ID); i >= 0 {
			d.removeAt(i)
		}
	case RemoveStrokes:
		current := make([]int, 0, len(dd.Strokes))
		for _, p := range dd.Strokes {
			if i := d.indexOf(p.Stroke.ID); i >= 0 {
				current = append(current, i)
			}
		}
		sort.Sort(sort.Reverse(sort.IntSlice(current)))
		for _, i := range current {
			d.removeAt(i)
		}
	}
	return true
}

// Clear empties the document, its index, and its history. Used on document
// close or replace.
func (d *Document) Clear() {
	d.strokes = nil
	d.pending = nil
	d.index.Clear()
	d.history.Clear()
}

// RebuildIndex reconstructs the spatial index from the current stroke set.
// Needed only after external bulk edits to the stroke sequence.
func (d *Document) RebuildIndex() {
	d.index.BuildFromStrokes(d.strokes)
}

func (d *Document) indexOf(id uuid.UUID) int {
	for i, s := range d.strokes {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) removeAt(i int) {
	d.index.Remove(d.strokes[i].ID)
	d.strokes = append(d.strokes[:i], d.strokes[i+1:]...)
}

func (d *Document) insertAt(i int, s *Stroke) {
	if i < 0 {
		i = 0
	}
	if i > len(d.strokes) {
		i = len(d.strokes)
	}
	d.strokes = append(d.strokes, nil)
	copy(d.strokes[i+1:], d.strokes[i:])
	d.strokes[i] = s
	d.index.Insert(s.ID, s.Bounds)
}
