package inkwell

// Delta is one reversible structural edit. It is a closed sum: the only
// implementations are AddStroke, RemoveStroke, and RemoveStrokes, and
// undo/redo replay switches over them exhaustively. Each delta carries
// exactly the data needed to reverse itself.
type Delta interface {
	delta()
}

// AddStroke records that a stroke was appended to the document.
// Reversed by removing the stroke by identity.
type AddStroke struct {
	Stroke *Stroke
}

// RemoveStroke records that one stroke was removed from the given position.
// Reversed by reinserting the stored stroke at its original index.
type RemoveStroke struct {
	Stroke *Stroke
	Index  int
}

// RemovedStroke pairs a removed stroke with the array index it occupied
// before removal.
type RemovedStroke struct {
	Stroke *Stroke
	Index  int
}

// RemoveStrokes records a batch removal from one eraser gesture. Reversed by
// reinserting each pair in ascending index order, so earlier reinsertions do
// not shift the targets of later ones. Undo granularity matches the user's
// single gesture, not the number of strokes it touched.
type RemoveStrokes struct {
	Strokes []RemovedStroke
}

func (AddStroke) delta()     {}
func (RemoveStroke) delta()  {}
func (RemoveStrokes) delta() {}

// History is a stack-based record of reversible structural edits, with the
// standard linear-history rule: any new push invalidates a previously-undone
// future. Depth is unbounded; capacity planning is left to the embedding
// application, which can call Clear on document lifecycle boundaries.
type History struct {
	undo []Delta
	redo []Delta
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// PushAddStroke records a stroke addition.
func (h *History) PushAddStroke(s *Stroke) {
	h.push(AddStroke{Stroke: s})
}

// PushRemoveStroke records a single stroke removal from the given index.
func (h *History) PushRemoveStroke(s *Stroke, index int) {
	h.push(RemoveStroke{Stroke: s, Index: index})
}

// PushRemoveStrokes records a batch removal as one undoable step.
func (h *History) PushRemoveStrokes(removed []RemovedStroke) {
	h.push(RemoveStrokes{Strokes: removed})
}

func (h *History) push(d Delta) {
	h.undo = append(h.undo, d)
	h.redo = nil
}

// Undo pops the most recent delta, moves it onto the redo stack, and returns
// it for the caller to apply in reverse. Returns (nil, false) when empty.
func (h *History) Undo() (Delta, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	d := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, d)
	return d, true
}

// Redo is the exact mirror of Undo: it pops the redo stack, moves the delta
// back onto the undo stack, and returns it for the caller to re-apply.
// Returns (nil, false) when empty.
func (h *History) Redo() (Delta, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	d := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, d)
	return d, true
}

// CanUndo reports whether an Undo would return a delta.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a Redo would return a delta.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear empties both stacks. Used on document close or replace.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
