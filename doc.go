// Package inkwell turns ambiguous, high-frequency hardware pointer input
// (stylus, touch, mouse, wheel) into the small set of semantic actions a
// drawing surface needs: stroke sampling, panning, pinch-zoom, multi-finger
// taps, and hover feedback — while rejecting accidental touches during pen
// use. It also provides the pieces that keep erasing interactive at scale: a
// spatial index over stroke geometry, exact eraser hit-testing, and an undo
// log that makes every structural edit reversible.
//
// # Quick start
//
// Create a [Recognizer], subscribe to the callbacks you care about, and feed
// it events. With [Ebitengine], a [Source] does the feeding for you:
//
//	rec := inkwell.NewRecognizer()
//	doc := inkwell.NewDocument()
//	view := inkwell.NewViewport()
//
//	rec.OnPanMove(view.Pan)
//	rec.OnPinchMove(view.ApplyPinch)
//	rec.OnPinchEnd(view.EndPinch)
//	rec.OnTwoFingerTap(func() { doc.Undo() })
//	rec.OnThreeFingerTap(func() { doc.Redo() })
//
//	src := inkwell.NewSource(rec)
//	// each frame: src.Update(); doc.Tick(); view.Update(dt)
//
// Any other event source works by constructing [PointerEvent] and
// [WheelEvent] values and calling [Recognizer.HandleEvent] and
// [Recognizer.HandleWheel] directly; the whole core is platform-neutral and
// single-threaded.
//
// # Strokes and erasing
//
// Drawing callbacks carry [SamplePoint] batches. Collect them with a
// [StrokeBuilder] (optionally smoothing pressure through a [SignalFilter])
// and commit via [Document.QueueStroke]; finalization is deferred to the
// next [Document.Tick] so a new contact is never blocked behind it.
// [Document.EraseAt] uses the [SpatialIndex] broad phase plus exact
// segment-distance tests, removes everything one eraser pass touched, and
// records it as a single undoable step.
//
// [Ebitengine]: https://ebitengine.org
package inkwell
