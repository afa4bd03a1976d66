package inkwell

import "math"

// --- Constants ---

const (
	defaultPinchThreshold = 8.0  // px of span or center travel before pinch activates
	defaultTapSlop        = 10.0 // px of contact travel below which a release is a tap
	defaultTapTimeout     = 0.3  // seconds; longer gestures are never taps
	defaultWheelIdleDelay = 0.15 // seconds of wheel silence before WheelEnd
	defaultWheelLineStep  = 16.0 // px per line for line-mode wheel deltas
)

// --- Callback types ---

// StrokeStartFunc receives the first sample of a new drawing contact.
type StrokeStartFunc func(p SamplePoint)

// StrokeMoveFunc receives the ordered batch of samples since the last move
// plus a disjoint batch of speculative future samples. Predicted samples are
// rendering hints only and must never be persisted into the stroke.
type StrokeMoveFunc func(points, predicted []SamplePoint)

// StrokeEndFunc receives the final sample of a completed drawing contact.
type StrokeEndFunc func(p SamplePoint)

// PanStartFunc receives the anchor position of a beginning pan.
type PanStartFunc func(x, y float64)

// PanMoveFunc receives an incremental pan delta.
type PanMoveFunc func(dx, dy float64)

// PinchDelta describes one step of an active pinch gesture. Scale is
// cumulative relative to the span at the two-touch anchor; PanDX/PanDY are
// the incremental travel of the pinch center.
type PinchDelta struct {
	CenterX, CenterY float64
	Scale            float64
	PanDX, PanDY     float64
}

// PinchMoveFunc receives one step of an active pinch.
type PinchMoveFunc func(p PinchDelta)

// WheelDelta describes one wheel step with line-mode deltas already scaled
// to pixels. Zoom reports whether the zoom modifier was held.
type WheelDelta struct {
	X, Y           float64
	DeltaX, DeltaY float64
	Zoom           bool
}

// WheelFunc receives one wheel step.
type WheelFunc func(w WheelDelta)

// HoverFunc receives an in-proximity position with no active contact.
type HoverFunc func(x, y float64, role DeviceRole)

// NotifyFunc is a payload-free gesture notification (cancel, end, tap).
type NotifyFunc func()

// GestureEvent identifies a kind of recognizer callback, used by
// CallbackHandle to unregister.
type GestureEvent uint8

const (
	EventStrokeStart GestureEvent = iota
	EventStrokeMove
	EventStrokeEnd
	EventStrokeCancel
	EventPanStart
	EventPanMove
	EventPanEnd
	EventPinchMove
	EventPinchEnd
	EventTwoFingerTap
	EventThreeFingerTap
	EventWheel
	EventWheelEnd
	EventHover
	EventHoverEnd
)

// --- Handler registry ---

type handlerEntry[F any] struct {
	id uint32
	fn F
}

func removeHandler[F any](s []handlerEntry[F], id uint32) []handlerEntry[F] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			var zero handlerEntry[F]
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

type gestureHandlers struct {
	strokeStart    []handlerEntry[StrokeStartFunc]
	strokeMove     []handlerEntry[StrokeMoveFunc]
	strokeEnd      []handlerEntry[StrokeEndFunc]
	strokeCancel   []handlerEntry[NotifyFunc]
	panStart       []handlerEntry[PanStartFunc]
	panMove        []handlerEntry[PanMoveFunc]
	panEnd         []handlerEntry[NotifyFunc]
	pinchMove      []handlerEntry[PinchMoveFunc]
	pinchEnd       []handlerEntry[NotifyFunc]
	twoFingerTap   []handlerEntry[NotifyFunc]
	threeFingerTap []handlerEntry[NotifyFunc]
	wheel          []handlerEntry[WheelFunc]
	wheelEnd       []handlerEntry[NotifyFunc]
	hover          []handlerEntry[HoverFunc]
	hoverEnd       []handlerEntry[NotifyFunc]
	nextID         uint32
}

// CallbackHandle allows removing a registered recognizer callback.
type CallbackHandle struct {
	id    uint32
	reg   *gestureHandlers
	event GestureEvent
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventStrokeStart:
		h.reg.strokeStart = removeHandler(h.reg.strokeStart, h.id)
	case EventStrokeMove:
		h.reg.strokeMove = removeHandler(h.reg.strokeMove, h.id)
	case EventStrokeEnd:
		h.reg.strokeEnd = removeHandler(h.reg.strokeEnd, h.id)
	case EventStrokeCancel:
		h.reg.strokeCancel = removeHandler(h.reg.strokeCancel, h.id)
	case EventPanStart:
		h.reg.panStart = removeHandler(h.reg.panStart, h.id)
	case EventPanMove:
		h.reg.panMove = removeHandler(h.reg.panMove, h.id)
	case EventPanEnd:
		h.reg.panEnd = removeHandler(h.reg.panEnd, h.id)
	case EventPinchMove:
		h.reg.pinchMove = removeHandler(h.reg.pinchMove, h.id)
	case EventPinchEnd:
		h.reg.pinchEnd = removeHandler(h.reg.pinchEnd, h.id)
	case EventTwoFingerTap:
		h.reg.twoFingerTap = removeHandler(h.reg.twoFingerTap, h.id)
	case EventThreeFingerTap:
		h.reg.threeFingerTap = removeHandler(h.reg.threeFingerTap, h.id)
	case EventWheel:
		h.reg.wheel = removeHandler(h.reg.wheel, h.id)
	case EventWheelEnd:
		h.reg.wheelEnd = removeHandler(h.reg.wheelEnd, h.id)
	case EventHover:
		h.reg.hover = removeHandler(h.reg.hover, h.id)
	case EventHoverEnd:
		h.reg.hoverEnd = removeHandler(h.reg.hoverEnd, h.id)
	}
}

// --- Per-contact state ---

type touchContact struct {
	x, y           float64
	startX, startY float64
}

// --- Recognizer ---

// Recognizer classifies raw pointer, touch, and wheel events into the
// semantic callback stream a drawing surface consumes: stroke sampling,
// panning, pinch-zoom, multi-finger taps, and hover feedback. It owns all
// per-contact state and is single-threaded: events are handled synchronously
// in delivery order, and Tick is called once per render frame.
type Recognizer struct {
	pinchThreshold float64
	tapSlopSq      float64
	tapTimeout     float64
	wheelIdleDelay float64
	wheelLineStep  float64

	// Drawing track: Idle <-> Active(drawContact).
	drawing     bool
	drawContact int
	drawRole    DeviceRole

	hovering bool

	// Touch track. touches is keyed by contact id with guaranteed removal
	// on end/cancel; touchOrder preserves arrival order so the first two
	// contacts define the pinch pair.
	touches    map[int]*touchContact
	touchOrder []int

	gestureStart  float64
	maxTouchCount int
	maxDispSq     float64

	panLastX, panLastY float64

	pinchCandidate bool
	pinchActive    bool
	pinchEver      bool
	pinchBaseSpan  float64
	pinchAnchorX   float64
	pinchAnchorY   float64
	lastScale      float64

	wheelActive   bool
	lastWheelTime float64

	// Scratch buffer for the no-coalescing single-sample path, so a plain
	// move does not allocate.
	singleSample [1]SamplePoint

	handlers gestureHandlers
}

// NewRecognizer creates a recognizer with default thresholds.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		pinchThreshold: defaultPinchThreshold,
		tapSlopSq:      defaultTapSlop * defaultTapSlop,
		tapTimeout:     defaultTapTimeout,
		wheelIdleDelay: defaultWheelIdleDelay,
		wheelLineStep:  defaultWheelLineStep,
		touches:        make(map[int]*touchContact),
		lastScale:      1,
	}
}

// SetPinchThreshold sets the span or center travel in pixels required before
// two resting fingers are read as an intentional pinch.
func (r *Recognizer) SetPinchThreshold(pixels float64) {
	r.pinchThreshold = pixels
}

// SetTapSlop sets the contact travel in pixels below which a quick
// multi-finger release is reclassified as a tap.
func (r *Recognizer) SetTapSlop(pixels float64) {
	r.tapSlopSq = pixels * pixels
}

// SetTapTimeout sets the maximum gesture duration in seconds for tap
// reclassification.
func (r *Recognizer) SetTapTimeout(seconds float64) {
	r.tapTimeout = seconds
}

// SetWheelIdleDelay sets the wheel silence in seconds after which WheelEnd
// fires.
func (r *Recognizer) SetWheelIdleDelay(seconds float64) {
	r.wheelIdleDelay = seconds
}

// SetWheelLineStep sets the pixel multiplier for line-mode wheel deltas.
func (r *Recognizer) SetWheelLineStep(pixels float64) {
	r.wheelLineStep = pixels
}

// --- Registration ---

// OnStrokeStart registers a callback for the start of a drawing contact.
func (r *Recognizer) OnStrokeStart(fn StrokeStartFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.strokeStart = append(r.handlers.strokeStart, handlerEntry[StrokeStartFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventStrokeStart}
}

// OnStrokeMove registers a callback for drawing-contact movement batches.
func (r *Recognizer) OnStrokeMove(fn StrokeMoveFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.strokeMove = append(r.handlers.strokeMove, handlerEntry[StrokeMoveFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventStrokeMove}
}

// OnStrokeEnd registers a callback for the normal end of a drawing contact.
func (r *Recognizer) OnStrokeEnd(fn StrokeEndFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.strokeEnd = append(r.handlers.strokeEnd, handlerEntry[StrokeEndFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventStrokeEnd}
}

// OnStrokeCancel registers a callback for an aborted drawing contact.
func (r *Recognizer) OnStrokeCancel(fn NotifyFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.strokeCancel = append(r.handlers.strokeCancel, handlerEntry[NotifyFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventStrokeCancel}
}

// OnPanStart registers a callback for the start of a one-finger pan.
func (r *Recognizer) OnPanStart(fn PanStartFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.panStart = append(r.handlers.panStart, handlerEntry[PanStartFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPanStart}
}

// OnPanMove registers a callback for incremental pan deltas.
func (r *Recognizer) OnPanMove(fn PanMoveFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.panMove = append(r.handlers.panMove, handlerEntry[PanMoveFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPanMove}
}

// OnPanEnd registers a callback for the end of a pan gesture.
func (r *Recognizer) OnPanEnd(fn NotifyFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.panEnd = append(r.handlers.panEnd, handlerEntry[NotifyFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPanEnd}
}

// OnPinchMove registers a callback for active pinch steps.
func (r *Recognizer) OnPinchMove(fn PinchMoveFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pinchMove = append(r.handlers.pinchMove, handlerEntry[PinchMoveFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPinchMove}
}

// OnPinchEnd registers a callback for the end of an active pinch.
func (r *Recognizer) OnPinchEnd(fn NotifyFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pinchEnd = append(r.handlers.pinchEnd, handlerEntry[NotifyFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPinchEnd}
}

// OnTwoFingerTap registers a callback for a quick two-finger tap.
func (r *Recognizer) OnTwoFingerTap(fn NotifyFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.twoFingerTap = append(r.handlers.twoFingerTap, handlerEntry[NotifyFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventTwoFingerTap}
}

// OnThreeFingerTap registers a callback for a quick three-finger tap.
func (r *Recognizer) OnThreeFingerTap(fn NotifyFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.threeFingerTap = append(r.handlers.threeFingerTap, handlerEntry[NotifyFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventThreeFingerTap}
}

// OnWheel registers a callback for wheel steps.
func (r *Recognizer) OnWheel(fn WheelFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.wheel = append(r.handlers.wheel, handlerEntry[WheelFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventWheel}
}

// OnWheelEnd registers a callback fired once after wheel input goes idle.
func (r *Recognizer) OnWheelEnd(fn NotifyFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.wheelEnd = append(r.handlers.wheelEnd, handlerEntry[NotifyFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventWheelEnd}
}

// OnHover registers a callback for in-proximity moves with no contact.
func (r *Recognizer) OnHover(fn HoverFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.hover = append(r.handlers.hover, handlerEntry[HoverFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventHover}
}

// OnHoverEnd registers a callback for the end of hover feedback.
func (r *Recognizer) OnHoverEnd(fn NotifyFunc) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.hoverEnd = append(r.handlers.hoverEnd, handlerEntry[NotifyFunc]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventHoverEnd}
}

// --- Event handling ---

// HandleEvent routes one pointer event by device role. Pen and mouse drive
// the drawing track; touch drives the pan/pinch track unless suppressed by
// an active pen contact (palm rejection).
func (r *Recognizer) HandleEvent(ev PointerEvent) {
	switch ev.Role {
	case RoleTouch:
		r.handleTouch(ev)
	default:
		r.handleDrawing(ev)
	}
}

// HandleWheel processes one wheel step, scaling line-mode deltas to pixels
// and arming the idle-debounced WheelEnd.
func (r *Recognizer) HandleWheel(ev WheelEvent) {
	dx, dy := ev.DeltaX, ev.DeltaY
	if ev.Mode == WheelLine {
		dx *= r.wheelLineStep
		dy *= r.wheelLineStep
	}
	r.fireWheel(WheelDelta{X: ev.X, Y: ev.Y, DeltaX: dx, DeltaY: dy, Zoom: ev.ZoomModifierHeld})
	r.wheelActive = true
	r.lastWheelTime = ev.Time
}

// Tick advances time-based state. Called once per render frame; it is the
// only place WheelEnd can fire, keeping the recognizer free of timers.
func (r *Recognizer) Tick(now float64) {
	if r.wheelActive && now-r.lastWheelTime >= r.wheelIdleDelay {
		r.wheelActive = false
		r.fireWheelEnd()
	}
}

// --- Drawing track ---

func (r *Recognizer) handleDrawing(ev PointerEvent) {
	switch ev.Phase {
	case PhaseBegin:
		if r.drawing {
			// Orphaned contact: the platform dropped the terminating event
			// for the previous gesture. This begin is the only reliable
			// signal that it is over.
			r.fireStrokeCancel()
		}
		r.endHover()
		if ev.Role == RolePen {
			// Palm rejection: a pen landing overrides any touch gesture in
			// progress.
			r.abortTouchGesture()
		}
		r.drawing = true
		r.drawContact = ev.ContactID
		r.drawRole = ev.Role
		r.fireStrokeStart(ev.sample())

	case PhaseMove:
		if r.drawing && ev.ContactID == r.drawContact {
			batch := ev.Coalesced
			if len(batch) == 0 {
				// No coalescing support: the event itself is the batch.
				r.singleSample[0] = ev.sample()
				batch = r.singleSample[:]
			}
			r.fireStrokeMove(batch, ev.Predicted)
		} else if !r.drawing {
			r.hovering = true
			r.fireHover(ev.X, ev.Y, ev.Role)
		}

	case PhaseHover:
		if !r.drawing {
			r.hovering = true
			r.fireHover(ev.X, ev.Y, ev.Role)
		}

	case PhaseEnd:
		if r.drawing && ev.ContactID == r.drawContact {
			r.drawing = false
			r.fireStrokeEnd(ev.sample())
		} else if !r.drawing {
			r.endHover()
		}

	case PhaseCancel:
		if r.drawing && ev.ContactID == r.drawContact {
			r.drawing = false
			r.fireStrokeCancel()
		} else if !r.drawing {
			r.endHover()
		}
	}
}

func (r *Recognizer) endHover() {
	if r.hovering {
		r.hovering = false
		r.fireHoverEnd()
	}
}

// --- Touch track ---

// penSuppressed reports whether touch input is currently rejected because a
// pen contact is active. Suppression re-arms the instant the pen lifts.
func (r *Recognizer) penSuppressed() bool {
	return r.drawing && r.drawRole == RolePen
}

func (r *Recognizer) handleTouch(ev PointerEvent) {
	if r.penSuppressed() {
		// Suppressed contacts must still be dropped from the table on
		// end/cancel so they cannot leak across the suppression window.
		if ev.Phase == PhaseEnd || ev.Phase == PhaseCancel {
			r.dropTouch(ev.ContactID)
		}
		return
	}
	switch ev.Phase {
	case PhaseBegin:
		r.touchBegin(ev)
	case PhaseMove:
		r.touchMove(ev)
	case PhaseEnd, PhaseCancel:
		r.touchEnd(ev)
	}
}

func (r *Recognizer) touchBegin(ev PointerEvent) {
	if _, ok := r.touches[ev.ContactID]; ok {
		// Orphaned touch: begin for an id we already track. Reset it.
		r.dropTouch(ev.ContactID)
	}
	r.endHover()
	r.touches[ev.ContactID] = &touchContact{
		x: ev.X, y: ev.Y, startX: ev.X, startY: ev.Y,
	}
	r.touchOrder = append(r.touchOrder, ev.ContactID)

	switch len(r.touchOrder) {
	case 1:
		r.gestureStart = ev.Time
		r.maxTouchCount = 1
		r.maxDispSq = 0
		r.pinchEver = false
		r.panLastX, r.panLastY = ev.X, ev.Y
		r.firePanStart(ev.X, ev.Y)
	case 2:
		r.beginPinchCandidate()
	default:
		// Third and later fingers only matter for tap classification.
	}
	if len(r.touchOrder) > r.maxTouchCount {
		r.maxTouchCount = len(r.touchOrder)
	}
}

// beginPinchCandidate anchors span and center for the current first two
// contacts. The pinch does not activate until the span or center moves past
// the threshold — a stationary two-finger rest is not a zoom.
func (r *Recognizer) beginPinchCandidate() {
	span, cx, cy := r.pinchGeometry()
	r.pinchCandidate = true
	r.pinchActive = false
	r.lastScale = 1
	r.pinchBaseSpan = span
	r.pinchAnchorX, r.pinchAnchorY = cx, cy
	r.panLastX, r.panLastY = cx, cy
}

// pinchGeometry returns the span and center of the first two touch contacts.
func (r *Recognizer) pinchGeometry() (span, cx, cy float64) {
	a := r.touches[r.touchOrder[0]]
	b := r.touches[r.touchOrder[1]]
	dx := b.x - a.x
	dy := b.y - a.y
	span = math.Sqrt(dx*dx + dy*dy)
	cx = (a.x + b.x) / 2
	cy = (a.y + b.y) / 2
	return span, cx, cy
}

func (r *Recognizer) touchMove(ev PointerEvent) {
	c, ok := r.touches[ev.ContactID]
	if !ok {
		return
	}
	c.x, c.y = ev.X, ev.Y
	dx := c.x - c.startX
	dy := c.y - c.startY
	if d := dx*dx + dy*dy; d > r.maxDispSq {
		r.maxDispSq = d
	}

	if len(r.touchOrder) == 1 {
		mx := ev.X - r.panLastX
		my := ev.Y - r.panLastY
		if mx != 0 || my != 0 {
			r.firePanMove(mx, my)
			r.panLastX, r.panLastY = ev.X, ev.Y
		}
		return
	}

	span, cx, cy := r.pinchGeometry()
	if !r.pinchActive {
		spanShift := math.Abs(span - r.pinchBaseSpan)
		ax := cx - r.pinchAnchorX
		ay := cy - r.pinchAnchorY
		centerShift := math.Sqrt(ax*ax + ay*ay)
		if spanShift <= r.pinchThreshold && centerShift <= r.pinchThreshold {
			return
		}
		r.pinchActive = true
		r.pinchEver = true
	}

	scale := 1.0
	if r.pinchBaseSpan > 0 {
		scale = span / r.pinchBaseSpan
	}
	r.lastScale = scale
	r.firePinchMove(PinchDelta{
		CenterX: cx,
		CenterY: cy,
		Scale:   scale,
		PanDX:   cx - r.panLastX,
		PanDY:   cy - r.panLastY,
	})
	r.panLastX, r.panLastY = cx, cy
}

func (r *Recognizer) touchEnd(ev PointerEvent) {
	c, ok := r.touches[ev.ContactID]
	if !ok {
		return
	}
	c.x, c.y = ev.X, ev.Y
	r.dropTouch(ev.ContactID)

	switch len(r.touchOrder) {
	case 0:
		duration := ev.Time - r.gestureStart
		tap := !r.pinchEver &&
			r.maxTouchCount >= 2 &&
			r.maxDispSq < r.tapSlopSq &&
			duration < r.tapTimeout
		if tap {
			// Retroactive reclassification: the gesture was never a pan.
			if r.maxTouchCount == 2 {
				r.fireTwoFingerTap()
			} else {
				r.fireThreeFingerTap()
			}
		} else {
			if r.pinchActive {
				r.firePinchEnd()
			}
			r.firePanEnd()
		}
		r.resetTouchGesture()

	case 1:
		// Two fingers down to one: resume panning continuously from the
		// remaining contact's current position, no teleport to its original
		// anchor.
		if r.pinchActive {
			r.pinchActive = false
			r.firePinchEnd()
		}
		r.pinchCandidate = false
		remaining := r.touches[r.touchOrder[0]]
		r.panLastX, r.panLastY = remaining.x, remaining.y

	default:
		// Still two or more fingers: re-anchor the pinch pair, preserving
		// the cumulative scale so the zoom does not jump.
		span, cx, cy := r.pinchGeometry()
		if r.pinchActive && r.lastScale > 0 {
			r.pinchBaseSpan = span / r.lastScale
		} else {
			r.pinchBaseSpan = span
		}
		r.pinchAnchorX, r.pinchAnchorY = cx, cy
		r.panLastX, r.panLastY = cx, cy
	}
}

// dropTouch removes a contact from the table and the arrival order.
func (r *Recognizer) dropTouch(id int) {
	if _, ok := r.touches[id]; !ok {
		return
	}
	delete(r.touches, id)
	for i := range r.touchOrder {
		if r.touchOrder[i] == id {
			r.touchOrder = append(r.touchOrder[:i], r.touchOrder[i+1:]...)
			break
		}
	}
}

func (r *Recognizer) resetTouchGesture() {
	r.pinchCandidate = false
	r.pinchActive = false
	r.pinchEver = false
	r.lastScale = 1
	r.maxTouchCount = 0
	r.maxDispSq = 0
}

// abortTouchGesture closes out any touch gesture in progress and clears the
// contact table. Later suppressed end events for these contacts are ignored.
func (r *Recognizer) abortTouchGesture() {
	if len(r.touchOrder) == 0 {
		return
	}
	if r.pinchActive {
		r.firePinchEnd()
	}
	r.firePanEnd()
	r.touches = make(map[int]*touchContact)
	r.touchOrder = nil
	r.resetTouchGesture()
}

// --- Dispatch ---

func (r *Recognizer) fireStrokeStart(p SamplePoint) {
	for _, h := range r.handlers.strokeStart {
		h.fn(p)
	}
}

func (r *Recognizer) fireStrokeMove(points, predicted []SamplePoint) {
	for _, h := range r.handlers.strokeMove {
		h.fn(points, predicted)
	}
}

func (r *Recognizer) fireStrokeEnd(p SamplePoint) {
	for _, h := range r.handlers.strokeEnd {
		h.fn(p)
	}
}

func (r *Recognizer) fireStrokeCancel() {
	for _, h := range r.handlers.strokeCancel {
		h.fn()
	}
}

func (r *Recognizer) firePanStart(x, y float64) {
	for _, h := range r.handlers.panStart {
		h.fn(x, y)
	}
}

func (r *Recognizer) firePanMove(dx, dy float64) {
	for _, h := range r.handlers.panMove {
		h.fn(dx, dy)
	}
}

func (r *Recognizer) firePanEnd() {
	for _, h := range r.handlers.panEnd {
		h.fn()
	}
}

func (r *Recognizer) firePinchMove(p PinchDelta) {
	for _, h := range r.handlers.pinchMove {
		h.fn(p)
	}
}

func (r *Recognizer) firePinchEnd() {
	for _, h := range r.handlers.pinchEnd {
		h.fn()
	}
}

func (r *Recognizer) fireTwoFingerTap() {
	for _, h := range r.handlers.twoFingerTap {
		h.fn()
	}
}

func (r *Recognizer) fireThreeFingerTap() {
	for _, h := range r.handlers.threeFingerTap {
		h.fn()
	}
}

func (r *Recognizer) fireWheel(w WheelDelta) {
	for _, h := range r.handlers.wheel {
		h.fn(w)
	}
}

func (r *Recognizer) fireWheelEnd() {
	for _, h := range r.handlers.wheelEnd {
		h.fn()
	}
}

func (r *Recognizer) fireHover(x, y float64, role DeviceRole) {
	for _, h := range r.handlers.hover {
		h.fn(x, y, role)
	}
}

func (r *Recognizer) fireHoverEnd() {
	for _, h := range r.handlers.hoverEnd {
		h.fn()
	}
}
