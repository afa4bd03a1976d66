package inkwell

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// wheelZoomRate converts wheel pixels into an exponential zoom factor when
// the zoom modifier is held.
const wheelZoomRate = 0.002

// scrollAnim holds active scroll-to tweens for viewport X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// zoomAnim holds an active zoom tween and the screen anchor it zooms about.
type zoomAnim struct {
	tween            *gween.Tween
	anchorX, anchorY float64
}

// Viewport is the pan/zoom consumer of the recognizer's camera outputs: it
// applies pan deltas, pinch steps, and wheel input to a world offset and a
// zoom factor, and converts between screen and world coordinates.
type Viewport struct {
	// X and Y are the world-space coordinates visible at the screen origin.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// MinZoom and MaxZoom clamp all zoom changes.
	MinZoom, MaxZoom float64

	// Cumulative scale of the pinch gesture in progress; pinch steps carry
	// cumulative scale, the viewport applies the increment.
	pinchScale float64

	scrollTween *scrollAnim
	zoomTween   *zoomAnim
}

// NewViewport creates a viewport at the world origin with no zoom.
func NewViewport() *Viewport {
	return &Viewport{
		Zoom:       1.0,
		MinZoom:    0.1,
		MaxZoom:    16.0,
		pinchScale: 1.0,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	return v.X + sx/v.Zoom, v.Y + sy/v.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx - v.X) * v.Zoom, (wy - v.Y) * v.Zoom
}

// Pan moves the view by a screen-space delta: content follows the finger.
func (v *Viewport) Pan(dx, dy float64) {
	v.X -= dx / v.Zoom
	v.Y -= dy / v.Zoom
}

// ZoomAt multiplies the zoom by factor, keeping the world point under the
// screen anchor (sx, sy) fixed. Non-positive factors are ignored.
func (v *Viewport) ZoomAt(sx, sy, factor float64) {
	if factor <= 0 {
		return
	}
	wx, wy := v.ScreenToWorld(sx, sy)
	v.Zoom = v.clampZoom(v.Zoom * factor)
	v.X = wx - sx/v.Zoom
	v.Y = wy - sy/v.Zoom
}

// ApplyPinch consumes one pinch step: incremental zoom about the pinch
// center plus the center's pan travel.
func (v *Viewport) ApplyPinch(p PinchDelta) {
	if v.pinchScale > 0 && p.Scale > 0 {
		v.ZoomAt(p.CenterX, p.CenterY, p.Scale/v.pinchScale)
	}
	v.pinchScale = p.Scale
	v.Pan(p.PanDX, p.PanDY)
}

// EndPinch closes the pinch gesture, resetting the cumulative scale anchor.
func (v *Viewport) EndPinch() {
	v.pinchScale = 1.0
}

// ApplyWheel consumes one wheel step: zoom about the cursor when the zoom
// modifier is held, two-axis scroll otherwise.
func (v *Viewport) ApplyWheel(w WheelDelta) {
	if w.Zoom {
		v.ZoomAt(w.X, w.Y, math.Exp(-w.DeltaY*wheelZoomRate))
		return
	}
	v.Pan(-w.DeltaX, -w.DeltaY)
}

// ScrollTo animates the viewport origin to the given world position over
// duration seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// ZoomTo animates the zoom to the given target over duration seconds,
// zooming about the screen anchor (sx, sy).
func (v *Viewport) ZoomTo(zoom float64, sx, sy float64, duration float32, easeFn ease.TweenFunc) {
	target := v.clampZoom(zoom)
	v.zoomTween = &zoomAnim{
		tween:   gween.New(float32(v.Zoom), float32(target), duration, easeFn),
		anchorX: sx,
		anchorY: sy,
	}
}

// Update advances any active scroll/zoom animations by dt seconds. Call once
// per render frame.
func (v *Viewport) Update(dt float32) {
	if st := v.scrollTween; st != nil {
		if !st.doneX {
			x, fin := st.tweenX.Update(dt)
			v.X = float64(x)
			st.doneX = fin
		}
		if !st.doneY {
			y, fin := st.tweenY.Update(dt)
			v.Y = float64(y)
			st.doneY = fin
		}
		if st.doneX && st.doneY {
			v.scrollTween = nil
		}
	}
	if zt := v.zoomTween; zt != nil {
		z, fin := zt.tween.Update(dt)
		if v.Zoom > 0 {
			v.ZoomAt(zt.anchorX, zt.anchorY, float64(z)/v.Zoom)
		}
		if fin {
			v.zoomTween = nil
		}
	}
}

func (v *Viewport) clampZoom(z float64) float64 {
	if z < v.MinZoom {
		return v.MinZoom
	}
	if z > v.MaxZoom {
		return v.MaxZoom
	}
	return z
}
