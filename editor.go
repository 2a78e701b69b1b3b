package ggpaint

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Editor is the raster editing engine: one surface, its undo history, the
// optional floating layer and the tool state machine that routes pointer
// gestures.
//
// Editor is single-threaded. All methods must be called from the same
// goroutine; only image decoding runs elsewhere, and its results are
// applied by Poll or Wait on the owner goroutine.
type Editor struct {
	surface *Surface
	history *History
	overlay *Overlay
	session *TransformSession
	drag    DragRect

	tool     Tool
	params   StrokeParams
	symmetry bool

	// freehand and eraser
	stroking bool
	last     Point

	// shape preview
	shaping    bool
	shapeStart Point
	shapeBase  *Snapshot

	decodes *decodeQueue

	opts editorOptions
}

// NewEditor creates an editor with a width×height canvas filled with the
// background color.
func NewEditor(width, height int, opts ...EditorOption) (*Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	s.Clear(o.background)

	h := NewHistory(o.historyLimit)
	h.SetMemoryLimit(o.historyBytes)

	return &Editor{
		surface: s,
		history: h,
		overlay: NewOverlay(),
		session: NewTransformSession(o.minSize, o.cancelReverts),
		tool:    ToolFreehand,
		params:  DefaultStrokeParams(),
		decodes: newDecodeQueue(),
		opts:    o,
	}, nil
}

// Surface returns the canvas surface.
func (e *Editor) Surface() *Surface { return e.surface }

// History returns the undo history.
func (e *Editor) History() *History { return e.history }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// Gesture returns the state of the transform session.
func (e *Editor) Gesture() Gesture { return e.session.Gesture() }

// Layer returns the floating layer, if any.
func (e *Editor) Layer() (Layer, bool) { return e.overlay.Layer() }

// Selection returns the rectangle of an in-progress selection or crop drag.
func (e *Editor) Selection() (image.Rectangle, bool) {
	if !e.drag.Active() {
		return image.Rectangle{}, false
	}
	return e.drag.Rect(), true
}

// StrokeParams returns the current brush settings.
func (e *Editor) StrokeParams() StrokeParams { return e.params }

// SetStrokeParams sets the brush settings used by subsequent gestures.
func (e *Editor) SetStrokeParams(p StrokeParams) { e.params = p }

// Symmetry reports whether strokes are mirrored about the vertical midline.
func (e *Editor) Symmetry() bool { return e.symmetry }

// SetSymmetry enables or disables horizontal stroke mirroring.
func (e *Editor) SetSymmetry(on bool) { e.symmetry = on }

// SetTool switches the active tool. Any gesture in progress is cancelled.
// Leaving the floating-layer tools (transform and crop) commits the
// floating layer.
func (e *Editor) SetTool(t Tool) {
	if t < 0 || t >= toolCount || t == e.tool {
		return
	}
	e.handlers().cancel(e)
	if e.tool.floats() && !t.floats() {
		e.Commit()
	}
	Logger().Debug("ggpaint: tool changed", "from", e.tool.String(), "to", t.String())
	e.tool = t
}

func (e *Editor) handlers() gestureHandlers {
	return toolHandlers[e.tool]
}

// PointerDown starts a gesture for the active tool.
func (e *Editor) PointerDown(ev PointerEvent) { e.handlers().down(e, ev) }

// PointerMove continues the active tool's gesture.
func (e *Editor) PointerMove(ev PointerEvent) { e.handlers().move(e, ev) }

// PointerUp ends the active tool's gesture.
func (e *Editor) PointerUp(ev PointerEvent) { e.handlers().up(e, ev) }

// Cancel aborts the active tool's gesture (usually Escape).
func (e *Editor) Cancel() { e.handlers().cancel(e) }

// DoubleClick commits the floating layer when the transform tool is active.
func (e *Editor) DoubleClick(PointerEvent) {
	if e.tool == ToolTransform {
		e.Commit()
	}
}

// Commit flattens the floating layer into the surface. It reports false
// when there is no floating layer.
func (e *Editor) Commit() bool {
	e.session.End()
	return e.overlay.Commit(e.surface, e.history)
}

// Undo reverts the last change. A floating layer stays floating on top of
// the restored surface.
func (e *Editor) Undo() bool {
	return e.restore(e.history.Undo)
}

// Redo re-applies the last undone change.
func (e *Editor) Redo() bool {
	return e.restore(e.history.Redo)
}

func (e *Editor) restore(step func(*Surface) bool) bool {
	if !step(e.surface) {
		return false
	}
	if e.overlay.Active() {
		_ = e.overlay.SetBase(e.surface.Snapshot())
	}
	return true
}

// Fill flood-fills the region at (x, y) with c as one undoable step. A
// floating layer is committed first so the fill lands on what is visible.
// It reports false, without recording history, when nothing would change.
func (e *Editor) Fill(x, y int, c color.Color) bool {
	e.Commit()
	if !e.surface.CanFill(x, y, c) {
		return false
	}
	e.snapshot("fill")
	return e.surface.FloodFill(x, y, c)
}

// NewCanvas replaces the surface with a fresh width×height canvas. History
// and any floating layer are discarded.
func (e *Editor) NewCanvas(width, height int) error {
	s, err := NewSurface(width, height)
	if err != nil {
		return err
	}
	e.handlers().cancel(e)
	s.Clear(e.opts.background)
	e.surface = s
	e.history.Clear()
	e.overlay.Clear()
	Logger().Debug("ggpaint: new canvas", "width", width, "height", height)
	return nil
}

// Clear fills the canvas with the background color as one undoable step.
// Any floating layer is discarded.
func (e *Editor) Clear() {
	e.handlers().cancel(e)
	e.overlay.Clear()
	e.snapshot("clear")
	e.surface.Clear(e.opts.background)
}

// Flatten returns a copy of the canvas as it looks now, floating layer
// included. The floating layer is not committed.
func (e *Editor) Flatten() *image.RGBA {
	if err := e.overlay.Recomposite(e.surface); err != nil {
		Logger().Warn("ggpaint: flatten recomposite failed", "err", err)
	}
	return e.surface.Snapshot().Image()
}

// Export writes the flattened canvas as PNG.
func (e *Editor) Export(w io.Writer) error {
	if err := e.overlay.Recomposite(e.surface); err != nil {
		return fmt.Errorf("ggpaint: export: %w", err)
	}
	return e.surface.EncodePNG(w)
}

// snapshot records an undo step. Failure only costs the undo step.
func (e *Editor) snapshot(op string) {
	if err := e.history.SnapshotBeforeChange(e.surface); err != nil {
		Logger().Warn("ggpaint: edit without undo step", "op", op, "err", err)
	}
}

func (e *Editor) notify(kind NoticeKind, msg string, err error) {
	e.opts.notifier(Notice{Kind: kind, Message: msg, Err: err})
}

// mirror reflects p about the surface's vertical midline.
func (e *Editor) mirror(p Point) Point {
	return Pt(float64(e.surface.Width())-p.X, p.Y)
}

// Freehand and eraser.

func (e *Editor) activeBrush() Brush {
	if e.tool == ToolEraser {
		return e.opts.eraser
	}
	return e.opts.brush
}

func (e *Editor) strokeDown(ev PointerEvent) {
	if e.activeBrush() == nil {
		return
	}
	e.snapshot(e.tool.String())
	e.stroking = true
	e.last = ev.Pos
	e.stroke(ev.Pos, ev.Pos)
}

func (e *Editor) strokeMove(ev PointerEvent) {
	if !e.stroking {
		return
	}
	e.stroke(e.last, ev.Pos)
	e.last = ev.Pos
}

func (e *Editor) strokeUp(PointerEvent) { e.stroking = false }

func (e *Editor) strokeCancel() { e.stroking = false }

func (e *Editor) stroke(from, to Point) {
	b := e.activeBrush()
	b.Stroke(e.surface.Image(), from, to, e.params)
	if e.symmetry {
		b.Stroke(e.surface.Image(), e.mirror(from), e.mirror(to), e.params)
	}
}

// Fill tool.

func (e *Editor) fillDown(ev PointerEvent) {
	x, y := ev.Pos.Image()
	e.Fill(x, y, WithOpacity(e.params.Color, e.params.Opacity))
}

// Shape tool. Every move redraws the shape on the gesture-start pixels so
// the preview never smears.

func (e *Editor) shapeDown(ev PointerEvent) {
	if e.opts.shape == nil {
		return
	}
	e.snapshot("shape")
	e.shaping = true
	e.shapeStart = ev.Pos
	e.shapeBase = e.surface.Snapshot()
}

func (e *Editor) shapeMove(ev PointerEvent) {
	if !e.shaping {
		return
	}
	if err := e.surface.Restore(e.shapeBase); err != nil {
		Logger().Warn("ggpaint: shape preview restore failed", "err", err)
		return
	}
	e.opts.shape.Shape(e.surface.Image(), e.shapeStart, ev.Pos, e.params)
	if e.symmetry {
		e.opts.shape.Shape(e.surface.Image(), e.mirror(e.shapeStart), e.mirror(ev.Pos), e.params)
	}
}

func (e *Editor) shapeUp(ev PointerEvent) {
	e.shapeMove(ev)
	e.shaping = false
	e.shapeBase = nil
}

func (e *Editor) shapeCancel() {
	if e.shaping {
		_ = e.surface.Restore(e.shapeBase)
	}
	e.shaping = false
	e.shapeBase = nil
}

// Selection and crop drags.

func (e *Editor) dragDown(ev PointerEvent) { e.drag.Begin(ev.Pos) }

func (e *Editor) dragMove(ev PointerEvent) { e.drag.Update(ev.Pos) }

func (e *Editor) dragCancel() { e.drag.Reset() }

func (e *Editor) selectUp(ev PointerEvent) {
	e.drag.Update(ev.Pos)
	r, ok := e.drag.End()
	if !ok {
		return
	}
	if CutToLayer(e.surface, e.overlay, e.history, r) {
		e.tool = ToolTransform
	}
}

func (e *Editor) cropDown(ev PointerEvent) {
	l, ok := e.overlay.Layer()
	if !ok {
		return
	}
	if l.Angle != 0 {
		e.notify(NoticeRotatedCrop, "rotated layers cannot be cropped; reset the rotation first", ErrRotatedCrop)
		return
	}
	e.drag.Begin(ev.Pos)
}

func (e *Editor) cropUp(ev PointerEvent) {
	e.drag.Update(ev.Pos)
	r, ok := e.drag.End()
	if !ok {
		return
	}
	l, ok := e.overlay.Layer()
	if !ok {
		return
	}
	cropped, err := CropLayer(l, r)
	if err != nil {
		e.notify(NoticeRotatedCrop, "rotated layers cannot be cropped; reset the rotation first", err)
		return
	}
	if cropped == nil {
		return
	}
	if err := e.overlay.Set(e.surface, cropped); err != nil {
		Logger().Warn("ggpaint: crop recomposite failed", "err", err)
	}
	e.tool = ToolTransform
}

// Transform tool.

func (e *Editor) transformDown(ev PointerEvent) {
	l, ok := e.overlay.Layer()
	if !ok {
		return
	}
	g, h := HitTest(l.Geometry, ev.Pos, e.opts.pickRadius)
	e.session.Begin(g, h, ev.Pos, l.Geometry)
}

func (e *Editor) transformMove(ev PointerEvent) {
	g, ok := e.session.Update(ev.Pos, ev.AspectLock)
	if !ok {
		return
	}
	if err := e.overlay.SetGeometry(e.surface, g); err != nil {
		Logger().Warn("ggpaint: transform recomposite failed", "err", err)
	}
}

func (e *Editor) transformUp(PointerEvent) { e.session.End() }

func (e *Editor) transformCancel() {
	g, revert := e.session.Cancel()
	if !revert {
		return
	}
	if err := e.overlay.SetGeometry(e.surface, g); err != nil {
		Logger().Warn("ggpaint: transform revert failed", "err", err)
	}
}

// BeginTransform starts a transform gesture directly, bypassing hit
// testing. It reports false when there is no floating layer or the tool
// is not transform.
func (e *Editor) BeginTransform(g Gesture, h Handle, ev PointerEvent) bool {
	l, ok := e.overlay.Layer()
	if !ok || e.tool != ToolTransform {
		return false
	}
	return e.session.Begin(g, h, ev.Pos, l.Geometry)
}
