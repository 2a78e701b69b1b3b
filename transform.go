package ggpaint

import "math"

// MinLayerSize is the smallest width or height a resize gesture can produce.
const MinLayerSize = 5

// rotateHandleOffset is the distance of the rotate handle above the
// layer's top edge, in the layer's unrotated frame.
const rotateHandleOffset = 24

// Gesture is the state of a TransformSession.
type Gesture int

const (
	// GestureIdle means no pointer gesture is in progress.
	GestureIdle Gesture = iota
	// GestureMoving translates the layer.
	GestureMoving
	// GestureResizing drags one of the eight resize handles.
	GestureResizing
	// GestureRotating turns the layer about its center.
	GestureRotating
)

// String returns a human-readable gesture name.
func (g Gesture) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GestureMoving:
		return "moving"
	case GestureResizing:
		return "resizing"
	case GestureRotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// Handle identifies an edge or corner resize handle.
type Handle int

// Resize handles, named by compass direction.
const (
	HandleNone Handle = iota
	HandleN
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

var handleNames = [...]string{"none", "n", "s", "e", "w", "ne", "nw", "se", "sw"}

// String returns the compass name of the handle.
func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return "unknown"
	}
	return handleNames[h]
}

// ParseHandle returns the handle with the given compass name.
func ParseHandle(s string) (Handle, bool) {
	for i, name := range handleNames {
		if name == s && i != int(HandleNone) {
			return Handle(i), true
		}
	}
	return HandleNone, false
}

// edges reports which edges of the layer follow the pointer.
func (h Handle) edges() (left, top, right, bottom bool) {
	switch h {
	case HandleN:
		top = true
	case HandleS:
		bottom = true
	case HandleE:
		right = true
	case HandleW:
		left = true
	case HandleNE:
		top, right = true, true
	case HandleNW:
		top, left = true, true
	case HandleSE:
		bottom, right = true, true
	case HandleSW:
		bottom, left = true, true
	}
	return left, top, right, bottom
}

// TransformSession turns pointer gestures into layer geometry. It is
// driven by Begin, Update and End/Cancel; every geometry it returns is
// computed from the gesture-start state, never accumulated.
type TransformSession struct {
	gesture    Gesture
	handle     Handle
	startMouse Point
	start      Geometry

	minSize        float64
	revertOnCancel bool
}

// NewTransformSession creates an idle session. Resizes never go below
// minSize (MinLayerSize when non-positive). When revertOnCancel is set,
// Cancel hands back the gesture-start geometry.
func NewTransformSession(minSize float64, revertOnCancel bool) *TransformSession {
	if minSize <= 0 {
		minSize = MinLayerSize
	}
	return &TransformSession{minSize: minSize, revertOnCancel: revertOnCancel}
}

// Gesture returns the current state.
func (t *TransformSession) Gesture() Gesture { return t.gesture }

// Handle returns the handle grabbed by the current resize gesture.
func (t *TransformSession) Handle() Handle { return t.handle }

// Active reports whether a gesture is in progress.
func (t *TransformSession) Active() bool { return t.gesture != GestureIdle }

// Begin starts gesture g at pointer with the layer at start. A resize
// needs a handle. It reports false, staying idle, for an invalid request.
func (t *TransformSession) Begin(g Gesture, h Handle, pointer Point, start Geometry) bool {
	switch g {
	case GestureMoving, GestureRotating:
		h = HandleNone
	case GestureResizing:
		if h == HandleNone {
			return false
		}
	default:
		return false
	}
	t.gesture = g
	t.handle = h
	t.startMouse = pointer
	t.start = start
	return true
}

// Update returns the layer geometry for the pointer at p. aspectLock keeps
// the gesture-start aspect ratio while resizing. It reports false when
// idle.
func (t *TransformSession) Update(p Point, aspectLock bool) (Geometry, bool) {
	d := p.Sub(t.startMouse)
	switch t.gesture {
	case GestureMoving:
		g := t.start
		g.X += d.X
		g.Y += d.Y
		return g, true
	case GestureResizing:
		return t.resize(d, aspectLock), true
	case GestureRotating:
		c := t.start.Center()
		g := t.start
		g.Angle = t.start.Angle + (p.Sub(c).Angle() - t.startMouse.Sub(c).Angle())
		return g, true
	default:
		return Geometry{}, false
	}
}

func (t *TransformSession) resize(d Point, aspectLock bool) Geometry {
	s := t.start
	left, top, right, bottom := t.handle.edges()

	w, h := s.W, s.H
	switch {
	case right:
		w = s.W + d.X
	case left:
		w = s.W - d.X
	}
	switch {
	case bottom:
		h = s.H + d.Y
	case top:
		h = s.H - d.Y
	}
	w = math.Max(w, t.minSize)
	h = math.Max(h, t.minSize)

	if aspectLock && s.W > 0 && s.H > 0 {
		ratio := s.W / s.H
		horizontal := left || right
		vertical := top || bottom
		switch {
		case horizontal && !vertical:
			h = w / ratio
		case vertical && !horizontal:
			w = h * ratio
		case math.Abs(w/s.W-1) >= math.Abs(h/s.H-1):
			h = w / ratio
		default:
			w = h * ratio
		}
		if w < t.minSize || h < t.minSize {
			k := math.Max(t.minSize/w, t.minSize/h)
			w *= k
			h *= k
		}
	}

	g := s
	g.W, g.H = w, h
	if left {
		g.X = s.X + s.W - w
	}
	if top {
		g.Y = s.Y + s.H - h
	}
	return g
}

// End finishes the gesture. The layer keeps its latest geometry.
func (t *TransformSession) End() {
	t.gesture = GestureIdle
	t.handle = HandleNone
}

// Cancel aborts the gesture. When the session reverts on cancel it returns
// the gesture-start geometry and true; otherwise the partial transform
// stands and it returns false.
func (t *TransformSession) Cancel() (Geometry, bool) {
	active := t.Active()
	start := t.start
	t.End()
	if active && t.revertOnCancel {
		return start, true
	}
	return Geometry{}, false
}

// HitTest decides which gesture a pointer press at p starts on a layer
// placed at g. tol is the pick radius around handles. The rotate handle
// wins over resize handles, which win over the interior.
func HitTest(g Geometry, p Point, tol float64) (Gesture, Handle) {
	l := g.Local(p)
	c := g.Center()
	hit := func(x, y float64) bool {
		return Pt(x, y).Sub(l).Length() <= tol
	}

	if hit(c.X, g.Y-rotateHandleOffset) {
		return GestureRotating, HandleNone
	}

	x0, y0, x1, y1 := g.X, g.Y, g.X+g.W, g.Y+g.H
	handles := []struct {
		h    Handle
		x, y float64
	}{
		{HandleNW, x0, y0}, {HandleNE, x1, y0},
		{HandleSW, x0, y1}, {HandleSE, x1, y1},
		{HandleN, c.X, y0}, {HandleS, c.X, y1},
		{HandleW, x0, c.Y}, {HandleE, x1, c.Y},
	}
	for _, hd := range handles {
		if hit(hd.x, hd.y) {
			return GestureResizing, hd.h
		}
	}

	if l.X >= x0 && l.X <= x1 && l.Y >= y0 && l.Y <= y1 {
		return GestureMoving, HandleNone
	}
	return GestureIdle, HandleNone
}
