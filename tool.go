package ggpaint

// Tool is the active editing mode. Exactly one tool is active at a time
// and it decides which gesture handlers receive pointer events.
type Tool int

// Editing tools.
const (
	ToolFreehand Tool = iota
	ToolEraser
	ToolFill
	ToolShape
	ToolSelect
	ToolTransform
	ToolCropImage

	toolCount
)

var toolNames = [toolCount]string{
	ToolFreehand:  "freehand",
	ToolEraser:    "eraser",
	ToolFill:      "fill",
	ToolShape:     "shape",
	ToolSelect:    "select",
	ToolTransform: "transform",
	ToolCropImage: "crop",
}

// String returns the tool name.
func (t Tool) String() string {
	if t < 0 || t >= toolCount {
		return "unknown"
	}
	return toolNames[t]
}

// ParseTool returns the tool with the given name.
func ParseTool(s string) (Tool, bool) {
	for i, name := range toolNames {
		if name == s {
			return Tool(i), true
		}
	}
	return 0, false
}

// floats reports whether the tool works on the floating layer. Leaving
// the set of floating tools commits the layer.
func (t Tool) floats() bool {
	return t == ToolTransform || t == ToolCropImage
}

// PointerEvent is a pointer press, move or release in surface coordinates.
type PointerEvent struct {
	Pos Point

	// AspectLock keeps the aspect ratio during a resize (usually Shift).
	AspectLock bool
}

// gestureHandlers is the set of callbacks a tool installs.
type gestureHandlers struct {
	down   func(*Editor, PointerEvent)
	move   func(*Editor, PointerEvent)
	up     func(*Editor, PointerEvent)
	cancel func(*Editor)
}

// toolHandlers maps each tool to its gesture handlers. It is filled in
// init because the handlers refer back to the table through Editor.
var toolHandlers [toolCount]gestureHandlers

func init() {
	paint := gestureHandlers{
		down:   (*Editor).strokeDown,
		move:   (*Editor).strokeMove,
		up:     (*Editor).strokeUp,
		cancel: (*Editor).strokeCancel,
	}
	toolHandlers = [toolCount]gestureHandlers{
		ToolFreehand: paint,
		ToolEraser:   paint,
		ToolFill: {
			down:   (*Editor).fillDown,
			move:   func(*Editor, PointerEvent) {},
			up:     func(*Editor, PointerEvent) {},
			cancel: func(*Editor) {},
		},
		ToolShape: {
			down:   (*Editor).shapeDown,
			move:   (*Editor).shapeMove,
			up:     (*Editor).shapeUp,
			cancel: (*Editor).shapeCancel,
		},
		ToolSelect: {
			down:   (*Editor).dragDown,
			move:   (*Editor).dragMove,
			up:     (*Editor).selectUp,
			cancel: (*Editor).dragCancel,
		},
		ToolTransform: {
			down:   (*Editor).transformDown,
			move:   (*Editor).transformMove,
			up:     (*Editor).transformUp,
			cancel: (*Editor).transformCancel,
		},
		ToolCropImage: {
			down:   (*Editor).cropDown,
			move:   (*Editor).dragMove,
			up:     (*Editor).cropUp,
			cancel: (*Editor).dragCancel,
		},
	}
}
