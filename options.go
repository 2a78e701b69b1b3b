package ggpaint

import "image/color"

// EditorOption configures an Editor during creation.
//
// Example:
//
//	ed, err := ggpaint.NewEditor(800, 600,
//	    ggpaint.WithBrush(brush.Round{}),
//	    ggpaint.WithHistoryLimit(20),
//	)
type EditorOption func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	historyLimit  int
	historyBytes  int
	brush         Brush
	eraser        Brush
	shape         ShapeRenderer
	notifier      Notifier
	cancelReverts bool
	minSize       float64
	background    color.Color
	pickRadius    float64
}

// defaultOptions returns the default editor options.
func defaultOptions() editorOptions {
	return editorOptions{
		historyLimit: DefaultHistoryLimit,
		notifier:     logNotice,
		minSize:      MinLayerSize,
		background:   White,
		pickRadius:   8,
	}
}

// WithHistoryLimit sets the number of undo steps kept.
func WithHistoryLimit(n int) EditorOption {
	return func(o *editorOptions) {
		o.historyLimit = n
	}
}

// WithHistoryMemoryLimit bounds the bytes held by undo and redo snapshots.
// Oldest steps are evicted first; an edit whose snapshot alone exceeds
// the limit runs without an undo step.
func WithHistoryMemoryLimit(bytes int) EditorOption {
	return func(o *editorOptions) {
		o.historyBytes = bytes
	}
}

// WithBrush sets the renderer used by the freehand tool.
func WithBrush(b Brush) EditorOption {
	return func(o *editorOptions) {
		o.brush = b
	}
}

// WithEraser sets the renderer used by the eraser tool.
func WithEraser(b Brush) EditorOption {
	return func(o *editorOptions) {
		o.eraser = b
	}
}

// WithShape sets the renderer used by the shape tool.
func WithShape(s ShapeRenderer) EditorOption {
	return func(o *editorOptions) {
		o.shape = s
	}
}

// WithNotifier sets the receiver of user-facing notices. By default
// notices are logged at warn level.
func WithNotifier(n Notifier) EditorOption {
	return func(o *editorOptions) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithCancelReverts makes a cancelled transform gesture restore the
// geometry the layer had when the gesture started. By default a cancel
// keeps whatever the gesture has already applied.
func WithCancelReverts(revert bool) EditorOption {
	return func(o *editorOptions) {
		o.cancelReverts = revert
	}
}

// WithMinSize sets the smallest layer width or height a resize allows.
func WithMinSize(size float64) EditorOption {
	return func(o *editorOptions) {
		o.minSize = size
	}
}

// WithBackground sets the color used by NewCanvas and Clear.
func WithBackground(c color.Color) EditorOption {
	return func(o *editorOptions) {
		if c != nil {
			o.background = c
		}
	}
}

// WithPickRadius sets how close to a handle a press must land to grab it.
func WithPickRadius(r float64) EditorOption {
	return func(o *editorOptions) {
		if r > 0 {
			o.pickRadius = r
		}
	}
}
