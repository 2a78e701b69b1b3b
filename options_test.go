package ggpaint

import (
	"image/color"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.historyLimit != DefaultHistoryLimit {
		t.Errorf("historyLimit = %d, want %d", o.historyLimit, DefaultHistoryLimit)
	}
	if o.minSize != MinLayerSize {
		t.Errorf("minSize = %v, want %v", o.minSize, MinLayerSize)
	}
	if o.background != White {
		t.Errorf("background = %v, want white", o.background)
	}
	if o.notifier == nil {
		t.Error("notifier is nil")
	}
	if o.brush != nil || o.eraser != nil || o.shape != nil {
		t.Error("renderers set by default")
	}
	if o.cancelReverts {
		t.Error("cancelReverts = true by default")
	}
}

func TestEditorOptions(t *testing.T) {
	called := false
	notifier := func(Notice) { called = true }
	bg := color.RGBA{B: 255, A: 255}

	o := defaultOptions()
	for _, opt := range []EditorOption{
		WithHistoryLimit(7),
		WithHistoryMemoryLimit(1 << 20),
		WithNotifier(notifier),
		WithCancelReverts(true),
		WithMinSize(2),
		WithBackground(bg),
		WithPickRadius(3),
	} {
		opt(&o)
	}

	if o.historyLimit != 7 || o.historyBytes != 1<<20 {
		t.Errorf("history limits = (%d, %d)", o.historyLimit, o.historyBytes)
	}
	if !o.cancelReverts || o.minSize != 2 || o.pickRadius != 3 {
		t.Errorf("transform options = (%v, %v, %v)", o.cancelReverts, o.minSize, o.pickRadius)
	}
	if o.background != bg {
		t.Errorf("background = %v, want %v", o.background, bg)
	}
	o.notifier(Notice{})
	if !called {
		t.Error("custom notifier not installed")
	}
}

func TestEditorOptions_IgnoreInvalid(t *testing.T) {
	o := defaultOptions()
	WithNotifier(nil)(&o)
	WithBackground(nil)(&o)
	WithPickRadius(-1)(&o)

	if o.notifier == nil || o.background != White || o.pickRadius != 8 {
		t.Errorf("invalid options applied: %+v", o)
	}
}

func TestNewEditor_AppliesOptions(t *testing.T) {
	e, err := NewEditor(10, 10, WithHistoryLimit(2), WithBackground(Black))
	if err != nil {
		t.Fatalf("NewEditor() error = %v", err)
	}
	if e.History().Limit() != 2 {
		t.Errorf("history limit = %d, want 2", e.History().Limit())
	}
	if got := e.Surface().RGBAAt(0, 0); got != Black {
		t.Errorf("background = %v, want black", got)
	}
}
