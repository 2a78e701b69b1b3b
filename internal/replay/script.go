// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package replay

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggpaint"
)

// Script errors.
var (
	ErrUnknownOp = errors.New("replay: unknown op")
	ErrBadStep   = errors.New("replay: malformed step")
)

// Point is an [x, y] pair in surface coordinates.
type Point [2]float64

func (p Point) pt() ggpaint.Point { return ggpaint.Pt(p[0], p[1]) }

// Script is a recorded editing session.
//
//	steps:
//	  - op: tool
//	    tool: select
//	  - op: drag
//	    path: [[10, 10], [60, 60]]
//	  - op: transform
//	    gesture: resize
//	    handle: se
//	    path: [[60, 60], [90, 80]]
//	    aspect_lock: true
//	  - op: commit
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one scripted action. Which fields are read depends on Op.
type Step struct {
	Op string `yaml:"op"`

	Tool    string   `yaml:"tool,omitempty"`
	Path    []Point  `yaml:"path,omitempty"`
	At      *Point   `yaml:"at,omitempty"`
	Color   string   `yaml:"color,omitempty"`
	Size    float64  `yaml:"size,omitempty"`
	Opacity *float64 `yaml:"opacity,omitempty"`
	On      bool     `yaml:"on,omitempty"`

	Gesture    string `yaml:"gesture,omitempty"`
	Handle     string `yaml:"handle,omitempty"`
	AspectLock bool   `yaml:"aspect_lock,omitempty"`

	File   string `yaml:"file,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: parse script: %w", err)
	}
	return &s, nil
}

// LoadScript reads and parses a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read script %s: %w", path, err)
	}
	return ParseScript(data)
}

var gestures = map[string]ggpaint.Gesture{
	"move":   ggpaint.GestureMoving,
	"resize": ggpaint.GestureResizing,
	"rotate": ggpaint.GestureRotating,
}

// Run plays s on e. Files named by insert steps are read from fsys.
// Inserted images are decoded in the background; a wait step, or the end
// of the script, applies them.
func Run(ctx context.Context, e *ggpaint.Editor, s *Script, fsys fs.FS) error {
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		ggpaint.Logger().Debug("replay: step", "index", i, "op", st.Op)
		if err := runStep(ctx, e, st, fsys); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	return waitDecodes(ctx, e)
}

func runStep(ctx context.Context, e *ggpaint.Editor, st Step, fsys fs.FS) error {
	switch st.Op {
	case "tool":
		t, ok := ggpaint.ParseTool(st.Tool)
		if !ok {
			return fmt.Errorf("%w: tool %q", ErrBadStep, st.Tool)
		}
		e.SetTool(t)

	case "params":
		return setParams(e, st)

	case "symmetry":
		e.SetSymmetry(st.On)

	case "drag":
		if len(st.Path) == 0 {
			return fmt.Errorf("%w: drag needs a path", ErrBadStep)
		}
		first := st.Path[0].pt()
		e.PointerDown(ggpaint.PointerEvent{Pos: first, AspectLock: st.AspectLock})
		pointerPath(e, st)

	case "click":
		if st.At == nil {
			return fmt.Errorf("%w: click needs at", ErrBadStep)
		}
		ev := ggpaint.PointerEvent{Pos: st.At.pt()}
		e.PointerDown(ev)
		e.PointerUp(ev)

	case "double_click":
		var ev ggpaint.PointerEvent
		if st.At != nil {
			ev.Pos = st.At.pt()
		}
		e.DoubleClick(ev)

	case "transform":
		g, ok := gestures[st.Gesture]
		if !ok {
			return fmt.Errorf("%w: gesture %q", ErrBadStep, st.Gesture)
		}
		h := ggpaint.HandleNone
		if g == ggpaint.GestureResizing {
			if h, ok = ggpaint.ParseHandle(st.Handle); !ok {
				return fmt.Errorf("%w: handle %q", ErrBadStep, st.Handle)
			}
		}
		if len(st.Path) == 0 {
			return fmt.Errorf("%w: transform needs a path", ErrBadStep)
		}
		if !e.BeginTransform(g, h, ggpaint.PointerEvent{Pos: st.Path[0].pt()}) {
			return fmt.Errorf("%w: no floating layer to transform", ErrBadStep)
		}
		pointerPath(e, st)

	case "fill":
		if st.At == nil {
			return fmt.Errorf("%w: fill needs at", ErrBadStep)
		}
		c, err := ggpaint.ParseColor(st.Color)
		if err != nil {
			return err
		}
		x, y := st.At.pt().Image()
		e.Fill(x, y, c)

	case "insert":
		data, err := fs.ReadFile(fsys, st.File)
		if err != nil {
			return err
		}
		var at ggpaint.Point
		if st.At != nil {
			at = st.At.pt()
		}
		e.InsertImage(data, at)

	case "wait":
		return waitDecodes(ctx, e)

	case "cancel":
		e.Cancel()
	case "commit":
		e.Commit()
	case "undo":
		e.Undo()
	case "redo":
		e.Redo()
	case "clear":
		e.Clear()

	case "canvas":
		return e.NewCanvas(st.Width, st.Height)

	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}
	return nil
}

// pointerPath moves through the rest of the path and releases at its end.
func pointerPath(e *ggpaint.Editor, st Step) {
	for _, p := range st.Path[1:] {
		e.PointerMove(ggpaint.PointerEvent{Pos: p.pt(), AspectLock: st.AspectLock})
	}
	last := st.Path[len(st.Path)-1].pt()
	e.PointerUp(ggpaint.PointerEvent{Pos: last, AspectLock: st.AspectLock})
}

func setParams(e *ggpaint.Editor, st Step) error {
	p := e.StrokeParams()
	if st.Color != "" {
		c, err := ggpaint.ParseColor(st.Color)
		if err != nil {
			return err
		}
		p.Color = c
	}
	if st.Size > 0 {
		p.Size = st.Size
	}
	if st.Opacity != nil {
		p.Opacity = *st.Opacity
	}
	e.SetStrokeParams(p)
	return nil
}

func waitDecodes(ctx context.Context, e *ggpaint.Editor) error {
	for e.PendingDecodes() > 0 {
		if _, err := e.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}
