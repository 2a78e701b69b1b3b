// Package ggpaint is a raster editing engine for Go.
//
// # Overview
//
// ggpaint keeps a single RGBA pixel surface and edits it with freehand
// brushes, shape stamps, flood fill, rectangular selections and inserted
// images. Every edit is undoable through a bounded history of full-surface
// snapshots.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/ggpaint"
//		"github.com/gogpu/ggpaint/brush"
//	)
//
//	ed, _ := ggpaint.NewEditor(512, 512, ggpaint.WithBrush(brush.Round{}))
//
//	ed.PointerDown(ggpaint.PointerEvent{Pos: ggpaint.Pt(10, 10)})
//	ed.PointerMove(ggpaint.PointerEvent{Pos: ggpaint.Pt(200, 120)})
//	ed.PointerUp(ggpaint.PointerEvent{Pos: ggpaint.Pt(200, 120)})
//
//	ed.Undo()
//
// # Floating Layer
//
// Selections and inserted images become a floating layer that can be
// moved, resized, rotated and cropped with the transform and crop tools
// before it is committed. While a layer floats, the editor remembers the
// pixels beneath it and redraws base + layer after every change, so the
// layer never leaves copies behind. Switching to a painting tool, a
// double click or Commit flattens the layer into the surface.
//
// # Threading
//
// An Editor belongs to one goroutine. Only image decoding for InsertImage
// runs in the background; decoded images are applied by Poll or Wait.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, positive angles turn clockwise on screen
package ggpaint
