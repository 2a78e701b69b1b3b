// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package brush provides simple stroke and shape renderers for ggpaint.
//
// Renderers build a coverage mask for the affected area and composite the
// paint color through it with golang.org/x/image/draw, so a single call is
// one blend regardless of how many pixels it touches.
//
// Example:
//
//	ed, _ := ggpaint.NewEditor(640, 480,
//	    ggpaint.WithBrush(brush.Round{}),
//	    ggpaint.WithEraser(brush.Eraser{}),
//	    ggpaint.WithShape(brush.Ellipse{}),
//	)
package brush
