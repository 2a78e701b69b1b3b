package ggpaint

import (
	"context"
	"image"
	"math"
	"sync"
	"sync/atomic"

	intImage "github.com/gogpu/ggpaint/internal/image"
)

// decodeResult is a finished decode waiting to be applied.
type decodeResult struct {
	id  uint64
	img *image.RGBA
	at  Point
	err error
}

// decodeQueue hands finished decodes from worker goroutines to the
// editor's goroutine. Results are kept in completion order.
type decodeQueue struct {
	mu      sync.Mutex
	done    []decodeResult
	ready   chan struct{}
	pending atomic.Int64
	nextID  atomic.Uint64
}

func newDecodeQueue() *decodeQueue {
	return &decodeQueue{ready: make(chan struct{}, 1)}
}

func (q *decodeQueue) start(data []byte, at Point) uint64 {
	id := q.nextID.Add(1)
	q.pending.Add(1)
	go func() {
		img, err := intImage.Decode(data)
		q.push(decodeResult{id: id, img: img, at: at, err: err})
	}()
	return id
}

func (q *decodeQueue) push(r decodeResult) {
	q.mu.Lock()
	q.done = append(q.done, r)
	q.mu.Unlock()
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *decodeQueue) take() []decodeResult {
	q.mu.Lock()
	defer q.mu.Unlock()
	done := q.done
	q.done = nil
	q.pending.Add(-int64(len(done)))
	return done
}

// InsertImage starts decoding encoded image bytes in the background and
// returns an id for the request. Once applied by Poll or Wait, the image
// becomes the floating layer with its top-left corner at at, scaled down
// to fit the canvas if needed, and the transform tool is selected.
//
// Requests are not cancellable. They are applied in completion order, and
// each one commits the previous floating layer, so a burst of insertions
// leaves exactly one floating layer: the last one to finish decoding.
func (e *Editor) InsertImage(data []byte, at Point) uint64 {
	return e.decodes.start(data, at)
}

// PendingDecodes returns the number of inserted images not yet applied.
func (e *Editor) PendingDecodes() int {
	return int(e.decodes.pending.Load())
}

// Poll applies every finished decode without blocking and returns how
// many were applied.
func (e *Editor) Poll() int {
	done := e.decodes.take()
	for _, r := range done {
		e.install(r)
	}
	return len(done)
}

// Wait blocks until at least one decode has finished, applies all that
// have, and returns how many were applied. It returns early with ctx's
// error when ctx is done.
func (e *Editor) Wait(ctx context.Context) (int, error) {
	for {
		if n := e.Poll(); n > 0 {
			return n, nil
		}
		select {
		case <-e.decodes.ready:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// install turns a decode result into the floating layer.
func (e *Editor) install(r decodeResult) {
	if r.err != nil {
		e.notify(NoticeDecodeFailed, "inserted image could not be decoded", r.err)
		return
	}

	e.handlers().cancel(e)
	e.Commit()
	e.snapshot("insert")

	layer := NewLayer(r.img, r.at.X, r.at.Y)
	layer.Geometry = fitGeometry(layer.Geometry, e.surface.Width(), e.surface.Height())
	if err := e.overlay.Set(e.surface, layer); err != nil {
		Logger().Warn("ggpaint: insert recomposite failed", "err", err)
	}

	if e.tool != ToolTransform {
		Logger().Debug("ggpaint: decode finished outside transform tool",
			"id", r.id, "tool", e.tool.String())
		e.tool = ToolTransform
	}
	Logger().Debug("ggpaint: image inserted", "id", r.id,
		"width", r.img.Rect.Dx(), "height", r.img.Rect.Dy())
}

// fitGeometry scales g down, keeping its aspect ratio and top-left corner,
// so it is no larger than a width×height canvas.
func fitGeometry(g Geometry, width, height int) Geometry {
	k := math.Min(float64(width)/g.W, float64(height)/g.H)
	if k >= 1 {
		return g
	}
	g.W = math.Max(1, math.Floor(g.W*k))
	g.H = math.Max(1, math.Floor(g.H*k))
	return g
}
