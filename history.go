package ggpaint

import (
	"fmt"
	"slices"
)

// DefaultHistoryLimit is the number of undo steps kept by default.
const DefaultHistoryLimit = 50

// History keeps bounded undo and redo stacks of full-surface snapshots,
// oldest first.
//
// Every mutation that is not itself an undo or redo must be preceded by
// exactly one SnapshotBeforeChange; that call clears the redo stack.
// History is not safe for concurrent use.
type History struct {
	undo []*Snapshot
	redo []*Snapshot

	limit    int
	maxBytes int
}

// NewHistory creates a history holding at most limit undo steps.
// A non-positive limit selects DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// SetMemoryLimit bounds the pixel bytes held across both stacks.
// Zero means no byte limit; only the step limit applies.
func (h *History) SetMemoryLimit(maxBytes int) {
	h.maxBytes = max(maxBytes, 0)
	h.evict()
}

// SnapshotBeforeChange records the current state of s as an undo step and
// clears the redo stack. When the snapshot alone is larger than the memory
// limit it is not taken and ErrSnapshotTooLarge is returned; the caller
// should go ahead with its edit, which simply cannot be undone.
func (h *History) SnapshotBeforeChange(s *Surface) error {
	clear(h.redo)
	h.redo = h.redo[:0]

	if h.maxBytes > 0 && len(s.Pix()) > h.maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrSnapshotTooLarge, len(s.Pix()), h.maxBytes)
	}

	h.undo = append(h.undo, s.Snapshot())
	h.evict()
	Logger().Debug("ggpaint: history push", "undo", len(h.undo))
	return nil
}

// Undo restores the most recent undo step onto s, moving the current state
// to the redo stack. It reports false, changing nothing, when there is
// nothing to undo.
func (h *History) Undo(s *Surface) bool {
	return h.swap(s, &h.undo, &h.redo)
}

// Redo re-applies the most recently undone step. It reports false when
// there is nothing to redo.
func (h *History) Redo(s *Surface) bool {
	return h.swap(s, &h.redo, &h.undo)
}

// swap pops from, restores it onto s and pushes the pre-restore state to to.
func (h *History) swap(s *Surface, from, to *[]*Snapshot) bool {
	if len(*from) == 0 {
		return false
	}
	n := len(*from) - 1
	target := (*from)[n]

	current := s.Snapshot()
	if err := s.Restore(target); err != nil {
		Logger().Warn("ggpaint: history restore failed", "err", err)
		return false
	}
	(*from)[n] = nil
	*from = (*from)[:n]
	*to = append(*to, current)
	return true
}

// evict drops the oldest undo steps until both limits hold.
func (h *History) evict() {
	if excess := len(h.undo) - h.limit; excess > 0 {
		h.undo = slices.Delete(h.undo, 0, excess)
	}
	if h.maxBytes == 0 {
		return
	}
	for len(h.undo) > 0 && h.Bytes() > h.maxBytes {
		h.undo = slices.Delete(h.undo, 0, 1)
	}
}

// Len returns the number of undo steps.
func (h *History) Len() int { return len(h.undo) }

// RedoLen returns the number of redo steps.
func (h *History) RedoLen() int { return len(h.redo) }

// CanUndo reports whether Undo would change the surface.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would change the surface.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Limit returns the maximum number of undo steps.
func (h *History) Limit() int { return h.limit }

// Bytes returns the pixel bytes held by both stacks.
func (h *History) Bytes() int {
	n := 0
	for _, s := range h.undo {
		n += s.Size()
	}
	for _, s := range h.redo {
		n += s.Size()
	}
	return n
}

// Clear drops every undo and redo step.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
