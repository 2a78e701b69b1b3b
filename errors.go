package ggpaint

import "errors"

// Errors reported by the editing engine. None of them end an editing
// session: callers either surface a notice or carry on without undo.
var (
	// ErrInvalidSize is returned when a surface dimension is non-positive.
	ErrInvalidSize = errors.New("ggpaint: invalid surface size")

	// ErrSizeMismatch is returned when a snapshot is restored onto a
	// surface of different dimensions.
	ErrSizeMismatch = errors.New("ggpaint: snapshot size mismatch")

	// ErrSnapshotTooLarge is returned when a history snapshot does not fit
	// the configured history memory limit. The pending edit still runs.
	ErrSnapshotTooLarge = errors.New("ggpaint: snapshot exceeds history memory limit")

	// ErrRotatedCrop is reported when cropping a floating layer that is
	// not axis-aligned.
	ErrRotatedCrop = errors.New("ggpaint: cannot crop a rotated layer")

	// ErrNoOverlay is reported when an overlay operation has no floating
	// layer to act on.
	ErrNoOverlay = errors.New("ggpaint: no floating layer")
)
