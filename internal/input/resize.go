package input

import (
	"github.com/lurk-sh/lurk/internal/config"
	"github.com/lurk-sh/lurk/internal/stream"
)

// ResizeTracker manages one draggable divider: it clamps widths to a
// [min,max] range, emits every change through a stream source, and persists
// the width under a caller-supplied settings key. On creation it restores
// the persisted width, falling back to the default.
type ResizeTracker struct {
	settings *config.Settings
	key      string
	min, max int

	widths *stream.Source[int]

	dragging   bool
	dragOrigin int // pointer position when the drag started
	dragWidth  int // width when the drag started
	invert     bool
}

// NewResizeTracker creates a tracker for a divider persisted under key.
// Set invert for dividers where dragging left grows the pane (the right
// panel's border).
func NewResizeTracker(settings *config.Settings, key string, min, max, def int, invert bool) *ResizeTracker {
	t := &ResizeTracker{
		settings: settings,
		key:      key,
		min:      min,
		max:      max,
		invert:   invert,
	}
	t.widths = stream.NewSource(t.clamp(settings.Int(key, def)))
	return t
}

func (t *ResizeTracker) clamp(w int) int {
	if w < t.min {
		return t.min
	}
	if w > t.max {
		return t.max
	}
	return w
}

// Widths exposes the observable width stream.
func (t *ResizeTracker) Widths() *stream.Source[int] {
	return t.widths
}

// Width returns the current clamped width.
func (t *ResizeTracker) Width() int {
	return t.widths.Get()
}

// Start begins a drag from the given pointer position.
func (t *ResizeTracker) Start(pos int) {
	t.dragging = true
	t.dragOrigin = pos
	t.dragWidth = t.Width()
}

// Dragging reports whether a drag is in progress.
func (t *ResizeTracker) Dragging() bool {
	return t.dragging
}

// Move updates the width from a pointer position during a drag, emitting
// and persisting the clamped value. Ignored when no drag is active.
func (t *ResizeTracker) Move(pos int) {
	if !t.dragging {
		return
	}
	delta := pos - t.dragOrigin
	if t.invert {
		delta = -delta
	}
	t.set(t.dragWidth + delta)
}

// End finishes the drag.
func (t *ResizeTracker) End() {
	t.dragging = false
}

// Set applies a width directly, outside of a drag.
func (t *ResizeTracker) Set(w int) {
	t.set(w)
}

func (t *ResizeTracker) set(w int) {
	w = t.clamp(w)
	if w == t.widths.Get() {
		return
	}
	t.widths.Set(w)
	t.settings.SetInt(t.key, w)
}
