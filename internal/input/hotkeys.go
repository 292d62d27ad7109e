// Package input translates raw user gestures into state-store operations:
// global hotkeys, outside-interaction detection, and resize drags.
package input

import (
	"github.com/lurk-sh/lurk/internal/state"
)

// Global key bindings, in Bubble Tea key-string form.
const (
	KeyEscape    = "esc"
	KeySearchTab = "ctrl+f"
	KeyPinsTab   = "ctrl+p"
)

// Hotkeys is the single process-wide hotkey dispatcher. Init is idempotent;
// dispatching a bound key invokes its operation exactly once regardless of
// how many times Init ran.
type Hotkeys struct {
	bindings map[string]func()
}

// NewHotkeys creates an uninitialized dispatcher. Keys are ignored until
// Init binds them.
func NewHotkeys() *Hotkeys {
	return &Hotkeys{}
}

// Init binds the global hotkeys against the state store. A second call is a
// no-op and never registers duplicate bindings.
func (h *Hotkeys) Init(states *state.Store) {
	if h.bindings != nil {
		return
	}
	h.bindings = map[string]func(){
		KeyEscape:    states.CloseRightPanel,
		KeySearchTab: func() { states.OpenRightPanel(state.TabSearch) },
		KeyPinsTab:   func() { states.OpenRightPanel(state.TabPins) },
	}
}

// Handle dispatches a key string and reports whether it was consumed.
// While a text input has focus only Escape fires; every other binding is
// suppressed so typing stays local to the input.
func (h *Hotkeys) Handle(key string, editing bool) bool {
	if editing && key != KeyEscape {
		return false
	}
	fn, ok := h.bindings[key]
	if !ok {
		return false
	}
	fn()
	return true
}
