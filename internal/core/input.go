package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, K, W - move cursor up
	ActionDown           // Down arrow, J, S - move cursor down
	ActionLeft           // Left arrow, H, A - move cursor left
	ActionRight          // Right arrow, L, D - move cursor right
	ActionConfirm        // Enter, Space - place the selected block
	ActionNext           // Tab - cycle the selected block
	ActionSlot1          // 1 - select the first block
	ActionSlot2          // 2 - select the second block
	ActionSlot3          // 3 - select the third block
	ActionBack           // B, Escape - back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionNext:    "Next",
	ActionSlot1:   "Slot1",
	ActionSlot2:   "Slot2",
	ActionSlot3:   "Slot3",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// SlotIndex returns the 0-based block slot for ActionSlot1..3.
func (a Action) SlotIndex() (int, bool) {
	switch a {
	case ActionSlot1:
		return 0, true
	case ActionSlot2:
		return 1, true
	case ActionSlot3:
		return 2, true
	}
	return 0, false
}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
