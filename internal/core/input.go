package core

// Action is a semantic input event, decoupled from the key or button that
// produced it.
type Action uint8

const (
	ActionNone     Action = iota
	ActionActivate        // start a run or flap
	ActionPause           // toggle the host pause
	ActionBack            // leave the current view
	ActionQuit            // exit the program
	actionCount
)

var actionNames = [actionCount]string{"None", "Activate", "Pause", "Back", "Quit"}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions pressed since the previous tick. It is a
// value type: hosts copy it freely and Clear it after each Step.
type InputFrame struct {
	pressed uint8
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a press. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.pressed |= 1 << a
}

// Has reports whether a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if a >= actionCount {
		return false
	}
	return f.pressed&(1<<a) != 0
}

// Empty reports whether nothing was pressed.
func (f InputFrame) Empty() bool {
	return f.pressed == 0
}

func (f *InputFrame) Clear() {
	f.pressed = 0
}
