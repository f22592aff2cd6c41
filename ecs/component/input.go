package component

// InputScheme is the device family an actor is bound to.
type InputScheme int

const (
	SchemeKeyboardMouse InputScheme = iota
	SchemeGamepad
)

func (s InputScheme) String() string {
	switch s {
	case SchemeKeyboardMouse:
		return "Keyboard&Mouse"
	case SchemeGamepad:
		return "Gamepad"
	default:
		return "unknown"
	}
}

// InputPhase is the lifecycle of a discrete action. Only PhasePerformed
// triggers fire, teleport and reset.
type InputPhase int

const (
	PhaseStarted InputPhase = iota
	PhasePerformed
	PhaseCanceled
)

// InputBinding identifies the device an actor reads from. Index is the join
// order and doubles as the registry key.
type InputBinding struct {
	Index   int
	Scheme  InputScheme
	Gamepad int
}

var InputBindingComponent = NewComponent[InputBinding]()
