package component

// Reload is attached to an actor after a successful shot. When Remaining
// (seconds) reaches zero the weapon is re-armed and the component removed.
type Reload struct {
	Remaining float64
}

var ReloadComponent = NewComponent[Reload]()
