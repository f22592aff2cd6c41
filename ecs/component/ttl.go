package component

// TTL destroys its entity once Remaining (seconds) runs out.
type TTL struct {
	Remaining float64
}

var TTLComponent = NewComponent[TTL]()
