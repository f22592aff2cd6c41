package component

// PlayerTag marks an actor controlled by a player. Hits on a collider with
// this tag stun the owning actor; contacts between two tagged colliders end
// the round.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// DestructibleTag marks obstacles the laser removes on hit.
type DestructibleTag struct{}

var DestructibleTagComponent = NewComponent[DestructibleTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()
