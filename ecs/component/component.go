package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies one component store in a world. Zero is never
// handed out.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is the typed key the ecs helpers use to reach a store.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid is false for the zero kind, which was never registered.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is declared once per component type at package level.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
