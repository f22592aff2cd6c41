package system

import (
	"math"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypePickup
)

const allCategories = ^uint(0)

// RaycastHit is the first collider along a ray. Body is the entity owning the
// collider's dynamic body, or 0 when the collider sits on the static body.
type RaycastHit struct {
	Collider ecs.Entity
	Body     ecs.Entity
	Point    cp.Vector
	Normal   cp.Vector
}

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities   map[ecs.Entity]*bodyInfo
	shapeOwner map[*cp.Shape]ecs.Entity
	bodyOwner  map[*cp.Body]ecs.Entity

	pending []ecs.Event
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
	// owned is false for attachments riding another entity's body.
	owned bool
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:      space,
		entities:   make(map[ecs.Entity]*bodyInfo),
		shapeOwner: make(map[*cp.Shape]ecs.Entity),
		bodyOwner:  make(map[*cp.Body]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// FixedUpdate creates bodies for new entities, steps the space and copies
// dynamic body positions back into transforms. Contacts observed during the
// step are pushed to the world event queue.
func (ps *PhysicsSystem) FixedUpdate(w *ecs.World, dt float64) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)
	ps.space.Step(dt)
	ps.syncTransforms(w)

	for _, evt := range ps.pending {
		w.Events().Push(evt)
	}
	ps.pending = ps.pending[:0]
}

// Sync brings the space in line with the world without stepping it.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncWorldBounds(w)
	ps.syncEntities(w)
}

// Raycast returns the first shape hit from origin along dir, skipping shapes
// whose layer bit is not in mask. A zero direction never hits.
func (ps *PhysicsSystem) Raycast(origin, dir cp.Vector, mask uint) (RaycastHit, bool) {
	if ps == nil || ps.space == nil {
		return RaycastHit{}, false
	}
	l := dir.Length()
	if l == 0 || math.IsNaN(l) {
		return RaycastHit{}, false
	}
	end := origin.Add(dir.Mult(common.MaxRayDistance / l))
	filter := cp.ShapeFilter{Group: 0, Categories: allCategories, Mask: mask}
	info := ps.space.SegmentQueryFirst(origin, end, 0, filter)
	if info.Shape == nil {
		return RaycastHit{}, false
	}
	collider, ok := ps.shapeOwner[info.Shape]
	if !ok {
		return RaycastHit{}, false
	}
	hit := RaycastHit{Collider: collider, Point: info.Point, Normal: info.Normal}
	if body := info.Shape.Body(); body != nil && body != ps.space.StaticBody {
		hit.Body = ps.bodyOwner[body]
	}
	return hit, true
}

// Remove takes e's shapes (and body, when e owns it) out of the space right
// away, so later raycasts in the same tick cannot hit a destroyed entity.
func (ps *PhysicsSystem) Remove(e ecs.Entity) {
	if ps == nil {
		return
	}
	info, ok := ps.entities[e]
	if !ok {
		return
	}
	for _, shape := range info.shapes {
		ps.space.RemoveShape(shape)
		delete(ps.shapeOwner, shape)
	}
	if info.owned && !info.static && info.body != nil {
		// Attachments riding this body lose their shapes with it.
		for child, ci := range ps.entities {
			if child == e || ci.body != info.body {
				continue
			}
			for _, shape := range ci.shapes {
				ps.space.RemoveShape(shape)
				delete(ps.shapeOwner, shape)
			}
			delete(ps.entities, child)
		}
		ps.space.RemoveBody(info.body)
		delete(ps.bodyOwner, info.body)
	}
	delete(ps.entities, e)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	playerHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypePlayer)
	playerHandler.UserData = ps
	playerHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		sys.queueContact(ecs.EventCollisionBegin, arb)
		return true
	}

	pickupHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypePickup)
	pickupHandler.UserData = ps
	pickupHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		sys.queueContact(ecs.EventSensorBegin, arb)
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) queueContact(eventType string, arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapeOwner[shapeA]
	b, okB := ps.shapeOwner[shapeB]
	if !okA || !okB {
		return
	}
	ps.pending = append(ps.pending, ecs.Event{Type: eventType, Data: ecs.CollisionEvent{A: a, B: b}})
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	// Bodies first so attachments can find their parent.
	var attachments []ecs.Entity
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		if ecs.Has(w, e, component.AttachmentComponent.Kind()) {
			attachments = append(attachments, e)
			continue
		}
		ps.createBody(w, e)
	}
	for _, e := range attachments {
		ps.createAttachment(w, e)
	}
}

func (ps *PhysicsSystem) createBody(w *ecs.World, e ecs.Entity) {
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	info := &bodyInfo{static: bodyComp.Static, owned: true}
	center := cp.Vector{X: transform.X, Y: transform.Y}

	if bodyComp.Static {
		var shape *cp.Shape
		if bodyComp.Radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, bodyComp.Radius, center)
		} else {
			width, height := boxSize(bodyComp)
			bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		ps.configureShape(w, e, shape, bodyComp)
		ps.space.AddShape(shape)
		info.body = ps.space.StaticBody
		info.shapes = []*cp.Shape{shape}
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// Actors never rotate.
		moment := math.Inf(1)
		if !ecs.Has(w, e, component.ActorComponent.Kind()) {
			if bodyComp.Radius > 0 {
				moment = cp.MomentForCircle(mass, 0, bodyComp.Radius, cp.Vector{})
			} else {
				width, height := boxSize(bodyComp)
				moment = cp.MomentForBox(mass, width, height)
			}
		}

		body := cp.NewBody(mass, moment)
		body.SetPosition(center)
		body.SetAngle(transform.Rotation)
		drag := bodyComp.LinearDrag
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity, damping/(1+drag*dt), dt)
		})

		var shape *cp.Shape
		if bodyComp.Radius > 0 {
			shape = cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
		} else {
			width, height := boxSize(bodyComp)
			shape = cp.NewBox(body, width, height, 0)
		}
		ps.configureShape(w, e, shape, bodyComp)

		ps.space.AddBody(body)
		ps.space.AddShape(shape)
		ps.bodyOwner[body] = e
		info.body = body
		info.shapes = []*cp.Shape{shape}
	}

	ps.entities[e] = info
	ps.shapeOwner[info.shapes[0]] = e
	bodyComp.Body = info.body
	bodyComp.Shape = info.shapes[0]
}

func (ps *PhysicsSystem) createAttachment(w *ecs.World, e ecs.Entity) {
	attach, ok := ecs.Get(w, e, component.AttachmentComponent.Kind())
	if !ok {
		return
	}
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}
	parent, ok := ps.entities[ecs.Entity(attach.Parent)]
	if !ok || parent.static || parent.body == nil {
		return
	}

	offset := cp.Vector{X: attach.OffsetX, Y: attach.OffsetY}
	var shape *cp.Shape
	if bodyComp.Radius > 0 {
		shape = cp.NewCircle(parent.body, bodyComp.Radius, offset)
	} else {
		width, height := boxSize(bodyComp)
		bb := cp.BB{L: offset.X - width/2, B: offset.Y - height/2, R: offset.X + width/2, T: offset.Y + height/2}
		shape = cp.NewBox2(parent.body, bb, 0)
	}
	ps.configureShape(w, e, shape, bodyComp)
	ps.space.AddShape(shape)

	ps.entities[e] = &bodyInfo{body: parent.body, shapes: []*cp.Shape{shape}}
	ps.shapeOwner[shape] = e
	bodyComp.Body = parent.body
	bodyComp.Shape = shape
}

func (ps *PhysicsSystem) configureShape(w *ecs.World, e ecs.Entity, shape *cp.Shape, bodyComp *component.PhysicsBody) {
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)

	category := uint(1) << common.LayerDefault
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		category = layer.Bit()
	}
	shape.SetFilter(cp.ShapeFilter{Group: 0, Categories: category, Mask: allCategories})

	switch {
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		shape.SetCollisionType(collisionTypePlayer)
	case ecs.Has(w, e, component.PickupComponent.Kind()):
		shape.SetCollisionType(collisionTypePickup)
	default:
		shape.SetCollisionType(collisionTypeSolid)
	}
}

func boxSize(bodyComp *component.PhysicsBody) (float64, float64) {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return width, height
}

// syncWorldBounds walls the arena in with four static segments.
func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, owned: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, 0.1)
		shape.SetFriction(0.5)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(cp.ShapeFilter{Group: 0, Categories: uint(1) << common.LayerDefault, Mask: allCategories})
		ps.space.AddShape(shape)
		ps.shapeOwner[shape] = boundsEntity
		info.shapes = append(info.shapes, shape)
	}
	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		if attach, ok := ecs.Get(w, e, component.AttachmentComponent.Kind()); ok {
			pos := bodyComp.Body.LocalToWorld(cp.Vector{X: attach.OffsetX, Y: attach.OffsetY})
			transform.X = pos.X
			transform.Y = pos.Y
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e := range ps.entities {
		if w.IsAlive(e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}
		ps.Remove(e)
	}
}
