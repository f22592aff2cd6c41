package component

// Attachment makes this entity's collider a child shape of Parent's body.
// Parent is an ecs.Entity value; the component package cannot import ecs.
type Attachment struct {
	Parent  uint64
	OffsetX float64
	OffsetY float64
}

var AttachmentComponent = NewComponent[Attachment]()
