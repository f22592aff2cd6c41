package system

import (
	"strconv"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
)

// UpdateStatus writes the number of collectibles left for the actor's color
// into its label. The main menu has no status to show.
func (pc *PlayerControllerSystem) UpdateStatus(w *ecs.World, e ecs.Entity) {
	if pc.registry == nil || pc.activeScene() == common.SceneMainMenu {
		return
	}
	display, ok := ecs.Get(w, e, component.StatusDisplayComponent.Kind())
	if !ok || display.Label == nil {
		return
	}
	info, ok := ecs.Get(w, e, component.ActorInfoComponent.Kind())
	if !ok {
		return
	}
	display.Label.SetText(strconv.Itoa(pc.registry.GetCollectibleLeft(info.Color)))
}

// UpdateAllStatus refreshes every actor's label.
func (pc *PlayerControllerSystem) UpdateAllStatus(w *ecs.World) {
	for _, e := range w.Query(component.ActorComponent.Kind(), component.StatusDisplayComponent.Kind()) {
		pc.UpdateStatus(w, e)
	}
}
