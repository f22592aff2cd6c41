package main

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"sort"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/Xwilarg/WigglingHunt/ecs/entity"
	"github.com/Xwilarg/WigglingHunt/ecs/render"
	"github.com/Xwilarg/WigglingHunt/ecs/system"
	"github.com/Xwilarg/WigglingHunt/input"
	"github.com/Xwilarg/WigglingHunt/input/poll"
	"github.com/Xwilarg/WigglingHunt/levels"
	"github.com/Xwilarg/WigglingHunt/manager"
	"github.com/Xwilarg/WigglingHunt/prefabs"
	"github.com/Xwilarg/WigglingHunt/sfx"
	"github.com/Xwilarg/WigglingHunt/ui"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"
)

type Game struct {
	frames int
	debug  bool

	world      *ecs.World
	scheduler  *ecs.Scheduler
	physics    *system.PhysicsSystem
	controller *system.PlayerControllerSystem

	players  *manager.PlayerManager
	router   *input.Router
	renderer *render.Renderer
	hud      *ui.HUD
	roundUI  *ebitenui.UI
	sound    *sfx.Player
	watcher  *prefabs.Watcher

	scene   string
	pending string
	level   *levels.Level
}

func NewGame(levelName string, required int, debug bool) *Game {
	g := &Game{
		debug:    debug,
		players:  manager.NewPlayerManager(required),
		renderer: render.NewRenderer(),
		hud:      ui.NewHUD(),
		sound:    sfx.NewPlayer(nil, sfx.DefaultCues),
	}
	g.renderer.Debug = debug
	g.roundUI = NewRoundOverUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if levelName == "" {
		levelName = common.SceneMainMenu
	}
	if err := g.loadScene(levelName); err != nil {
		log.Fatalf("game: load %s: %v", levelName, err)
	}
	return g
}

// ActiveScene is the name of the loaded scene.
func (g *Game) ActiveScene() string {
	return g.scene
}

// LoadScene schedules a scene load for the start of the next tick, so the
// world is never rebuilt while its systems are running.
func (g *Game) LoadScene(name string) {
	g.pending = name
}

func (g *Game) Update() error {
	g.frames++

	if g.pending != "" {
		name := g.pending
		g.pending = ""
		if err := g.loadScene(name); err != nil {
			log.Printf("game: load %s: %v", name, err)
		}
	}

	g.hotReload()
	g.handleDevices()

	g.router.Dispatch(g.world, poll.Frames(g.players.Players()))
	g.scheduler.Update(g.world, 1/float64(ebiten.TPS()))

	g.updateMessages()
	g.hud.Update()
	if g.players.DidGameEnded() {
		g.roundUI.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.renderer.Draw(g.world, screen)
	g.hud.Draw(screen)
	if g.players.DidGameEnded() {
		g.roundUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Scene: %s", g.frames, ebiten.ActualFPS(), g.scene))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// loadScene rebuilds the world from a level file and respawns every joined
// player.
func (g *Game) loadScene(name string) error {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return err
	}

	g.world = ecs.NewWorld()
	g.physics = system.NewPhysicsSystem()
	g.renderer.Space = g.physics.Space()
	g.controller = system.NewPlayerControllerSystem(g.players, g.physics, g, g.sound)
	g.scheduler = ecs.NewScheduler(common.FixedStep)
	g.scheduler.AddFixed(g.controller)
	g.scheduler.AddFixed(g.physics)
	g.scheduler.AddFixed(system.NewCollisionSystem(g.players, g))
	pickups := system.NewPickupSystem(g.players, g.physics, g, g.controller)
	g.scheduler.AddFixed(pickups)
	g.scheduler.Add(g.controller)
	g.scheduler.Add(system.NewReloadSystem())
	g.scheduler.Add(system.NewCameraShakeSystem(nil))
	g.scheduler.Add(pickups)
	g.scheduler.Add(system.NewTTLSystem())
	g.router = input.NewRouter(g.controller, g.players.EntityOf)

	g.scene = name
	g.level = lvl
	g.hud.Clear()

	opts := entity.LevelOptions{Tint: g.players.ToColor}
	if name != common.SceneMainMenu {
		opts.Colors = g.players.ColorsInPlay()
	}
	if err := entity.LoadLevelToWorld(g.world, lvl, opts); err != nil {
		return err
	}

	dye := make(map[component.ColorType]int)
	ecs.ForEach(g.world, component.PickupComponent.Kind(), func(_ ecs.Entity, p *component.Pickup) {
		dye[p.Color]++
	})
	g.players.ResetRound(dye)

	for i, binding := range g.players.Players() {
		if _, err := g.spawnActor(binding, i); err != nil {
			return err
		}
	}
	g.layoutViewports()
	g.router.Reset(poll.Frames(g.players.Players()))

	log.Printf("game: loaded scene %s (%d players)", name, len(g.players.Players()))
	return nil
}

// spawnActor builds and activates the actor of a joined player at its spawn.
func (g *Game) spawnActor(binding component.InputBinding, slot int) (ecs.Entity, error) {
	c, ok := g.players.ColorOf(binding)
	if !ok {
		return 0, fmt.Errorf("game: player %d has no color", binding.Index)
	}
	spawn := g.level.SpawnFor(slot)
	e, err := entity.NewActor(g.world, entity.ActorOptions{
		Binding: binding,
		Color:   c,
		Tint:    g.players.ToColor(c),
		X:       spawn.X,
		Y:       spawn.Y,
	})
	if err != nil {
		return 0, err
	}
	g.players.Bind(binding, e)

	status := g.hud.AddSlot(fmt.Sprintf("P%d", binding.Index+1))
	if err := ecs.Add(g.world, e, component.StatusDisplayComponent.Kind(), &component.StatusDisplay{Label: status, Icon: status}); err != nil {
		return 0, fmt.Errorf("game: add status display: %w", err)
	}

	g.physics.Sync(g.world)
	g.controller.Activate(g.world, e)
	return e, nil
}

// handleDevices joins new devices in the main menu, starts the arena once
// everyone is in and drops unplugged gamepads.
func (g *Game) handleDevices() {
	for _, req := range poll.Joins() {
		if g.scene != common.SceneMainMenu {
			continue
		}
		binding, _, joined := g.players.Join(req.Scheme, req.Gamepad)
		if !joined {
			if g.players.IsReady() {
				g.LoadScene(common.SceneArena)
			}
			continue
		}
		if binding.Index+common.LayerPlayerBase > 31 {
			g.players.Leave(binding)
			continue
		}
		if _, err := g.spawnActor(binding, len(g.players.Players())-1); err != nil {
			log.Printf("game: spawn player %d: %v", binding.Index, err)
			continue
		}
		g.layoutViewports()
	}

	gone := poll.Disconnected(g.players.Players())
	for _, binding := range gone {
		g.players.Leave(binding)
		g.router.Forget(binding)
	}
	if len(gone) > 0 {
		g.LoadScene(g.scene)
	}
}

// layoutViewports splits the screen between the actors' cameras: full
// screen for one, side by side for two, a 2x2 grid above that.
func (g *Game) layoutViewports() {
	cams := g.world.Query(component.ActorComponent.Kind(), component.CameraComponent.Kind())
	n := len(cams)
	if n == 0 {
		return
	}
	cols, rows := 1, 1
	switch {
	case n == 2:
		cols = 2
	case n > 2:
		cols, rows = 2, 2
	}
	w, h := common.BaseWidth/cols, common.BaseHeight/rows
	sort.Slice(cams, func(i, j int) bool { return bindingIndex(g.world, cams[i]) < bindingIndex(g.world, cams[j]) })
	for i, e := range cams {
		cam, _ := ecs.Get(g.world, e, component.CameraComponent.Kind())
		x, y := (i%cols)*w, (i/cols%rows)*h
		cam.Viewport = image.Rect(x, y, x+w, y+h)
	}
}

func bindingIndex(w *ecs.World, e ecs.Entity) int {
	if b, ok := ecs.Get(w, e, component.InputBindingComponent.Kind()); ok {
		return b.Index
	}
	return 0
}

func (g *Game) updateMessages() {
	switch {
	case g.players.DidGameEnded():
		g.hud.SetPrompt("")
		switch g.players.Outcome() {
		case manager.OutcomeWin:
			g.hud.SetBanner("All dye collected!")
		case manager.OutcomeLoss:
			g.hud.SetBanner("You bumped into each other!")
		}
	case g.scene == common.SceneMainMenu && g.players.IsReady():
		g.hud.SetPrompt("Everyone is in. Press Enter or Start to hunt")
	case g.scene == common.SceneMainMenu:
		g.hud.SetPrompt(fmt.Sprintf("%s (%d joined)", g.level.Prompt, len(g.players.Players())))
	default:
		g.hud.SetBanner("")
		g.hud.SetPrompt(g.level.Prompt)
	}
}

// hotReload re-applies the actor configuration to live actors when the actor
// prefab or a boost script changes on disk. Other prefabs apply on the next
// scene load.
func (g *Game) hotReload() {
	if g.watcher == nil {
		return
	}
	changed := false
	for _, path := range g.watcher.Poll() {
		if prefabs.IsScriptFile(path) || filepath.Base(path) == "actor.yaml" {
			changed = true
			continue
		}
		if prefabs.IsSpecFile(path) {
			log.Printf("prefabs: %s changed, applies on next scene load", filepath.Base(path))
		}
	}
	if !changed {
		return
	}

	info, err := entity.LoadActorInfo()
	if err != nil {
		log.Printf("prefabs: reload actor: %v", err)
		return
	}
	for _, e := range g.world.Query(component.ActorInfoComponent.Kind()) {
		current, _ := ecs.Get(g.world, e, component.ActorInfoComponent.Kind())
		next := info
		next.Color = current.Color
		g.controller.SetInfo(g.world, e, next)
	}
	log.Printf("prefabs: actor configuration reloaded")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
}
