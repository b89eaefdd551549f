package app

import (
	"testing"

	"go-dino-defense/internal/component"
	"go-dino-defense/internal/config"
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/event"
	"go-dino-defense/internal/interfaces"
	"go-dino-defense/internal/types"
	"go-dino-defense/pkg/geom"
)

type fakePresentation struct {
	animations map[types.EntityID][]interfaces.AnimationState
	sounds     []string
}

func (p *fakePresentation) SetAnimationState(id types.EntityID, state interfaces.AnimationState) {
	p.animations[id] = append(p.animations[id], state)
}

func (p *fakePresentation) PlaySound(name string) {
	p.sounds = append(p.sounds, name)
}

func (p *fakePresentation) count(sound string) int {
	n := 0
	for _, s := range p.sounds {
		if s == sound {
			n++
		}
	}
	return n
}

type fakeHUD struct {
	gold, lives int
	label       string
	updates     int
}

func (h *fakeHUD) Update(gold, baseHealth int, waveLabel string) {
	h.gold, h.lives, h.label = gold, baseHealth, waveLabel
	h.updates++
}

type fakeController struct {
	phases []component.GamePhase
}

func (c *fakeController) Transition(phase component.GamePhase) {
	c.phases = append(c.phases, phase)
}

type testGame struct {
	*Game
	pres       *fakePresentation
	hud        *fakeHUD
	controller *fakeController
}

func newTestGame(t *testing.T, settings config.Settings, waves ...defs.WaveDefinition) *testGame {
	t.Helper()
	catalog := defs.DefaultCatalog()
	if len(waves) > 0 {
		catalog.Waves = waves
	}
	if settings.Seed == 0 {
		settings.Seed = 7
	}
	tg := &testGame{
		pres:       &fakePresentation{animations: make(map[types.EntityID][]interfaces.AnimationState)},
		hud:        &fakeHUD{},
		controller: &fakeController{},
	}
	g, err := NewGame(settings, catalog, tg.pres, tg.hud, tg.controller)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	tg.Game = g
	return tg
}

func TestNewGame(t *testing.T) {
	t.Run("places scenery as obstacles", func(t *testing.T) {
		g := newTestGame(t, config.DefaultSettings())
		scenery := len(g.Catalog.Level.Scenery)
		if len(g.ECS.Scenery) != scenery {
			t.Errorf("expected %d scenery entities, got %d", scenery, len(g.ECS.Scenery))
		}
		if len(g.Graph.Obstacles()) != scenery {
			t.Errorf("expected %d obstacles, got %d", scenery, len(g.Graph.Obstacles()))
		}
		if g.Phase() != component.PhaseReady {
			t.Errorf("expected Ready, got %s", g.Phase())
		}
		if g.hud.gold != 75 || g.hud.lives != 5 || g.hud.label != "Wave 0/5" {
			t.Errorf("unexpected initial HUD: %+v", g.hud)
		}
	})

	t.Run("rejects invalid settings", func(t *testing.T) {
		s := config.DefaultSettings()
		s.BaseLives = -1
		if _, err := NewGame(s, defs.DefaultCatalog(), &fakePresentation{}, &fakeHUD{}, &fakeController{}); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("rejects catalog without waves", func(t *testing.T) {
		c := defs.DefaultCatalog()
		c.Waves = nil
		if _, err := NewGame(config.DefaultSettings(), c, &fakePresentation{}, &fakeHUD{}, &fakeController{}); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestUpdateBeforeStartDoesNothing(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings())
	entities := g.ECS.Len()
	for i := 0; i < 100; i++ {
		g.Update(0.1)
	}
	if g.ECS.Len() != entities || g.WaveManager.CurrentWave() != 0 {
		t.Errorf("ready game changed: %d entities, wave %d", g.ECS.Len(), g.WaveManager.CurrentWave())
	}
	if g.GetGameTime() != 0 {
		t.Errorf("game time advanced to %f", g.GetGameTime())
	}
}

func TestFirstWaveKilledStartsNextWave(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(),
		defs.WaveDefinition{Count: 5, Delay: 3, Enemy: defs.EnemyTRex},
		defs.WaveDefinition{Count: 2, Delay: 1, Enemy: defs.EnemyTRex},
	)
	var killed []types.EntityID
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		killed = append(killed, e.Data.(event.EnemyRemovedData).ID)
	}))

	if !g.Start() {
		t.Fatal("Start failed")
	}
	for i := 0; i < 400 && g.WaveManager.CurrentWave() < 2; i++ {
		g.Update(0.1)
		for _, e := range g.ECS.Enemies {
			e.Health = 0
		}
	}

	if g.WaveManager.CurrentWave() != 2 {
		t.Fatalf("expected wave 2 to start, at wave %d", g.WaveManager.CurrentWave())
	}
	if len(killed) != 5 {
		t.Errorf("expected 5 kills, got %d", len(killed))
	}
	if g.Gold() != 75+5*10 {
		t.Errorf("expected gold 125, got %d", g.Gold())
	}
	if g.BaseLives() != 5 {
		t.Errorf("no enemy should escape, lives %d", g.BaseLives())
	}
	if len(g.ECS.Enemies) != 0 {
		t.Errorf("expected no live enemies, got %d", len(g.ECS.Enemies))
	}
	if n := g.pres.count(interfaces.SoundNewWave); n != 2 {
		t.Errorf("expected 2 new-wave sounds, got %d", n)
	}
	if n := g.pres.count("TRexDead"); n != 5 {
		t.Errorf("expected 5 death sounds, got %d", n)
	}
	if g.hud.label != "Wave 2/2" || g.hud.gold != 125 {
		t.Errorf("HUD not refreshed: %+v", g.hud)
	}
	if g.Phase() != component.PhaseActive {
		t.Errorf("expected Active, got %s", g.Phase())
	}
}

func TestRemovalPassRunsInIDOrder(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), defs.WaveDefinition{Count: 10, Delay: 100, Enemy: defs.EnemyTRex})
	g.Start()

	var ids []types.EntityID
	for i := 0; i < 4; i++ {
		ids = append(ids, g.AddEnemy(defs.EnemyTRex))
	}
	for _, id := range ids {
		g.ECS.Enemies[id].Health = 0
	}

	var killed []types.EntityID
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		killed = append(killed, e.Data.(event.EnemyRemovedData).ID)
	}))
	g.Update(0.01)

	if len(killed) != len(ids) {
		t.Fatalf("expected %d kills, got %v", len(ids), killed)
	}
	for i := range ids {
		if killed[i] != ids[i] {
			t.Errorf("kill order %v, expected %v", killed, ids)
			break
		}
	}
	for _, id := range ids {
		if g.ECS.Contains(id) {
			t.Errorf("enemy %d still present", id)
		}
		anims := g.pres.animations[id]
		if anims[len(anims)-1] != interfaces.AnimDead {
			t.Errorf("enemy %d: expected Dead animation last, got %v", id, anims)
		}
	}
}

func TestEscapeAndLose(t *testing.T) {
	settings := config.DefaultSettings()
	settings.BaseLives = 3
	g := newTestGame(t, settings, defs.WaveDefinition{Count: 2, Delay: 100, Enemy: defs.EnemyTRex})
	g.Start()

	var escaped int
	g.EventDispatcher.Subscribe(event.EnemyEscaped, event.ListenerFunc(func(event.Event) { escaped++ }))

	first := g.AddEnemy(defs.EnemyTRex)
	g.ECS.Enemies[first].Plan = nil
	g.ECS.Enemies[first].Position = geom.V(config.GoalBoundaryX+10, config.GoalY)
	g.Update(0.01)

	if g.BaseLives() != 1 || escaped != 1 {
		t.Fatalf("expected 1 life left after one escape, got %d (%d escapes)", g.BaseLives(), escaped)
	}
	if g.ECS.Contains(first) {
		t.Error("escaped enemy should be removed")
	}
	if g.pres.count(interfaces.SoundLifeLost) != 1 {
		t.Errorf("expected a life-lost sound, got %v", g.pres.sounds)
	}
	if g.Phase() != component.PhaseActive {
		t.Fatalf("game should go on, phase %s", g.Phase())
	}

	second := g.AddEnemy(defs.EnemyTRex)
	g.ECS.Enemies[second].Plan = nil
	g.ECS.Enemies[second].Position = geom.V(config.GoalBoundaryX+1, config.GoalY)
	g.Update(0.01)

	// The wave is also finished, losing wins over completion.
	if g.Phase() != component.PhaseLose {
		t.Errorf("expected Lose, got %s", g.Phase())
	}
	if len(g.controller.phases) != 2 || g.controller.phases[1] != component.PhaseLose {
		t.Errorf("unexpected transitions %v", g.controller.phases)
	}

	// Nothing moves after the game is over.
	entities := g.ECS.Len()
	g.Update(200)
	if g.ECS.Len() != entities || g.GetGameTime() > 1 {
		t.Error("terminal game kept running")
	}
}

func TestWinAfterLastWave(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), defs.WaveDefinition{Count: 1, Delay: 1, Enemy: defs.EnemyTRex})
	g.Start()

	g.Update(1)
	ids := g.ECS.EnemyIDs()
	if len(ids) != 1 {
		t.Fatalf("expected the wave's enemy to spawn, got %d enemies", len(ids))
	}
	g.ECS.Enemies[ids[0]].Health = 0
	g.Update(0.01)

	if g.Phase() != component.PhaseWin {
		t.Errorf("expected Win, got %s", g.Phase())
	}
	if g.Gold() != 85 {
		t.Errorf("expected gold 85, got %d", g.Gold())
	}
	if !g.WaveManager.Complete() {
		t.Error("scheduler should report completion")
	}
}

func TestAddTower(t *testing.T) {
	spot := geom.V(600, 400)

	t.Run("rejected before start", func(t *testing.T) {
		g := newTestGame(t, config.DefaultSettings())
		if res := g.AddTower(defs.TowerWood, spot); res != RejectedInactive {
			t.Errorf("expected RejectedInactive, got %s", res)
		}
	})

	t.Run("insufficient gold changes nothing", func(t *testing.T) {
		settings := config.DefaultSettings()
		settings.StartingGold = 60
		g := newTestGame(t, settings)
		g.Start()
		g.AddEnemy(defs.EnemyTRex)

		var rejected []event.TowerRejectedData
		g.EventDispatcher.Subscribe(event.TowerRejected, event.ListenerFunc(func(e event.Event) {
			rejected = append(rejected, e.Data.(event.TowerRejectedData))
		}))

		entities, obstacles, nodes := g.ECS.Len(), len(g.Graph.Obstacles()), g.Graph.NodeCount()
		if res := g.AddTower(defs.TowerRock, spot); res != RejectedInsufficientGold {
			t.Fatalf("expected RejectedInsufficientGold, got %s", res)
		}
		if g.Gold() != 60 {
			t.Errorf("gold changed to %d", g.Gold())
		}
		if g.ECS.Len() != entities || len(g.Graph.Obstacles()) != obstacles || g.Graph.NodeCount() != nodes {
			t.Error("rejected placement mutated the world")
		}
		if len(g.TowerSpots()) != len(g.Catalog.Level.TowerSpots) {
			t.Error("rejected placement used up a tower spot")
		}
		if g.pres.count(interfaces.SoundNoBuildTower) != 1 {
			t.Errorf("expected the failure sound, got %v", g.pres.sounds)
		}
		if len(rejected) != 1 || rejected[0].Cost != 80 || rejected[0].Gold != 60 {
			t.Errorf("unexpected rejection events %+v", rejected)
		}
	})

	t.Run("placed tower becomes an obstacle and re-routes enemies", func(t *testing.T) {
		g := newTestGame(t, config.DefaultSettings())
		g.Start()
		id := g.AddEnemy(defs.EnemyTRex)
		oldPlan := g.ECS.Enemies[id].Plan
		obstacles := len(g.Graph.Obstacles())

		var placed []event.TowerPlacedData
		g.EventDispatcher.Subscribe(event.TowerPlaced, event.ListenerFunc(func(e event.Event) {
			placed = append(placed, e.Data.(event.TowerPlacedData))
		}))

		if res := g.AddTower(defs.TowerWood, spot); res != Placed {
			t.Fatalf("expected Placed, got %s", res)
		}
		if g.Gold() != 25 || g.hud.gold != 25 {
			t.Errorf("expected gold 25, got %d (HUD %d)", g.Gold(), g.hud.gold)
		}
		if len(g.Graph.Obstacles()) != obstacles+1 {
			t.Errorf("expected %d obstacles, got %d", obstacles+1, len(g.Graph.Obstacles()))
		}
		if len(g.ECS.Towers) != 1 {
			t.Errorf("expected one tower, got %d", len(g.ECS.Towers))
		}
		if _, ok := g.TowerSpotAt(spot); ok {
			t.Error("tower spot should be used up")
		}
		if g.ECS.Enemies[id].Plan == oldPlan {
			t.Error("enemy was not re-routed")
		}
		if len(placed) != 1 || placed[0].Position != spot {
			t.Errorf("unexpected placement events %+v", placed)
		}
		if g.pres.count(interfaces.SoundBuildTower) != 1 {
			t.Errorf("expected the build sound, got %v", g.pres.sounds)
		}
	})
}

func TestPause(t *testing.T) {
	wave := defs.WaveDefinition{Count: 3, Delay: 3, Enemy: defs.EnemyTRex}

	t.Run("exact", func(t *testing.T) {
		g := newTestGame(t, config.DefaultSettings(), wave)
		g.Start()
		g.Pause()
		g.Update(10)
		if len(g.ECS.Enemies) != 0 || g.GetGameTime() != 0 {
			t.Fatalf("paused game spawned or advanced")
		}
		if res := g.AddTower(defs.TowerWood, geom.V(300, 470)); res != RejectedInactive {
			t.Errorf("expected placement to be rejected while paused, got %s", res)
		}
		g.Resume()
		g.Update(2.9)
		if len(g.ECS.Enemies) != 0 {
			t.Errorf("spawn fired early after resume")
		}
		g.Update(0.1)
		if len(g.ECS.Enemies) != 1 {
			t.Errorf("expected one spawn at the exact time, got %d", len(g.ECS.Enemies))
		}
	})

	t.Run("catch up", func(t *testing.T) {
		settings := config.DefaultSettings()
		settings.PausePolicy = config.PauseCatchUp
		g := newTestGame(t, settings, wave)
		g.Start()
		g.TogglePause()
		g.Update(7)
		if len(g.ECS.Enemies) != 0 {
			t.Fatalf("paused game spawned")
		}
		g.TogglePause()
		if g.IsPaused() {
			t.Fatal("expected resumed game")
		}
		g.Update(0.01)
		if len(g.ECS.Enemies) != 2 {
			t.Errorf("expected the two overdue spawns, got %d", len(g.ECS.Enemies))
		}
	})
}

func TestSpawnsAreSeeded(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Seed = 1234
	a := newTestGame(t, settings)
	b := newTestGame(t, settings)
	a.Start()
	b.Start()
	for i := 0; i < 5; i++ {
		ida, idb := a.AddEnemy(defs.EnemyTRex), b.AddEnemy(defs.EnemyTRex)
		if a.ECS.Enemies[ida].Position != b.ECS.Enemies[idb].Position {
			t.Fatalf("spawn %d differs: %v vs %v", i, a.ECS.Enemies[ida].Position, b.ECS.Enemies[idb].Position)
		}
	}
}

func TestAddEnemyAnnouncesEntity(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings())
	var added []types.EntityID
	g.EventDispatcher.Subscribe(event.EntityAdded, event.ListenerFunc(func(e event.Event) {
		added = append(added, e.Data.(types.EntityID))
	}))

	id := g.AddEnemy(defs.EnemyTriceratops)
	if len(added) != 1 || added[0] != id {
		t.Fatalf("expected EntityAdded for %d, got %v", id, added)
	}
	enemy := g.ECS.Enemies[id]
	if enemy.Agent == nil || enemy.Agent.Behavior == nil {
		t.Error("steering enemy should get a path behavior")
	}
	if _, ok := g.ECS.Shadows[id]; !ok {
		t.Error("enemy should carry a shadow")
	}
	if anims := g.pres.animations[id]; len(anims) != 1 || anims[0] != interfaces.AnimWalk {
		t.Errorf("expected Walk animation, got %v", anims)
	}
	if id := g.AddEnemy("Stegosaurus"); id != 0 {
		t.Errorf("unknown enemy type should not spawn, got %d", id)
	}
}
