// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-dino-defense/internal/component"
	"go-dino-defense/internal/config"
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/entity"
	"go-dino-defense/internal/event"
	"go-dino-defense/internal/interfaces"
	"go-dino-defense/internal/system"
	"go-dino-defense/internal/types"
	"go-dino-defense/internal/utils"
	"go-dino-defense/pkg/geom"
	"go-dino-defense/pkg/navgraph"
)

// Game owns the live entities and drives one simulation tick at a time.
type Game struct {
	Settings        config.Settings
	Catalog         *defs.Catalog
	ECS             *entity.ECS
	Graph           *navgraph.ObstacleGraph
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	WaveManager       *system.WaveManager
	PathAssigner      *system.PathAssigner
	MovementSystem    *system.MovementSystem
	TargetingSystem   *system.TargetingSystem
	CombatSystem      *system.CombatSystem
	RenderOrderSystem *system.RenderOrderSystem
	StateSystem       *system.StateSystem

	presentation interfaces.Presentation
	hud          interfaces.HUD

	gold       int
	baseLives  int
	towerSpots []geom.Vec2 // свободные места под башни
	goal       geom.Vec2
	gameTime   float64
	isPaused   bool
}

// NewGame validates the configuration, places the level's scenery and returns a game in
// the Ready phase.
func NewGame(settings config.Settings, catalog *defs.Catalog, presentation interfaces.Presentation,
	hud interfaces.HUD, controller interfaces.GameStateController) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	graph := navgraph.NewObstacleGraph(settings.BufferRadius)
	g := &Game{
		Settings:          settings,
		Catalog:           catalog,
		ECS:               ecs,
		Graph:             graph,
		EventDispatcher:   dispatcher,
		Rng:               utils.NewPRNGService(settings.Seed),
		WaveManager:       system.NewWaveManager(catalog.Waves, dispatcher, settings.PausePolicy),
		PathAssigner:      system.NewPathAssigner(graph, settings.PathRadius, settings.PredictionTime),
		MovementSystem:    system.NewMovementSystem(ecs),
		TargetingSystem:   system.NewTargetingSystem(ecs),
		CombatSystem:      system.NewCombatSystem(ecs, presentation, settings.SlowFactor),
		RenderOrderSystem: system.NewRenderOrderSystem(ecs, config.ZDelta),
		StateSystem:       system.NewStateSystem(controller),
		presentation:      presentation,
		hud:               hud,
		gold:              settings.StartingGold,
		baseLives:         settings.BaseLives,
		towerSpots:        append([]geom.Vec2(nil), catalog.Level.TowerSpots...),
		goal:              geom.V(config.GoalX, config.GoalY),
	}

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.SpawnDue, listener)
	dispatcher.Subscribe(event.WaveStarted, listener)

	g.placeScenery()
	g.RenderOrderSystem.Update()
	g.updateHUD()

	log.Printf("[Game] New game: seed %d, %d waves, %d tower spots", g.Rng.Seed(), len(catalog.Waves), len(g.towerSpots))
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpawnDue:
		if data, ok := e.Data.(event.SpawnDueData); ok {
			l.game.AddEnemy(data.Enemy)
		}
	case event.WaveStarted:
		l.game.presentation.PlaySound(interfaces.SoundNewWave)
		l.game.updateHUD()
	}
}

// Start leaves the Ready phase and starts the first wave.
func (g *Game) Start() bool {
	if !g.StateSystem.SwitchTo(component.PhaseActive) {
		return false
	}
	log.Println("[Game] Start first wave!")
	g.WaveManager.StartNextWave()
	return true
}

// Update progresses the game state by one frame, in a fixed order: wave scheduler (which
// may spawn enemies), movement, targeting, combat, removal of dead and escaped enemies,
// render order. Nothing but the spawn clock moves while paused or outside the Active phase.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		g.WaveManager.Update(deltaTime)
		return
	}
	if g.StateSystem.Current() != component.PhaseActive {
		return
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.WaveManager.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.TargetingSystem.Update()
	g.CombatSystem.Update(deltaTime)
	g.removeFinishedEnemies()
	g.RenderOrderSystem.Update()
}

// Pause freezes the simulation. Scheduled spawns are kept.
func (g *Game) Pause() {
	if g.isPaused {
		return
	}
	g.isPaused = true
	g.WaveManager.Pause()
	log.Println("[Game] Paused")
}

func (g *Game) Resume() {
	if !g.isPaused {
		return
	}
	g.isPaused = false
	g.WaveManager.Resume()
	log.Println("[Game] Resumed")
}

func (g *Game) TogglePause() {
	if g.isPaused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// addEntity announces a fully built entity on event.EntityAdded.
func (g *Game) addEntity(id types.EntityID) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.EntityAdded, Data: id})
}

// AddEnemy spawns an enemy at the start with a random lateral offset and routes it to the goal.
func (g *Game) AddEnemy(t defs.EnemyType) types.EntityID {
	def, ok := g.Catalog.Enemy(t)
	if !ok {
		log.Printf("[Game] Error: enemy definition not found for %s", t)
		return 0
	}

	start := geom.V(config.StartX, config.StartY+g.Rng.LateralOffset(g.Settings.SpawnJitterSteps, g.Settings.SpawnJitterStep))
	enemy := component.NewEnemy(t, def, start)
	id := g.ECS.NewEntity()
	g.PathAssigner.Assign(id, enemy, g.goal)

	shadow := component.SpriteShadow(def.Width, def.Height)
	g.ECS.Enemies[id] = enemy
	g.ECS.Shadows[id] = &shadow
	g.ECS.Renderables[id] = &component.Renderable{Width: def.Width, Height: def.Height}
	g.addEntity(id)

	g.presentation.SetAnimationState(id, interfaces.AnimWalk)
	return id
}

// placeScenery adds the level's static obstacles in one batch.
func (g *Game) placeScenery() {
	var footprints []geom.Polygon
	for _, s := range g.Catalog.Level.Scenery {
		id := g.ECS.NewEntity()
		shadow := component.SceneryShadow(s.Width, s.Height)
		g.ECS.Scenery[id] = &component.Scenery{Name: s.Name, Position: s.Position}
		g.ECS.Shadows[id] = &shadow
		g.ECS.Renderables[id] = &component.Renderable{Width: s.Width, Height: s.Height}
		g.addEntity(id)
		footprints = append(footprints, shadow.Footprint(s.Position))
	}
	if len(footprints) > 0 {
		g.Graph.AddObstacles(footprints)
	}
}

// removeFinishedEnemies handles every dead or escaped enemy exactly once, in ID order.
// A removed enemy leaves the live set before the next one is looked at.
func (g *Game) removeFinishedEnemies() {
	for _, id := range g.ECS.EnemyIDs() {
		if g.StateSystem.Current().IsTerminal() {
			return
		}
		enemy := g.ECS.Enemies[id]
		switch {
		case enemy.Health <= 0:
			g.killEnemy(id, enemy)
		case enemy.Position.X > config.GoalBoundaryX:
			g.escapeEnemy(id, enemy)
		}
	}
}

func (g *Game) killEnemy(id types.EntityID, enemy *component.Enemy) {
	enemy.Status = component.EnemyDead
	complete := g.WaveManager.RemoveEnemyFromWave()

	g.presentation.SetAnimationState(id, interfaces.AnimDead)
	g.presentation.PlaySound(interfaces.DeathSound(string(enemy.Type)))
	system.StopEnemy(enemy)
	g.ECS.RemoveEntity(id)

	g.gold += enemy.Def.GoldReward
	g.updateHUD()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyRemovedData{ID: id, Enemy: enemy.Type},
	})

	if complete {
		g.StateSystem.SwitchTo(component.PhaseWin)
	}
}

func (g *Game) escapeEnemy(id types.EntityID, enemy *component.Enemy) {
	enemy.Status = component.EnemyEscaped
	complete := g.WaveManager.RemoveEnemyFromWave()

	g.baseLives -= enemy.Def.BaseDamage
	g.updateHUD()
	g.presentation.PlaySound(interfaces.SoundLifeLost)
	system.StopEnemy(enemy)
	g.ECS.RemoveEntity(id)

	log.Printf("[Game] %s %d reached the base, lives left %d", enemy.Type, id, g.baseLives)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.EnemyEscaped,
		Data: event.EnemyRemovedData{ID: id, Enemy: enemy.Type},
	})

	switch {
	case g.baseLives <= 0:
		g.StateSystem.SwitchTo(component.PhaseLose)
	case complete:
		g.StateSystem.SwitchTo(component.PhaseWin)
	}
}

func (g *Game) updateHUD() {
	g.hud.Update(g.gold, g.baseLives, g.WaveManager.WaveLabel())
}

// --- Public Accessors ---

func (g *Game) Gold() int { return g.gold }

func (g *Game) BaseLives() int { return g.baseLives }

func (g *Game) Phase() component.GamePhase { return g.StateSystem.Current() }

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool { return g.isPaused }

func (g *Game) GetGameTime() float64 { return g.gameTime }

// Goal returns the point every enemy is routed to.
func (g *Game) Goal() geom.Vec2 { return g.goal }

// TowerSpots returns the free tower spots.
func (g *Game) TowerSpots() []geom.Vec2 {
	return append([]geom.Vec2(nil), g.towerSpots...)
}
