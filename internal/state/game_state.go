// internal/state/game_state.go
package state

import (
	"log"

	game "go-dino-defense/internal/app"
	"go-dino-defense/internal/defs"
	"go-dino-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — активная фаза: симуляция идёт, клики ставят башни
type GameState struct {
	session *Session
}

func NewGameState(session *Session) *GameState {
	return &GameState{session: session}
}

func (g *GameState) Enter() {
	g.session.PauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.session.Renderer.Debug = !g.session.Renderer.Debug
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.session.PauseButton.IsClicked(x, y) {
			g.pause()
			return
		}
		g.handleClick(x, y)
	}

	// Может переключить экран на победу или поражение.
	g.session.Game.Update(deltaTime)
}

func (g *GameState) pause() {
	g.session.Selector.Close()
	g.session.Game.Pause()
	g.session.PauseButton.SetPaused(true)
	g.session.sm.SetState(NewPauseState(g.session.sm, g))
}

// handleClick: клик по иконке строит башню, клик по свободному месту открывает выбор.
func (g *GameState) handleClick(x, y int) {
	selector := g.session.Selector
	if t, ok := selector.IconAt(x, y); ok {
		g.onTouch(t, selector.Spot)
		selector.Close()
		return
	}

	world := g.session.Renderer.ToWorld(x, y)
	if spot, ok := g.session.Game.TowerSpotAt(world); ok {
		sx, sy := g.session.Renderer.ToScreen(spot)
		selector.Open(spot, sx, sy)
		return
	}
	selector.Close()
}

func (g *GameState) onTouch(t defs.TowerType, pos geom.Vec2) {
	if res := g.session.Game.AddTower(t, pos); res != game.Placed {
		log.Printf("[GameState] Tower %s not placed: %s", t, res)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.session.DrawWorld(screen)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
