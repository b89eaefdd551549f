// internal/state/menu_state.go
package state

import (
	"go-dino-defense/internal/interfaces"
	"go-dino-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — экран ожидания перед первой волной (фаза Ready)
type MenuState struct {
	session *Session
}

func NewMenuState(session *Session) *MenuState {
	return &MenuState{session: session}
}

func (m *MenuState) Enter() {
	m.session.presentation.PlaySound(interfaces.SoundMenu)
}

// Update: первый клик или пробел запускает игру, переход делает Session.Transition.
func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.session.Game.Start()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.session.DrawWorld(screen)
	ui.DrawBanner(screen, "DINO DEFENSE", "click to start")
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
