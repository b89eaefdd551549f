// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-dino-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD показывает золото, жизни базы и номер волны.
// The simulation pushes values through Update, Draw only reads them.
type HUD struct {
	X, Y     int
	fontFace font.Face

	gold       int
	baseHealth int
	waveLabel  string
}

func NewHUD(x, y int) *HUD {
	return &HUD{X: x, Y: y, fontFace: basicfont.Face7x13}
}

// Update implements interfaces.HUD.
func (h *HUD) Update(gold, baseHealth int, waveLabel string) {
	h.gold = gold
	h.baseHealth = baseHealth
	h.waveLabel = waveLabel
}

func (h *HUD) Gold() int { return h.gold }

func (h *HUD) Draw(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Gold: %d", h.gold),
		fmt.Sprintf("Base: %d", h.baseHealth),
		h.waveLabel,
	}
	vector.DrawFilledRect(screen, float32(h.X-8), float32(h.Y-16), 130, float32(len(lines)*18+10), config.OverlayColor, false)
	for i, line := range lines {
		c := color.Color(config.TextLightColor)
		if i == 1 && h.baseHealth <= 1 {
			c = color.RGBA{255, 80, 80, 255}
		}
		text.Draw(screen, line, h.fontFace, h.X, h.Y+i*18, c)
	}
}

// DrawBanner выводит крупную надпись по центру экрана поверх затемнения.
func DrawBanner(screen *ebiten.Image, title, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	face := basicfont.Face7x13
	drawCentered(screen, title, face, config.ScreenHeight/2-10, 3)
	if subtitle != "" {
		drawCentered(screen, subtitle, face, config.ScreenHeight/2+40, 1)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, scale float64) {
	bounds := text.BoundString(face, s)
	width := float64(bounds.Max.X - bounds.Min.X)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((config.ScreenWidth-width*scale)/2, float64(y))
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.DrawWithOptions(screen, s, face, op)
}
