// internal/ui/tower_selector.go
package ui

import (
	"fmt"

	"go-dino-defense/internal/config"
	"go-dino-defense/internal/defs"
	"go-dino-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// TowerSelector — иконки выбора башни над свободным местом.
// Coordinates are in screen space.
type TowerSelector struct {
	Spot   geom.Vec2 // мировая точка места под башню
	IsOpen bool
	types  []defs.TowerType
	costs  map[defs.TowerType]int
	cx, cy float32
}

func NewTowerSelector(catalog *defs.Catalog) *TowerSelector {
	s := &TowerSelector{costs: make(map[defs.TowerType]int)}
	for _, t := range defs.TowerTypes {
		if def, ok := catalog.Tower(t); ok {
			s.types = append(s.types, t)
			s.costs[t] = def.Cost
		}
	}
	return s
}

// Open shows the icons around a spot drawn at screen point (x, y).
func (s *TowerSelector) Open(spot geom.Vec2, x, y float32) {
	s.Spot = spot
	s.cx, s.cy = x, y
	s.IsOpen = true
}

func (s *TowerSelector) Close() {
	s.IsOpen = false
}

func (s *TowerSelector) iconCenter(i int) (float32, float32) {
	offset := (float32(i) - float32(len(s.types)-1)/2) * config.SelectorIconSpacing
	return s.cx + offset, s.cy - config.SelectorIconSpacing
}

// IconAt returns the tower type whose icon covers the screen point.
func (s *TowerSelector) IconAt(x, y int) (defs.TowerType, bool) {
	if !s.IsOpen {
		return "", false
	}
	for i, t := range s.types {
		ix, iy := s.iconCenter(i)
		dx, dy := float32(x)-ix, float32(y)-iy
		if dx*dx+dy*dy <= config.SelectorIconRadius*config.SelectorIconRadius {
			return t, true
		}
	}
	return "", false
}

// Draw рисует иконки; недоступные по цене затемнены.
func (s *TowerSelector) Draw(screen *ebiten.Image, gold int) {
	if !s.IsOpen {
		return
	}
	face := basicfont.Face7x13
	for i, t := range s.types {
		x, y := s.iconCenter(i)
		fill := config.OverlayColor
		if gold >= s.costs[t] {
			fill = config.TowerSpotColor
		}
		vector.DrawFilledCircle(screen, x, y, config.SelectorIconRadius, fill, true)
		vector.StrokeCircle(screen, x, y, config.SelectorIconRadius, 2, config.TextLightColor, true)
		label := string(t)
		price := fmt.Sprintf("%d", s.costs[t])
		text.Draw(screen, label, face, int(x)-len(label)*7/2, int(y)-2, config.TextLightColor)
		text.Draw(screen, price, face, int(x)-len(price)*7/2, int(y)+12, config.TextLightColor)
	}
}
