// pkg/render/color.go
package render

import (
	"image/color"

	"go-dino-defense/internal/defs"
)

// Sprites are stand-in rectangles, one color per type.
var (
	enemyColors = map[defs.EnemyType]color.RGBA{
		defs.EnemyTRex:        {150, 90, 60, 255},
		defs.EnemyTriceratops: {90, 120, 150, 255},
		defs.EnemyTRexBoss:    {170, 40, 40, 255},
	}
	towerColors = map[defs.TowerType]color.RGBA{
		defs.TowerWood: {140, 100, 50, 255},
		defs.TowerRock: {130, 130, 130, 255},
	}
	defaultSpriteColor = color.RGBA{255, 0, 255, 255}
)

func enemyColor(t defs.EnemyType) color.RGBA {
	if c, ok := enemyColors[t]; ok {
		return c
	}
	return defaultSpriteColor
}

func towerColor(t defs.TowerType) color.RGBA {
	if c, ok := towerColors[t]; ok {
		return c
	}
	return defaultSpriteColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// blend mixes two colors, t=0 gives a, t=1 gives b.
func blend(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
