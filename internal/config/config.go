// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	MaxDeltaTime = 0.06

	// Мировые координаты: ось Y направлена вверх, рендер переворачивает её.
	StartX        = -200.0
	StartY        = 384.0
	GoalX         = 1224.0
	GoalY         = 384.0
	GoalBoundaryX = 1124.0 // враг, пересёкший эту линию, сбежал

	ZDelta = 5.0

	// Спрайт-размеры из каталогов задают форму тени и препятствия.
	TowerSpriteWidth  = 90.0
	TowerSpriteHeight = 128.0

	TowerSpotRadius     = 40.0
	SelectorIconRadius  = 28.0
	SelectorIconSpacing = 70.0
	HealthBarWidth      = 60.0
	HealthBarHeight     = 6.0
)

var (
	BackgroundColor   = color.RGBA{96, 128, 64, 255}
	ShadowColor       = color.RGBA{0, 0, 0, 70}
	SceneryColor      = color.RGBA{70, 90, 50, 255}
	TowerSpotColor    = color.RGBA{200, 190, 140, 160}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 128}
	HealthBarBgColor  = color.RGBA{80, 20, 20, 255}
	HealthBarColor    = color.RGBA{60, 200, 60, 255}
	SlowedTintColor   = color.RGBA{120, 170, 255, 255}
	TargetLineColor   = color.RGBA{255, 255, 0, 128}
	DebugPathColor    = color.RGBA{255, 255, 255, 90}
	ObstacleEdgeColor = color.RGBA{255, 80, 80, 120}
)
