package component

import "go-dino-defense/pkg/geom"

// Shadow is an ellipse locked to its owner's position.
// Its diamond doubles as the owner's obstacle footprint.
type Shadow struct {
	Size   geom.Vec2 // ширина и высота эллипса
	Offset geom.Vec2 // смещение центра от позиции владельца
}

// SceneryShadow is the shadow for trees and rocks: wider than the sprite, near its base.
func SceneryShadow(w, h float64) Shadow {
	return Shadow{
		Size:   geom.V(1.1*w, 0.6*h),
		Offset: geom.V(0, -0.35*h),
	}
}

// SpriteShadow is the flat shadow under the feet of dinosaurs and towers.
func SpriteShadow(w, h float64) Shadow {
	return Shadow{
		Size:   geom.V(w, 0.3*h),
		Offset: geom.V(0, -h/2+0.15*h),
	}
}

// Center returns the ellipse center for an owner at pos.
func (s Shadow) Center(pos geom.Vec2) geom.Vec2 {
	return pos.Add(s.Offset)
}

// Footprint returns the obstacle polygon for an owner at pos: the diamond through the
// left, bottom, right and top points of the ellipse.
func (s Shadow) Footprint(pos geom.Vec2) geom.Polygon {
	return geom.Diamond(s.Center(pos), s.Size.X, s.Size.Y)
}
