// component/render.go
package component

// Renderable — компонент для отрисовки
type Renderable struct {
	Width, Height float64
	Depth         float64 // больше — ближе к зрителю
}
