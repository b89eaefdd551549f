// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"math"
	"sort"

	"go-dino-defense/internal/component"
	"go-dino-defense/internal/config"
	"go-dino-defense/internal/entity"
	"go-dino-defense/internal/types"
	"go-dino-defense/pkg/geom"
	"go-dino-defense/pkg/navgraph"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует мир: задник, места под башни, затем тени и спрайты в порядке глубины.
// World y points up, the screen y points down.
type WorldRenderer struct {
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	ordered      []types.EntityID

	Debug bool // пути врагов и границы препятствий
}

func NewWorldRenderer(screenWidth, screenHeight int) *WorldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &WorldRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 64),
		fillIs:       make([]uint16, 0, 96),
		strokeVs:     make([]ebiten.Vertex, 0, 64),
		strokeIs:     make([]uint16, 0, 96),
	}
}

// ToScreen converts a world point to screen coordinates.
func (r *WorldRenderer) ToScreen(p geom.Vec2) (float32, float32) {
	return float32(p.X), float32(float64(r.screenHeight) - p.Y)
}

// ToWorld converts a cursor position to a world point.
func (r *WorldRenderer) ToWorld(x, y int) geom.Vec2 {
	return geom.V(float64(x), float64(r.screenHeight-y))
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, towerSpots []geom.Vec2, graph *navgraph.ObstacleGraph) {
	screen.Fill(config.BackgroundColor)

	for _, spot := range towerSpots {
		x, y := r.ToScreen(spot)
		vector.DrawFilledCircle(screen, x, y, config.TowerSpotRadius, config.TowerSpotColor, true)
	}

	// Меньшая глубина рисуется раньше.
	r.ordered = r.ordered[:0]
	r.ordered = append(r.ordered, ecs.RenderableIDs()...)
	sort.SliceStable(r.ordered, func(i, j int) bool {
		return ecs.Renderables[r.ordered[i]].Depth < ecs.Renderables[r.ordered[j]].Depth
	})

	for _, id := range r.ordered {
		pos, ok := ecs.Position(id)
		if !ok {
			continue
		}
		if shadow, ok := ecs.Shadows[id]; ok {
			r.drawShadow(screen, *shadow, pos)
		}
		r.drawSprite(screen, ecs, id, pos)
	}

	r.drawTargetLines(screen, ecs)

	if r.Debug {
		r.drawDebug(screen, ecs, graph)
	}
}

// drawShadow рисует эллипс тени в позиции владельца плюс смещение.
func (r *WorldRenderer) drawShadow(screen *ebiten.Image, shadow component.Shadow, pos geom.Vec2) {
	const segments = 24
	center := shadow.Center(pos)
	path := vector.Path{}
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		p := geom.V(center.X+shadow.Size.X/2*math.Cos(angle), center.Y+shadow.Size.Y/2*math.Sin(angle))
		x, y := r.ToScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	r.fillPath(screen, &path, config.ShadowColor)
}

func (r *WorldRenderer) drawSprite(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, pos geom.Vec2) {
	render := ecs.Renderables[id]
	x, y := r.ToScreen(geom.V(pos.X-render.Width/2, pos.Y+render.Height/2))
	w, h := float32(render.Width), float32(render.Height)

	switch {
	case ecs.Enemies[id] != nil:
		enemy := ecs.Enemies[id]
		c := enemyColor(enemy.Type)
		if enemy.Slowed {
			c = blend(c, config.SlowedTintColor, 0.5)
		}
		vector.DrawFilledRect(screen, x, y+h*0.3, w, h*0.7, c, true)
		vector.StrokeRect(screen, x, y+h*0.3, w, h*0.7, 2, DarkenColor(c), true)
		r.drawHealthBar(screen, enemy, x+w/2, y+h*0.3)
	case ecs.Towers[id] != nil:
		c := towerColor(ecs.Towers[id].Type)
		vector.DrawFilledRect(screen, x+w*0.2, y, w*0.6, h, c, true)
		vector.StrokeRect(screen, x+w*0.2, y, w*0.6, h, 2, DarkenColor(c), true)
	default:
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, w/2, config.SceneryColor, true)
	}
}

func (r *WorldRenderer) drawHealthBar(screen *ebiten.Image, enemy *component.Enemy, cx, top float32) {
	ratio := float32(enemy.Health) / float32(enemy.Def.Health)
	if ratio < 0 {
		ratio = 0
	}
	x := cx - config.HealthBarWidth/2
	y := top - config.HealthBarHeight - 4
	vector.DrawFilledRect(screen, x, y, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBgColor, false)
	vector.DrawFilledRect(screen, x, y, config.HealthBarWidth*ratio, config.HealthBarHeight, config.HealthBarColor, false)
}

func (r *WorldRenderer) drawTargetLines(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.TowerIDs() {
		tower := ecs.Towers[id]
		if tower.Target == 0 {
			continue
		}
		target, ok := ecs.Position(tower.Target)
		if !ok {
			continue
		}
		x1, y1 := r.ToScreen(tower.Position)
		x2, y2 := r.ToScreen(target)
		vector.StrokeLine(screen, x1, y1, x2, y2, 2.0, config.TargetLineColor, true)
	}
}

func (r *WorldRenderer) drawDebug(screen *ebiten.Image, ecs *entity.ECS, graph *navgraph.ObstacleGraph) {
	if graph != nil {
		for _, o := range graph.Obstacles() {
			r.strokePolygon(screen, o.Buffered, config.ObstacleEdgeColor)
		}
	}
	for _, id := range ecs.EnemyIDs() {
		enemy := ecs.Enemies[id]
		var points []geom.Vec2
		switch {
		case enemy.Plan != nil:
			points = enemy.Plan.Waypoints()
		case enemy.Agent != nil && enemy.Agent.Behavior != nil && enemy.Agent.Behavior.Path != nil:
			points = enemy.Agent.Behavior.Path.Points
		}
		for i := 1; i < len(points); i++ {
			x1, y1 := r.ToScreen(points[i-1])
			x2, y2 := r.ToScreen(points[i])
			vector.StrokeLine(screen, x1, y1, x2, y2, 1.0, config.DebugPathColor, true)
		}
	}
}

func (r *WorldRenderer) strokePolygon(screen *ebiten.Image, poly geom.Polygon, c color.RGBA) {
	if len(poly) < 2 {
		return
	}
	path := vector.Path{}
	for i, p := range poly {
		x, y := r.ToScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: 1.5,
	})
	colorVertices(r.strokeVs, c)
	screen.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *WorldRenderer) fillPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	colorVertices(r.fillVs, c)
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func colorVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
