// internal/event/types.go
package event

import (
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/types"
	"go-dino-defense/pkg/geom"
)

const (
	WaveStarted   EventType = "WaveStarted"   // Волна объявлена, Data: WaveStartedData
	SpawnDue      EventType = "SpawnDue"      // Пора выпустить врага, Data: SpawnDueData
	WavesComplete EventType = "WavesComplete" // Все волны пройдены
	EntityAdded   EventType = "EntityAdded"   // Data: types.EntityID
	EnemyKilled   EventType = "EnemyKilled"   // Data: EnemyRemovedData
	EnemyEscaped  EventType = "EnemyEscaped"  // Data: EnemyRemovedData
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена, Data: TowerPlacedData
	TowerRejected EventType = "TowerRejected" // Не хватило золота, Data: TowerRejectedData
)

type WaveStartedData struct {
	Index int // с единицы
	Total int
}

type SpawnDueData struct {
	Wave  int
	Enemy defs.EnemyType
}

type EnemyRemovedData struct {
	ID    types.EntityID
	Enemy defs.EnemyType
}

type TowerPlacedData struct {
	ID       types.EntityID
	Tower    defs.TowerType
	Position geom.Vec2
}

type TowerRejectedData struct {
	Tower defs.TowerType
	Cost  int
	Gold  int
}
