// internal/defs/waves.go
package defs

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Count int       `yaml:"count"` // Количество врагов в волне
	Delay float64   `yaml:"delay"` // Секунды между появлениями, отсчёт от начала волны
	Enemy EnemyType `yaml:"enemy"`
}

func defaultWaves() []WaveDefinition {
	return []WaveDefinition{
		{Count: 5, Delay: 3, Enemy: EnemyTRex},
		{Count: 8, Delay: 2, Enemy: EnemyTriceratops},
		{Count: 10, Delay: 2, Enemy: EnemyTRex},
		{Count: 25, Delay: 1, Enemy: EnemyTriceratops},
		{Count: 1, Delay: 1, Enemy: EnemyTRexBoss},
	}
}
