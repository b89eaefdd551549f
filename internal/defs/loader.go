// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoWaves          = errors.New("no waves configured")
	ErrUnknownEnemyType = errors.New("unknown enemy type")
	ErrUnknownTowerType = errors.New("unknown tower type")
)

// Catalog is the read-only data of a session: enemy and tower types, waves and the level.
type Catalog struct {
	Enemies map[EnemyType]EnemyDefinition `yaml:"enemies"`
	Towers  map[TowerType]TowerDefinition `yaml:"towers"`
	Waves   []WaveDefinition              `yaml:"waves"`
	Level   Level                         `yaml:"level"`
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Enemies: defaultEnemies(),
		Towers:  defaultTowers(),
		Waves:   defaultWaves(),
		Level:   DefaultLevel(),
	}
}

// Enemy returns the definition of an enemy type.
func (c *Catalog) Enemy(t EnemyType) (EnemyDefinition, bool) {
	def, ok := c.Enemies[t]
	return def, ok
}

// Tower returns the definition of a tower type.
func (c *Catalog) Tower(t TowerType) (TowerDefinition, bool) {
	def, ok := c.Towers[t]
	return def, ok
}

// LoadCatalog reads a YAML file overriding parts of the default catalog.
// Enemy and tower entries replace the built-in entry of the same key, zero fields keep the
// built-in value. A non-empty waves list or level replaces the built-in one.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML from %s: %w", path, err)
	}

	c := DefaultCatalog()
	c.merge(&file)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}

	log.Printf("[Catalog] Loaded %s: %d enemies, %d towers, %d waves",
		path, len(c.Enemies), len(c.Towers), len(c.Waves))
	return c, nil
}

func (c *Catalog) merge(file *Catalog) {
	for t, def := range file.Enemies {
		if base, ok := c.Enemies[t]; ok {
			def = mergeEnemy(base, def)
		}
		c.Enemies[t] = def
	}
	for t, def := range file.Towers {
		if base, ok := c.Towers[t]; ok {
			def = mergeTower(base, def)
		}
		c.Towers[t] = def
	}
	if len(file.Waves) > 0 {
		c.Waves = file.Waves
	}
	if len(file.Level.Scenery) > 0 || len(file.Level.TowerSpots) > 0 {
		c.Level = file.Level
	}
}

func mergeEnemy(base, def EnemyDefinition) EnemyDefinition {
	if def.Health == 0 {
		def.Health = base.Health
	}
	if def.Speed == 0 {
		def.Speed = base.Speed
	}
	if def.BaseDamage == 0 {
		def.BaseDamage = base.BaseDamage
	}
	if def.GoldReward == 0 {
		def.GoldReward = base.GoldReward
	}
	if def.Movement == "" {
		def.Movement = base.Movement
	}
	if def.Width == 0 {
		def.Width = base.Width
	}
	if def.Height == 0 {
		def.Height = base.Height
	}
	if def.MaxAcceleration == 0 {
		def.MaxAcceleration = base.MaxAcceleration
	}
	if def.Mass == 0 {
		def.Mass = base.Mass
	}
	return def
}

// Slowing is a plain bool, so an override cannot switch it off.
func mergeTower(base, def TowerDefinition) TowerDefinition {
	if def.Cost == 0 {
		def.Cost = base.Cost
	}
	if def.Range == 0 {
		def.Range = base.Range
	}
	if def.FireRate == 0 {
		def.FireRate = base.FireRate
	}
	if def.Damage == 0 {
		def.Damage = base.Damage
	}
	def.Slowing = def.Slowing || base.Slowing
	if def.Width == 0 {
		def.Width = base.Width
	}
	if def.Height == 0 {
		def.Height = base.Height
	}
	return def
}

// Validate checks that every definition is usable and that waves reference known enemies.
func (c *Catalog) Validate() error {
	for t, def := range c.Enemies {
		if def.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %d", t, def.Health)
		}
		if def.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be positive, got %f", t, def.Speed)
		}
		if def.BaseDamage < 0 || def.GoldReward < 0 {
			return fmt.Errorf("enemy %s: baseDamage and goldReward cannot be negative", t)
		}
		if def.Width <= 0 || def.Height <= 0 {
			return fmt.Errorf("enemy %s: size must be positive, got %fx%f", t, def.Width, def.Height)
		}
		switch def.Movement {
		case MovementWaypoint:
		case MovementSteering:
			if def.MaxAcceleration <= 0 || def.Mass <= 0 {
				return fmt.Errorf("enemy %s: steering needs positive maxAcceleration and mass", t)
			}
		default:
			return fmt.Errorf("enemy %s: unknown movement style %q", t, def.Movement)
		}
	}

	for t, def := range c.Towers {
		known := false
		for _, k := range TowerTypes {
			if t == k {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownTowerType, t)
		}
		if def.Cost < 0 {
			return fmt.Errorf("tower %s: cost cannot be negative, got %d", t, def.Cost)
		}
		if def.Range <= 0 || def.FireRate <= 0 {
			return fmt.Errorf("tower %s: range and fireRate must be positive", t)
		}
		if def.Damage < 0 {
			return fmt.Errorf("tower %s: damage cannot be negative, got %d", t, def.Damage)
		}
	}

	if len(c.Waves) == 0 {
		return ErrNoWaves
	}
	for i, w := range c.Waves {
		if _, ok := c.Enemies[w.Enemy]; !ok {
			return fmt.Errorf("wave %d: %w: %q", i+1, ErrUnknownEnemyType, w.Enemy)
		}
		if w.Count <= 0 {
			return fmt.Errorf("wave %d: count must be positive, got %d", i+1, w.Count)
		}
		if w.Delay < 0 {
			return fmt.Errorf("wave %d: delay cannot be negative, got %f", i+1, w.Delay)
		}
	}

	for i, s := range c.Level.Scenery {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("scenery %d (%s): size must be positive", i, s.Name)
		}
	}
	return nil
}
