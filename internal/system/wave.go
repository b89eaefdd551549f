// internal/system/wave.go
package system

import (
	"container/heap"
	"fmt"
	"log"

	"go-dino-defense/internal/config"
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/event"
)

// clockEpsilon absorbs float drift when the clock is accumulated from frame deltas.
const clockEpsilon = 1e-9

type scheduledSpawn struct {
	fireTime float64
	seq      int
	wave     int
	enemy    defs.EnemyType
}

// spawnQueue is a min-heap ordered by fire time, then by scheduling order.
type spawnQueue []scheduledSpawn

func (q spawnQueue) Len() int { return len(q) }

func (q spawnQueue) Less(i, j int) bool {
	if q[i].fireTime != q[j].fireTime {
		return q[i].fireTime < q[j].fireTime
	}
	return q[i].seq < q[j].seq
}

func (q spawnQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *spawnQueue) Push(x interface{}) { *q = append(*q, x.(scheduledSpawn)) }

func (q *spawnQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// WaveManager schedules enemy spawns wave by wave and starts the next wave once
// every enemy of the current one has been removed.
//
// Spawns are delivered as event.SpawnDue on the dispatcher from inside Update,
// one at a time, so a listener finishes handling a spawn before the next is sent.
type WaveManager struct {
	waves      []defs.WaveDefinition
	dispatcher *event.Dispatcher
	policy     config.PausePolicy

	clock     float64
	started   int // сколько волн уже объявлено
	remaining int // живые враги текущей волны
	queue     spawnQueue
	seq       int
	paused    bool
	complete  bool
}

func NewWaveManager(waves []defs.WaveDefinition, dispatcher *event.Dispatcher, policy config.PausePolicy) *WaveManager {
	return &WaveManager{
		waves:      waves,
		dispatcher: dispatcher,
		policy:     policy,
	}
}

// StartNextWave announces the next wave and schedules its spawns at delay, 2·delay, ...
// from now. Returns true, doing nothing else, when every wave has already been started.
func (m *WaveManager) StartNextWave() bool {
	if m.started >= len(m.waves) {
		if !m.complete {
			m.complete = true
			log.Printf("[WaveManager] All %d waves complete", len(m.waves))
			m.dispatcher.Dispatch(event.Event{Type: event.WavesComplete})
		}
		return true
	}

	wave := m.waves[m.started]
	m.started++
	m.remaining = wave.Count
	for i := 1; i <= wave.Count; i++ {
		heap.Push(&m.queue, scheduledSpawn{
			fireTime: m.clock + float64(i)*wave.Delay,
			seq:      m.seq,
			wave:     m.started,
			enemy:    wave.Enemy,
		})
		m.seq++
	}

	log.Printf("[WaveManager] Wave %d/%d: %d x %s every %.1fs", m.started, len(m.waves), wave.Count, wave.Enemy, wave.Delay)
	m.dispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveStartedData{Index: m.started, Total: len(m.waves)},
	})
	return false
}

// RemoveEnemyFromWave is called exactly once per removed enemy, dead or escaped.
// When the wave's live count drops to zero the next wave starts immediately and its
// result is returned. True means every wave is complete.
func (m *WaveManager) RemoveEnemyFromWave() bool {
	m.remaining--
	if m.remaining <= 0 {
		return m.StartNextWave()
	}
	return false
}

// Update advances the scheduler clock and delivers every spawn that is due.
func (m *WaveManager) Update(deltaTime float64) {
	if m.paused {
		if m.policy == config.PauseCatchUp {
			m.clock += deltaTime
		}
		return
	}
	m.clock += deltaTime
	for m.queue.Len() > 0 && m.queue[0].fireTime <= m.clock+clockEpsilon {
		spawn := heap.Pop(&m.queue).(scheduledSpawn)
		m.dispatcher.Dispatch(event.Event{
			Type: event.SpawnDue,
			Data: event.SpawnDueData{Wave: spawn.wave, Enemy: spawn.enemy},
		})
	}
}

// Pause withholds spawn delivery. With PauseExact the clock stops as well.
func (m *WaveManager) Pause() {
	m.paused = true
}

// Resume restarts delivery. With PauseCatchUp overdue spawns fire on the next Update.
func (m *WaveManager) Resume() {
	m.paused = false
}

func (m *WaveManager) Paused() bool { return m.paused }

// CurrentWave is the 1-based index of the latest started wave, 0 before the first.
func (m *WaveManager) CurrentWave() int { return m.started }

func (m *WaveManager) TotalWaves() int { return len(m.waves) }

// RemainingInWave returns the live-enemy count of the current wave.
func (m *WaveManager) RemainingInWave() int { return m.remaining }

// PendingSpawns returns the number of scheduled spawns not yet delivered.
func (m *WaveManager) PendingSpawns() int { return m.queue.Len() }

func (m *WaveManager) Clock() float64 { return m.clock }

func (m *WaveManager) AllWavesStarted() bool { return m.started >= len(m.waves) }

// Complete reports whether StartNextWave has found no wave left.
func (m *WaveManager) Complete() bool { return m.complete }

// WaveLabel is the HUD text for the current wave.
func (m *WaveManager) WaveLabel() string {
	return fmt.Sprintf("Wave %d/%d", m.started, len(m.waves))
}
