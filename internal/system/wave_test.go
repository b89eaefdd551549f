package system

import (
	"reflect"
	"testing"

	"go-dino-defense/internal/config"
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/event"
)

// waveRecorder captures scheduler output together with the clock at delivery time.
type waveRecorder struct {
	m          *WaveManager
	spawnTimes []float64
	spawns     []event.SpawnDueData
	started    []event.WaveStartedData
	complete   int
}

func newRecordedManager(waves []defs.WaveDefinition, policy config.PausePolicy) *waveRecorder {
	d := event.NewDispatcher()
	r := &waveRecorder{}
	r.m = NewWaveManager(waves, d, policy)
	d.Subscribe(event.SpawnDue, event.ListenerFunc(func(e event.Event) {
		r.spawnTimes = append(r.spawnTimes, r.m.Clock())
		r.spawns = append(r.spawns, e.Data.(event.SpawnDueData))
	}))
	d.Subscribe(event.WaveStarted, event.ListenerFunc(func(e event.Event) {
		r.started = append(r.started, e.Data.(event.WaveStartedData))
	}))
	d.Subscribe(event.WavesComplete, event.ListenerFunc(func(event.Event) {
		r.complete++
	}))
	return r
}

func TestSpawnsFireCumulativelyFromWaveStart(t *testing.T) {
	r := newRecordedManager([]defs.WaveDefinition{{Count: 5, Delay: 3, Enemy: defs.EnemyTRex}}, config.PauseExact)

	if r.m.StartNextWave() {
		t.Fatal("first wave should not report completion")
	}
	if r.m.PendingSpawns() != 5 || r.m.RemainingInWave() != 5 {
		t.Fatalf("expected 5 pending and 5 remaining, got %d and %d", r.m.PendingSpawns(), r.m.RemainingInWave())
	}

	for i := 0; i < 40; i++ {
		r.m.Update(0.5)
	}

	want := []float64{3, 6, 9, 12, 15}
	if !reflect.DeepEqual(r.spawnTimes, want) {
		t.Errorf("expected spawns at %v, got %v", want, r.spawnTimes)
	}
	for _, s := range r.spawns {
		if s.Enemy != defs.EnemyTRex || s.Wave != 1 {
			t.Errorf("unexpected spawn payload %+v", s)
		}
	}
	if r.m.PendingSpawns() != 0 {
		t.Errorf("expected an empty queue, got %d", r.m.PendingSpawns())
	}
}

func TestSpawnsInOneLongFrameKeepOrder(t *testing.T) {
	r := newRecordedManager([]defs.WaveDefinition{{Count: 4, Delay: 1, Enemy: defs.EnemyTriceratops}}, config.PauseExact)
	r.m.StartNextWave()
	r.m.Update(10)
	if len(r.spawns) != 4 {
		t.Errorf("expected all 4 spawns in one update, got %d", len(r.spawns))
	}
}

func TestRemovingWholeWaveStartsNextExactlyOnce(t *testing.T) {
	waves := []defs.WaveDefinition{
		{Count: 3, Delay: 1, Enemy: defs.EnemyTRex},
		{Count: 2, Delay: 1, Enemy: defs.EnemyTriceratops},
	}
	r := newRecordedManager(waves, config.PauseExact)
	r.m.StartNextWave()

	for i := 0; i < 2; i++ {
		if r.m.RemoveEnemyFromWave() {
			t.Fatal("wave is not over yet")
		}
	}
	if len(r.started) != 1 {
		t.Fatalf("next wave started early: %+v", r.started)
	}
	if r.m.RemoveEnemyFromWave() {
		t.Error("second wave exists, should not report completion")
	}
	want := []event.WaveStartedData{{Index: 1, Total: 2}, {Index: 2, Total: 2}}
	if !reflect.DeepEqual(r.started, want) {
		t.Errorf("expected %v, got %v", want, r.started)
	}
	if r.m.RemainingInWave() != 2 || r.m.WaveLabel() != "Wave 2/2" {
		t.Errorf("unexpected state: remaining %d label %q", r.m.RemainingInWave(), r.m.WaveLabel())
	}

	r.m.RemoveEnemyFromWave()
	if !r.m.RemoveEnemyFromWave() {
		t.Error("last removal of the last wave should report completion")
	}
	if !r.m.Complete() || r.complete != 1 {
		t.Errorf("expected one completion event, got %d", r.complete)
	}
	if !r.m.StartNextWave() || r.complete != 1 {
		t.Error("completion should be terminal and announced once")
	}
}

func TestPausePolicies(t *testing.T) {
	waves := []defs.WaveDefinition{{Count: 2, Delay: 1, Enemy: defs.EnemyTRex}}

	t.Run("exact freezes the clock", func(t *testing.T) {
		r := newRecordedManager(waves, config.PauseExact)
		r.m.StartNextWave()
		r.m.Update(0.5)
		r.m.Pause()
		for i := 0; i < 10; i++ {
			r.m.Update(0.5)
		}
		if len(r.spawns) != 0 || r.m.Clock() != 0.5 {
			t.Fatalf("paused scheduler moved: %d spawns, clock %f", len(r.spawns), r.m.Clock())
		}
		r.m.Resume()
		r.m.Update(0.5)
		r.m.Update(1)
		if !reflect.DeepEqual(r.spawnTimes, []float64{1, 2}) {
			t.Errorf("expected spawns at game time 1 and 2, got %v", r.spawnTimes)
		}
	})

	t.Run("catch up bursts on resume", func(t *testing.T) {
		r := newRecordedManager(waves, config.PauseCatchUp)
		r.m.StartNextWave()
		r.m.Update(0.5)
		r.m.Pause()
		for i := 0; i < 10; i++ {
			r.m.Update(0.5)
		}
		if len(r.spawns) != 0 {
			t.Fatalf("spawns delivered while paused: %d", len(r.spawns))
		}
		if r.m.Clock() != 5.5 {
			t.Errorf("clock should keep running, got %f", r.m.Clock())
		}
		r.m.Resume()
		r.m.Update(0)
		if len(r.spawns) != 2 {
			t.Errorf("expected both overdue spawns on resume, got %d", len(r.spawns))
		}
	})
}
